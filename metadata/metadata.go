/*******************************************************************************
 * Copyright (c) 2025 St. Jude Children's Research Hospital.
 *
 * Permission is hereby granted, free of charge, to any person obtaining
 * a copy of this software and associated documentation files (the
 * "Software"), to deal in the Software without restriction, including
 * without limitation the rights to use, copy, modify, merge, publish,
 * distribute, sublicense, and/or sell copies of the Software, and to
 * permit persons to whom the Software is furnished to do so, subject to
 * the following conditions:
 *
 * The above copyright notice and this permission notice shall be included
 * in all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
 * EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
 * MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 * IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY
 * CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
 * TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 * SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 ******************************************************************************/

// package metadata compiles the sample metadata matrix for a set of files.

package metadata

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/stjudecloud/merge-counts/dataset"
	"github.com/stjudecloud/merge-counts/store"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrNoSampleName = Error("file has no sample_name property")

const sampleIDColumn = "Sample ID"
const attrPrefix = "attr"

// metadataTags are the non-attr properties always included in the metadata
// matrix when present.
var metadataTags = []string{ //nolint:gochecknoglobals
	store.SampleNameKey,
	"subject_name",
	"sample_type",
	"sj_diseases",
	"sj_long_disease_name",
	"sj_embargo_date",
}

// Matrix is sample metadata indexed by composed sample ID, one row per file.
type Matrix struct {
	ids  []string
	rows map[string]map[string]string
}

// Collect gathers the metadata matrix rows for each given file ID from the
// source, keeping properties with the attr prefix plus the fixed metadata
// tags, and indexing rows by the dataset-annotated sample name.
func Collect(src store.Source, ids []string, priority dataset.Priority) (*Matrix, error) {
	m := &Matrix{rows: make(map[string]map[string]string)}

	for _, id := range ids {
		props, err := src.Properties(id)
		if err != nil {
			return nil, err
		}

		sample := props[store.SampleNameKey]
		if sample == "" {
			return nil, fmt.Errorf("%w: %s", ErrNoSampleName, id)
		}

		sid := priority.SampleName(sample, dataset.ParseLabels(props[store.DatasetsKey]))

		m.ids = append(m.ids, sid)
		m.rows[sid] = filterProps(props)
	}

	return m, nil
}

// filterProps keeps only attr* properties and the fixed metadata tags.
func filterProps(props map[string]string) map[string]string {
	row := make(map[string]string)

	for key, value := range props {
		if strings.HasPrefix(key, attrPrefix) || isMetadataTag(key) {
			row[key] = value
		}
	}

	return row
}

// isMetadataTag tells you if key is one of the fixed metadata tags.
func isMetadataTag(key string) bool {
	for _, tag := range metadataTags {
		if key == tag {
			return true
		}
	}

	return false
}

// Rows returns the matrix as a header row plus one row per collected file,
// in collection order. Non-attr columns come first, then attr columns, each
// group sorted alphabetically. Absent values are left blank.
func (m *Matrix) Rows() ([]string, [][]string) {
	header := append([]string{sampleIDColumn}, m.columns()...)

	rows := make([][]string, len(m.ids))

	for i, id := range m.ids {
		row := make([]string, 0, len(header))
		row = append(row, id)

		for _, column := range header[1:] {
			row = append(row, m.rows[id][column])
		}

		rows[i] = row
	}

	return header, rows
}

// columns returns the union of the column names across all rows, non-attr
// columns sorted alphabetically then attr columns sorted alphabetically.
func (m *Matrix) columns() []string {
	seen := make(map[string]bool)

	var plain, attrs []string

	for _, row := range m.rows {
		for column := range row {
			if seen[column] {
				continue
			}

			seen[column] = true

			if strings.HasPrefix(column, attrPrefix) {
				attrs = append(attrs, column)
			} else {
				plain = append(plain, column)
			}
		}
	}

	sort.Strings(plain)
	sort.Strings(attrs)

	return append(plain, attrs...)
}

// Render draws the matrix as a table for terminals.
func (m *Matrix) Render(w io.Writer) {
	header, rows := m.Rows()

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
}
