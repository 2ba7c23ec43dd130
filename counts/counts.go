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

// package counts holds per-sample HTSeq expression count data in tables that
// the merge package joins into a combined matrix.

package counts

import (
	"sort"
	"strconv"

	"golang.org/x/exp/maps"
)

// NA is the sentinel written for (feature, sample) cells that had no value in
// any input. An explicit 0 in an input file is preserved as 0 and is distinct
// from NA.
const NA = "NA"

// featureColumn is the name of the row-key column in matrix output.
const featureColumn = "Gene Name"

// Table holds expression counts keyed on feature ID then sample name. Cells
// absent for a (feature, sample) pair represent missing values, not zeros.
type Table struct {
	samples []string
	cells   map[string]map[string]int64
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{cells: make(map[string]map[string]int64)}
}

// AddSample appends a sample column to the table. Returns false without
// changing anything if the table already has a column with that name.
func (t *Table) AddSample(name string) bool {
	if t.HasSample(name) {
		return false
	}

	t.samples = append(t.samples, name)

	return true
}

// HasSample tells you if the table has a sample column with the given name.
func (t *Table) HasSample(name string) bool {
	for _, sample := range t.samples {
		if sample == name {
			return true
		}
	}

	return false
}

// Set stores the count for the given feature and sample. The sample should
// have been added with AddSample() first.
func (t *Table) Set(feature, sample string, count int64) {
	cells, ok := t.cells[feature]
	if !ok {
		cells = make(map[string]int64)
		t.cells[feature] = cells
	}

	cells[sample] = count
}

// Count returns the count stored for the given feature and sample, and
// whether that cell was present at all.
func (t *Table) Count(feature, sample string) (int64, bool) {
	count, ok := t.cells[feature][sample]

	return count, ok
}

// Samples returns the sample column names in the order they were added.
func (t *Table) Samples() []string {
	samples := make([]string, len(t.samples))
	copy(samples, t.samples)

	return samples
}

// Features returns all feature IDs in the table, sorted lexically.
func (t *Table) Features() []string {
	features := maps.Keys(t.cells)
	sort.Strings(features)

	return features
}

// NumSamples returns the number of sample columns in the table.
func (t *Table) NumSamples() int {
	return len(t.samples)
}

// NumFeatures returns the number of feature rows in the table.
func (t *Table) NumFeatures() int {
	return len(t.cells)
}

// Rows returns a header row and one data row per feature, in the form our
// format encoders take. Features are sorted lexically and sample columns are
// sorted by name. Missing cells are filled with the NA sentinel.
func (t *Table) Rows() ([]string, [][]string) {
	samples := t.Samples()
	sort.Strings(samples)

	header := append([]string{featureColumn}, samples...)

	features := t.Features()
	rows := make([][]string, len(features))

	for i, feature := range features {
		row := make([]string, 0, len(header))
		row = append(row, feature)

		for _, sample := range samples {
			row = append(row, formatCell(t, feature, sample))
		}

		rows[i] = row
	}

	return header, rows
}

// formatCell stringifies one cell of the table, using the NA sentinel for
// missing cells.
func formatCell(t *Table, feature, sample string) string {
	count, ok := t.Count(feature, sample)
	if !ok {
		return NA
	}

	return strconv.FormatInt(count, 10)
}
