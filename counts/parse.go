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

package counts

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrNoCounts = Error("count file contained no counts")

const countFileCols = 2

// ParseError describes a problem with a count file, located by path and
// 1-based line number.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

// Error returns the location and description of the parse problem.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// ShapeError is returned by ReadAll() when a count file has a different
// number of features to the first file read, which would make the merged
// matrix ragged.
type ShapeError struct {
	Path     string
	Features int
	Expected int
}

// Error describes the shape problem.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: file has %d features, expected %d", e.Path, e.Features, e.Expected)
}

// Input associates a sample column name with the path of its count file.
type Input struct {
	Sample string
	Path   string
}

// ReadFile parses the two column tab separated count file at path (feature
// ID, then count) into a Table with a single sample column named sample.
//
// Returns a *ParseError on rows with the wrong number of columns, counts
// that aren't non-negative integers, or feature IDs repeated within the
// file.
func ReadFile(path, sample string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	table := NewTable()
	table.AddSample(sample)

	scanner := bufio.NewScanner(file)
	line := 0

	for scanner.Scan() {
		line++

		if err := parseCountLine(table, path, sample, scanner.Text(), line); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if table.NumFeatures() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCounts, path)
	}

	return table, nil
}

// parseCountLine parses one line of a count file and stores the cell in to
// the table. Blank lines are ignored.
func parseCountLine(table *Table, path, sample, text string, line int) error {
	if text == "" {
		return nil
	}

	cols := strings.Split(text, "\t")
	if len(cols) != countFileCols {
		return &ParseError{Path: path, Line: line,
			Msg: fmt.Sprintf("expected %d tab separated columns, got %d", countFileCols, len(cols))}
	}

	count, err := strconv.ParseInt(cols[1], 10, 64)
	if err != nil || count < 0 {
		return &ParseError{Path: path, Line: line,
			Msg: fmt.Sprintf("count %q is not a non-negative integer", cols[1])}
	}

	if _, ok := table.Count(cols[0], sample); ok {
		return &ParseError{Path: path, Line: line,
			Msg: fmt.Sprintf("duplicate feature ID %q", cols[0])}
	}

	table.Set(cols[0], sample, count)

	return nil
}

// ReadAll reads every input in to its own single sample Table. Parse failures
// across files are accumulated and returned together.
//
// All files must have the same number of features as the first, since the
// inputs are expected to come from the same quantification pipeline; a
// *ShapeError is returned otherwise.
//
// limit, if greater than 0, reads only the first limit inputs; it exists for
// testing against a subset of a large run.
func ReadAll(inputs []Input, limit int) ([]*Table, error) {
	if limit > 0 && limit < len(inputs) {
		inputs = inputs[:limit]
	}

	tables := make([]*Table, 0, len(inputs))

	var merr *multierror.Error

	for _, input := range inputs {
		table, err := ReadFile(input.Path, input.Sample)
		if err != nil {
			merr = multierror.Append(merr, err)

			continue
		}

		tables = append(tables, table)
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}

	return tables, checkShapes(inputs, tables)
}

// checkShapes confirms every table has the same number of features as the
// first.
func checkShapes(inputs []Input, tables []*Table) error {
	if len(tables) == 0 {
		return nil
	}

	expected := tables[0].NumFeatures()

	for i, table := range tables {
		if table.NumFeatures() != expected {
			return &ShapeError{Path: inputs[i].Path, Features: table.NumFeatures(), Expected: expected}
		}
	}

	return nil
}
