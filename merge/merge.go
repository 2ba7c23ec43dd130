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

// package merge joins single sample count tables into a combined counts
// matrix, either sequentially or recursively.

package merge

import (
	"fmt"

	"github.com/stjudecloud/merge-counts/counts"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrNoInputs = Error("must have at least one count table to merge")

// SchemaConflictError is returned when both tables being joined claim the
// same sample column with differing counts. Inputs are supposed to have
// disjoint sample sets, so this means an input was supplied twice with
// altered contents.
type SchemaConflictError struct {
	Feature string
	Sample  string
	A, B    int64
}

// Error names the conflicting cell and both of its claimed values.
func (e *SchemaConflictError) Error() string {
	return fmt.Sprintf("conflicting counts for feature %q sample %q: %d vs %d",
		e.Feature, e.Sample, e.A, e.B)
}

// ShapeError is returned when a merged matrix doesn't end up with a sample
// column per input sample.
type ShapeError struct {
	Samples  int
	Expected int
}

// Error describes the shape problem.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("merged matrix has %d sample columns, expected %d", e.Samples, e.Expected)
}

// Pair outer-joins the two given count tables: the result's feature set is
// the union of both inputs' feature sets, and its sample columns are the
// union of both inputs' sample columns. Cells present in neither input stay
// missing and will be written as the NA sentinel.
//
// A sample column appearing in both inputs is tolerated when both copies
// agree on every cell; a disagreement returns a *SchemaConflictError.
func Pair(a, b *counts.Table) (*counts.Table, error) {
	merged := counts.NewTable()

	copyInto(merged, a)

	for _, sample := range b.Samples() {
		if !merged.AddSample(sample) {
			if err := checkConflicts(a, b, sample); err != nil {
				return nil, err
			}
		}
	}

	copyCells(merged, b)

	return merged, nil
}

// copyInto copies all of src's sample columns and cells in to dst.
func copyInto(dst, src *counts.Table) {
	for _, sample := range src.Samples() {
		dst.AddSample(sample)
	}

	copyCells(dst, src)
}

// copyCells copies all of src's cells in to dst, without touching dst's
// sample columns.
func copyCells(dst, src *counts.Table) {
	samples := src.Samples()

	for _, feature := range src.Features() {
		for _, sample := range samples {
			if count, ok := src.Count(feature, sample); ok {
				dst.Set(feature, sample, count)
			}
		}
	}
}

// checkConflicts confirms that a shared sample column holds identical counts
// in both tables wherever both have a value.
func checkConflicts(a, b *counts.Table, sample string) error {
	for _, feature := range b.Features() {
		bv, ok := b.Count(feature, sample)
		if !ok {
			continue
		}

		if av, ok := a.Count(feature, sample); ok && av != bv {
			return &SchemaConflictError{Feature: feature, Sample: sample, A: av, B: bv}
		}
	}

	return nil
}

// checkShape confirms the merged table has a sample column for every input
// sample.
func checkShape(tables []*counts.Table, merged *counts.Table) error {
	expected := 0

	for _, table := range tables {
		expected += table.NumSamples()
	}

	if merged.NumSamples() != expected {
		return &ShapeError{Samples: merged.NumSamples(), Expected: expected}
	}

	return nil
}
