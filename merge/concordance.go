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

package merge

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/stjudecloud/merge-counts/counts"
)

const ErrColumnsDiffer = Error("sequential and recursive merges produced different sample columns")
const ErrRowsDiffer = Error("sequential and recursive merges produced different feature rows")

// MismatchError reports the first cell where two merged matrices disagreed,
// in row then column order. Values are given as written to output, so a
// missing cell appears as the NA sentinel.
type MismatchError struct {
	Feature string
	Sample  string
	A, B    string
}

// Error names the differing cell and both values.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("matrices differ at feature %q sample %q: %s vs %s",
		e.Feature, e.Sample, e.A, e.B)
}

// Concordance merges the given tables with both drivers and confirms the
// results are identical. Returns nil on success; a *MismatchError (or one of
// the ErrColumnsDiffer/ErrRowsDiffer sentinels) describes the first
// disagreement found.
//
// This is a read-only verification: neither result is written anywhere.
func Concordance(tables []*counts.Table, routines int) error {
	sequential, err := Sequential(tables)
	if err != nil {
		return err
	}

	recursive, err := Recursive(tables, routines)
	if err != nil {
		return err
	}

	return Compare(sequential, recursive)
}

// Compare checks that two count tables hold identical matrices once rows are
// sorted by feature ID and columns by sample name, comparing cell-by-cell
// for exact equality.
func Compare(a, b *counts.Table) error {
	samples := sortedSamples(a)
	if !stringsEqual(samples, sortedSamples(b)) {
		return ErrColumnsDiffer
	}

	featuresA, featuresB := a.Features(), b.Features()
	if !stringsEqual(featuresA, featuresB) {
		return ErrRowsDiffer
	}

	for _, feature := range featuresA {
		for _, sample := range samples {
			if err := compareCell(a, b, feature, sample); err != nil {
				return err
			}
		}
	}

	return nil
}

// compareCell checks a single (feature, sample) cell of both tables.
func compareCell(a, b *counts.Table, feature, sample string) error {
	av, aok := a.Count(feature, sample)
	bv, bok := b.Count(feature, sample)

	if aok == bok && av == bv {
		return nil
	}

	return &MismatchError{
		Feature: feature,
		Sample:  sample,
		A:       formatValue(av, aok),
		B:       formatValue(bv, bok),
	}
}

// formatValue renders a cell value the way it would appear in output.
func formatValue(count int64, present bool) string {
	if !present {
		return counts.NA
	}

	return strconv.FormatInt(count, 10)
}

// sortedSamples returns the table's sample names, sorted.
func sortedSamples(t *counts.Table) []string {
	samples := t.Samples()
	sort.Strings(samples)

	return samples
}

// stringsEqual tells you if the two slices hold the same strings in the same
// order.
func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
