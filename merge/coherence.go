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
	"math/rand"

	"github.com/stjudecloud/merge-counts/counts"
)

// CoherenceError reports a cell whose value in the merged matrix doesn't
// match the input table it came from.
type CoherenceError struct {
	Feature string
	Sample  string
	In      int64
	Merged  string
}

// Error names the incoherent cell and both values.
func (e *CoherenceError) Error() string {
	return fmt.Sprintf("feature %q sample %q has count %d in its input file but %s in the merged matrix",
		e.Feature, e.Sample, e.In, e.Merged)
}

// CheckCoherence confirms the merged matrix agrees with the individual input
// tables by re-checking one randomly chosen cell per input. This catches
// most merging bugs cheaply on every real run, without the full cost of
// Concordance().
func CheckCoherence(inputs []*counts.Table, merged *counts.Table) error {
	for _, input := range inputs {
		if err := checkRandomCell(input, merged); err != nil {
			return err
		}
	}

	return nil
}

// checkRandomCell picks a random cell of the input table and confirms the
// merged matrix holds the same value.
func checkRandomCell(input, merged *counts.Table) error {
	features := input.Features()
	samples := input.Samples()

	if len(features) == 0 || len(samples) == 0 {
		return nil
	}

	feature := features[rand.Intn(len(features))]
	sample := samples[rand.Intn(len(samples))]

	in, ok := input.Count(feature, sample)
	if !ok {
		return nil
	}

	if got, ok := merged.Count(feature, sample); !ok || got != in {
		return &CoherenceError{Feature: feature, Sample: sample, In: in, Merged: formatValue(got, ok)}
	}

	return nil
}
