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
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/stjudecloud/merge-counts/counts"
)

// Sequential merges the given tables by folding each one in turn in to an
// accumulator. It is necessarily linear in the number of inputs and serves as
// the trusted reference implementation for Concordance(); prefer Recursive()
// otherwise.
//
// A single table is returned unchanged. No tables returns ErrNoInputs.
func Sequential(tables []*counts.Table) (*counts.Table, error) {
	if len(tables) == 0 {
		return nil, ErrNoInputs
	}

	merged := tables[0]

	for _, table := range tables[1:] {
		var err error

		if merged, err = Pair(merged, table); err != nil {
			return nil, err
		}
	}

	return merged, checkShape(tables, merged)
}

// Recursive merges the given tables pairwise in levels: adjacent tables are
// paired and merged, any odd table out is carried over, and the process
// repeats on the merged results until a single table remains. This bounds
// the longest dependency chain to ceil(log2(N)) merges, and pairs within a
// level are merged concurrently by up to routines goroutines.
//
// A single table is returned unchanged. No tables returns ErrNoInputs.
func Recursive(tables []*counts.Table, routines int) (*counts.Table, error) {
	if len(tables) == 0 {
		return nil, ErrNoInputs
	}

	if routines < 1 {
		routines = 1
	}

	level := make([]*counts.Table, len(tables))
	copy(level, tables)

	for len(level) > 1 {
		next, err := mergeLevel(level, routines)
		if err != nil {
			return nil, err
		}

		level = next
	}

	return level[0], checkShape(tables, level[0])
}

// mergeLevel merges adjacent pairs of tables concurrently, carrying over the
// final table when there's an odd number, and returns the next level's
// tables. Errors from independent pair merges are accumulated.
func mergeLevel(level []*counts.Table, routines int) ([]*counts.Table, error) {
	n := len(level)
	next := make([]*counts.Table, (n+1)/2)

	if n%2 == 1 {
		next[len(next)-1] = level[n-1]
	}

	var wg sync.WaitGroup

	var mu sync.Mutex

	var merr *multierror.Error

	limiter := make(chan struct{}, routines)

	for i := 0; i+1 < n; i += 2 {
		wg.Add(1)
		limiter <- struct{}{}

		go func(i int) {
			defer func() {
				<-limiter
				wg.Done()
			}()

			merged, err := Pair(level[i], level[i+1])
			if err != nil {
				mu.Lock()
				merr = multierror.Append(merr, err)
				mu.Unlock()

				return
			}

			next[i/2] = merged
		}(i)
	}

	wg.Wait()

	return next, merr.ErrorOrNil()
}
