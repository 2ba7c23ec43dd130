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

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/stjudecloud/merge-counts/counts"
	"github.com/stjudecloud/merge-counts/merge"
	"github.com/stjudecloud/merge-counts/reporter"
)

const countsMatrixBasename = "counts-matrix"

// recursiveCmd represents the recursive command.
var recursiveCmd = &cobra.Command{
	Use:   "recursive",
	Short: "Recursively join counts files (fastest, recommended)",
	Long: `Recursively join counts files (fastest, recommended).

The given counts files are merged pairwise in levels: adjacent files are
paired and merged, and the process repeats on the merged results until a
single matrix remains. Pairs within a level are merged concurrently, using up
to -n goroutines.

The merged matrix is written to the -o path, or to counts-matrix.<type> with
the type given by -t.`,
	Run: func(_ *cobra.Command, args []string) {
		runMergeDriver(args, func(tables []*counts.Table) (*counts.Table, error) {
			return merge.Recursive(tables, routines)
		}, "recursive merge")
	},
}

func init() {
	RootCmd.AddCommand(recursiveCmd)

	addCommonFlags(recursiveCmd)
}

// runMergeDriver fetches and reads the given counts files, merges them with
// the given driver, checks the result's coherence against the inputs, and
// writes the merged matrix out.
func runMergeDriver(ids []string, driver func([]*counts.Table) (*counts.Table, error), operation string) {
	src, closeSource := newSource()
	defer closeSource()

	tables := readTables(src, ids)

	r := reporter.New(operation, appLogger)
	if verbose {
		r.Enable()
	}

	var merged *counts.Table

	err := r.TimeOperation(func() error {
		var errm error
		merged, errm = driver(tables)

		return errm
	})
	if err != nil {
		die("merge failed: %s", err)
	}

	r.Report()

	info("checking consistency with the original counts files")

	if err := merge.CheckCoherence(tables, merged); err != nil {
		die("merged matrix is not coherent with its inputs: %s", err)
	}

	header, rows := merged.Rows()
	writeMatrix(countsMatrixBasename, header, rows)
}
