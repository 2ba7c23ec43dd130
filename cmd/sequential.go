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
	"github.com/stjudecloud/merge-counts/merge"
)

// sequentialCmd represents the sequential command.
var sequentialCmd = &cobra.Command{
	Use:   "sequential",
	Short: "Sequentially join counts files (legacy)",
	Long: `Sequentially join counts files (legacy).

The given counts files are merged one at a time in to an accumulator. This
takes much longer than 'merge-counts recursive' and exists as the trusted
reference implementation for 'merge-counts concordance-test'; there is no
other reason to use it.

The merged matrix is written to the -o path, or to counts-matrix.<type> with
the type given by -t.`,
	Run: func(_ *cobra.Command, args []string) {
		runMergeDriver(args, merge.Sequential, "sequential merge")
	},
}

func init() {
	RootCmd.AddCommand(sequentialCmd)

	addCommonFlags(sequentialCmd)
}
