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

// concordanceCmd represents the concordance-test command.
var concordanceCmd = &cobra.Command{
	Use:   "concordance-test",
	Short: "Check that recursive and sequential merging agree",
	Long: `Check that recursive and sequential merging agree.

The given counts files are merged with both strategies, the resulting
matrices are normalised by sorting rows by feature ID and columns by sample
name, and every cell is compared for exact equality.

Nothing is written; exits non zero naming the first differing cell if the
matrices are not concordant.`,
	Run: func(_ *cobra.Command, args []string) {
		src, closeSource := newSource()
		defer closeSource()

		tables := readTables(src, args)

		info("concordance test has begun")

		if err := merge.Concordance(tables, routines); err != nil {
			die("concordance test failed: %s", err)
		}

		info("testing completed, results were concordant")
	},
}

func init() {
	RootCmd.AddCommand(concordanceCmd)

	addCommonFlags(concordanceCmd)
}
