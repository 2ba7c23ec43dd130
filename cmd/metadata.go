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
	"os"

	"github.com/spf13/cobra"
	"github.com/stjudecloud/merge-counts/dataset"
	"github.com/stjudecloud/merge-counts/metadata"
)

const metadataMatrixBasename = "metadata-matrix"

// options for this cmd.
var metadataPrint bool

// metadataCmd represents the metadata command.
var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Compile the sample metadata matrix for the given files",
	Long: `Compile the sample metadata matrix for the given files.

One row is produced per file, indexed by its "<sample_name> (<dataset>)"
sample ID, with a column for each attr* property plus the standard sample
annotation tags. Non-attr columns come first, each group alphabetical.

The matrix is written to the -o path, or to metadata-matrix.<type> with the
type given by -t. With --print, the matrix is also drawn as a table on
STDOUT.`,
	Run: func(_ *cobra.Command, args []string) {
		if len(args) == 0 {
			die("at least one file must be supplied")
		}

		src, closeSource := newSource()
		defer closeSource()

		m, err := metadata.Collect(src, args, dataset.DefaultPriority())
		if err != nil {
			die("could not collect metadata: %s", err)
		}

		if metadataPrint {
			m.Render(os.Stdout)
		}

		header, rows := m.Rows()
		writeMatrix(metadataMatrixBasename, header, rows)
	},
}

func init() {
	RootCmd.AddCommand(metadataCmd)

	addCommonFlags(metadataCmd)

	// flags specific to this sub-command
	metadataCmd.Flags().BoolVar(&metadataPrint, "print", false,
		"also draw the metadata matrix as a table on STDOUT")
}
