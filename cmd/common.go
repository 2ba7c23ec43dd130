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
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/stjudecloud/merge-counts/counts"
	"github.com/stjudecloud/merge-counts/dataset"
	"github.com/stjudecloud/merge-counts/format"
	"github.com/stjudecloud/merge-counts/store"
)

// options shared by the subcommands.
var outputPath string
var outputType string
var routines int
var developerMode bool
var limitInputs int
var manifestPath string

const propertiesDBBasename = "properties.db"

// addCommonFlags adds the flags every subcommand takes.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputPath, "output-file", "o", "",
		"write the matrix to this path (defaults to a name based on the subcommand and -t)")
	cmd.Flags().StringVarP(&outputType, "output-file-type", "t", "tsv",
		"output file type, one of: "+strings.Join(format.Names(), ", "))
	cmd.Flags().IntVarP(&routines, "ncpus", "n", runtime.NumCPU(),
		"maximum number of concurrent pairwise merges")
	cmd.Flags().BoolVar(&developerMode, "developer-mode", false,
		"cache fetched files and properties to speed up repeated runs; only for developers of this tool")
	cmd.Flags().IntVar(&limitInputs, "limit-inputs", 0,
		"for testing purposes only, use just the first N of the given counts files")
	cmd.Flags().StringVar(&manifestPath, "manifest", "",
		"path to a manifest file supplying properties for the input files")
}

// newSource makes our file Source, wrapping it in the developer-mode cache
// when that's enabled. Also returns a function you should defer.
func newSource() (store.Source, func()) {
	local, err := store.NewLocal(manifestPath)
	if err != nil {
		die("could not read manifest: %s", err)
	}

	if !developerMode {
		return local, func() {}
	}

	dir, err := store.CacheDir()
	if err != nil {
		die("could not get cache directory: %s", err)
	}

	info("using cache at directory: %s", dir)

	cache, err := store.OpenCache(filepath.Join(dir, propertiesDBBasename))
	if err != nil {
		die("could not open properties cache: %s", err)
	}

	return store.NewCachedSource(local, cache), func() {
		if errc := cache.Close(); errc != nil {
			warn("failed to close properties cache: %s", errc)
		}
	}
}

// stageInputs fetches each given file in to a staging directory and pairs it
// with its dataset-annotated sample name. Also returns a function you should
// defer, which deletes the staging directory unless it is the developer-mode
// cache.
func stageInputs(src store.Source, ids []string) ([]counts.Input, func()) {
	dir, cleanup := stagingDir()
	priority := dataset.DefaultPriority()

	inputs := make([]counts.Input, len(ids))

	var total int64

	for i, id := range ids {
		props, err := src.Properties(id)
		if err != nil {
			die("could not get properties for [%s]: %s", id, err)
		}

		path, size, err := src.Fetch(id, dir)
		if err != nil {
			die("could not fetch [%s]: %s", id, err)
		}

		total += size
		inputs[i] = counts.Input{
			Sample: priority.SampleName(props[store.SampleNameKey],
				dataset.ParseLabels(props[store.DatasetsKey])),
			Path: path,
		}

		appLogger.Debug("fetched file", "id", id, "path", path)
	}

	info("fetched %d files (%s) to %s", len(inputs), humanize.Bytes(uint64(total)), dir)

	return inputs, cleanup
}

// stagingDir returns the directory fetched files get staged in: the cache
// directory in developer mode, kept for future runs, or a fresh temporary
// directory that the returned function deletes.
func stagingDir() (string, func()) {
	if developerMode {
		dir, err := store.CacheDir()
		if err != nil {
			die("could not get cache directory: %s", err)
		}

		return dir, func() {}
	}

	dir, err := store.StagingDir()
	if err != nil {
		die("could not create staging directory: %s", err)
	}

	return dir, func() {
		if errr := os.RemoveAll(dir); errr != nil {
			warn("failed to delete staging directory [%s]: %s", dir, errr)
		}
	}
}

// readTables fetches and parses all the given count files.
func readTables(src store.Source, ids []string) []*counts.Table {
	if len(ids) == 0 {
		die("at least one counts file must be supplied")
	}

	inputs, cleanup := stageInputs(src, ids)
	defer cleanup()

	tables, err := counts.ReadAll(inputs, limitInputs)
	if err != nil {
		die("could not read counts files: %s", err)
	}

	return tables
}

// writeMatrix writes the matrix to the output path, or to
// <defaultBasename>.<type> when no -o was given, in the chosen format.
func writeMatrix(defaultBasename string, header []string, rows [][]string) {
	path := outputPath
	if path == "" {
		path = defaultBasename + "." + outputType
	}

	out, err := os.Create(path)
	if err != nil {
		die("could not create output file [%s]: %s", path, err)
	}

	if err = format.Write(outputType, out, header, rows); err != nil {
		die("could not write output file [%s]: %s", path, err)
	}

	if err = out.Close(); err != nil {
		die("could not close output file [%s]: %s", path, err)
	}

	info("wrote %s", path)
}
