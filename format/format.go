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

// package format writes matrices in the supported output file types, chosen
// by name from a registry.

package format

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"

	"github.com/klauspost/pgzip"
	"golang.org/x/exp/maps"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrUnknownFormat = Error("unknown output file type")

const bytesInMB = 1000000
const pgzipWriterBlocksMultiplier = 2

// Encoder writes a matrix, given as a header row plus data rows, to w.
type Encoder interface {
	Encode(w io.Writer, header []string, rows [][]string) error
}

var encoders = map[string]Encoder{ //nolint:gochecknoglobals
	"tsv":    tsvEncoder{},
	"csv":    csvEncoder{},
	"tsv.gz": compressedEncoder{tsvEncoder{}},
	"csv.gz": compressedEncoder{csvEncoder{}},
}

// Register adds an encoder for the given output file type name, replacing
// any existing one.
func Register(name string, enc Encoder) {
	encoders[name] = enc
}

// Names returns the registered output file type names, sorted.
func Names() []string {
	names := maps.Keys(encoders)
	sort.Strings(names)

	return names
}

// Write encodes the matrix to w as the named output file type. The name also
// serves as the conventional file extension for that type.
func Write(name string, w io.Writer, header []string, rows [][]string) error {
	enc, ok := encoders[name]
	if !ok {
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, name, strings.Join(Names(), ", "))
	}

	return enc.Encode(w, header, rows)
}

// tsvEncoder writes tab separated values.
type tsvEncoder struct{}

func (tsvEncoder) Encode(w io.Writer, header []string, rows [][]string) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(header, "\t") + "\n"); err != nil {
		return err
	}

	for _, row := range rows {
		if _, err := bw.WriteString(strings.Join(row, "\t") + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// csvEncoder writes comma separated values.
type csvEncoder struct{}

func (csvEncoder) Encode(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return err
	}

	if err := cw.WriteAll(rows); err != nil {
		return err
	}

	cw.Flush()

	return cw.Error()
}

// compressedEncoder gzips the output of the encoder it wraps, using parallel
// compression.
type compressedEncoder struct {
	enc Encoder
}

func (c compressedEncoder) Encode(w io.Writer, header []string, rows [][]string) error {
	zw := pgzip.NewWriter(w)

	if err := zw.SetConcurrency(bytesInMB, runtime.GOMAXPROCS(0)*pgzipWriterBlocksMultiplier); err != nil {
		return err
	}

	if err := c.enc.Encode(zw, header, rows); err != nil {
		return err
	}

	return zw.Close()
}
