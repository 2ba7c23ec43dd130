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

package format

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stjudecloud/merge-counts/fs"
)

func TestWrite(t *testing.T) {
	header := []string{"Gene Name", "X", "Y"}
	rows := [][]string{
		{"gene1", "5", "3"},
		{"gene2", "0", "NA"},
	}

	expectedTSV := "Gene Name\tX\tY\ngene1\t5\t3\ngene2\t0\tNA\n"
	expectedCSV := "Gene Name,X,Y\ngene1,5,3\ngene2,0,NA\n"

	Convey("You can write a matrix as tsv", t, func() {
		var buf bytes.Buffer

		So(Write("tsv", &buf, header, rows), ShouldBeNil)
		So(buf.String(), ShouldEqual, expectedTSV)
	})

	Convey("You can write a matrix as csv", t, func() {
		var buf bytes.Buffer

		So(Write("csv", &buf, header, rows), ShouldBeNil)
		So(buf.String(), ShouldEqual, expectedCSV)
	})

	Convey("You can write a compressed matrix", t, func() {
		path := filepath.Join(t.TempDir(), "matrix.tsv.gz")

		out, err := os.Create(path)
		So(err, ShouldBeNil)

		So(Write("tsv.gz", out, header, rows), ShouldBeNil)
		So(out.Close(), ShouldBeNil)

		raw, err := os.ReadFile(path)
		So(err, ShouldBeNil)
		So(string(raw), ShouldNotEqual, expectedTSV)

		contents, err := fs.ReadCompressedFile(path)
		So(err, ShouldBeNil)
		So(contents, ShouldEqual, expectedTSV)
	})

	Convey("Unknown output file types are rejected, naming the known ones", t, func() {
		var buf bytes.Buffer

		err := Write("hdf", &buf, header, rows)
		So(err, ShouldWrap, ErrUnknownFormat)
		So(err.Error(), ShouldContainSubstring, "tsv")
	})

	Convey("Registered encoders are listed sorted", t, func() {
		So(Names(), ShouldResemble, []string{"csv", "csv.gz", "tsv", "tsv.gz"})
	})
}
