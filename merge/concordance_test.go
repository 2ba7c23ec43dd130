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
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stjudecloud/merge-counts/counts"
)

func TestConcordance(t *testing.T) {
	Convey("Concordance passes for any non-empty set of disjoint tables", t, func() {
		for _, n := range []int{1, 2, 3, 8, 17} {
			So(Concordance(manySingleSampleTables(n), 4), ShouldBeNil)
		}
	})

	Convey("Concordance passes for tables with differing feature sets", t, func() {
		tables := []*counts.Table{
			singleSampleTable("X", map[string]int64{"gene1": 5, "gene2": 0}),
			singleSampleTable("Y", map[string]int64{"gene1": 3, "gene3": 7}),
			singleSampleTable("Z", map[string]int64{"gene4": 1}),
		}

		So(Concordance(tables, 2), ShouldBeNil)
	})

	Convey("Concordance fails with ErrNoInputs on no tables", t, func() {
		So(Concordance(nil, 1), ShouldEqual, ErrNoInputs)
	})
}

func TestCompare(t *testing.T) {
	Convey("Given two equal tables built in different column orders", t, func() {
		a := counts.NewTable()
		a.AddSample("X")
		a.AddSample("Y")
		a.Set("gene1", "X", 5)
		a.Set("gene1", "Y", 3)

		b := counts.NewTable()
		b.AddSample("Y")
		b.AddSample("X")
		b.Set("gene1", "Y", 3)
		b.Set("gene1", "X", 5)

		Convey("Compare normalises order and reports them equal", func() {
			So(Compare(a, b), ShouldBeNil)
		})

		Convey("Compare names the first differing cell", func() {
			b.Set("gene1", "Y", 4)

			err := Compare(a, b)
			merr, ok := err.(*MismatchError)
			So(ok, ShouldBeTrue)
			So(merr.Feature, ShouldEqual, "gene1")
			So(merr.Sample, ShouldEqual, "Y")
			So(merr.A, ShouldEqual, "3")
			So(merr.B, ShouldEqual, "4")
		})

		Convey("Compare treats a missing cell as differing from any value", func() {
			b.Set("gene2", "X", 1)
			b.Set("gene2", "Y", 1)
			a.Set("gene2", "Y", 1)

			err := Compare(a, b)
			merr, ok := err.(*MismatchError)
			So(ok, ShouldBeTrue)
			So(merr.Feature, ShouldEqual, "gene2")
			So(merr.Sample, ShouldEqual, "X")
			So(merr.A, ShouldEqual, counts.NA)
			So(merr.B, ShouldEqual, "1")
		})

		Convey("Compare detects differing sample columns", func() {
			b.AddSample("Z")

			So(Compare(a, b), ShouldEqual, ErrColumnsDiffer)
		})

		Convey("Compare detects differing feature rows", func() {
			b.Set("gene9", "X", 1)

			So(Compare(a, b), ShouldEqual, ErrRowsDiffer)
		})
	})
}

func TestCheckCoherence(t *testing.T) {
	Convey("Given inputs and their correctly merged matrix", t, func() {
		tables := manySingleSampleTables(9)

		merged, err := Recursive(tables, 4)
		So(err, ShouldBeNil)

		Convey("CheckCoherence passes", func() {
			So(CheckCoherence(tables, merged), ShouldBeNil)
		})

		Convey("CheckCoherence catches a corrupted cell", func() {
			// corrupt every cell of one input's column so any random pick
			// from that table fails
			for _, feature := range merged.Features() {
				merged.Set(feature, "sample04", -1)
			}

			err := CheckCoherence(tables, merged)
			cerr, ok := err.(*CoherenceError)
			So(ok, ShouldBeTrue)
			So(cerr.Sample, ShouldEqual, "sample04")
			So(cerr.Merged, ShouldEqual, "-1")
		})
	})
}
