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

package dataset

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestResolve(t *testing.T) {
	Convey("Given the default priority list", t, func() {
		priority := DefaultPriority()

		Convey("The highest priority dataset wins", func() {
			So(priority.Resolve([]string{"CSTN", "PCGP"}), ShouldEqual, "PCGP")
			So(priority.Resolve([]string{"PCGP", "CSTN"}), ShouldEqual, "PCGP")
			So(priority.Resolve([]string{"tMN", "G4K", "PanALL"}), ShouldEqual, "G4K")
		})

		Convey("Full labels resolve to their short IDs", func() {
			So(priority.Resolve([]string{"Childhood Solid Tumor Network (CSTN)"}), ShouldEqual, "CSTN")
			So(priority.Resolve([]string{
				"Childhood Solid Tumor Network (CSTN)",
				"Pediatric Cancer Genome Project (PCGP)",
			}), ShouldEqual, "PCGP")
		})

		Convey("Unranked labels lose to ranked ones", func() {
			So(priority.Resolve([]string{"NewCohort", "tMN"}), ShouldEqual, "tMN")
		})

		Convey("Unranked labels tie-break lexically", func() {
			So(priority.Resolve([]string{"zeta", "alpha", "mid"}), ShouldEqual, "alpha")
			So(priority.Resolve([]string{"alpha", "zeta", "mid"}), ShouldEqual, "alpha")
		})

		Convey("No labels resolves to Unspecified", func() {
			So(priority.Resolve(nil), ShouldEqual, Unspecified)
		})

		Convey("SampleName composes the matrix column name", func() {
			So(priority.SampleName("SJABCD1234", []string{"CSTN", "PCGP"}),
				ShouldEqual, "SJABCD1234 (PCGP)")
			So(priority.SampleName("SJABCD1234", nil),
				ShouldEqual, "SJABCD1234 (UnspecifiedDataset)")
		})
	})

	Convey("An injected priority list replaces the default ordering", t, func() {
		priority := Priority{{"B Cohort", "B"}, {"A Cohort", "A"}}

		So(priority.Resolve([]string{"A", "B"}), ShouldEqual, "B")
	})
}

func TestParseLabels(t *testing.T) {
	Convey("ParseLabels splits comma separated values and drops blanks", t, func() {
		So(ParseLabels("PCGP, CSTN"), ShouldResemble, []string{"PCGP", "CSTN"})
		So(ParseLabels("PCGP"), ShouldResemble, []string{"PCGP"})
		So(ParseLabels(" PCGP ,, "), ShouldResemble, []string{"PCGP"})
		So(ParseLabels(""), ShouldBeNil)
	})
}
