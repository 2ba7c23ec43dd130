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

package metadata

import (
	"bytes"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stjudecloud/merge-counts/dataset"
)

// fakeSource is a Source serving canned properties.
type fakeSource struct {
	props map[string]map[string]string
}

func (s *fakeSource) Properties(id string) (map[string]string, error) {
	props, ok := s.props[id]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", id)
	}

	return props, nil
}

func (s *fakeSource) Fetch(id, dir string) (string, int64, error) {
	return "", 0, fmt.Errorf("not fetchable: %s", id)
}

func TestCollect(t *testing.T) {
	Convey("Given a source with annotated files", t, func() {
		src := &fakeSource{props: map[string]map[string]string{
			"file-1": {
				"sample_name": "SJABCD1234",
				"sj_datasets": "Childhood Solid Tumor Network (CSTN),Pediatric Cancer Genome Project (PCGP)",
				"sample_type": "Diagnosis",
				"attr_sex":    "Female",
				"irrelevant":  "dropped",
			},
			"file-2": {
				"sample_name":  "SJEFGH5678",
				"subject_name": "SJEFGH",
				"attr_age":     "7",
			},
		}}

		Convey("Collect builds the metadata matrix", func() {
			m, err := Collect(src, []string{"file-1", "file-2"}, dataset.DefaultPriority())
			So(err, ShouldBeNil)

			header, rows := m.Rows()
			So(header, ShouldResemble, []string{
				"Sample ID", "sample_name", "sample_type", "subject_name", "attr_age", "attr_sex",
			})
			So(rows, ShouldResemble, [][]string{
				{"SJABCD1234 (PCGP)", "SJABCD1234", "Diagnosis", "", "", "Female"},
				{"SJEFGH5678 (UnspecifiedDataset)", "SJEFGH5678", "", "SJEFGH", "7", ""},
			})
		})

		Convey("Collect fails on a file with no sample name", func() {
			src.props["file-3"] = map[string]string{"attr_age": "2"}

			_, err := Collect(src, []string{"file-3"}, dataset.DefaultPriority())
			So(err, ShouldWrap, ErrNoSampleName)
		})

		Convey("Collect fails on an unknown file", func() {
			_, err := Collect(src, []string{"file-9"}, dataset.DefaultPriority())
			So(err, ShouldNotBeNil)
		})

		Convey("Render draws the matrix as a table", func() {
			m, err := Collect(src, []string{"file-1"}, dataset.DefaultPriority())
			So(err, ShouldBeNil)

			var buf bytes.Buffer

			m.Render(&buf)
			So(buf.String(), ShouldContainSubstring, "SAMPLE ID")
			So(buf.String(), ShouldContainSubstring, "SJABCD1234 (PCGP)")
		})
	})
}
