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

package reporter

import (
	"testing"

	"github.com/inconshreveable/log15"
	. "github.com/smartystreets/goconvey/convey"
)

type Error string

func (e Error) Error() string { return string(e) }

const errTest = Error("test error")

func TestReporter(t *testing.T) {
	Convey("Given a Reporter", t, func() {
		buf := new(testLogBuffer)
		logger := log15.New()
		logger.SetHandler(log15.StreamHandler(buf, log15.LogfmtFormat()))

		r := New("merge", logger)

		Convey("TimeOperation just runs the func when not enabled", func() {
			So(r.TimeOperation(func() error { return nil }), ShouldBeNil)
			So(r.TimeOperation(func() error { return errTest }), ShouldEqual, errTest)

			r.Report()
			So(buf.String(), ShouldBeBlank)
		})

		Convey("When enabled, it tracks successes and failures separately", func() {
			r.Enable()

			So(r.TimeOperation(func() error { return nil }), ShouldBeNil)
			So(r.TimeOperation(func() error { return nil }), ShouldBeNil)
			So(r.TimeOperation(func() error { return errTest }), ShouldEqual, errTest)

			r.Report()
			So(buf.String(), ShouldContainSubstring, "op=merge")
			So(buf.String(), ShouldContainSubstring, "count=2")
			So(buf.String(), ShouldContainSubstring, "failed=1")
		})
	})
}

// testLogBuffer collects log output for inspection.
type testLogBuffer struct {
	contents []byte
}

func (b *testLogBuffer) Write(p []byte) (int, error) {
	b.contents = append(b.contents, p...)

	return len(p), nil
}

func (b *testLogBuffer) String() string {
	return string(b.contents)
}
