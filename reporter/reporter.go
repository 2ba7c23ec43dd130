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

// package reporter is used to report on timings of operations.

package reporter

import (
	"sync"
	"time"

	"github.com/inconshreveable/log15"
)

// Reporter times named operations and logs a summary of how long they took.
type Reporter struct {
	operation string       // the name of the operation you will Time(), output in Report().
	logger    log15.Logger // where your reports will be logged to.

	sync.Mutex
	enabled        bool
	okCount        int64
	okDuration     time.Duration
	failedCount    int64
	failedDuration time.Duration
}

// New returns a reporter that will log how long operation took to logger.
func New(operation string, logger log15.Logger) *Reporter {
	return &Reporter{
		operation: operation,
		logger:    logger,
	}
}

// Enable makes future TimeOperation() calls actually time the operation.
// When not enabled, TimeOperation() just calls your func, so timing calls
// can stay in place throughout the code for free. NB: this is NOT thread
// safe.
func (r *Reporter) Enable() {
	r.enabled = true
}

// TimeOperation calls the given func, and if Enable() has been called,
// times how long it took so Report() can summarise it later. Failed calls
// are tracked separately from successful ones.
func (r *Reporter) TimeOperation(f func() error) error {
	if !r.enabled {
		return f()
	}

	t := time.Now()
	err := f()
	d := time.Since(t)

	r.Lock()
	defer r.Unlock()

	if err != nil {
		r.failedCount++
		r.failedDuration += d
	} else {
		r.okCount++
		r.okDuration += d
	}

	return err
}

// Report logs a summary of the timings collected so far, if enabled.
func (r *Reporter) Report() {
	if !r.enabled {
		return
	}

	r.Lock()
	defer r.Unlock()

	r.logger.Info("timing report",
		"op", r.operation,
		"count", r.okCount,
		"time", r.okDuration,
		"failed", r.failedCount,
		"failedtime", r.failedDuration,
	)
}
