// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"time"

	"github.com/ubnt-intrepid/finchers/routing"
)

// An Execution represents the state of one driver run over a request.
//
// When a request is handed to the driver, an Execution is created for
// it. The Execution is updated as the run progresses (when routing
// resolves, and after each poll of the matched task) and is ultimately
// returned as the result of the run.
//
// Drive policies and event handlers may attach values to an Execution
// using its SetValue method and read them back using the Value method.
// They should treat the structure's exported fields as read-only, as
// the state is vital to the correct functioning of the drive loop.
type Execution struct {
	// Input is the request being run. It is never nil.
	Input *Input

	// Start is the time the run started. It is assigned a non-zero
	// value when routing begins and remains constant thereafter.
	Start time.Time

	// End is the time the run ended. It contains the zero value until
	// the run ends, either by rejection during routing or by the
	// matched task reaching Ready.
	End time.Time

	// Polls counts the poll cycles driven so far on the matched task.
	// It stays zero when routing rejects the request.
	Polls int

	// Reject holds the routing error when the endpoint did not match
	// the request. It is nil whenever a task was produced; a matched
	// task can never fail with a routing error.
	Reject *routing.Error

	// Output holds the matched task's result once it reports Ready
	// with a value. It is nil before that, and stays nil if the task
	// fails.
	Output []interface{}

	// Err holds the runtime error the matched task finished with, the
	// context error that interrupted the run, or the routing error
	// when routing rejected the request.
	Err error

	// data holds arbitrary user values attached by handlers and
	// policies, keyed like context values.
	data context.Context
}

// Matched reports whether routing produced a task for this request.
func (e *Execution) Matched() bool {
	return e.Reject == nil
}

// Started indicates whether the run has started. If the return value
// is true, Start holds a non-zero time.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the run has ended. If the return value is
// true, End holds a non-zero time and there will be no further changes
// to the execution.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// Duration returns the duration of the run.
//
// If the run has not yet started, the duration is zero. If the run has
// Ended, the return value is End minus Start. Otherwise, it is the
// current time minus Start, so the value is monotonically increasing
// over the life of the run and becomes static when the run ends.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return 0
	} else if !e.Ended() {
		return time.Since(e.Start)
	}
	return e.End.Sub(e.Start)
}

// SetValue attaches an arbitrary user value to the execution, for
// event handlers and drive policies to communicate across poll cycles.
//
// The key must follow the same rules as the key parameter in
// context.WithValue: it may not be nil, it must be comparable, and it
// should not be of type string or any other built-in type, to avoid
// collisions between handlers.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}
	e.data = context.WithValue(ctx, key, value)
}

// Value returns the user value associated with the execution for key,
// or nil if there is none.
func (e *Execution) Value(key interface{}) interface{} {
	if e.data == nil {
		return nil
	}
	return e.data.Value(key)
}
