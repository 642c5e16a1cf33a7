// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package drive

import (
	"time"

	"github.com/ubnt-intrepid/finchers/request"
)

// A Decider decides whether a task that reported Pending should be
// polled again. It is consulted after every Pending poll cycle; a false
// return abandons the run.
//
// Implementations of Decider must be safe for concurrent use by
// multiple goroutines.
//
// Use the built-in constructors Limit and Before, and the built-in
// decider Forever; or implement your own. Use DeciderFunc to convert an
// ordinary function into a Decider, and to compose deciders logically
// using DeciderFunc.And and DeciderFunc.Or.
type Decider interface {
	Decide(e *request.Execution) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as drive deciders. It implements the Decider interface, and
// also provides the logical composition methods And and Or.
//
// Every DeciderFunc must be safe for concurrent use by multiple
// goroutines.
type DeciderFunc func(e *request.Execution) bool

// Forever is a decider that never abandons a pending task. Pair it with
// a context deadline: the driver still stops when the run's context is
// done.
var Forever DeciderFunc = func(*request.Execution) bool {
	return true
}

// Decide returns true if the pending task should be polled again, and
// false otherwise, after examining the current run state.
func (f DeciderFunc) Decide(e *request.Execution) bool {
	return f(e)
}

// And composes two deciders into a new decider which returns true if
// both sub-deciders return true, and false otherwise.
//
// Short-circuit logic is used, so g will not be evaluated if f returns
// false.
func (f DeciderFunc) And(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) && g(e)
	}
}

// Or composes two deciders into a new decider which returns true if
// either of the two sub-deciders returns true, but false if they both
// return false.
//
// Short-circuit logic is used, so g will not be evaluated if f returns
// true.
func (f DeciderFunc) Or(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) || g(e)
	}
}

// Limit constructs a decider which allows up to n poll cycles. The
// returned decider returns true while the run's poll count e.Polls is
// less than n, and false otherwise.
func Limit(n int) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Polls < n
	}
}

// Before constructs a decider allowing further polls until a certain
// amount of time has elapsed since the start of the run. The returned
// decider returns true while the run duration is less than d, and false
// afterward.
func Before(d time.Duration) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Duration() < d
	}
}
