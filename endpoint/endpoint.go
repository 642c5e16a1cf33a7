// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package endpoint

import (
	"github.com/ubnt-intrepid/finchers/routing"
	"github.com/ubnt-intrepid/finchers/task"
)

// A Tuple is the output of an endpoint: an ordered, possibly empty list
// of extracted values. Combining two endpoints with And concatenates
// their tuples rather than nesting them, so chained combinators produce
// one flat tuple.
type Tuple []interface{}

// Task is the task type produced by endpoints.
type Task = task.Task[Tuple]

// Poll is the outcome type of polling an endpoint task.
type Poll = task.Poll[Tuple]

// An Endpoint is a routing unit: it decides whether it matches the
// request under the context's current cursor position and, on a match,
// produces a task yielding its output.
//
// Apply must uphold the cursor contract: either it returns a task and
// the cursor reflects every segment the endpoint consumed, or it
// returns a routing error and the cursor's position and popped count
// are unchanged from the caller's perspective. Combinators rely on
// this to rewind safely after a failed alternative.
//
// Apply is invoked at most once per endpoint per routing attempt, and
// only during the synchronous routing phase; the context must not be
// retained by the returned task.
type Endpoint interface {
	Apply(ctx *Context) (Task, *routing.Error)
}

// The Func type is an adapter to allow the use of ordinary functions as
// endpoints. If f is a function with the appropriate signature, Func(f)
// is an Endpoint that calls f.
type Func func(ctx *Context) (Task, *routing.Error)

// Apply calls f(ctx).
func (f Func) Apply(ctx *Context) (Task, *routing.Error) {
	return f(ctx)
}

func concat(a, b Tuple) Tuple {
	out := make(Tuple, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
