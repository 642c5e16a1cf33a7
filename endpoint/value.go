// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package endpoint

import (
	"github.com/ubnt-intrepid/finchers/routing"
	"github.com/ubnt-intrepid/finchers/task"
)

// Value returns an endpoint that always matches, consumes no segments,
// and whose task is immediately Ready with the given values as its
// output tuple.
func Value(vs ...interface{}) Endpoint {
	fixed := make(Tuple, len(vs))
	copy(fixed, vs)
	return Func(func(*Context) (Task, *routing.Error) {
		out := make(Tuple, len(fixed))
		copy(out, fixed)
		return task.Done(out), nil
	})
}

// Unit returns an endpoint that always matches, consumes no segments,
// and produces an empty tuple. It is the identity of And.
func Unit() Endpoint {
	return Value()
}

// Lazy returns an endpoint that always matches and defers the given
// computation to the execution phase: f runs on the task's first poll,
// at most once, and its result or error becomes the task's outcome.
func Lazy(f func() (Tuple, error)) Endpoint {
	if f == nil {
		panic("endpoint: nil func in Lazy")
	}
	return Func(func(*Context) (Task, *routing.Error) {
		g := f
		return &lazyTask{f: g}, nil
	})
}

type lazyTask struct {
	f func() (Tuple, error)
}

func (t *lazyTask) Poll() Poll {
	if t.f == nil {
		panic("endpoint: poll called after ready")
	}
	f := t.f
	t.f = nil
	v, err := f()
	if err != nil {
		return task.Fail[Tuple](err)
	}
	return task.Ready(v)
}
