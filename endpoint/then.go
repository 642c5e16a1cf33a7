// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package endpoint

import (
	"github.com/ubnt-intrepid/finchers/routing"
)

// Then chains a transform onto an endpoint's task. Routing is decided
// entirely by e; once e's task reports Ready, f is applied to the
// outcome — value and error channel alike — and must produce a new
// task, which is then driven to its own Ready.
//
// f is a one-shot: it is consumed on the transition and calling the
// composite after completion panics, as does any attempt to re-enter
// the consumed transform.
func Then(e Endpoint, f func(Tuple, error) Task) Endpoint {
	if e == nil || f == nil {
		panic("endpoint: nil argument in Then")
	}
	return then{endpoint: e, transform: func(v Tuple, err error) (Task, bool) {
		return f(v, err), true
	}}
}

// AndThen chains a transform onto an endpoint's success channel. When
// e's task reports Ready with a value, f receives the value and must
// produce a new task, which is driven in turn. A runtime error from
// e's task passes through untouched and f is never called.
func AndThen(e Endpoint, f func(Tuple) Task) Endpoint {
	if e == nil || f == nil {
		panic("endpoint: nil argument in AndThen")
	}
	return then{endpoint: e, transform: func(v Tuple, err error) (Task, bool) {
		if err != nil {
			return nil, false
		}
		return f(v), true
	}}
}

// OrElse chains a transform onto an endpoint's failure channel. When
// e's task reports Ready with a runtime error, f receives the error and
// must produce a new task, which is driven in turn. A successful value
// passes through untouched and f is never called.
func OrElse(e Endpoint, f func(error) Task) Endpoint {
	if e == nil || f == nil {
		panic("endpoint: nil argument in OrElse")
	}
	return then{endpoint: e, transform: func(v Tuple, err error) (Task, bool) {
		if err == nil {
			return nil, false
		}
		return f(err), true
	}}
}

type then struct {
	endpoint  Endpoint
	transform func(Tuple, error) (Task, bool)
}

func (e then) Apply(ctx *Context) (Task, *routing.Error) {
	t, err := e.endpoint.Apply(ctx)
	if err != nil {
		return nil, err
	}
	return &thenTask{state: thenFirst, inner: t, transform: e.transform}, nil
}

type thenPhase int

const (
	thenFirst thenPhase = iota
	thenSecond
	thenDone
)

// thenTask is the three-state machine shared by Then, AndThen, and
// OrElse: drive the inner task, consume the one-shot transform to
// derive a second task, drive that to completion.
type thenTask struct {
	state     thenPhase
	inner     Task
	transform func(Tuple, error) (Task, bool)
}

func (t *thenTask) Poll() Poll {
	for {
		switch t.state {
		case thenFirst:
			if t.transform == nil {
				panic("endpoint: transform already consumed")
			}
			p := t.inner.Poll()
			if p.IsPending() {
				return p
			}
			f := t.transform
			t.transform = nil
			derived, ok := f(p.Value(), p.Err())
			if !ok {
				// Passthrough channel: deliver the inner outcome as-is.
				t.state = thenDone
				t.inner = nil
				return p
			}
			if derived == nil {
				panic("endpoint: transform returned nil task")
			}
			t.state = thenSecond
			t.inner = derived
		case thenSecond:
			p := t.inner.Poll()
			if p.IsPending() {
				return p
			}
			t.state = thenDone
			t.inner = nil
			return p
		default:
			panic("endpoint: poll called after ready")
		}
	}
}
