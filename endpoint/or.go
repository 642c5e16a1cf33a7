// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package endpoint

import (
	"github.com/ubnt-intrepid/finchers/routing"
	"github.com/ubnt-intrepid/finchers/task"
)

// An Either tags the output of an Or combinator with the branch that
// matched, so mismatched output shapes are preserved rather than forced
// to unify.
type Either struct {
	// Left is true when the first branch matched.
	Left bool
	// Output is the matched branch's output tuple.
	Output Tuple
}

// Or composes two alternative endpoints. e1 is tried first; if it
// matches, its task is used and e2 is never attempted for this request.
// If e1 fails, the cursor is rewound to the position before the attempt
// and e2 is tried from that same starting position. If both fail, the
// two routing errors are merged by precedence (see routing.Error.Merge)
// and the merged error is returned.
//
// The matched branch's output is wrapped in a single-element tuple
// holding an Either, tagged with the branch. Use OrStrict when both
// branches produce the same output shape and no wrapping is wanted.
func Or(e1, e2 Endpoint) Endpoint {
	if e1 == nil || e2 == nil {
		panic("endpoint: nil endpoint in Or")
	}
	return or{e1: e1, e2: e2}
}

type or struct {
	e1, e2 Endpoint
}

func (e or) Apply(ctx *Context) (Task, *routing.Error) {
	saved := ctx.Save()
	t1, err1 := e.e1.Apply(ctx)
	if err1 == nil {
		return &orTask{left: true, inner: t1}, nil
	}
	ctx.Restore(saved)
	t2, err2 := e.e2.Apply(ctx)
	if err2 == nil {
		return &orTask{inner: t2}, nil
	}
	ctx.Restore(saved)
	return nil, err1.Merge(err2)
}

type orTask struct {
	left  bool
	inner Task
	done  bool
}

func (t *orTask) Poll() Poll {
	if t.done {
		panic("endpoint: poll called after ready")
	}
	p := t.inner.Poll()
	if p.IsPending() {
		return p
	}
	t.done = true
	if err := p.Err(); err != nil {
		return task.Fail[Tuple](err)
	}
	return task.Ready(Tuple{Either{Left: t.left, Output: p.Value()}})
}

// OrStrict composes two alternative endpoints with identical output
// shapes. Routing behaves exactly as in Or: left first, rewind, merge
// errors when both fail. The difference is on a match: the winning
// branch's task is returned as-is, with no Either wrapping, and when
// the left branch matches the right branch's Apply is never invoked.
func OrStrict(e1, e2 Endpoint) Endpoint {
	if e1 == nil || e2 == nil {
		panic("endpoint: nil endpoint in OrStrict")
	}
	return orStrict{e1: e1, e2: e2}
}

type orStrict struct {
	e1, e2 Endpoint
}

func (e orStrict) Apply(ctx *Context) (Task, *routing.Error) {
	saved := ctx.Save()
	t1, err1 := e.e1.Apply(ctx)
	if err1 == nil {
		return t1, nil
	}
	ctx.Restore(saved)
	t2, err2 := e.e2.Apply(ctx)
	if err2 == nil {
		return t2, nil
	}
	ctx.Restore(saved)
	return nil, err1.Merge(err2)
}
