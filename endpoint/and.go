// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package endpoint

import (
	"github.com/ubnt-intrepid/finchers/routing"
	"github.com/ubnt-intrepid/finchers/task"
)

// And composes two endpoints sequentially. e1 is applied first; only if
// it matches is e2 applied, against the same advancing cursor, so e2
// sees the segments e1 left unconsumed. If either side fails, the whole
// composition fails and the cursor is rewound to where it was on entry.
//
// On a match the composite task owns both sub-tasks. Each poll cycle
// drives every sub-task that has not completed yet; a completed
// sub-task's value is cached and never re-polled. The first sub-task in
// declaration order to report a runtime error wins: the error is
// returned immediately and the other side's in-progress state is
// discarded. When both complete with values, the composite is Ready
// with the two output tuples concatenated into one flat tuple.
func And(e1, e2 Endpoint) Endpoint {
	if e1 == nil || e2 == nil {
		panic("endpoint: nil endpoint in And")
	}
	return and{e1: e1, e2: e2}
}

type and struct {
	e1, e2 Endpoint
}

func (e and) Apply(ctx *Context) (Task, *routing.Error) {
	saved := ctx.Save()
	t1, err := e.e1.Apply(ctx)
	if err != nil {
		ctx.Restore(saved)
		return nil, err
	}
	t2, err := e.e2.Apply(ctx)
	if err != nil {
		ctx.Restore(saved)
		return nil, err
	}
	return &andTask{
		s1: task.NewMaybeDone[Tuple](t1),
		s2: task.NewMaybeDone[Tuple](t2),
	}, nil
}

type andTask struct {
	s1, s2 task.MaybeDone[Tuple]
	done   bool
}

func (t *andTask) Poll() Poll {
	if t.done {
		panic("endpoint: poll called after ready")
	}
	d1, err := t.s1.PollDone()
	if err != nil {
		t.s2.Clear()
		t.done = true
		return task.Fail[Tuple](err)
	}
	d2, err := t.s2.PollDone()
	if err != nil {
		t.s1.Clear()
		t.done = true
		return task.Fail[Tuple](err)
	}
	if !d1 || !d2 {
		return task.Pending[Tuple]()
	}
	t.done = true
	return task.Ready(concat(t.s1.Take(), t.s2.Take()))
}
