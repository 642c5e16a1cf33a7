// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package endpoint

import (
	"github.com/ubnt-intrepid/finchers/routing"
	"github.com/ubnt-intrepid/finchers/task"
)

// All generalizes And to an ordered collection of endpoints.
//
// Apply runs every member against the shared cursor in declaration
// order; the first member to fail fails the whole group, with the
// cursor rewound to where it was on entry — there is no partial routing
// success.
//
// On a match the composite task holds one slot per member. Each poll
// cycle advances every slot that has not completed; a completed slot's
// value is cached and never re-polled. Completion requires every slot
// to be done, at which point the composite is Ready with a
// single-element tuple holding the members' output tuples as a []Tuple
// in declaration order, regardless of the order in which the slots
// became ready. The first slot in declaration order to report a runtime
// error wins: every remaining slot is cleared, releasing its resources,
// before the error is reported.
func All(endpoints ...Endpoint) Endpoint {
	es := make([]Endpoint, len(endpoints))
	for i, e := range endpoints {
		if e == nil {
			panic("endpoint: nil endpoint in All")
		}
		es[i] = e
	}
	return all{endpoints: es}
}

type all struct {
	endpoints []Endpoint
}

func (e all) Apply(ctx *Context) (Task, *routing.Error) {
	saved := ctx.Save()
	slots := make([]task.MaybeDone[Tuple], 0, len(e.endpoints))
	for _, member := range e.endpoints {
		t, err := member.Apply(ctx)
		if err != nil {
			ctx.Restore(saved)
			return nil, err
		}
		slots = append(slots, task.NewMaybeDone[Tuple](t))
	}
	return &allTask{slots: slots}, nil
}

type allTask struct {
	slots []task.MaybeDone[Tuple]
	done  bool
}

func (t *allTask) Poll() Poll {
	if t.done {
		panic("endpoint: poll called after ready")
	}
	allDone := true
	for i := range t.slots {
		d, err := t.slots[i].PollDone()
		if err != nil {
			for j := range t.slots {
				if j != i {
					t.slots[j].Clear()
				}
			}
			t.done = true
			t.slots = nil
			return task.Fail[Tuple](err)
		}
		allDone = allDone && d
	}
	if !allDone {
		return task.Pending[Tuple]()
	}
	outs := make([]Tuple, len(t.slots))
	for i := range t.slots {
		outs[i] = t.slots[i].Take()
	}
	t.done = true
	t.slots = nil
	return task.Ready(Tuple{outs})
}
