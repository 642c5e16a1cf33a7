// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package task

type slotState int

const (
	slotPending slotState = iota
	slotDone
	slotSpent
)

// A MaybeDone is a caching slot around an inner task, used by parallel
// combinators to poll each sub-task at most to completion without ever
// re-polling a completed one.
//
// The slot is in one of three states: still pending (the inner task has
// not reported Ready), done (the completed value is cached and has not
// been taken yet), or spent (the value was taken, the inner task failed,
// or the slot was cleared).
type MaybeDone[T any] struct {
	task  Task[T]
	value T
	state slotState
}

// NewMaybeDone returns a slot around task t.
func NewMaybeDone[T any](t Task[T]) MaybeDone[T] {
	if t == nil {
		panic("task: nil task in slot")
	}
	return MaybeDone[T]{task: t}
}

// PollDone advances the slot by at most one poll of the inner task.
//
// If the slot is already done, PollDone returns (true, nil) without
// polling. If the inner task reports Ready with a value, the value is
// cached and PollDone returns (true, nil). If the inner task reports
// Ready with an error, the slot becomes spent and the error is
// returned. Otherwise the slot stays pending and PollDone returns
// (false, nil).
//
// PollDone panics if the slot is spent.
func (m *MaybeDone[T]) PollDone() (bool, error) {
	switch m.state {
	case slotDone:
		return true, nil
	case slotSpent:
		panic("task: poll of spent slot")
	}
	p := m.task.Poll()
	if p.IsPending() {
		return false, nil
	}
	if err := p.Err(); err != nil {
		m.task = nil
		m.state = slotSpent
		return false, err
	}
	m.value = p.Value()
	m.task = nil
	m.state = slotDone
	return true, nil
}

// Done reports whether the slot holds a cached value which has not been
// taken yet.
func (m *MaybeDone[T]) Done() bool {
	return m.state == slotDone
}

// Take removes and returns the cached value. Take panics unless the
// slot is done: a value can be taken exactly once.
func (m *MaybeDone[T]) Take() T {
	if m.state != slotDone {
		panic("task: take of slot that is not done")
	}
	v := m.value
	var zero T
	m.value = zero
	m.state = slotSpent
	return v
}

// Clear discards the slot's inner task and any cached value, releasing
// the resources they own. The slot becomes spent. Clearing an already
// spent slot is a no-op.
func (m *MaybeDone[T]) Clear() {
	var zero T
	m.task = nil
	m.value = zero
	m.state = slotSpent
}
