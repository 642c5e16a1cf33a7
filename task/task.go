// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package task

const (
	pendingValueMsg = "task: value of pending poll"
	pendingErrMsg   = "task: error of pending poll"
	repollMsg       = "task: poll called after ready"
)

// A Poll is the outcome of polling a Task once. It is either Pending,
// or Ready carrying a value, or Ready carrying an error.
type Poll[T any] struct {
	ready bool
	value T
	err   error
}

// Pending returns the outcome of a task which has not finished yet.
// It is a contract that the task will be polled again later.
func Pending[T any]() Poll[T] {
	return Poll[T]{}
}

// Ready returns the outcome of a task which finished with value v.
func Ready[T any](v T) Poll[T] {
	return Poll[T]{ready: true, value: v}
}

// Fail returns the outcome of a task which finished with a runtime
// error. The error must be non-nil.
func Fail[T any](err error) Poll[T] {
	if err == nil {
		panic("task: Fail with nil error")
	}
	return Poll[T]{ready: true, err: err}
}

// IsReady reports whether the outcome is Ready, with either a value or
// an error.
func (p Poll[T]) IsReady() bool {
	return p.ready
}

// IsPending reports whether the outcome is Pending.
func (p Poll[T]) IsPending() bool {
	return !p.ready
}

// Value returns the value of a Ready outcome. If the outcome carries an
// error, the zero value is returned. Value panics if the outcome is
// Pending.
func (p Poll[T]) Value() T {
	if !p.ready {
		panic(pendingValueMsg)
	}
	return p.value
}

// Err returns the error of a Ready outcome, or nil if the task finished
// with a value. Err panics if the outcome is Pending.
func (p Poll[T]) Err() error {
	if !p.ready {
		panic(pendingErrMsg)
	}
	return p.err
}

// A Task is a poll-driven unit of deferred computation.
//
// A Task only makes progress when polled, and a Pending outcome obliges
// the caller to poll again later. Once Poll reports Ready the task is
// consumed: polling it again violates the task protocol and the
// implementation must panic rather than silently misbehave. Dropping a
// task before it reaches Ready is always legal and acts as
// cancellation.
type Task[T any] interface {
	Poll() Poll[T]
}

// The Func type is an adapter to allow the use of ordinary functions as
// tasks. If f is a function with the appropriate signature, Func(f) is
// a Task that calls f.
type Func[T any] func() Poll[T]

// Poll calls f().
func (f Func[T]) Poll() Poll[T] {
	return f()
}

// Done returns a task which is Ready with value v on its first poll.
// Polling it a second time panics.
func Done[T any](v T) Task[T] {
	return &oneShot[T]{outcome: Ready(v)}
}

// Failed returns a task which is Ready with the given runtime error on
// its first poll. Polling it a second time panics.
func Failed[T any](err error) Task[T] {
	return &oneShot[T]{outcome: Fail[T](err)}
}

type oneShot[T any] struct {
	outcome Poll[T]
	spent   bool
}

func (t *oneShot[T]) Poll() Poll[T] {
	if t.spent {
		panic(repollMsg)
	}
	t.spent = true
	return t.outcome
}
