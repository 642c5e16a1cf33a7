// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package task provides the cooperative poll substrate on which all
endpoint combinators are built.

A Task is a unit of deferred computation which only makes progress when
it is explicitly polled. Polling returns a Poll outcome which is either
Pending, Ready with a value, or Ready with an error. A Pending result is
a contract that the caller will poll again later: nothing inside this
package schedules a task, spawns a goroutine, or blocks. The external
driver decides when the next poll happens, and cancels a task simply by
never polling it again.

Once a task reports Ready, polling it again is a violation of the task
protocol and panics. The same applies to reading the value of a Pending
outcome. These are programmer errors, not runtime conditions, and they
abort loudly instead of returning a recoverable error.

MaybeDone is the caching slot used by parallel combinators: it polls an
inner task at most to completion, caches the completed value exactly
once, and hands it out exactly once.
*/
package task
