// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package drive

import (
	"time"

	"github.com/ubnt-intrepid/finchers/request"
)

// A Policy controls how a pending task is driven to completion. After
// every poll cycle that reports Pending, a Policy decides whether
// polling should continue and, if so, how long the wait period should
// be before the next poll.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
//
// A Policy is composed of the Decider and Waiter interfaces. While you
// can implement Policy yourself, it may be more efficient to use the
// built-in policies DefaultPolicy or Once, or to construct your policy
// using the NewPolicy constructor from existing Decider and Waiter
// implementations.
type Policy interface {
	Decider
	Waiter
}

// DefaultPolicy is a general-purpose drive policy suitable for common
// use cases. It polls forever without pausing, relying on the run's
// context for cancellation and deadlines.
var DefaultPolicy Policy = policy{Forever, NoWait}

// Once is a policy that abandons a task on its first Pending outcome.
// It is useful when every endpoint in the route is expected to complete
// on a single poll and a Pending task indicates a wiring mistake.
var Once Policy = policy{Limit(1), NoWait}

type policy struct {
	decider Decider
	waiter  Waiter
}

// NewPolicy composes a Decider and a Waiter into a drive Policy.
func NewPolicy(d Decider, w Waiter) Policy {
	return policy{decider: d, waiter: w}
}

func (p policy) Decide(e *request.Execution) bool {
	return p.decider.Decide(e)
}

func (p policy) Wait(e *request.Execution) time.Duration {
	return p.waiter.Wait(e)
}
