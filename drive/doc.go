// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package drive provides flexible policies for scheduling the poll loop
// that drives a matched endpoint task to completion: whether to keep
// polling a task that reported Pending, and how long to wait before the
// next poll.
//
// The interface Policy defines a drive Policy. A Policy instance can be
// constructed using NewPolicy by providing a decision-maker, Decider,
// and a wait time calculator, Waiter. Both Decider and Waiter have
// constructors for common use cases, so that a useful policy can be
// quickly assembled:
//
//	decider := drive.Limit(1000).And(drive.Before(5 * time.Second))
//	waiter := drive.Yield(time.Millisecond)
//	policy := drive.NewPolicy(decider, waiter)
//
// If the built-in functionality is insufficient, fully custom drive
// policies can be created via custom implementations of Decider,
// Waiter, or Policy.
package drive
