// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package finchers routes HTTP requests through composable endpoints and
drives the matched endpoint's task to completion.

An endpoint decides, during a synchronous routing phase, whether it
matches the request path and method; on a match it produces a
poll-driven task which extracts the endpoint's output during a separate
execution phase. Endpoints compose with the combinators in package
endpoint, and the primitive endpoints (path segments, typed parameters,
verb guards, body extractors) live in packages syntax and body.

Create a Driver around an endpoint to begin serving requests.

	e := endpoint.And(syntax.Get(),
		endpoint.And(syntax.Segment("posts"),
			endpoint.And(syntax.Param(syntax.Int), syntax.EOS())))
	d := &finchers.Driver{Endpoint: e}
	ex, err := d.Get("/posts/42")
	...

For control over how pending tasks are scheduled, construct a custom
drive policy using components from package drive:

	waiter := drive.NewExpWaiter(time.Millisecond, time.Second, time.Now())
	policy := drive.NewPolicy(drive.Limit(1000), waiter)
	d := &finchers.Driver{Endpoint: e, Policy: policy}

To hook into the fine-grained details of the driver's run loop, install
a handler into the appropriate handler chain:

	log := log.New(os.Stdout, "", log.LstdFlags)
	handlers := &finchers.HandlerGroup{}
	handlers.PushBack(finchers.AfterPoll, finchers.HandlerFunc(
		func(_ finchers.Event, e *request.Execution) {
			log.Printf("poll %d of %s", e.Polls, e.Input.URL)
		}))
	d := &finchers.Driver{Endpoint: e, Handlers: handlers}

Package finchers provides basic interfaces for each method of the
driver (Router, Runner, Getter, Poster); a combined interface that
composes them (Server); and utility functions for working with a Runner
(Inflate, Get, and Post).
*/
package finchers
