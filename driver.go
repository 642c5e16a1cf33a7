// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package finchers

import (
	"context"
	"errors"
	"time"

	"github.com/ubnt-intrepid/finchers/drive"
	"github.com/ubnt-intrepid/finchers/endpoint"
	"github.com/ubnt-intrepid/finchers/request"
	"github.com/ubnt-intrepid/finchers/routing"
)

// ErrAbandoned is the error recorded on a run whose drive policy
// decided to stop polling a task that was still Pending.
var ErrAbandoned = errors.New("finchers: task abandoned by drive policy")

var emptyHandlers = HandlerGroup{}

// A Driver routes requests through an endpoint and drives the matched
// task to completion.
//
// Endpoint is the only required field. The zero values of the remaining
// fields are valid: a nil Policy means drive.DefaultPolicy, and a nil
// Handlers means no event handlers are run.
//
// A Driver holds no per-request state, so one instance serves any
// number of concurrent runs. It is safe for concurrent use by multiple
// goroutines as long as the configured endpoint and policy are.
//
// The run loop adds the following on top of the raw endpoint contract:
//
// • Driver separates the phases: routing happens synchronously when the
// run starts, and only a matched task enters the poll loop, so a
// routing rejection never consumes a poll.
//
// • Driver schedules Pending tasks using a customizable drive policy,
// which bounds the number of poll cycles and paces them.
//
// • Driver honors the run context between polls and during waits, so
// cancellation and deadlines interrupt a run promptly.
//
// • Driver invokes user-provided handler functions at designated
// plug-in points within the route/poll loop, allowing new features to
// be mixed in from outside libraries.
type Driver struct {
	// Endpoint is the root of the route tree. It must not be nil.
	Endpoint endpoint.Endpoint
	// Policy decides whether to keep polling a Pending task and how
	// long to wait between polls.
	//
	// If Policy is nil, drive.DefaultPolicy is used.
	Policy drive.Policy
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during a run.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
}

// Route applies the driver's endpoint to the given request input over a
// fresh cursor and returns the matched task, or the routing error when
// the endpoint rejects the request.
//
// Route performs only the synchronous routing phase. Most callers want
// Run, which routes and then drives the task; Route is the entry point
// for callers that schedule polling themselves.
func (d *Driver) Route(in *request.Input) (endpoint.Task, *routing.Error) {
	if d.Endpoint == nil {
		panic("finchers: nil endpoint")
	}
	return d.Endpoint.Apply(endpoint.NewContext(in))
}

// Run routes the given request input and, on a match, drives the task
// until it reports Ready, following the drive policy set on Driver.
//
// The returned Execution is never nil and records the full history of
// the run: whether routing matched, how many polls were driven, the
// output or error, and the start and end times.
//
// An error is returned when routing rejects the request (the error is
// the *routing.Error, also available in the execution's Reject field),
// when the task finishes with a runtime error, when the drive policy
// abandons a Pending task (ErrAbandoned), or when ctx is cancelled or
// its deadline passes between polls or during a wait. If the returned
// error is nil, the execution's Output field holds the task's result.
// Whatever the outcome, the execution's Err field references the same
// error that is returned.
//
// A nil ctx is treated as context.Background().
func (d *Driver) Run(ctx context.Context, in *request.Input) (*request.Execution, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	e := request.Execution{
		Input: in,
	}

	policy := d.Policy
	if policy == nil {
		policy = drive.DefaultPolicy
	}

	handlers := d.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}
	handlers.run(BeforeRoute, &e)
	e.Start = time.Now()

	t, reject := d.Route(in)
	if reject != nil {
		e.Reject = reject
		e.Err = reject
		e.End = time.Now()
		handlers.run(AfterRouteRejected, &e)
		handlers.run(AfterRunEnd, &e)
		return &e, e.Err
	}
	handlers.run(AfterRouteMatched, &e)

PollLoop:
	for {
		if err := ctx.Err(); err != nil {
			e.Err = err
			break
		}
		handlers.run(BeforePoll, &e)
		p := t.Poll()
		e.Polls++
		handlers.run(AfterPoll, &e)
		if p.IsReady() {
			if err := p.Err(); err != nil {
				e.Err = err
			} else {
				e.Output = p.Value()
			}
			break
		}
		if !policy.Decide(&e) {
			e.Err = ErrAbandoned
			break
		}
		if wait := policy.Wait(&e); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				e.Err = ctx.Err()
				break PollLoop
			}
		}
	}

	e.End = time.Now()
	handlers.run(AfterRunEnd, &e)
	return &e, e.Err
}

// Get runs a GET request for the specified URL through the driver,
// using the same policies followed by Run.
//
// To run a request with custom headers or a context, use
// request.NewInput and Driver.Run.
func (d *Driver) Get(url string) (*request.Execution, error) {
	return Get(d, url)
}

// Post runs a POST request for the specified URL through the driver,
// using the same policies followed by Run.
//
// The body parameter may be nil for an empty body, or may be any of the
// types supported by request.NewInput and request.BodyBytes, namely:
// string; []byte; io.Reader; and io.ReadCloser.
//
// To run a request with custom headers or a context, use
// request.NewInput and Driver.Run.
func (d *Driver) Post(url, contentType string, body interface{}) (*request.Execution, error) {
	return Post(d, url, contentType, body)
}
