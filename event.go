// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package finchers

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Driver to extend it with custom
// functionality.
type Event int

const (
	// BeforeRoute identifies the event that occurs before routing
	// starts on a run.
	//
	// When Driver fires BeforeRoute, the execution is non-nil but the
	// only field that has been set is the input.
	BeforeRoute Event = iota
	// AfterRouteMatched identifies the event that occurs when routing
	// resolves and the endpoint matched the request.
	//
	// When Driver fires AfterRouteMatched, the execution's start time
	// is set and a task exists for the request, but no poll has been
	// driven yet.
	AfterRouteMatched
	// AfterRouteRejected identifies the event that occurs when routing
	// resolves and the endpoint did not match the request.
	//
	// When Driver fires AfterRouteRejected, the execution's reject
	// field holds the routing error and the end time is already set:
	// a rejected run drives no polls and is over as soon as routing
	// resolves.
	AfterRouteRejected
	// BeforePoll identifies the event that occurs before each poll
	// cycle on the matched task.
	//
	// When Driver fires BeforePoll, the execution's poll counter
	// holds the number of polls completed so far, so it reads 0 on the
	// first occurrence.
	BeforePoll
	// AfterPoll identifies the event that occurs after each poll cycle
	// on the matched task, regardless of the outcome.
	//
	// When Driver fires AfterPoll, the poll counter has been
	// incremented. The output and error fields are still unset; they
	// are assigned right after the final AfterPoll of the run.
	//
	// Note that AfterPoll runs before the drive policy is consulted
	// about a Pending outcome.
	AfterPoll
	// AfterRunEnd identifies the event that occurs after the run ends,
	// whether it ended by rejection, task completion, abandonment, or
	// context cancellation.
	//
	// When Driver fires AfterRunEnd, the execution is complete: the
	// end time is set and exactly one of the output and error fields
	// describes the result.
	AfterRunEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeRoute",
	"AfterRouteMatched",
	"AfterRouteRejected",
	"BeforePoll",
	"AfterPoll",
	"AfterRunEnd",
}

// Events returns a slice containing all events which can occur during a
// run by Driver, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeRoute,
		AfterRouteMatched,
		AfterRouteRejected,
		BeforePoll,
		AfterPoll,
		AfterRunEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
