// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package endpoint defines the endpoint capability and the combinator
algebra built on top of it.

An Endpoint decides, during the synchronous routing phase, whether it
matches the request under the current cursor position. On a match it
produces a Task whose poll-driven execution yields the endpoint's
output Tuple; on a miss it returns a routing error and leaves the
cursor where it found it.

Combinators compose endpoints without disturbing either contract:

	e := endpoint.And(syntax.Segment("posts"), syntax.Param(syntax.Int))

And runs both sides against the same advancing cursor and concatenates
their output tuples. Or and OrStrict try the right side from the saved
cursor position when the left side fails, merging the two routing
errors when both do. Then, AndThen and OrElse chain a transform onto a
task's success or failure channel, producing a derived task that is
driven in turn. All generalizes And to an ordered collection.

The algebra never schedules anything: combinators propagate a child's
Pending and otherwise stay out of the way of the external driver.
*/
package endpoint
