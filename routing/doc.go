// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package routing defines the error model of the routing phase.

An Error is produced only while an endpoint's Apply method walks the
request path; it never escapes into the execution phase. A matched
endpoint produces a task, and a task can only fail with an ordinary
runtime error.

Errors come in three kinds. NotMatched means the endpoint is not
responsible for the request at all. MethodNotAllowed means the path was
addressed to the endpoint but the HTTP method was wrong, and carries the
set of methods that would have been accepted. InvalidRequest means the
request was structurally addressed to the endpoint but malformed in a
way the client can correct.

Sibling alternatives merge their errors with Merge, which keeps the most
specific failure: NotMatched loses to everything, two MethodNotAllowed
errors pool their verb sets, and InvalidRequest always dominates.
*/
package routing
