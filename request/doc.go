// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request holds the per-request state shared by the routing and
execution phases.

An Input is the immutable view of one incoming HTTP request: method,
URL, headers, and a request body handle that can be taken at most once.
A Cursor is a zero-copy iterator over the path segments of the request,
owned exclusively by the routing phase. An Execution records the state
of one driver run over a matched task and is ultimately returned by the
driver.

The wire-level concerns of HTTP (listening, parsing, response
serialization) live outside this library; Input is the boundary through
which they hand a request in.
*/
package request
