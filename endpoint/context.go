// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package endpoint

import (
	"github.com/ubnt-intrepid/finchers/request"
)

// A Context is the routing context: the read-only request input paired
// with the mutable segment cursor, alive only for the duration of the
// synchronous routing phase.
//
// A Context is created once per request and threaded by pointer through
// every nested Apply call, so sibling combinators observe the cursor
// position left by earlier siblings. It is never shared across
// goroutines and never reaches the execution phase.
type Context struct {
	input  *request.Input
	cursor request.Cursor
}

// NewContext returns a routing context over in, with a fresh cursor
// positioned before the first path segment.
func NewContext(in *request.Input) *Context {
	if in == nil {
		panic("endpoint: nil input")
	}
	return &Context{input: in, cursor: in.Cursor()}
}

// Input returns the request input.
func (c *Context) Input() *request.Input {
	return c.input
}

// NextSegment pops and returns the next path segment, or reports false
// when the path is exhausted.
func (c *Context) NextSegment() (request.Segment, bool) {
	return c.cursor.Next()
}

// RemainingPath returns the unconsumed suffix of the request path.
func (c *Context) RemainingPath() string {
	return c.cursor.RemainingPath()
}

// Position returns the cursor's byte offset into the request path.
func (c *Context) Position() int {
	return c.cursor.Position()
}

// Popped returns the number of segments consumed so far.
func (c *Context) Popped() int {
	return c.cursor.Popped()
}

// Save captures the current cursor so a failed sub-match can be rewound
// with Restore. The cursor is a small value; saving copies it.
func (c *Context) Save() request.Cursor {
	return c.cursor
}

// Restore rewinds the cursor to a position previously captured with
// Save on the same context.
func (c *Context) Restore(cur request.Cursor) {
	c.cursor = cur
}
