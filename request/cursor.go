// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/url"
	"strings"
)

// A Cursor is a zero-copy iterator over the segments of a request path.
//
// The cursor owns a byte offset into the path and a count of segments
// popped so far. It is a small value type: copying it captures the
// current position, and assigning a saved copy back restores it, which
// is how alternative combinators rewind after a failed sub-match.
//
// A cursor is created fresh for each incoming request at the start of
// routing and is never seen by the execution phase.
type Cursor struct {
	path   string
	pos    int
	popped int
}

// NewCursor returns a cursor over path, positioned before the first
// segment. The path must begin with "/"; anything else is a programmer
// error and panics (the HTTP layer hands this library absolute paths
// only).
func NewCursor(path string) Cursor {
	if !strings.HasPrefix(path, "/") {
		panic(`request: cursor path must start with "/"`)
	}
	return Cursor{path: path, pos: 1}
}

// Next pops and returns the next path segment. The second return value
// is false once the path is exhausted; calling Next on an exhausted
// cursor keeps returning false and advances nothing.
//
// Segmentation splits strictly on "/". A path consisting only of "/"
// yields zero segments. A literal "//" in the path yields an empty
// segment; empty segments are not collapsed.
func (c *Cursor) Next() (Segment, bool) {
	if c.pos >= len(c.path) {
		return Segment{}, false
	}
	if i := strings.IndexByte(c.path[c.pos:], '/'); i >= 0 {
		s := Segment{path: c.path, start: c.pos, end: c.pos + i}
		c.pos += i + 1
		c.popped++
		return s, true
	}
	s := Segment{path: c.path, start: c.pos, end: len(c.path)}
	c.pos = len(c.path)
	c.popped++
	return s, true
}

// RemainingPath returns the unconsumed suffix of the path, without a
// leading "/".
func (c *Cursor) RemainingPath() string {
	if c.pos >= len(c.path) {
		return ""
	}
	return c.path[c.pos:]
}

// Position returns the cursor's byte offset into the original path.
func (c *Cursor) Position() int {
	return c.pos
}

// Popped returns the number of segments successfully popped so far.
func (c *Cursor) Popped() int {
	return c.popped
}

// A Segment is a non-owning view of one path segment: the substring of
// the request path between two "/" separators, still percent-encoded.
type Segment struct {
	path       string
	start, end int
}

// Raw returns the segment text as it appears on the wire, with any
// percent-encoding intact.
func (s Segment) Raw() string {
	return s.path[s.start:s.end]
}

// Range returns the segment's byte range in the original path.
func (s Segment) Range() (start, end int) {
	return s.start, s.end
}

// Decode returns the percent-decoded segment text.
func (s Segment) Decode() (string, error) {
	return url.PathUnescape(s.Raw())
}
