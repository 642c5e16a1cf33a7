// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package syntax

import (
	"net/url"

	"github.com/ubnt-intrepid/finchers/endpoint"
	"github.com/ubnt-intrepid/finchers/routing"
	"github.com/ubnt-intrepid/finchers/task"
)

// Segment returns an endpoint matching exactly one path segment whose
// wire form equals the percent-encoded form of literal. On a match one
// segment is consumed and the output tuple is empty; on a mismatch or
// an exhausted path the cursor is left where it was and the endpoint
// does not match.
func Segment(literal string) endpoint.Endpoint {
	encoded := url.PathEscape(literal)
	return endpoint.Func(func(ctx *endpoint.Context) (endpoint.Task, *routing.Error) {
		saved := ctx.Save()
		seg, ok := ctx.NextSegment()
		if !ok || seg.Raw() != encoded {
			ctx.Restore(saved)
			return nil, routing.NotMatched()
		}
		return task.Done(endpoint.Tuple{}), nil
	})
}

// EOS returns an endpoint matching only when every path segment has
// been consumed. It consumes nothing and produces an empty tuple;
// append it to a route to reject requests with trailing segments.
func EOS() endpoint.Endpoint {
	return endpoint.Func(func(ctx *endpoint.Context) (endpoint.Task, *routing.Error) {
		if ctx.RemainingPath() != "" {
			return nil, routing.NotMatched()
		}
		return task.Done(endpoint.Tuple{}), nil
	})
}

// Param returns an endpoint that consumes one path segment,
// percent-decodes it, and converts it with c. Its output is a
// one-element tuple holding the converted value.
//
// An exhausted path means the endpoint does not match. A decoding or
// conversion failure is different: the request reached a segment
// addressed to this parameter, so the cursor is rewound and the request
// is reported as malformed, carrying the underlying failure.
func Param(c Converter) endpoint.Endpoint {
	if c == nil {
		panic("syntax: nil converter")
	}
	return endpoint.Func(func(ctx *endpoint.Context) (endpoint.Task, *routing.Error) {
		saved := ctx.Save()
		seg, ok := ctx.NextSegment()
		if !ok {
			return nil, routing.NotMatched()
		}
		s, err := seg.Decode()
		if err != nil {
			ctx.Restore(saved)
			return nil, routing.InvalidRequest(err)
		}
		v, err := c.Convert(s)
		if err != nil {
			ctx.Restore(saved)
			return nil, routing.InvalidRequest(err)
		}
		return task.Done(endpoint.Tuple{v}), nil
	})
}

// Remains returns an endpoint that consumes every remaining path
// segment, percent-decodes the joined remainder, and converts it with
// c. Its output is a one-element tuple holding the converted value. An
// already-exhausted path matches with the conversion of the empty
// string.
//
// Remains always drains the cursor, even when decoding or conversion
// fails: the endpoint claims the whole tail of the path, so there is no
// meaningful position to rewind to and the failure is reported as a
// malformed request with the path fully consumed.
func Remains(c Converter) endpoint.Endpoint {
	if c == nil {
		panic("syntax: nil converter")
	}
	return endpoint.Func(func(ctx *endpoint.Context) (endpoint.Task, *routing.Error) {
		rem := ctx.RemainingPath()
		for {
			if _, ok := ctx.NextSegment(); !ok {
				break
			}
		}
		s, err := url.PathUnescape(rem)
		if err != nil {
			return nil, routing.InvalidRequest(err)
		}
		v, err := c.Convert(s)
		if err != nil {
			return nil, routing.InvalidRequest(err)
		}
		return task.Done(endpoint.Tuple{v}), nil
	})
}
