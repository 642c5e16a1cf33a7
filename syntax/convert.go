// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package syntax

import (
	"strconv"

	"github.com/google/uuid"
)

// A Converter turns the decoded text of a path segment into a typed
// value. A conversion error marks the request as malformed rather than
// unmatched: the path was structurally addressed to the route, but the
// parameter text is unusable.
type Converter interface {
	Convert(s string) (interface{}, error)
}

// The ConverterFunc type is an adapter to allow the use of ordinary
// functions as converters. If f is a function with the appropriate
// signature, ConverterFunc(f) is a Converter that calls f.
type ConverterFunc func(s string) (interface{}, error)

// Convert calls f(s).
func (f ConverterFunc) Convert(s string) (interface{}, error) {
	return f(s)
}

var (
	// String passes the decoded segment text through unchanged. It
	// never fails.
	String Converter = ConverterFunc(func(s string) (interface{}, error) {
		return s, nil
	})

	// Int converts the segment to an int in base 10.
	Int Converter = ConverterFunc(func(s string) (interface{}, error) {
		return strconv.Atoi(s)
	})

	// Int64 converts the segment to an int64 in base 10.
	Int64 Converter = ConverterFunc(func(s string) (interface{}, error) {
		return strconv.ParseInt(s, 10, 64)
	})

	// Float64 converts the segment to a float64.
	Float64 Converter = ConverterFunc(func(s string) (interface{}, error) {
		return strconv.ParseFloat(s, 64)
	})

	// Bool converts the segment to a bool, accepting the forms
	// recognized by strconv.ParseBool.
	Bool Converter = ConverterFunc(func(s string) (interface{}, error) {
		return strconv.ParseBool(s)
	})

	// UUID converts the segment to a uuid.UUID, accepting the standard
	// textual forms recognized by uuid.Parse.
	UUID Converter = ConverterFunc(func(s string) (interface{}, error) {
		return uuid.Parse(s)
	})
)
