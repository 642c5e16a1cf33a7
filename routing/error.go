// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package routing

import (
	"fmt"
	"net/http"
)

// A Kind classifies a routing error.
type Kind int

const (
	// KindNotMatched indicates the endpoint does not match the request
	// path. It is the least specific failure and loses to every other
	// kind when merged.
	KindNotMatched Kind = iota
	// KindMethodNotAllowed indicates the path matched but the HTTP
	// method did not. The error carries the set of allowed verbs.
	KindMethodNotAllowed
	// KindInvalidRequest indicates the request was addressed to the
	// endpoint but is malformed in a client-correctable way, for
	// example a path parameter that fails conversion. It dominates
	// every other kind when merged.
	KindInvalidRequest
)

var kindNames = []string{
	"NotMatched",
	"MethodNotAllowed",
	"InvalidRequest",
}

// String returns the name of the kind.
func (k Kind) String() string {
	return kindNames[int(k)]
}

// An Error is a routing-phase error returned from an endpoint's Apply
// method. It is resolved before any task exists: a task produced by a
// successful Apply can never fail with a routing error.
type Error struct {
	kind   Kind
	verbs  Verbs
	reason error
}

// NotMatched returns an error indicating the endpoint does not match
// the request.
func NotMatched() *Error {
	return &Error{kind: KindNotMatched}
}

// MethodNotAllowed returns an error indicating the request used an HTTP
// method outside the given set of allowed verbs.
func MethodNotAllowed(verbs Verbs) *Error {
	return &Error{kind: KindMethodNotAllowed, verbs: verbs}
}

// InvalidRequest returns an error indicating the request was addressed
// to the endpoint but malformed, with reason describing the problem.
func InvalidRequest(reason error) *Error {
	if reason == nil {
		panic("routing: InvalidRequest with nil reason")
	}
	return &Error{kind: KindInvalidRequest, reason: reason}
}

// Kind returns the error's kind.
func (e *Error) Kind() Kind {
	return e.kind
}

// Verbs returns the set of allowed verbs. It is non-empty only for
// MethodNotAllowed errors.
func (e *Error) Verbs() Verbs {
	return e.verbs
}

// Unwrap returns the reason of an InvalidRequest error, or nil.
func (e *Error) Unwrap() error {
	return e.reason
}

// Merge combines e with the error of a sibling alternative tried from
// the same cursor position, keeping the more specific failure:
//
// • NotMatched ⊕ NotMatched is NotMatched;
//
// • NotMatched ⊕ MethodNotAllowed is MethodNotAllowed;
//
// • MethodNotAllowed ⊕ MethodNotAllowed is MethodNotAllowed with the
// union of the two verb sets;
//
// • anything ⊕ InvalidRequest is InvalidRequest (the request was
// structurally addressed to the route, so the malformation wins).
//
// When both sides are InvalidRequest the left reason is kept, matching
// declaration-order precedence. Either argument may be nil, in which
// case the other is returned.
func (e *Error) Merge(other *Error) *Error {
	if e == nil {
		return other
	}
	if other == nil {
		return e
	}
	switch {
	case e.kind == KindInvalidRequest:
		return e
	case other.kind == KindInvalidRequest:
		return other
	case e.kind == KindMethodNotAllowed && other.kind == KindMethodNotAllowed:
		return MethodNotAllowed(e.verbs.Union(other.verbs))
	case e.kind == KindMethodNotAllowed:
		return e
	case other.kind == KindMethodNotAllowed:
		return other
	default:
		return e
	}
}

// StatusCode returns the HTTP status code class of the error:
// 404 for NotMatched, 405 for MethodNotAllowed, and 400 for
// InvalidRequest. The mapping to a response is the responsibility of
// the serialization layer; a MethodNotAllowed response should carry an
// Allow header built with Verbs().Allow().
func (e *Error) StatusCode() int {
	switch e.kind {
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusNotFound
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.kind {
	case KindMethodNotAllowed:
		return fmt.Sprintf("method not allowed (allowed: %s)", e.verbs.Allow())
	case KindInvalidRequest:
		return fmt.Sprintf("invalid request: %s", e.reason)
	default:
		return "not matched"
	}
}
