// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"fmt"
	"net/http"
	urlpkg "net/url"

	"golang.org/x/net/http/httpguts"
)

// An Input is the view of one incoming HTTP request consumed by the
// routing and execution phases.
//
// The field structure mirrors the relevant subset of an http.Request.
// Client- and server-plumbing fields (Proto, Trailer, connection state)
// are omitted: parsing and connection management happen outside this
// library, which only routes an already-parsed request and produces a
// typed result for the response layer to serialize.
//
// The exported fields are read-only for the whole lifetime of the
// request. The body is not a field; it is a handle claimed through
// TakeBody, which succeeds at most once per request.
type Input struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.).
	// It is never empty; NewInput substitutes GET for an empty method.
	Method string

	// URL specifies the requested URL. Routing consumes only its
	// encoded path; query and fragment pass through untouched for
	// endpoints that want them.
	URL *urlpkg.URL

	// Header contains the request header fields. Endpoints read it;
	// nothing in this library writes to it.
	Header http.Header

	body  *Body
	taken bool
}

// NewInput returns an Input for the given method, URL, and optional
// body.
//
// An empty method means GET. The method must be a valid HTTP token.
// Parameter body may be nil (no body), or a string, []byte, io.Reader,
// or io.ReadCloser, following the same coercion rules as BodyBytes.
func NewInput(method, url string, body interface{}) (*Input, error) {
	if method == "" {
		method = "GET"
	}
	if !httpguts.ValidHeaderFieldName(method) {
		return nil, fmt.Errorf("request: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	b, err := NewBody(body)
	if err != nil {
		return nil, err
	}
	return &Input{
		Method: method,
		URL:    u,
		Header: make(http.Header),
		body:   b,
	}, nil
}

// FromRequest adapts a parsed http.Request into an Input, buffering the
// request body. It is the usual entry point when this library sits
// behind a net/http server.
func FromRequest(r *http.Request) (*Input, error) {
	if r == nil {
		return nil, errors.New("request: nil http request")
	}
	var b *Body
	if r.Body != nil && r.Body != http.NoBody {
		var err error
		b, err = NewBody(r.Body)
		if err != nil {
			return nil, err
		}
	}
	in := &Input{
		Method: r.Method,
		URL:    r.URL,
		Header: r.Header,
		body:   b,
	}
	if in.Method == "" {
		in.Method = "GET"
	}
	return in, nil
}

// Path returns the percent-encoded request path, defaulting to "/" when
// the URL carries no path. The routing cursor walks this string.
func (in *Input) Path() string {
	if in.URL == nil {
		return "/"
	}
	p := in.URL.EscapedPath()
	if p == "" {
		return "/"
	}
	return p
}

// Cursor returns a fresh segment cursor over the request path,
// positioned before the first segment.
func (in *Input) Cursor() Cursor {
	return NewCursor(in.Path())
}

// TakeBody claims the request body handle. The claim succeeds at most
// once per request: the first call returns the body (which may be nil
// if the request has none) and true, and every later call returns nil
// and false. A second claimant must handle the refusal explicitly
// rather than silently observe an empty or duplicate body.
func (in *Input) TakeBody() (*Body, bool) {
	if in.taken {
		return nil, false
	}
	in.taken = true
	return in.body, true
}
