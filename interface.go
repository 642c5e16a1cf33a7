// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package finchers

import (
	"context"

	"github.com/ubnt-intrepid/finchers/endpoint"
	"github.com/ubnt-intrepid/finchers/request"
	"github.com/ubnt-intrepid/finchers/routing"
)

// Router is the interface that wraps the basic Route method.
//
// Route applies an endpoint to a request input and returns the matched
// task or the routing error. Driver implements the Router interface,
// and any other Router implementation must behave substantially the
// same as Driver.Route.
type Router interface {
	Route(in *request.Input) (endpoint.Task, *routing.Error)
}

// Runner is the interface that wraps the basic Run method.
//
// Run routes a request input and drives the matched task to completion,
// returning the final execution state (and error, if any). Driver
// implements the Runner interface, and any other Runner implementation
// must behave substantially the same as Driver.Run.
//
// Any Runner can be converted into a Server via the Inflate function.
type Runner interface {
	Run(ctx context.Context, in *request.Input) (*request.Execution, error)
}

// Getter is the interface that wraps the basic Get method.
//
// Get builds a GET request input for the specified URL, runs it, and
// returns the final execution state (and error, if any). Driver
// implements the Getter interface, and any other Getter implementation
// must behave substantially the same as Driver.Get.
//
// Any Runner can be used to emulate a Getter via the Get function.
type Getter interface {
	Get(url string) (*request.Execution, error)
}

// Poster is the interface that wraps the basic Post method.
//
// Post builds a POST request input for the specified URL, runs it, and
// returns the final execution state (and error, if any). Driver
// implements the Poster interface, and any other Poster implementation
// must behave substantially the same as Driver.Post.
//
// The body parameter may be nil for an empty body, or may be any of the
// types supported by request.NewInput and request.BodyBytes, namely:
// string; []byte; io.Reader; and io.ReadCloser.
//
// Any Runner can be used to emulate a Poster via the Post function.
type Poster interface {
	Post(url, contentType string, body interface{}) (*request.Execution, error)
}

// Server is the interface that groups the basic Route, Run, Get, and
// Post methods.
//
// Any Runner can be converted into a Server via the Inflate function.
type Server interface {
	Router
	Runner
	Getter
	Poster
}

// Get uses the specified Runner to run a GET request for the specified
// URL, using the same policies as r.Run.
//
// To run a request with custom headers or a context, use
// request.NewInput and r.Run.
func Get(r Runner, url string) (*request.Execution, error) {
	in, err := request.NewInput("GET", url, nil)
	if err != nil {
		return nil, err
	}
	return r.Run(context.Background(), in)
}

// Post uses the specified Runner to run a POST request for the
// specified URL, using the same policies as r.Run.
//
// The body parameter may be nil for an empty body, or may be any of the
// types supported by request.NewInput and request.BodyBytes, namely:
// string; []byte; io.Reader; and io.ReadCloser.
//
// To run a request with custom headers or a context, use
// request.NewInput and r.Run.
func Post(r Runner, url, contentType string, body interface{}) (*request.Execution, error) {
	in, err := request.NewInput("POST", url, body)
	if err != nil {
		return nil, err
	}
	in.Header.Set("Content-Type", contentType)
	return r.Run(context.Background(), in)
}

// Inflate converts any non-nil Runner into a Server. This may be
// helpful for interop across library boundaries, i.e. if code that only
// has access to a Runner needs to call a function that requires a
// Server.
//
// The inflated Server's Route method performs the routing phase only if
// the underlying Runner is also a Router; otherwise it panics.
func Inflate(r Runner) Server {
	if r == nil {
		panic("finchers: nil runner")
	}

	if s, ok := r.(Server); ok {
		return s
	}

	return inflated{r}
}

type inflated struct {
	runner Runner
}

func (i inflated) Route(in *request.Input) (endpoint.Task, *routing.Error) {
	if router, ok := i.runner.(Router); ok {
		return router.Route(in)
	}
	panic("finchers: runner does not implement Router")
}

func (i inflated) Run(ctx context.Context, in *request.Input) (*request.Execution, error) {
	return i.runner.Run(ctx, in)
}

func (i inflated) Get(url string) (*request.Execution, error) {
	return Get(i.runner, url)
}

func (i inflated) Post(url, contentType string, body interface{}) (*request.Execution, error) {
	return Post(i.runner, url, contentType, body)
}
