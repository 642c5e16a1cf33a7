// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package body

import (
	"encoding/json"
	"errors"

	"github.com/ubnt-intrepid/finchers/endpoint"
	"github.com/ubnt-intrepid/finchers/request"
	"github.com/ubnt-intrepid/finchers/routing"
	"github.com/ubnt-intrepid/finchers/task"
)

// ErrBodyTaken is the runtime error reported when a body endpoint polls
// a request whose body was already claimed by another endpoint.
var ErrBodyTaken = errors.New("body: request body already claimed")

// Raw returns an endpoint producing the complete request body as a
// []byte in a one-element tuple.
//
// Routing always succeeds and consumes no path segments; the body is
// claimed during the execution phase, on the task's first poll. The
// claim is exclusive per request, so composing two body endpoints into
// one route yields ErrBodyTaken from whichever polls second. The body
// is consumed one chunk per poll, reporting Pending between chunks. A
// request without a body completes with an empty slice.
func Raw() endpoint.Endpoint {
	return collect(func(buf []byte) (endpoint.Tuple, error) {
		return endpoint.Tuple{buf}, nil
	})
}

// Text returns an endpoint producing the complete request body as a
// string in a one-element tuple. It behaves exactly like Raw apart from
// the output type.
func Text() endpoint.Endpoint {
	return collect(func(buf []byte) (endpoint.Tuple, error) {
		return endpoint.Tuple{string(buf)}, nil
	})
}

// JSON returns an endpoint that decodes the complete request body as
// JSON into a value of type T, produced in a one-element tuple. A
// decoding failure is a runtime error carrying the json package's
// diagnostic; the body stays consumed.
func JSON[T any]() endpoint.Endpoint {
	return collect(func(buf []byte) (endpoint.Tuple, error) {
		var v T
		if err := json.Unmarshal(buf, &v); err != nil {
			return nil, err
		}
		return endpoint.Tuple{v}, nil
	})
}

func collect(finish func([]byte) (endpoint.Tuple, error)) endpoint.Endpoint {
	return endpoint.Func(func(ctx *endpoint.Context) (endpoint.Task, *routing.Error) {
		return &collectTask{input: ctx.Input(), finish: finish}, nil
	})
}

// collectTask claims the request body on its first poll and then drains
// it cooperatively, buffering one chunk per poll.
type collectTask struct {
	input   *request.Input
	body    *request.Body
	buf     []byte
	claimed bool
	done    bool
	finish  func([]byte) (endpoint.Tuple, error)
}

func (t *collectTask) Poll() endpoint.Poll {
	if t.done {
		panic("body: poll called after ready")
	}
	if !t.claimed {
		b, ok := t.input.TakeBody()
		if !ok {
			t.done = true
			return task.Fail[endpoint.Tuple](ErrBodyTaken)
		}
		t.body = b
		t.claimed = true
		t.input = nil
	}
	if chunk, ok := t.body.Next(); ok {
		t.buf = append(t.buf, chunk...)
		return task.Pending[endpoint.Tuple]()
	}
	t.done = true
	out, err := t.finish(t.buf)
	if err != nil {
		return task.Fail[endpoint.Tuple](err)
	}
	return task.Ready(out)
}
