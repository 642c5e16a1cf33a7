// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package endpoint

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ubnt-intrepid/finchers/request"
	"github.com/ubnt-intrepid/finchers/routing"
	"github.com/ubnt-intrepid/finchers/task"
)

// newTestContext builds a routing context over a GET request for path.
func newTestContext(t *testing.T, path string) *Context {
	t.Helper()
	in, err := request.NewInput("GET", path, nil)
	require.NoError(t, err)
	return NewContext(in)
}

// literal is a test endpoint that consumes one segment equal to s and
// completes immediately with out. It restores the cursor on a mismatch.
func literal(s string, out ...interface{}) Endpoint {
	return Func(func(ctx *Context) (Task, *routing.Error) {
		saved := ctx.Save()
		seg, ok := ctx.NextSegment()
		if !ok || seg.Raw() != s {
			ctx.Restore(saved)
			return nil, routing.NotMatched()
		}
		return task.Done(Tuple(out)), nil
	})
}

// failWith is a test endpoint that rejects every request with err.
func failWith(err *routing.Error) Endpoint {
	return Func(func(*Context) (Task, *routing.Error) {
		return nil, err
	})
}

// counting wraps an endpoint and counts how many times Apply runs.
func counting(e Endpoint, n *int) Endpoint {
	return Func(func(ctx *Context) (Task, *routing.Error) {
		*n++
		return e.Apply(ctx)
	})
}

// countdown is a test task that stays pending for a fixed number of
// polls before completing with out or err.
type countdown struct {
	pending int
	out     Tuple
	err     error
}

func (c *countdown) Poll() Poll {
	if c.pending > 0 {
		c.pending--
		return task.Pending[Tuple]()
	}
	if c.err != nil {
		return task.Fail[Tuple](c.err)
	}
	return task.Ready(c.out)
}

// slow is a test endpoint whose task completes after a fixed number of
// pending polls.
func slow(pending int, out Tuple, err error) Endpoint {
	return Func(func(*Context) (Task, *routing.Error) {
		return &countdown{pending: pending, out: out, err: err}, nil
	})
}

// drive polls t until it reports Ready, failing the test if it takes
// more than limit polls, and returns the final poll.
func drive(t *testing.T, tk Task, limit int) Poll {
	t.Helper()
	for i := 0; i <= limit; i++ {
		p := tk.Poll()
		if p.IsReady() {
			return p
		}
	}
	t.Fatalf("task still pending after %d polls", limit+1)
	return Poll{}
}
