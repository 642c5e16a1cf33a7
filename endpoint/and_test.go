// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package endpoint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ubnt-intrepid/finchers/routing"
)

func TestAnd(t *testing.T) {
	t.Run("NilEndpoint", func(t *testing.T) {
		assert.Panics(t, func() { And(nil, literal("a")) })
		assert.Panics(t, func() { And(literal("a"), nil) })
	})
	t.Run("ConcatenatesOutputs", func(t *testing.T) {
		ctx := newTestContext(t, "/a/b")
		e := And(literal("a", "x"), literal("b", 1, true))
		tk, err := e.Apply(ctx)
		require.Nil(t, err)
		assert.Equal(t, 2, ctx.Popped())
		p := tk.Poll()
		require.True(t, p.IsReady())
		require.NoError(t, p.Err())
		assert.Equal(t, Tuple{"x", 1, true}, p.Value())
	})
	t.Run("RewindsWhenFirstFails", func(t *testing.T) {
		ctx := newTestContext(t, "/a/b")
		e := And(literal("zzz"), literal("a"))
		tk, err := e.Apply(ctx)
		assert.Nil(t, tk)
		require.NotNil(t, err)
		assert.Equal(t, routing.KindNotMatched, err.Kind())
		assert.Equal(t, 0, ctx.Popped())
	})
	t.Run("RewindsWhenSecondFails", func(t *testing.T) {
		ctx := newTestContext(t, "/a/b")
		e := And(literal("a"), literal("zzz"))
		tk, err := e.Apply(ctx)
		assert.Nil(t, tk)
		require.NotNil(t, err)
		assert.Equal(t, routing.KindNotMatched, err.Kind())
		assert.Equal(t, 0, ctx.Popped())
		assert.Equal(t, "a/b", ctx.RemainingPath())
	})
	t.Run("SecondNotAppliedWhenFirstFails", func(t *testing.T) {
		var n int
		ctx := newTestContext(t, "/a")
		e := And(literal("zzz"), counting(literal("a"), &n))
		_, err := e.Apply(ctx)
		require.NotNil(t, err)
		assert.Zero(t, n)
	})
	t.Run("PendingUntilBothDone", func(t *testing.T) {
		ctx := newTestContext(t, "/")
		e := And(slow(2, Tuple{"left"}, nil), slow(0, Tuple{"right"}, nil))
		tk, err := e.Apply(ctx)
		require.Nil(t, err)
		assert.True(t, tk.Poll().IsPending())
		assert.True(t, tk.Poll().IsPending())
		p := tk.Poll()
		require.True(t, p.IsReady())
		assert.Equal(t, Tuple{"left", "right"}, p.Value())
	})
	t.Run("FirstErrorShortCircuits", func(t *testing.T) {
		boom := errors.New("boom")
		ctx := newTestContext(t, "/")
		e := And(slow(0, nil, boom), slow(100, Tuple{"never"}, nil))
		tk, err := e.Apply(ctx)
		require.Nil(t, err)
		p := tk.Poll()
		require.True(t, p.IsReady())
		assert.Same(t, boom, p.Err())
	})
	t.Run("SecondErrorReportedWhileFirstPending", func(t *testing.T) {
		boom := errors.New("boom")
		ctx := newTestContext(t, "/")
		e := And(slow(100, Tuple{"never"}, nil), slow(0, nil, boom))
		tk, err := e.Apply(ctx)
		require.Nil(t, err)
		p := tk.Poll()
		require.True(t, p.IsReady())
		assert.Same(t, boom, p.Err())
	})
	t.Run("PollAfterReadyPanics", func(t *testing.T) {
		ctx := newTestContext(t, "/a")
		e := And(literal("a"), Unit())
		tk, err := e.Apply(ctx)
		require.Nil(t, err)
		require.True(t, tk.Poll().IsReady())
		assert.Panics(t, func() { tk.Poll() })
	})
}
