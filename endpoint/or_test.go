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

func TestOr(t *testing.T) {
	t.Run("NilEndpoint", func(t *testing.T) {
		assert.Panics(t, func() { Or(nil, literal("a")) })
		assert.Panics(t, func() { Or(literal("a"), nil) })
	})
	t.Run("LeftWins", func(t *testing.T) {
		var n int
		ctx := newTestContext(t, "/a")
		e := Or(literal("a", "L"), counting(literal("a", "R"), &n))
		tk, err := e.Apply(ctx)
		require.Nil(t, err)
		assert.Zero(t, n, "right branch must not be attempted")
		p := tk.Poll()
		require.True(t, p.IsReady())
		assert.Equal(t, Tuple{Either{Left: true, Output: Tuple{"L"}}}, p.Value())
	})
	t.Run("RightTriedFromSamePosition", func(t *testing.T) {
		ctx := newTestContext(t, "/b/c")
		e := Or(literal("a"), literal("b", "R"))
		tk, err := e.Apply(ctx)
		require.Nil(t, err)
		assert.Equal(t, 1, ctx.Popped())
		p := tk.Poll()
		require.True(t, p.IsReady())
		assert.Equal(t, Tuple{Either{Left: false, Output: Tuple{"R"}}}, p.Value())
	})
	t.Run("BothFailRewindsAndMerges", func(t *testing.T) {
		ctx := newTestContext(t, "/x")
		e := Or(literal("a"), failWith(routing.MethodNotAllowed(routing.NewVerbs("POST"))))
		tk, err := e.Apply(ctx)
		assert.Nil(t, tk)
		require.NotNil(t, err)
		assert.Equal(t, routing.KindMethodNotAllowed, err.Kind())
		assert.Equal(t, 0, ctx.Popped())
	})
	t.Run("InvalidRequestDominates", func(t *testing.T) {
		reason := errors.New("bad id")
		ctx := newTestContext(t, "/x")
		e := Or(failWith(routing.InvalidRequest(reason)), failWith(routing.MethodNotAllowed(routing.NewVerbs("GET"))))
		_, err := e.Apply(ctx)
		require.NotNil(t, err)
		assert.Equal(t, routing.KindInvalidRequest, err.Kind())
		assert.Same(t, reason, err.Unwrap())
	})
	t.Run("RuntimeErrorPassesThrough", func(t *testing.T) {
		boom := errors.New("boom")
		ctx := newTestContext(t, "/")
		e := Or(slow(1, nil, boom), literal("never"))
		tk, err := e.Apply(ctx)
		require.Nil(t, err)
		assert.True(t, tk.Poll().IsPending())
		p := tk.Poll()
		require.True(t, p.IsReady())
		assert.Same(t, boom, p.Err())
	})
	t.Run("PollAfterReadyPanics", func(t *testing.T) {
		ctx := newTestContext(t, "/a")
		e := Or(literal("a"), literal("b"))
		tk, err := e.Apply(ctx)
		require.Nil(t, err)
		require.True(t, tk.Poll().IsReady())
		assert.Panics(t, func() { tk.Poll() })
	})
}

func TestOrStrict(t *testing.T) {
	t.Run("NilEndpoint", func(t *testing.T) {
		assert.Panics(t, func() { OrStrict(nil, literal("a")) })
		assert.Panics(t, func() { OrStrict(literal("a"), nil) })
	})
	t.Run("NoWrapping", func(t *testing.T) {
		ctx := newTestContext(t, "/a")
		e := OrStrict(literal("a", "L"), literal("b", "R"))
		tk, err := e.Apply(ctx)
		require.Nil(t, err)
		p := tk.Poll()
		require.True(t, p.IsReady())
		assert.Equal(t, Tuple{"L"}, p.Value())
	})
	t.Run("RightNeverAttemptedOnLeftMatch", func(t *testing.T) {
		var n int
		ctx := newTestContext(t, "/a")
		e := OrStrict(literal("a", "L"), counting(literal("a", "R"), &n))
		_, err := e.Apply(ctx)
		require.Nil(t, err)
		assert.Zero(t, n)
	})
	t.Run("MergesVerbSets", func(t *testing.T) {
		ctx := newTestContext(t, "/x")
		e := OrStrict(
			failWith(routing.MethodNotAllowed(routing.NewVerbs("GET"))),
			failWith(routing.MethodNotAllowed(routing.NewVerbs("POST"))),
		)
		_, err := e.Apply(ctx)
		require.NotNil(t, err)
		assert.Equal(t, routing.KindMethodNotAllowed, err.Kind())
		assert.Equal(t, "GET, POST", err.Verbs().Allow())
	})
}
