// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package endpoint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	t.Run("ReadyImmediately", func(t *testing.T) {
		ctx := newTestContext(t, "/a/b")
		tk, err := Value(1, "two").Apply(ctx)
		require.Nil(t, err)
		assert.Equal(t, 0, ctx.Popped(), "Value must not consume segments")
		p := tk.Poll()
		require.True(t, p.IsReady())
		assert.Equal(t, Tuple{1, "two"}, p.Value())
	})
	t.Run("EachApplyGetsFreshTuple", func(t *testing.T) {
		e := Value("x")
		tk1, err := e.Apply(newTestContext(t, "/"))
		require.Nil(t, err)
		out := tk1.Poll().Value()
		out[0] = "mutated"
		tk2, err := e.Apply(newTestContext(t, "/"))
		require.Nil(t, err)
		assert.Equal(t, Tuple{"x"}, tk2.Poll().Value())
	})
}

func TestUnit(t *testing.T) {
	ctx := newTestContext(t, "/a")
	tk, err := Unit().Apply(ctx)
	require.Nil(t, err)
	assert.Equal(t, 0, ctx.Popped())
	p := tk.Poll()
	require.True(t, p.IsReady())
	assert.Empty(t, p.Value())
}

func TestLazy(t *testing.T) {
	t.Run("NilFunc", func(t *testing.T) {
		assert.Panics(t, func() { Lazy(nil) })
	})
	t.Run("DeferredToFirstPoll", func(t *testing.T) {
		var n int
		e := Lazy(func() (Tuple, error) {
			n++
			return Tuple{n}, nil
		})
		ctx := newTestContext(t, "/")
		tk, err := e.Apply(ctx)
		require.Nil(t, err)
		assert.Zero(t, n, "computation must not run during routing")
		p := tk.Poll()
		require.True(t, p.IsReady())
		assert.Equal(t, Tuple{1}, p.Value())
	})
	t.Run("RunsOncePerApply", func(t *testing.T) {
		var n int
		e := Lazy(func() (Tuple, error) {
			n++
			return Tuple{n}, nil
		})
		for i := 1; i <= 2; i++ {
			tk, err := e.Apply(newTestContext(t, "/"))
			require.Nil(t, err)
			assert.Equal(t, Tuple{i}, tk.Poll().Value())
		}
		assert.Equal(t, 2, n)
	})
	t.Run("ErrorBecomesRuntimeError", func(t *testing.T) {
		boom := errors.New("boom")
		e := Lazy(func() (Tuple, error) { return nil, boom })
		tk, err := e.Apply(newTestContext(t, "/"))
		require.Nil(t, err)
		p := tk.Poll()
		require.True(t, p.IsReady())
		assert.Same(t, boom, p.Err())
	})
	t.Run("PollAfterReadyPanics", func(t *testing.T) {
		e := Lazy(func() (Tuple, error) { return Tuple{}, nil })
		tk, err := e.Apply(newTestContext(t, "/"))
		require.Nil(t, err)
		require.True(t, tk.Poll().IsReady())
		assert.Panics(t, func() { tk.Poll() })
	})
}
