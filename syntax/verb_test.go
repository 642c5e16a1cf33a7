// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ubnt-intrepid/finchers/routing"
)

func TestVerb(t *testing.T) {
	t.Run("NoMethods", func(t *testing.T) {
		assert.Panics(t, func() { Verb() })
	})
	t.Run("InvalidToken", func(t *testing.T) {
		assert.Panics(t, func() { Verb("GET SET") })
	})
	t.Run("Match", func(t *testing.T) {
		ctx := newTestContext(t, "GET", "/a/b")
		tk, err := Get().Apply(ctx)
		require.Nil(t, err)
		assert.Equal(t, 0, ctx.Popped(), "verb guards must not consume segments")
		p := tk.Poll()
		require.True(t, p.IsReady())
		assert.Empty(t, p.Value())
	})
	t.Run("CaseInsensitiveConstruction", func(t *testing.T) {
		ctx := newTestContext(t, "GET", "/")
		_, err := Verb("get").Apply(ctx)
		assert.Nil(t, err)
	})
	t.Run("Mismatch", func(t *testing.T) {
		ctx := newTestContext(t, "GET", "/")
		tk, err := Post().Apply(ctx)
		assert.Nil(t, tk)
		require.NotNil(t, err)
		assert.Equal(t, routing.KindMethodNotAllowed, err.Kind())
		assert.Equal(t, "POST", err.Verbs().Allow())
	})
	t.Run("MultipleMethods", func(t *testing.T) {
		ctx := newTestContext(t, "PUT", "/")
		_, err := Verb("POST", "PUT").Apply(ctx)
		assert.Nil(t, err)
	})
}
