// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package drive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ubnt-intrepid/finchers/request"
)

func TestDefaultPolicy(t *testing.T) {
	e := &request.Execution{Polls: 1 << 20}
	assert.True(t, DefaultPolicy.Decide(e))
	assert.Equal(t, time.Duration(0), DefaultPolicy.Wait(e))
}

func TestOnce(t *testing.T) {
	assert.True(t, Once.Decide(&request.Execution{Polls: 0}))
	assert.False(t, Once.Decide(&request.Execution{Polls: 1}))
	assert.Equal(t, time.Duration(0), Once.Wait(&request.Execution{}))
}

func TestNewPolicy(t *testing.T) {
	var decides int
	d := DeciderFunc(func(e *request.Execution) bool {
		decides++
		return e.Polls < 3
	})
	w := Yield(time.Millisecond)
	p := NewPolicy(d, w)
	assert.True(t, p.Decide(&request.Execution{Polls: 2}))
	assert.False(t, p.Decide(&request.Execution{Polls: 3}))
	assert.Equal(t, 2, decides)
	assert.Equal(t, time.Millisecond, p.Wait(&request.Execution{}))
}
