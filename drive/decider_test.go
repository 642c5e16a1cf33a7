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

func TestForever(t *testing.T) {
	assert.True(t, Forever.Decide(&request.Execution{}))
	assert.True(t, Forever.Decide(&request.Execution{Polls: 1 << 30}))
}

func TestLimit(t *testing.T) {
	testCases := []struct {
		n, polls int
		expect   bool
	}{
		{0, 0, false},
		{1, 0, true},
		{1, 1, false},
		{5, 4, true},
		{5, 5, false},
		{5, 6, false},
	}
	for _, testCase := range testCases {
		e := &request.Execution{Polls: testCase.polls}
		assert.Equal(t, testCase.expect, Limit(testCase.n).Decide(e),
			"Limit(%d) with %d polls", testCase.n, testCase.polls)
	}
}

func TestBefore(t *testing.T) {
	t.Run("within budget", func(t *testing.T) {
		e := &request.Execution{Start: time.Now()}
		assert.True(t, Before(time.Hour).Decide(e))
	})
	t.Run("budget exhausted", func(t *testing.T) {
		start := time.Now().Add(-time.Minute)
		e := &request.Execution{Start: start, End: start.Add(2 * time.Second)}
		assert.False(t, Before(time.Second).Decide(e))
	})
	t.Run("not started", func(t *testing.T) {
		assert.True(t, Before(time.Nanosecond).Decide(&request.Execution{}))
	})
}

func TestDeciderFuncAnd(t *testing.T) {
	var calls int
	counting := DeciderFunc(func(*request.Execution) bool {
		calls++
		return true
	})
	t.Run("both true", func(t *testing.T) {
		calls = 0
		assert.True(t, Forever.And(counting).Decide(&request.Execution{}))
		assert.Equal(t, 1, calls)
	})
	t.Run("short circuit", func(t *testing.T) {
		calls = 0
		assert.False(t, Limit(0).And(counting).Decide(&request.Execution{}))
		assert.Zero(t, calls, "right side must not be evaluated")
	})
}

func TestDeciderFuncOr(t *testing.T) {
	var calls int
	counting := DeciderFunc(func(*request.Execution) bool {
		calls++
		return false
	})
	t.Run("short circuit", func(t *testing.T) {
		calls = 0
		assert.True(t, Forever.Or(counting).Decide(&request.Execution{}))
		assert.Zero(t, calls, "right side must not be evaluated")
	})
	t.Run("both false", func(t *testing.T) {
		calls = 0
		assert.False(t, Limit(0).Or(counting).Decide(&request.Execution{}))
		assert.Equal(t, 1, calls)
	})
}
