// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package body provides endpoints that extract the request body during
// the execution phase.
//
// The body is a take-once resource: the first body endpoint polled on a
// request claims it, and any later claimant fails with ErrBodyTaken.
// All endpoints in this package match every request and consume no path
// segments, so routing decisions never depend on the body.
package body
