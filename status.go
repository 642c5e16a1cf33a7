// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package finchers

import (
	"errors"
	"net/http"

	"github.com/ubnt-intrepid/finchers/routing"
)

// StatusCode maps a run error to the HTTP status code a response layer
// should send.
//
// A nil error maps to 200. A routing error anywhere in the error chain
// maps to its own status code (404, 405, or 400). Any other error may
// choose its code by implementing a StatusCode() int method; errors
// that do neither map to 500.
func StatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var rerr *routing.Error
	if errors.As(err, &rerr) {
		return rerr.StatusCode()
	}
	var coder interface{ StatusCode() int }
	if errors.As(err, &coder) {
		return coder.StatusCode()
	}
	return http.StatusInternalServerError
}

// AllowHeader returns the value a response layer should place in the
// Allow header for err, which is non-empty only when the error chain
// contains a method-not-allowed routing error.
func AllowHeader(err error) string {
	var rerr *routing.Error
	if errors.As(err, &rerr) && rerr.Kind() == routing.KindMethodNotAllowed {
		return rerr.Verbs().Allow()
	}
	return ""
}
