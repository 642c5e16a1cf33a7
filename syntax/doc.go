// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package syntax provides the primitive endpoints from which routes are
// composed: literal path segments, typed path parameters, end-of-path
// and remaining-path matchers, and HTTP verb guards.
//
// A typical route combines these with the endpoint package's
// combinators:
//
//	e := endpoint.And(syntax.Get(),
//		endpoint.And(syntax.Segment("posts"),
//			endpoint.And(syntax.Param(syntax.Int), syntax.EOS())))
//
// which matches GET /posts/<id> and produces a one-element tuple
// holding the id as an int.
package syntax
