// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package syntax

import (
	"net/http"

	"github.com/ubnt-intrepid/finchers/endpoint"
	"github.com/ubnt-intrepid/finchers/routing"
	"github.com/ubnt-intrepid/finchers/task"
)

// Verb returns an endpoint matching requests whose HTTP method is one
// of the given methods, compared case-insensitively. It consumes no
// path segments and produces an empty tuple. A request with a method
// outside the set is rejected as method-not-allowed, carrying the
// allowed set so alternatives can merge their verb sets and the
// response layer can emit an Allow header.
//
// Verb panics if methods is empty or contains an invalid HTTP token.
func Verb(methods ...string) endpoint.Endpoint {
	if len(methods) == 0 {
		panic("syntax: Verb requires at least one method")
	}
	verbs := routing.NewVerbs(methods...)
	return endpoint.Func(func(ctx *endpoint.Context) (endpoint.Task, *routing.Error) {
		if !verbs.Contains(ctx.Input().Method) {
			return nil, routing.MethodNotAllowed(verbs)
		}
		return task.Done(endpoint.Tuple{}), nil
	})
}

// Get returns a verb guard for GET requests.
func Get() endpoint.Endpoint { return Verb(http.MethodGet) }

// Post returns a verb guard for POST requests.
func Post() endpoint.Endpoint { return Verb(http.MethodPost) }

// Put returns a verb guard for PUT requests.
func Put() endpoint.Endpoint { return Verb(http.MethodPut) }

// Delete returns a verb guard for DELETE requests.
func Delete() endpoint.Endpoint { return Verb(http.MethodDelete) }

// Head returns a verb guard for HEAD requests.
func Head() endpoint.Endpoint { return Verb(http.MethodHead) }

// Patch returns a verb guard for PATCH requests.
func Patch() endpoint.Endpoint { return Verb(http.MethodPatch) }

// Options returns a verb guard for OPTIONS requests.
func Options() endpoint.Endpoint { return Verb(http.MethodOptions) }
