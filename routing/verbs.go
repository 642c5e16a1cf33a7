// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package routing

import (
	"sort"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// Verbs is a set of allowed HTTP methods carried by a MethodNotAllowed
// error. The zero value is the empty set.
type Verbs map[string]struct{}

// NewVerbs constructs a verb set from the given methods. Methods are
// upper-cased, so "get" and "GET" denote the same verb.
//
// Each method must be a valid HTTP token per RFC 7230. An invalid
// method is a programmer error and panics.
func NewVerbs(methods ...string) Verbs {
	v := make(Verbs, len(methods))
	for _, m := range methods {
		m = strings.ToUpper(m)
		if m == "" || !httpguts.ValidHeaderFieldName(m) {
			panic(`routing: invalid method token "` + m + `"`)
		}
		v[m] = struct{}{}
	}
	return v
}

// Contains reports whether method is in the set. The comparison is
// case-insensitive.
func (v Verbs) Contains(method string) bool {
	_, ok := v[strings.ToUpper(method)]
	return ok
}

// Union returns a new set holding every verb present in either v or o.
// Neither input is modified.
func (v Verbs) Union(o Verbs) Verbs {
	u := make(Verbs, len(v)+len(o))
	for m := range v {
		u[m] = struct{}{}
	}
	for m := range o {
		u[m] = struct{}{}
	}
	return u
}

// List returns the verbs in the set, sorted.
func (v Verbs) List() []string {
	l := make([]string, 0, len(v))
	for m := range v {
		l = append(l, m)
	}
	sort.Strings(l)
	return l
}

// Allow renders the set as the value of an Allow response header, with
// the verbs sorted and comma-separated.
func (v Verbs) Allow() string {
	return strings.Join(v.List(), ", ")
}
