// Copyright 2021 The finchers Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"io"
)

const badBodyTypeMsg = "request: invalid type (for body use nil, " +
	"string, []byte, io.Reader or io.ReadCloser)"

// DefaultChunkSize is the number of body bytes a Body yields per chunk
// unless configured otherwise.
const DefaultChunkSize = 4096

// A Body is a pre-buffered request body that yields its contents one
// chunk at a time.
//
// The chunked shape exists for the execution phase: a body-consuming
// task reads one chunk per poll and reports Pending in between, which
// is the suspension point where a real server would be waiting on the
// wire. Exactly one endpoint per request can own a Body (see
// Input.TakeBody).
type Body struct {
	data  []byte
	off   int
	chunk int
}

// NewBody builds a Body from a generic body value, following the
// coercion rules of BodyBytes. A nil value yields a nil Body.
func NewBody(body interface{}) (*Body, error) {
	if body == nil {
		return nil, nil
	}
	b, err := BodyBytes(body)
	if err != nil {
		return nil, err
	}
	return &Body{data: b, chunk: DefaultChunkSize}, nil
}

// NewBodyChunked builds a Body over data that yields at most chunkSize
// bytes per call to Next. It is mostly useful in tests, to force a body
// read to span several polls.
func NewBodyChunked(data []byte, chunkSize int) *Body {
	if chunkSize <= 0 {
		panic("request: non-positive chunk size")
	}
	return &Body{data: data, chunk: chunkSize}
}

// Next returns the next chunk of the body. The second return value is
// false once the body is exhausted. The returned slice aliases the
// body's buffer and must not be modified.
func (b *Body) Next() ([]byte, bool) {
	if b == nil || b.off >= len(b.data) {
		return nil, false
	}
	end := b.off + b.chunk
	if end > len(b.data) {
		end = len(b.data)
	}
	c := b.data[b.off:end]
	b.off = end
	return c, true
}

// Len returns the number of bytes not yet yielded by Next.
func (b *Body) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data) - b.off
}

// BodyBytes converts a generic body parameter to a byte slice.
//
// The body parameter may be nil, or it may be a string, []byte,
// io.Reader, or io.ReadCloser. The conversion logic is:
//
// • If body is nil, a nil byte slice and no error is returned.
//
// • If body is a []byte, body itself and no error is returned.
//
// • If body is a string, the built-in conversion from string to byte
// slice, and no error, is returned.
//
// • If body is an io.Reader or io.ReadCloser, the result of reading
// the whole contents of the reader (and closing it if it implements
// Closer) is returned. If reading from the reader (and closing it if
// applicable) causes an error, the return value is a nil byte slice
// and the error. Otherwise, the result is the entire contents read
// from the reader and no error.
//
// • If body is any other type than those listed above, a nil byte slice
// and an error is returned.
func BodyBytes(body interface{}) ([]byte, error) {
	switch x := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case io.ReadCloser:
		b, err := io.ReadAll(x)
		if err != nil {
			return nil, err
		}
		err = x.Close()
		if err != nil {
			return nil, err
		}
		return b, nil
	case io.Reader:
		return io.ReadAll(x)
	default:
		return nil, errors.New(badBodyTypeMsg)
	}
}
