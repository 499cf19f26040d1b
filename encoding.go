// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

// Package peerwire implements the consensus binary encoding of the peer
// protocol: the Encodable/Decodable contracts, the primitive and collection
// codecs they are built from, and the Serialize/Deserialize entry points.
//
// Encoding a value is a pure function of the value; decoding rejects any
// input that is not the canonical encoding of a legal value. Both
// directions are stateless across calls, so concurrent use on independent
// values needs no coordination.
package peerwire

import (
	"bytes"
	"fmt"
	"io"
)

// Encodable is a value with a deterministic wire representation. Encode
// writes it to w and returns the number of bytes written.
type Encodable interface {
	Encode(w io.Writer) (int, error)
}

// Decodable reconstructs a value from a byte source, in place. For every
// legal value, decoding its encoding yields an equal value.
type Decodable interface {
	Decode(r io.Reader) error
}

// Field is both sides of the contract at once. Composite message types
// list pointers to their fields once, in declared order, and derive Encode
// and Decode from that single list via EncodeAll and DecodeAll. The field
// order is the wire format; keeping it in one place makes it impossible
// for the two directions to diverge.
type Field interface {
	Encodable
	Decodable
}

// EncodeAll encodes fields in order and sums their byte counts.
func EncodeAll(w io.Writer, fields ...Field) (int, error) {
	var n int
	for _, f := range fields {
		nn, err := f.Encode(w)
		n += nn
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// DecodeAll decodes fields in order from r, stopping at the first error.
func DecodeAll(r io.Reader, fields ...Field) error {
	for _, f := range fields {
		if err := f.Decode(r); err != nil {
			return err
		}
	}
	return nil
}

// Serialize encodes v into a fresh byte slice.
//
// It panics if the encode fails, since writes to an in-memory buffer cannot
// fail; an error here means a broken Encodable, not bad input. Callers
// encoding to real I/O sinks should call Encode directly and handle the
// error.
func Serialize(v Encodable) []byte {
	var buf bytes.Buffer
	if _, err := v.Encode(&buf); err != nil {
		panic(fmt.Sprintf("peerwire: serialize to memory buffer failed: %v", err))
	}
	return buf.Bytes()
}

// Deserialize decodes exactly one value from data. Trailing bytes after a
// complete decode are a protocol error, never ignored.
func Deserialize(data []byte, v Decodable) error {
	n, err := DeserializePartial(data, v)
	if err != nil {
		return err
	}
	if n != len(data) {
		return ParseError("data not consumed entirely when explicitly deserializing")
	}
	return nil
}

// DeserializePartial decodes one value from the front of data and returns
// the number of bytes consumed. Trailing bytes are allowed; they belong to
// whatever follows in the enclosing stream.
func DeserializePartial(data []byte, v Decodable) (int, error) {
	r := bytes.NewReader(data)
	err := v.Decode(r)
	return len(data) - r.Len(), err
}
