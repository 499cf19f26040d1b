// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

package peerwire

import (
	"io"
	"math"
	"unicode/utf8"
)

// MaxAlloc is the largest byte size a single length-prefixed structure may
// claim. A 9-byte VarInt can declare an exabyte-sized sequence; the bound
// is checked against the declared count before anything is allocated, so a
// hostile length prefix costs nothing. The value is consensus-relevant and
// must be identical across all participants.
const MaxAlloc = 4_000_000

// seqByteSize bounds a declared element count. The multiplication is
// overflow-checked; wraparound would defeat the MaxAlloc comparison.
func seqByteSize(count uint64, elemSize int) (uint64, error) {
	es := uint64(elemSize)
	if es != 0 && count > math.MaxUint64/es {
		return 0, ParseError("sequence length overflows byte size")
	}
	size := count * es
	if size > MaxAlloc {
		return 0, OversizedAllocError{Requested: size, Max: MaxAlloc}
	}
	return size, nil
}

// ByteSlice is a VarInt-length-prefixed run of raw bytes.
type ByteSlice []byte

func (b ByteSlice) Encode(w io.Writer) (int, error) {
	n, err := VarInt(len(b)).Encode(w)
	if err != nil {
		return n, err
	}
	nn, err := WriteBytes(w, b)
	return n + nn, err
}

func (b *ByteSlice) Decode(r io.Reader) error {
	var l VarInt
	if err := l.Decode(r); err != nil {
		return err
	}
	size, err := seqByteSize(uint64(l), 1)
	if err != nil {
		return err
	}
	buf := make([]byte, size)
	if err := ReadFull(r, buf); err != nil {
		return err
	}
	*b = buf
	return nil
}

// VarString is a VarInt-length-prefixed UTF-8 string. Decode rejects
// invalid UTF-8 instead of substituting replacement runes.
type VarString string

func (s VarString) Encode(w io.Writer) (int, error) {
	return ByteSlice(s).Encode(w)
}

func (s *VarString) Decode(r io.Reader) error {
	var b ByteSlice
	if err := b.Decode(r); err != nil {
		return err
	}
	if !utf8.Valid(b) {
		return ParseError("string is not valid UTF-8")
	}
	*s = VarString(b)
	return nil
}

// WriteSequence encodes a VarInt element count followed by each element's
// encoding, in order.
func WriteSequence[T Encodable](w io.Writer, elems []T) (int, error) {
	n, err := VarInt(len(elems)).Encode(w)
	if err != nil {
		return n, err
	}
	for _, e := range elems {
		nn, err := e.Encode(w)
		n += nn
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// ReadSequence decodes a VarInt count and then count elements of type T.
// elemSize is T's static encoded size (or a lower bound for variable-size
// elements); count*elemSize is bounded by MaxAlloc before the slice is
// allocated. The first element error aborts the whole sequence.
func ReadSequence[T any, PT interface {
	*T
	Decodable
}](r io.Reader, elemSize int) ([]T, error) {
	// no encoded element is smaller than one byte; a zero or negative
	// elemSize must not disable the allocation bound
	if elemSize < 1 {
		elemSize = 1
	}
	var l VarInt
	if err := l.Decode(r); err != nil {
		return nil, err
	}
	if _, err := seqByteSize(uint64(l), elemSize); err != nil {
		return nil, err
	}
	elems := make([]T, 0, int(l))
	for i := uint64(0); i < uint64(l); i++ {
		var e T
		if err := PT(&e).Decode(r); err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	return elems, nil
}
