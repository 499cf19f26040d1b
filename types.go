// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

package peerwire

import "io"

// Wrapper types giving the built-in integers and bool the wire contract.
// Struct fields stay plain Go types; field lists convert through these,
// e.g. (*U32)(&m.Version).

type U8 uint8

func (v U8) Encode(w io.Writer) (int, error) { return WriteU8(w, uint8(v)) }

func (v *U8) Decode(r io.Reader) error {
	x, err := ReadU8(r)
	if err != nil {
		return err
	}
	*v = U8(x)
	return nil
}

type U16 uint16

func (v U16) Encode(w io.Writer) (int, error) { return WriteU16(w, uint16(v)) }

func (v *U16) Decode(r io.Reader) error {
	x, err := ReadU16(r)
	if err != nil {
		return err
	}
	*v = U16(x)
	return nil
}

type U32 uint32

func (v U32) Encode(w io.Writer) (int, error) { return WriteU32(w, uint32(v)) }

func (v *U32) Decode(r io.Reader) error {
	x, err := ReadU32(r)
	if err != nil {
		return err
	}
	*v = U32(x)
	return nil
}

type U64 uint64

func (v U64) Encode(w io.Writer) (int, error) { return WriteU64(w, uint64(v)) }

func (v *U64) Decode(r io.Reader) error {
	x, err := ReadU64(r)
	if err != nil {
		return err
	}
	*v = U64(x)
	return nil
}

type I32 int32

func (v I32) Encode(w io.Writer) (int, error) { return WriteI32(w, int32(v)) }

func (v *I32) Decode(r io.Reader) error {
	x, err := ReadI32(r)
	if err != nil {
		return err
	}
	*v = I32(x)
	return nil
}

type I64 int64

func (v I64) Encode(w io.Writer) (int, error) { return WriteI64(w, int64(v)) }

func (v *I64) Decode(r io.Reader) error {
	x, err := ReadI64(r)
	if err != nil {
		return err
	}
	*v = I64(x)
	return nil
}

// Bool encodes as one byte, 0x01 for true. Decode accepts any nonzero byte
// as true, so the round-trip law holds for values but not for arbitrary
// input bytes.
type Bool bool

func (v Bool) Encode(w io.Writer) (int, error) { return WriteBool(w, bool(v)) }

func (v *Bool) Decode(r io.Reader) error {
	x, err := ReadBool(r)
	if err != nil {
		return err
	}
	*v = Bool(x)
	return nil
}

// Fixed-size byte arrays carry no length prefix; the size is part of the
// type. The widths cover the protocol's short identifiers up through hash
// and compressed-key sizes.

type Bytes2 [2]byte

func (b Bytes2) Encode(w io.Writer) (int, error) { return WriteBytes(w, b[:]) }
func (b *Bytes2) Decode(r io.Reader) error       { return ReadFull(r, b[:]) }

type Bytes4 [4]byte

func (b Bytes4) Encode(w io.Writer) (int, error) { return WriteBytes(w, b[:]) }
func (b *Bytes4) Decode(r io.Reader) error       { return ReadFull(r, b[:]) }

type Bytes8 [8]byte

func (b Bytes8) Encode(w io.Writer) (int, error) { return WriteBytes(w, b[:]) }
func (b *Bytes8) Decode(r io.Reader) error       { return ReadFull(r, b[:]) }

type Bytes12 [12]byte

func (b Bytes12) Encode(w io.Writer) (int, error) { return WriteBytes(w, b[:]) }
func (b *Bytes12) Decode(r io.Reader) error       { return ReadFull(r, b[:]) }

type Bytes16 [16]byte

func (b Bytes16) Encode(w io.Writer) (int, error) { return WriteBytes(w, b[:]) }
func (b *Bytes16) Decode(r io.Reader) error       { return ReadFull(r, b[:]) }

type Bytes32 [32]byte

func (b Bytes32) Encode(w io.Writer) (int, error) { return WriteBytes(w, b[:]) }
func (b *Bytes32) Decode(r io.Reader) error       { return ReadFull(r, b[:]) }

type Bytes33 [33]byte

func (b Bytes33) Encode(w io.Writer) (int, error) { return WriteBytes(w, b[:]) }
func (b *Bytes33) Decode(r io.Reader) error       { return ReadFull(r, b[:]) }
