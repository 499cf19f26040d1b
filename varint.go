// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

package peerwire

import "io"

// VarInt marker bytes selecting the 3, 5 and 9 byte length classes.
const (
	varIntU16 = 0xFD
	varIntU32 = 0xFE
	varIntU64 = 0xFF
)

// VarInt is the protocol's variable-length unsigned integer, used for the
// element counts of every length-prefixed structure. The length class is
// chosen by magnitude:
//
//	<= 0xFC                 1 byte, the value itself
//	<= 0xFFFF               0xFD + 2 bytes little-endian
//	<= 0xFFFFFFFF           0xFE + 4 bytes little-endian
//	otherwise               0xFF + 8 bytes little-endian
type VarInt uint64

// Size returns the encoded length in bytes.
func (v VarInt) Size() int {
	switch {
	case v <= 0xFC:
		return 1
	case v <= 0xFFFF:
		return 3
	case v <= 0xFFFFFFFF:
		return 5
	default:
		return 9
	}
}

func (v VarInt) Encode(w io.Writer) (int, error) {
	switch {
	case v <= 0xFC:
		return WriteU8(w, uint8(v))
	case v <= 0xFFFF:
		n, err := WriteU8(w, varIntU16)
		if err != nil {
			return n, err
		}
		nn, err := WriteU16(w, uint16(v))
		return n + nn, err
	case v <= 0xFFFFFFFF:
		n, err := WriteU8(w, varIntU32)
		if err != nil {
			return n, err
		}
		nn, err := WriteU32(w, uint32(v))
		return n + nn, err
	default:
		n, err := WriteU8(w, varIntU64)
		if err != nil {
			return n, err
		}
		nn, err := WriteU64(w, uint64(v))
		return n + nn, err
	}
}

// Decode reads a VarInt and enforces minimal encoding: each marker's
// payload must exceed the previous length class's maximum, otherwise the
// value had a shorter legal form and the input is rejected with
// ErrNonCanonicalVarInt.
func (v *VarInt) Decode(r io.Reader) error {
	first, err := ReadU8(r)
	if err != nil {
		return err
	}
	switch first {
	case varIntU16:
		x, err := ReadU16(r)
		if err != nil {
			return err
		}
		if x <= 0xFC {
			return ErrNonCanonicalVarInt
		}
		*v = VarInt(x)
	case varIntU32:
		x, err := ReadU32(r)
		if err != nil {
			return err
		}
		if x <= 0xFFFF {
			return ErrNonCanonicalVarInt
		}
		*v = VarInt(x)
	case varIntU64:
		x, err := ReadU64(r)
		if err != nil {
			return err
		}
		if x <= 0xFFFFFFFF {
			return ErrNonCanonicalVarInt
		}
		*v = VarInt(x)
	default:
		*v = VarInt(first)
	}
	return nil
}
