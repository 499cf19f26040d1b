// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

// Package endian converts between byte slices and fixed-width integers in
// both wire layouts. Every multi-byte value in the protocol goes through
// these functions, so host byte order can never leak onto the wire.
//
// All functions panic if the slice length doesn't match the integer width.
// That is a bug in the caller, not a decode error; the adapters in the root
// package always pass correctly sized buffers.
package endian

import "fmt"

func mustLen(b []byte, want int) {
	if len(b) != want {
		panic(fmt.Sprintf("endian: got %d byte slice, want %d", len(b), want))
	}
}

// SliceToU16LE interprets b as a 16-bit little-endian unsigned integer.
func SliceToU16LE(b []byte) uint16 {
	mustLen(b, 2)
	return uint16(b[0]) | uint16(b[1])<<8
}

// SliceToU32LE interprets b as a 32-bit little-endian unsigned integer.
func SliceToU32LE(b []byte) uint32 {
	mustLen(b, 4)
	var v uint32
	for i := 0; i < 4; i++ {
		v |= uint32(b[i]) << (8 * i)
	}
	return v
}

// SliceToU64LE interprets b as a 64-bit little-endian unsigned integer.
func SliceToU64LE(b []byte) uint64 {
	mustLen(b, 8)
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

// U16ToSliceLE writes v into b in little-endian order.
func U16ToSliceLE(b []byte, v uint16) {
	mustLen(b, 2)
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

// U32ToSliceLE writes v into b in little-endian order.
func U32ToSliceLE(b []byte, v uint32) {
	mustLen(b, 4)
	for i := 0; i < 4; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

// U64ToSliceLE writes v into b in little-endian order.
func U64ToSliceLE(b []byte, v uint64) {
	mustLen(b, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

// SliceToU16BE interprets b as a 16-bit big-endian unsigned integer.
// The protocol is little-endian except for port numbers in peer addresses.
func SliceToU16BE(b []byte) uint16 {
	mustLen(b, 2)
	return uint16(b[0])<<8 | uint16(b[1])
}

// SliceToU32BE interprets b as a 32-bit big-endian unsigned integer.
func SliceToU32BE(b []byte) uint32 {
	mustLen(b, 4)
	var v uint32
	for i := 0; i < 4; i++ {
		v |= uint32(b[i]) << (8 * (3 - i))
	}
	return v
}

// U16ToSliceBE writes v into b in big-endian order.
func U16ToSliceBE(b []byte, v uint16) {
	mustLen(b, 2)
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

// U32ToSliceBE writes v into b in big-endian order.
func U32ToSliceBE(b []byte, v uint32) {
	mustLen(b, 4)
	for i := 0; i < 4; i++ {
		b[i] = byte(v >> (8 * (3 - i)))
	}
}
