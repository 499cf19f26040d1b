// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

package peerwire

import (
	"io"

	"github.com/pkg/errors"

	"github.com/ssbc/peerwire/internal/endian"
)

// The adapters below give any byte sink or source the typed emit/read
// vocabulary the codecs are written against. All multi-byte integers are
// little-endian on the wire regardless of host order; the one big-endian
// field in the protocol (the port in a peer address) goes through
// internal/endian's BE functions directly.
//
// A failed write or read aborts the surrounding record's encode or decode;
// nothing at this layer retries or resumes.

// WriteU8 emits a single byte.
func WriteU8(w io.Writer, v uint8) (int, error) {
	n, err := w.Write([]byte{v})
	return n, errors.Wrap(err, "peerwire: failed to write u8")
}

// WriteU16 emits v as 2 bytes little-endian.
func WriteU16(w io.Writer, v uint16) (int, error) {
	var b [2]byte
	endian.U16ToSliceLE(b[:], v)
	n, err := w.Write(b[:])
	return n, errors.Wrap(err, "peerwire: failed to write u16")
}

// WriteU32 emits v as 4 bytes little-endian.
func WriteU32(w io.Writer, v uint32) (int, error) {
	var b [4]byte
	endian.U32ToSliceLE(b[:], v)
	n, err := w.Write(b[:])
	return n, errors.Wrap(err, "peerwire: failed to write u32")
}

// WriteU64 emits v as 8 bytes little-endian.
func WriteU64(w io.Writer, v uint64) (int, error) {
	var b [8]byte
	endian.U64ToSliceLE(b[:], v)
	n, err := w.Write(b[:])
	return n, errors.Wrap(err, "peerwire: failed to write u64")
}

// WriteI32 emits v as 4 bytes little-endian two's complement.
func WriteI32(w io.Writer, v int32) (int, error) {
	return WriteU32(w, uint32(v))
}

// WriteI64 emits v as 8 bytes little-endian two's complement.
func WriteI64(w io.Writer, v int64) (int, error) {
	return WriteU64(w, uint64(v))
}

// WriteBool emits 0x01 for true and 0x00 for false.
func WriteBool(w io.Writer, v bool) (int, error) {
	var b uint8
	if v {
		b = 1
	}
	return WriteU8(w, b)
}

// WriteBytes emits b as-is, with no length prefix.
func WriteBytes(w io.Writer, b []byte) (int, error) {
	n, err := w.Write(b)
	return n, errors.Wrap(err, "peerwire: failed to write bytes")
}

// ReadU8 reads a single byte.
func ReadU8(r io.Reader) (uint8, error) {
	var b [1]byte
	if err := ReadFull(r, b[:]); err != nil {
		return 0, errors.Wrap(err, "peerwire: failed to read u8")
	}
	return b[0], nil
}

// ReadU16 reads 2 bytes little-endian.
func ReadU16(r io.Reader) (uint16, error) {
	var b [2]byte
	if err := ReadFull(r, b[:]); err != nil {
		return 0, errors.Wrap(err, "peerwire: failed to read u16")
	}
	return endian.SliceToU16LE(b[:]), nil
}

// ReadU32 reads 4 bytes little-endian.
func ReadU32(r io.Reader) (uint32, error) {
	var b [4]byte
	if err := ReadFull(r, b[:]); err != nil {
		return 0, errors.Wrap(err, "peerwire: failed to read u32")
	}
	return endian.SliceToU32LE(b[:]), nil
}

// ReadU64 reads 8 bytes little-endian.
func ReadU64(r io.Reader) (uint64, error) {
	var b [8]byte
	if err := ReadFull(r, b[:]); err != nil {
		return 0, errors.Wrap(err, "peerwire: failed to read u64")
	}
	return endian.SliceToU64LE(b[:]), nil
}

// ReadI32 reads 4 bytes little-endian two's complement.
func ReadI32(r io.Reader) (int32, error) {
	v, err := ReadU32(r)
	return int32(v), err
}

// ReadI64 reads 8 bytes little-endian two's complement.
func ReadI64(r io.Reader) (int64, error) {
	v, err := ReadU64(r)
	return int64(v), err
}

// ReadBool reads one byte; any nonzero value is true.
func ReadBool(r io.Reader) (bool, error) {
	v, err := ReadU8(r)
	return v != 0, err
}

// ReadFull fills buf exactly, treating a short source as an error.
func ReadFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	return errors.Wrap(err, "peerwire: short read")
}
