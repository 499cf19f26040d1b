// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

package peerwire

import (
	"errors"
	"fmt"
)

// ErrNonCanonicalVarInt is returned when a VarInt decodes to a value that
// should have used a shorter length class. Accepting such encodings would
// let two distinct byte sequences represent the same value, which breaks
// hash-based message identity.
var ErrNonCanonicalVarInt = errors.New("peerwire: non-canonical VarInt")

// ParseError reports a structural violation in the input with a static
// diagnostic, like trailing data after a complete decode or a string that
// isn't valid UTF-8.
type ParseError string

func (e ParseError) Error() string {
	return "peerwire: parse failed: " + string(e)
}

// OversizedAllocError is returned when a length prefix claims a structure
// larger than MaxAlloc. The check runs before any allocation happens.
type OversizedAllocError struct {
	Requested uint64
	Max       uint64
}

func (e OversizedAllocError) Error() string {
	return fmt.Sprintf("peerwire: allocation of %d bytes exceeds limit of %d", e.Requested, e.Max)
}

// UnexpectedMagicError is returned when a message header carries the magic
// of a different network than the one the caller expects.
type UnexpectedMagicError struct {
	Expected uint32
	Actual   uint32
}

func (e UnexpectedMagicError) Error() string {
	return fmt.Sprintf("peerwire: unexpected network magic %#08x, want %#08x", e.Actual, e.Expected)
}

// UnknownMagicError is returned when a magic value matches no known network.
type UnknownMagicError uint32

func (e UnknownMagicError) Error() string {
	return fmt.Sprintf("peerwire: unknown network magic %#08x", uint32(e))
}

// ChecksumError is returned when a message checksum doesn't match the
// digest of its payload.
type ChecksumError struct {
	Expected [4]byte
	Actual   [4]byte
}

func (e ChecksumError) Error() string {
	return fmt.Sprintf("peerwire: invalid checksum %x, want %x", e.Actual, e.Expected)
}

// UnsupportedSegwitFlagError is returned by transaction decoders for a
// segwit flag byte other than 0x01.
type UnsupportedSegwitFlagError byte

func (e UnsupportedSegwitFlagError) Error() string {
	return fmt.Sprintf("peerwire: unsupported segwit flag %#02x", byte(e))
}

// UnknownCommandError is returned for a command string outside the
// protocol's message table.
type UnknownCommandError string

func (e UnknownCommandError) Error() string {
	return fmt.Sprintf("peerwire: unknown command %q", string(e))
}

// UnknownInventoryTypeError is returned for an inventory type code outside
// the known set.
type UnknownInventoryTypeError uint32

func (e UnknownInventoryTypeError) Error() string {
	return fmt.Sprintf("peerwire: unknown inventory type %d", uint32(e))
}
