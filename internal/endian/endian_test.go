// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLittleEndian(t *testing.T) {
	r := require.New(t)

	r.EqualValues(0xdead, SliceToU16LE([]byte{0xad, 0xde}))
	r.EqualValues(0xdeadbeef, SliceToU32LE([]byte{0xef, 0xbe, 0xad, 0xde}))
	r.EqualValues(uint64(0x1badcafedeadbeef),
		SliceToU64LE([]byte{0xef, 0xbe, 0xad, 0xde, 0xfe, 0xca, 0xad, 0x1b}))

	var b2 [2]byte
	U16ToSliceLE(b2[:], 0xdead)
	r.Equal([]byte{0xad, 0xde}, b2[:])

	var b4 [4]byte
	U32ToSliceLE(b4[:], 0xdeadbeef)
	r.Equal([]byte{0xef, 0xbe, 0xad, 0xde}, b4[:])

	var b8 [8]byte
	U64ToSliceLE(b8[:], 0x1badcafedeadbeef)
	r.Equal([]byte{0xef, 0xbe, 0xad, 0xde, 0xfe, 0xca, 0xad, 0x1b}, b8[:])
}

func TestBigEndian(t *testing.T) {
	r := require.New(t)

	r.EqualValues(0xdead, SliceToU16BE([]byte{0xde, 0xad}))
	r.EqualValues(0xdeadbeef, SliceToU32BE([]byte{0xde, 0xad, 0xbe, 0xef}))

	var b2 [2]byte
	U16ToSliceBE(b2[:], 0xdead)
	r.Equal([]byte{0xde, 0xad}, b2[:])

	var b4 [4]byte
	U32ToSliceBE(b4[:], 0xdeadbeef)
	r.Equal([]byte{0xde, 0xad, 0xbe, 0xef}, b4[:])
}

func TestWrongLengthPanics(t *testing.T) {
	r := require.New(t)

	r.Panics(func() { SliceToU32LE([]byte{1, 2, 3}) })
	r.Panics(func() { U64ToSliceLE(make([]byte, 4), 1) })
}
