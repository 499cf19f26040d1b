// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

package message

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssbc/peerwire"
	"github.com/ssbc/peerwire/netconst"
)

// xorDigest stands in for the protocol's real checksum; the envelope only
// cares that the digest is deterministic.
func xorDigest(payload []byte) [4]byte {
	var sum [4]byte
	for i, b := range payload {
		sum[i%4] ^= b
	}
	return sum
}

func TestRawMessageRoundTrip(t *testing.T) {
	r := require.New(t)

	payload := peerwire.Serialize(&PingMessage{Nonce: 7})
	m := NewRawMessage(netconst.Bitcoin, CmdPing, payload, xorDigest)

	wire := peerwire.Serialize(&m)
	r.Equal([]byte{0xF9, 0xBE, 0xB4, 0xD9}, wire[:4])
	r.Len(wire, 4+CommandWidth+4+4+len(payload))

	got, err := ReadMessage(bytes.NewReader(wire), netconst.Bitcoin)
	r.NoError(err)
	r.Equal(m, got)
	r.NoError(got.VerifyChecksum(xorDigest))
}

func TestRawMessageWrongNetwork(t *testing.T) {
	r := require.New(t)

	m := NewRawMessage(netconst.Testnet, CmdVerack, nil, xorDigest)
	wire := peerwire.Serialize(&m)

	_, err := ReadMessage(bytes.NewReader(wire), netconst.Bitcoin)
	r.Error(err)

	mismatch, ok := err.(peerwire.UnexpectedMagicError)
	r.True(ok, "got %T: %v", err, err)
	r.Equal(netconst.Bitcoin.Magic(), mismatch.Expected)
	r.Equal(netconst.Testnet.Magic(), mismatch.Actual)
}

func TestRawMessageUnknownMagic(t *testing.T) {
	r := require.New(t)

	m := NewRawMessage(netconst.Bitcoin, CmdVerack, nil, xorDigest)
	wire := peerwire.Serialize(&m)
	copy(wire[:4], []byte{0x78, 0x56, 0x34, 0x12})

	_, err := ReadMessage(bytes.NewReader(wire), netconst.Bitcoin)
	r.Error(err)

	mismatch, ok := err.(peerwire.UnexpectedMagicError)
	r.True(ok, "got %T: %v", err, err)
	r.EqualValues(0x12345678, mismatch.Actual)
}

func TestRawMessageUnknownCommand(t *testing.T) {
	r := require.New(t)

	m := NewRawMessage(netconst.Bitcoin, CommandString("frobnicate"), nil, xorDigest)
	wire := peerwire.Serialize(&m)

	var got RawMessage
	err := got.Decode(bytes.NewReader(wire))
	r.Error(err)
	r.IsType(peerwire.UnknownCommandError(""), err)
}

func TestRawMessageOversizedPayload(t *testing.T) {
	r := require.New(t)

	m := NewRawMessage(netconst.Bitcoin, CmdBlock, []byte{1, 2, 3}, xorDigest)
	wire := peerwire.Serialize(&m)

	// the length field sits after magic and command
	lengthOff := 4 + CommandWidth
	wire[lengthOff] = 0xFF
	wire[lengthOff+1] = 0xFF
	wire[lengthOff+2] = 0xFF
	wire[lengthOff+3] = 0xFF

	var got RawMessage
	err := got.Decode(bytes.NewReader(wire))
	r.Error(err)
	r.IsType(peerwire.OversizedAllocError{}, err)
}

func TestRawMessageBadChecksum(t *testing.T) {
	r := require.New(t)

	m := NewRawMessage(netconst.Bitcoin, CmdPing, []byte{9, 9, 9, 9}, xorDigest)
	m.Checksum[0] ^= 0xFF

	err := m.VerifyChecksum(xorDigest)
	r.Error(err)

	bad, ok := err.(peerwire.ChecksumError)
	r.True(ok, "got %T: %v", err, err)
	r.Equal(xorDigest(m.Payload), bad.Expected)
	r.Equal(m.Checksum, bad.Actual)
}
