// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

package message

import (
	"io"

	"github.com/ssbc/peerwire"
	"github.com/ssbc/peerwire/netconst"
)

// DigestFunc produces the 4-byte checksum of a payload. Hashing is not
// this layer's business; the transport supplies whatever digest the
// protocol mandates (double SHA-256 truncated to 4 bytes, in practice).
type DigestFunc func([]byte) [4]byte

// RawMessage is the envelope around every payload on the wire:
//
//	magic    u32           which network this belongs to
//	command  12 bytes      null-padded message name
//	length   u32           payload size in bytes
//	checksum 4 bytes       digest of the payload
//	payload  length bytes
//
// The payload stays opaque here; callers dispatch on Command and decode it
// with the matching message type.
type RawMessage struct {
	Network  netconst.Network
	Command  CommandString
	Checksum [4]byte
	Payload  []byte
}

// NewRawMessage builds an envelope for payload, checksummed with digest.
func NewRawMessage(network netconst.Network, command CommandString, payload []byte, digest DigestFunc) RawMessage {
	return RawMessage{
		Network:  network,
		Command:  command,
		Checksum: digest(payload),
		Payload:  payload,
	}
}

func (m *RawMessage) Encode(w io.Writer) (int, error) {
	n, err := m.Network.Encode(w)
	if err != nil {
		return n, err
	}
	nn, err := m.Command.Encode(w)
	n += nn
	if err != nil {
		return n, err
	}
	nn, err = peerwire.WriteU32(w, uint32(len(m.Payload)))
	n += nn
	if err != nil {
		return n, err
	}
	nn, err = peerwire.WriteBytes(w, m.Checksum[:])
	n += nn
	if err != nil {
		return n, err
	}
	nn, err = peerwire.WriteBytes(w, m.Payload)
	return n + nn, err
}

// Decode reads one envelope. An unknown magic or command is rejected, and
// the declared payload length is bounded by peerwire.MaxAlloc before the
// payload buffer is allocated. The checksum is read as data; call
// VerifyChecksum once a digest is at hand.
func (m *RawMessage) Decode(r io.Reader) error {
	if err := m.Network.Decode(r); err != nil {
		return err
	}
	if err := m.Command.Decode(r); err != nil {
		return err
	}
	if _, err := ParseCommand(string(m.Command)); err != nil {
		return err
	}
	length, err := peerwire.ReadU32(r)
	if err != nil {
		return err
	}
	if uint64(length) > peerwire.MaxAlloc {
		return peerwire.OversizedAllocError{Requested: uint64(length), Max: peerwire.MaxAlloc}
	}
	if err := peerwire.ReadFull(r, m.Checksum[:]); err != nil {
		return err
	}
	m.Payload = make([]byte, length)
	return peerwire.ReadFull(r, m.Payload)
}

// ReadMessage decodes one envelope and requires it to belong to expected's
// network.
func ReadMessage(r io.Reader, expected netconst.Network) (RawMessage, error) {
	var m RawMessage
	if err := m.Decode(r); err != nil {
		if unknown, ok := err.(peerwire.UnknownMagicError); ok {
			return m, peerwire.UnexpectedMagicError{
				Expected: expected.Magic(),
				Actual:   uint32(unknown),
			}
		}
		return m, err
	}
	if m.Network != expected {
		return m, peerwire.UnexpectedMagicError{
			Expected: expected.Magic(),
			Actual:   m.Network.Magic(),
		}
	}
	return m, nil
}

// VerifyChecksum recomputes the payload digest and compares it to the
// checksum carried in the envelope.
func (m *RawMessage) VerifyChecksum(digest DigestFunc) error {
	want := digest(m.Payload)
	if want != m.Checksum {
		return peerwire.ChecksumError{Expected: want, Actual: m.Checksum}
	}
	return nil
}
