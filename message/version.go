// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

// Package message defines the protocol's messages purely by composing the
// peerwire codecs: each type lists its fields once, in wire order, and
// derives both directions from that list. No message adds wire-format
// logic of its own.
package message

import (
	"io"

	"github.com/ssbc/peerwire"
	"github.com/ssbc/peerwire/netconst"
)

// VersionMessage opens the handshake and describes the sending peer.
type VersionMessage struct {
	Version     uint32
	Services    netconst.ServiceFlags
	Timestamp   int64
	Receiver    NetAddress
	Sender      NetAddress
	Nonce       uint64
	UserAgent   string
	StartHeight int32

	// Relay asks the receiver to forward transactions; bandwidth-limited
	// peers leave it false until they have installed a filter.
	Relay bool
}

// NewVersionMessage fills in the current protocol version and leaves Relay
// off.
func NewVersionMessage(services netconst.ServiceFlags, timestamp int64, receiver, sender NetAddress, nonce uint64, userAgent string, startHeight int32) VersionMessage {
	return VersionMessage{
		Version:     netconst.ProtocolVersion,
		Services:    services,
		Timestamp:   timestamp,
		Receiver:    receiver,
		Sender:      sender,
		Nonce:       nonce,
		UserAgent:   userAgent,
		StartHeight: startHeight,
	}
}

func (m *VersionMessage) fields() []peerwire.Field {
	return []peerwire.Field{
		(*peerwire.U32)(&m.Version),
		&m.Services,
		(*peerwire.I64)(&m.Timestamp),
		&m.Receiver,
		&m.Sender,
		(*peerwire.U64)(&m.Nonce),
		(*peerwire.VarString)(&m.UserAgent),
		(*peerwire.I32)(&m.StartHeight),
		(*peerwire.Bool)(&m.Relay),
	}
}

func (m *VersionMessage) Encode(w io.Writer) (int, error) {
	return peerwire.EncodeAll(w, m.fields()...)
}

func (m *VersionMessage) Decode(r io.Reader) error {
	return peerwire.DecodeAll(r, m.fields()...)
}

// PingMessage carries a nonce echoed back by pong.
type PingMessage struct {
	Nonce uint64
}

func (m *PingMessage) Encode(w io.Writer) (int, error) {
	return peerwire.WriteU64(w, m.Nonce)
}

func (m *PingMessage) Decode(r io.Reader) error {
	n, err := peerwire.ReadU64(r)
	if err != nil {
		return err
	}
	m.Nonce = n
	return nil
}

// PongMessage answers a ping with the same nonce.
type PongMessage struct {
	Nonce uint64
}

func (m *PongMessage) Encode(w io.Writer) (int, error) {
	return peerwire.WriteU64(w, m.Nonce)
}

func (m *PongMessage) Decode(r io.Reader) error {
	n, err := peerwire.ReadU64(r)
	if err != nil {
		return err
	}
	m.Nonce = n
	return nil
}
