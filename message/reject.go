// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

package message

import (
	"io"

	"github.com/ssbc/peerwire"
)

// RejectReason codes why a peer rejected one of our messages.
type RejectReason uint8

const (
	RejectMalformed   RejectReason = 0x01
	RejectInvalid     RejectReason = 0x10
	RejectObsolete    RejectReason = 0x11
	RejectDuplicate   RejectReason = 0x12
	RejectNonStandard RejectReason = 0x40
	RejectDust        RejectReason = 0x41
	RejectFee         RejectReason = 0x42
	RejectCheckpoint  RejectReason = 0x43
)

func (c RejectReason) Encode(w io.Writer) (int, error) {
	return peerwire.WriteU8(w, uint8(c))
}

func (c *RejectReason) Decode(r io.Reader) error {
	v, err := peerwire.ReadU8(r)
	if err != nil {
		return err
	}
	switch RejectReason(v) {
	case RejectMalformed, RejectInvalid, RejectObsolete, RejectDuplicate,
		RejectNonStandard, RejectDust, RejectFee, RejectCheckpoint:
		*c = RejectReason(v)
		return nil
	default:
		return peerwire.ParseError("unknown reject code")
	}
}

// RejectMessage tells a peer which message was rejected and why. Hash is
// the id of the rejected object, zero where not applicable.
type RejectMessage struct {
	Message string
	Code    RejectReason
	Reason  string
	Hash    peerwire.Bytes32
}

func (m *RejectMessage) fields() []peerwire.Field {
	return []peerwire.Field{
		(*peerwire.VarString)(&m.Message),
		&m.Code,
		(*peerwire.VarString)(&m.Reason),
		&m.Hash,
	}
}

func (m *RejectMessage) Encode(w io.Writer) (int, error) {
	return peerwire.EncodeAll(w, m.fields()...)
}

func (m *RejectMessage) Decode(r io.Reader) error {
	return peerwire.DecodeAll(r, m.fields()...)
}
