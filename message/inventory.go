// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

package message

import (
	"io"

	"github.com/ssbc/peerwire"
)

// InvType says what kind of object an inventory entry announces.
type InvType uint32

const (
	InvTypeError        InvType = 0
	InvTypeTx           InvType = 1
	InvTypeBlock        InvType = 2
	InvTypeWitnessTx    InvType = 0x40000001
	InvTypeWitnessBlock InvType = 0x40000002
)

func (t InvType) Encode(w io.Writer) (int, error) {
	return peerwire.WriteU32(w, uint32(t))
}

func (t *InvType) Decode(r io.Reader) error {
	v, err := peerwire.ReadU32(r)
	if err != nil {
		return err
	}
	switch InvType(v) {
	case InvTypeError, InvTypeTx, InvTypeBlock, InvTypeWitnessTx, InvTypeWitnessBlock:
		*t = InvType(v)
		return nil
	default:
		return peerwire.UnknownInventoryTypeError(v)
	}
}

// Inventory announces one object by type and hash.
type Inventory struct {
	Type InvType
	Hash peerwire.Bytes32
}

// invSize is Inventory's static encoded size, used to bound inv list
// allocations.
const invSize = 36

func (i *Inventory) fields() []peerwire.Field {
	return []peerwire.Field{&i.Type, &i.Hash}
}

func (i *Inventory) Encode(w io.Writer) (int, error) {
	return peerwire.EncodeAll(w, i.fields()...)
}

func (i *Inventory) Decode(r io.Reader) error {
	return peerwire.DecodeAll(r, i.fields()...)
}

// InvMessage carries the announcements of an inv, getdata or notfound
// message.
type InvMessage struct {
	Entries []Inventory
}

func (m *InvMessage) Encode(w io.Writer) (int, error) {
	elems := make([]peerwire.Encodable, len(m.Entries))
	for i := range m.Entries {
		elems[i] = &m.Entries[i]
	}
	return peerwire.WriteSequence(w, elems)
}

func (m *InvMessage) Decode(r io.Reader) error {
	entries, err := peerwire.ReadSequence[Inventory, *Inventory](r, invSize)
	if err != nil {
		return err
	}
	m.Entries = entries
	return nil
}
