// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

// Package netconst holds the protocol constants: the known networks with
// their magic values, the protocol version, and the service flag bitmask.
//
// Network encodes as its 4-byte magic, so peers on different networks
// reject each other's messages at the envelope.
package netconst

import (
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/ssbc/peerwire"
)

// ProtocolVersion is the protocol version carried in version messages.
const ProtocolVersion uint32 = 70001

// Network identifies which logical network a message belongs to.
type Network uint8

const (
	// Bitcoin is the production network.
	Bitcoin Network = iota
	// Testnet is the public test network.
	Testnet
	// Regtest is the local regression-test network.
	Regtest
)

// Magic returns the network's 4-byte magic as a u32 (little-endian on the
// wire, so bitcoin's 0xD9B4BEF9 appears as F9 BE B4 D9).
func (n Network) Magic() uint32 {
	switch n {
	case Bitcoin:
		return 0xD9B4BEF9
	case Testnet:
		return 0x0709110B
	case Regtest:
		return 0xDAB5BFFA
	default:
		panic("netconst: invalid network")
	}
}

// FromMagic returns the network a magic value belongs to.
func FromMagic(magic uint32) (Network, error) {
	for _, n := range []Network{Bitcoin, Testnet, Regtest} {
		if n.Magic() == magic {
			return n, nil
		}
	}
	return 0, peerwire.UnknownMagicError(magic)
}

func (n Network) String() string {
	switch n {
	case Bitcoin:
		return "bitcoin"
	case Testnet:
		return "testnet"
	case Regtest:
		return "regtest"
	default:
		return "invalid"
	}
}

// ParseNetwork is the inverse of String.
func ParseNetwork(s string) (Network, error) {
	switch strings.ToLower(s) {
	case "bitcoin":
		return Bitcoin, nil
	case "testnet":
		return Testnet, nil
	case "regtest":
		return Regtest, nil
	default:
		return 0, errors.Errorf("netconst: unknown network %q", s)
	}
}

func (n Network) Encode(w io.Writer) (int, error) {
	return peerwire.WriteU32(w, n.Magic())
}

func (n *Network) Decode(r io.Reader) error {
	magic, err := peerwire.ReadU32(r)
	if err != nil {
		return err
	}
	v, err := FromMagic(magic)
	if err != nil {
		return err
	}
	*n = v
	return nil
}
