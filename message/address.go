// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

package message

import (
	"io"
	"net"

	"github.com/ssbc/peerwire"
	"github.com/ssbc/peerwire/internal/endian"
	"github.com/ssbc/peerwire/netconst"
)

// NetAddress describes one peer endpoint as carried in version and addr
// messages: advertised services, a 16-byte IP (IPv4 mapped into IPv6
// space), and the port. The port is the protocol's single big-endian
// field; everything else is little-endian.
type NetAddress struct {
	Services netconst.ServiceFlags
	IP       [16]byte
	Port     uint16
}

// NewNetAddress maps ip into the 16-byte wire form.
func NewNetAddress(services netconst.ServiceFlags, ip net.IP, port uint16) NetAddress {
	var a NetAddress
	a.Services = services
	copy(a.IP[:], ip.To16())
	a.Port = port
	return a
}

func (a NetAddress) Encode(w io.Writer) (int, error) {
	n, err := a.Services.Encode(w)
	if err != nil {
		return n, err
	}
	nn, err := peerwire.WriteBytes(w, a.IP[:])
	n += nn
	if err != nil {
		return n, err
	}
	var port [2]byte
	endian.U16ToSliceBE(port[:], a.Port)
	nn, err = peerwire.WriteBytes(w, port[:])
	return n + nn, err
}

func (a *NetAddress) Decode(r io.Reader) error {
	if err := a.Services.Decode(r); err != nil {
		return err
	}
	if err := peerwire.ReadFull(r, a.IP[:]); err != nil {
		return err
	}
	var port [2]byte
	if err := peerwire.ReadFull(r, port[:]); err != nil {
		return err
	}
	a.Port = endian.SliceToU16BE(port[:])
	return nil
}
