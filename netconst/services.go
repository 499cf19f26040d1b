// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

package netconst

import (
	"fmt"
	"io"
	"strings"

	"github.com/ssbc/peerwire"
)

// ServiceFlags is the bitmask of capabilities a node advertises in its
// version message. Encoded as a u64.
type ServiceFlags uint64

const (
	// ServiceNone advertises nothing.
	ServiceNone ServiceFlags = 0
	// ServiceNetwork means the node can serve the full block chain.
	ServiceNetwork ServiceFlags = 1 << 0
	// ServiceGetUTXO means the node supports the getutxo message.
	ServiceGetUTXO ServiceFlags = 1 << 1
	// ServiceBloom means the node supports bloom-filtered connections.
	ServiceBloom ServiceFlags = 1 << 2
	// ServiceWitness means the node can serve witness data.
	ServiceWitness ServiceFlags = 1 << 3
	// ServiceNetworkLimited means the node serves only recent blocks.
	ServiceNetworkLimited ServiceFlags = 1 << 10
)

// Has reports whether every bit in flags is set.
func (f ServiceFlags) Has(flags ServiceFlags) bool {
	return f&flags == flags
}

// Add sets the bits in flags and returns the result.
func (f *ServiceFlags) Add(flags ServiceFlags) ServiceFlags {
	*f |= flags
	return *f
}

func (f ServiceFlags) String() string {
	if f == ServiceNone {
		return "ServiceFlags(None)"
	}
	named := []struct {
		flag ServiceFlags
		name string
	}{
		{ServiceNetwork, "Network"},
		{ServiceGetUTXO, "GetUTXO"},
		{ServiceBloom, "Bloom"},
		{ServiceWitness, "Witness"},
		{ServiceNetworkLimited, "NetworkLimited"},
	}

	var parts []string
	rest := f
	for _, n := range named {
		if rest.Has(n.flag) {
			parts = append(parts, n.name)
			rest ^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint64(rest)))
	}
	return "ServiceFlags(" + strings.Join(parts, "|") + ")"
}

func (f ServiceFlags) Encode(w io.Writer) (int, error) {
	return peerwire.WriteU64(w, uint64(f))
}

func (f *ServiceFlags) Decode(r io.Reader) error {
	v, err := peerwire.ReadU64(r)
	if err != nil {
		return err
	}
	*f = ServiceFlags(v)
	return nil
}
