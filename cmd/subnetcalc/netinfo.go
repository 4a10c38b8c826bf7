package main

import "net/netip"

// NetworkSummary collects the derived facts about a single network.
type NetworkSummary struct {
	Network      netip.Prefix
	NetworkAddr  netip.Addr
	Broadcast    netip.Addr
	Netmask      string
	Wildcard     string
	PrefixLength int
	NumAddresses uint64
	UsableHosts  uint64
	FirstUsable  netip.Addr
	LastUsable   netip.Addr
}

func networkSummary(p netip.Prefix) NetworkSummary {
	p = p.Masked()
	mask, _ := prefixToMask(p.Bits())
	return NetworkSummary{
		Network:      p,
		NetworkAddr:  p.Addr(),
		Broadcast:    broadcastOf(p),
		Netmask:      u32ToIPv4(mask).String(),
		Wildcard:     u32ToIPv4(maskToWildcard(mask)).String(),
		PrefixLength: p.Bits(),
		NumAddresses: prefixSize(p.Bits()),
		UsableHosts:  hostsPerPrefix(p.Bits()),
		FirstUsable:  firstUsable(p),
		LastUsable:   lastUsable(p),
	}
}

// Membership reports whether an address falls inside a network and, when it
// does, its zero-based position from the network address and from the
// broadcast.
type Membership struct {
	Addr            netip.Addr
	InNetwork       bool
	Summary         NetworkSummary
	HostPosition    uint64
	PositionFromEnd uint64
}

func checkMembership(addr netip.Addr, network netip.Prefix) Membership {
	network = network.Masked()
	m := Membership{
		Addr:      addr,
		InNetwork: network.Contains(addr),
		Summary:   networkSummary(network),
	}
	if m.InNetwork {
		m.HostPosition = uint64(ipv4ToU32(addr) - ipv4ToU32(network.Addr()))
		m.PositionFromEnd = m.Summary.NumAddresses - m.HostPosition - 1
	}
	return m
}
