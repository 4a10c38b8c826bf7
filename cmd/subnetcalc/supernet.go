package main

import (
	"math/bits"
	"net/netip"

	"go4.org/netipx"
)

// parseNetworks parses best-effort, silently discarding entries that are not
// valid IPv4 networks.
func parseNetworks(networks []string) []netip.Prefix {
	out := make([]netip.Prefix, 0, len(networks))
	for _, raw := range networks {
		p, err := parseNetwork(raw)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

// aggregateNetworks merges the valid inputs into the minimal list of CIDR
// blocks covering their union, in ascending address order.
func aggregateNetworks(networks []string) []netip.Prefix {
	nets := parseNetworks(networks)
	if len(nets) == 0 {
		return nil
	}
	var b netipx.IPSetBuilder
	for _, p := range nets {
		b.AddPrefix(p)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil
	}
	return set.Prefixes()
}

// findSupernet returns the smallest single network containing every valid
// input, or false when nothing parses.
func findSupernet(networks []string) (netip.Prefix, bool) {
	nets := parseNetworks(networks)
	if len(nets) == 0 {
		return netip.Prefix{}, false
	}

	minNet := ipv4ToU32(nets[0].Addr())
	maxBcast := ipv4ToU32(broadcastOf(nets[0]))
	for _, p := range nets[1:] {
		if v := ipv4ToU32(p.Addr()); v < minNet {
			minNet = v
		}
		if v := ipv4ToU32(broadcastOf(p)); v > maxBcast {
			maxBcast = v
		}
	}

	prefixLen := maxPrefixLength
	if x := minNet ^ maxBcast; x != 0 {
		prefixLen = bits.LeadingZeros32(x)
	}
	mask, _ := prefixToMask(prefixLen)
	return netip.PrefixFrom(u32ToIPv4(minNet&mask), prefixLen), true
}

// unionSize computes the exact number of addresses in the union of the
// given networks via interval arithmetic, without enumeration.
func unionSize(nets []netip.Prefix) uint64 {
	var b netipx.IPSetBuilder
	for _, p := range nets {
		b.AddPrefix(p)
	}
	set, err := b.IPSet()
	if err != nil {
		return 0
	}
	var n uint64
	for _, r := range set.Ranges() {
		n += uint64(ipv4ToU32(r.To())-ipv4ToU32(r.From())) + 1
	}
	return n
}

func totalSize(nets []netip.Prefix) uint64 {
	var n uint64
	for _, p := range nets {
		n += prefixSize(p.Bits())
	}
	return n
}

// checkOverlap reports whether the valid inputs overlap and by how many
// addresses. Small inputs are counted by direct enumeration; past
// largeNetworkThreshold the count comes from interval arithmetic, which is
// exact without touching individual addresses.
func checkOverlap(networks []string) (bool, uint64) {
	nets := parseNetworks(networks)
	if len(nets) < 2 {
		return false, 0
	}
	total := totalSize(nets)

	var unique uint64
	if total <= largeNetworkThreshold {
		unique = uint64(len(enumerateAddresses(nets)))
	} else {
		unique = unionSize(nets)
	}
	overlap := total - unique
	return overlap > 0, overlap
}

// uniqueAddressCount returns the exact size of the union of the valid
// inputs, picking the counting strategy by total size like checkOverlap.
func uniqueAddressCount(networks []string) uint64 {
	nets := parseNetworks(networks)
	if len(nets) == 0 {
		return 0
	}
	if totalSize(nets) <= largeNetworkThreshold {
		return uint64(len(enumerateAddresses(nets)))
	}
	return unionSize(nets)
}

func enumerateAddresses(nets []netip.Prefix) map[uint32]struct{} {
	seen := make(map[uint32]struct{})
	for _, p := range nets {
		start := uint64(ipv4ToU32(p.Masked().Addr()))
		for off := uint64(0); off < prefixSize(p.Bits()); off++ {
			seen[uint32(start+off)] = struct{}{}
		}
	}
	return seen
}

// commonPrefix returns the longest prefix on which every valid input's
// network address agrees, with the resulting base network. Returns false
// when nothing parses or no bits agree.
func commonPrefix(networks []string) (netip.Prefix, int, bool) {
	nets := parseNetworks(networks)
	if len(nets) == 0 {
		return netip.Prefix{}, 0, false
	}

	ref := ipv4ToU32(nets[0].Addr())
	prefixLen := maxPrefixLength
	for _, p := range nets[1:] {
		if x := ref ^ ipv4ToU32(p.Addr()); x != 0 {
			if l := bits.LeadingZeros32(x); l < prefixLen {
				prefixLen = l
			}
		}
	}
	if prefixLen == 0 {
		return netip.Prefix{}, 0, false
	}
	mask, _ := prefixToMask(prefixLen)
	return netip.PrefixFrom(u32ToIPv4(ref&mask), prefixLen), prefixLen, true
}
