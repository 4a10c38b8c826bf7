package main

import (
	"fmt"
	"math/bits"
	"net/netip"
	"strings"
)

func ipv4ToU32(a netip.Addr) uint32 {
	b := a.As4()
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func u32ToIPv4(v uint32) netip.Addr {
	return netip.AddrFrom4([4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

func parseAddr(raw string) (netip.Addr, error) {
	a, err := netip.ParseAddr(strings.TrimSpace(raw))
	if err != nil || !a.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: %s", errInvalidAddress, strings.TrimSpace(raw))
	}
	return a, nil
}

// parseNetwork accepts CIDR notation or a bare address (treated as /32).
// Host bits are silently truncated to the containing network.
func parseNetwork(raw string) (netip.Prefix, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "/") {
		a, err := parseAddr(raw)
		if err != nil {
			return netip.Prefix{}, fmt.Errorf("%w: %s", errInvalidNetwork, raw)
		}
		return netip.PrefixFrom(a, hostPrefix), nil
	}
	p, err := netip.ParsePrefix(raw)
	if err != nil || !p.Addr().Is4() {
		return netip.Prefix{}, fmt.Errorf("%w: %s", errInvalidNetwork, raw)
	}
	return p.Masked(), nil
}

func prefixToMask(prefixLen int) (uint32, error) {
	if prefixLen < minPrefixLength || prefixLen > maxPrefixLength {
		return 0, fmt.Errorf("%w: /%d must be between %d and %d", errInvalidPrefix, prefixLen, minPrefixLength, maxPrefixLength)
	}
	if prefixLen == 0 {
		return 0, nil
	}
	return ^uint32(0) << (maxPrefixLength - prefixLen), nil
}

// maskToPrefix rejects masks whose set bits are not a contiguous run of
// leading ones.
func maskToPrefix(mask uint32) (int, error) {
	ones := bits.OnesCount32(mask)
	canonical, _ := prefixToMask(ones)
	if mask != canonical {
		return 0, fmt.Errorf("%w: %s is not contiguous", errInvalidMask, u32ToIPv4(mask))
	}
	return ones, nil
}

func maskToWildcard(mask uint32) uint32 { return ^mask }

func wildcardToMask(wildcard uint32) uint32 { return ^wildcard }

// parseDottedQuad converts a dotted-quad string to its 32-bit value without
// any mask-shape validation.
func parseDottedQuad(raw string) (uint32, error) {
	a, err := parseAddr(raw)
	if err != nil {
		return 0, err
	}
	return ipv4ToU32(a), nil
}

func prefixSize(prefixLen int) uint64 {
	return uint64(1) << (maxPrefixLength - prefixLen)
}

func broadcastOf(p netip.Prefix) netip.Addr {
	p = p.Masked()
	last := uint64(ipv4ToU32(p.Addr())) + prefixSize(p.Bits()) - 1
	return u32ToIPv4(uint32(last))
}

// hostsPerPrefix returns the usable host count for a prefix length:
// size-2 below /31, 2 for /31 (RFC 3021), 1 for /32.
func hostsPerPrefix(prefixLen int) uint64 {
	switch {
	case prefixLen == hostPrefix:
		return 1
	case prefixLen == pointToPointPrefix:
		return 2
	default:
		return prefixSize(prefixLen) - hostOverhead
	}
}

// requiredPrefix returns the longest prefix whose subnet still fits the
// requested hosts plus network/broadcast overhead.
func requiredPrefix(hosts int) int {
	need := uint64(hosts) + hostOverhead
	return maxPrefixLength - bits.Len64(need-1)
}

// subnetBits returns the number of extra prefix bits needed to carve n
// subnets (0 for n == 1).
func subnetBits(n int) int {
	return bits.Len64(uint64(n) - 1)
}

func firstUsable(p netip.Prefix) netip.Addr {
	p = p.Masked()
	if p.Bits() >= pointToPointPrefix {
		return p.Addr()
	}
	return u32ToIPv4(ipv4ToU32(p.Addr()) + 1)
}

func lastUsable(p netip.Prefix) netip.Addr {
	p = p.Masked()
	switch p.Bits() {
	case hostPrefix:
		return p.Addr()
	case pointToPointPrefix:
		return broadcastOf(p)
	default:
		return u32ToIPv4(ipv4ToU32(broadcastOf(p)) - 1)
	}
}

func netmaskString(prefixLen int) string {
	mask, _ := prefixToMask(prefixLen)
	return u32ToIPv4(mask).String()
}
