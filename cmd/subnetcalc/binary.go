package main

import (
	"fmt"
	"net/netip"
	"strings"
)

const bitsPerOctet = 8

// binaryString renders v as a 32-character bitstring.
func binaryString(v uint32) string {
	return fmt.Sprintf("%032b", v)
}

// formatBinary renders v as four dot-separated octets of bits.
func formatBinary(v uint32) string {
	s := binaryString(v)
	parts := make([]string, 0, 4)
	for i := 0; i < maxPrefixLength; i += bitsPerOctet {
		parts = append(parts, s[i:i+bitsPerOctet])
	}
	return strings.Join(parts, ".")
}

// binaryVisual renders the network address in binary with a '|' marking the
// network/host boundary inside the octet it falls in.
func binaryVisual(p netip.Prefix) string {
	p = p.Masked()
	s := binaryString(ipv4ToU32(p.Addr()))
	prefixLen := p.Bits()
	parts := make([]string, 0, 4)
	for i := 0; i < maxPrefixLength; i += bitsPerOctet {
		octet := s[i : i+bitsPerOctet]
		remaining := prefixLen - i
		if remaining > 0 && remaining < bitsPerOctet {
			octet = octet[:remaining] + "|" + octet[remaining:]
		}
		parts = append(parts, octet)
	}
	return strings.Join(parts, ".")
}

// prefixBinaryMask shows the network part as ones and the host part with the
// actual address bits.
func prefixBinaryMask(p netip.Prefix) string {
	p = p.Masked()
	s := binaryString(ipv4ToU32(p.Addr()))
	prefixLen := p.Bits()
	parts := make([]string, 0, 4)
	for i := 0; i < maxPrefixLength; i += bitsPerOctet {
		octet := s[i : i+bitsPerOctet]
		remaining := prefixLen - i
		switch {
		case remaining >= bitsPerOctet:
			parts = append(parts, strings.Repeat("1", bitsPerOctet))
		case remaining > 0:
			parts = append(parts, strings.Repeat("1", remaining)+octet[remaining:])
		default:
			parts = append(parts, octet)
		}
	}
	return strings.Join(parts, ".")
}

// prefixPatternMask renders N for matching network bits and H for host bits.
func prefixPatternMask(prefixLen int) string {
	s := strings.Repeat("N", prefixLen) + strings.Repeat("H", maxPrefixLength-prefixLen)
	parts := make([]string, 0, 4)
	for i := 0; i < maxPrefixLength; i += bitsPerOctet {
		parts = append(parts, s[i:i+bitsPerOctet])
	}
	return strings.Join(parts, ".")
}

func hexString(v uint32) string {
	return fmt.Sprintf("%08X", v)
}
