package main

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	notationCIDR     = "cidr"
	notationSubnet   = "subnet"
	notationWildcard = "wildcard"
	notationUnknown  = "unknown"
)

type Conversion struct {
	NotationType string
	PrefixLength int
	CIDR         string
	SubnetMask   string
	WildcardMask string
	BinaryMask   string
	HexMask      string
	NetworkBits  int
	HostBits     int
	MaxAddresses uint64
	UsableHosts  uint64
}

// maskOctets are the only octet values a contiguous mask can contain.
var maskOctets = map[int]bool{
	0: true, 128: true, 192: true, 224: true,
	240: true, 248: true, 252: true, 254: true, 255: true,
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func maskShaped(octets [4]int) bool {
	for _, o := range octets {
		if !maskOctets[o] {
			return false
		}
	}
	return octets[0] >= octets[1] && octets[1] >= octets[2] && octets[2] >= octets[3]
}

// detectNotation classifies the input as a CIDR prefix, a subnet-mask-like
// quad, or a wildcard-mask-like quad. A quad matching both shapes resolves
// as a subnet mask, so 0.0.0.0 is always /0 and 255.255.255.255 always /32.
func detectNotation(input string) string {
	input = strings.TrimSpace(input)

	if strings.HasPrefix(input, "/") && isDigits(input[1:]) {
		return notationCIDR
	}
	if isDigits(input) {
		return notationCIDR
	}

	parts := strings.Split(input, ".")
	if len(parts) != 4 {
		return notationUnknown
	}
	var octets [4]int
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil || v < 0 || v > 255 {
			return notationUnknown
		}
		octets[i] = v
	}

	if maskShaped(octets) {
		return notationSubnet
	}

	var inverse [4]int
	for i, o := range octets {
		inverse[i] = 255 - o
	}
	if maskShaped(inverse) {
		return notationWildcard
	}

	return notationUnknown
}

// convertNotation resolves any supported notation to every representation.
func convertNotation(input string) (Conversion, error) {
	input = strings.TrimSpace(input)

	var prefixLen int
	var kind string
	switch detectNotation(input) {
	case notationCIDR:
		kind = "CIDR"
		v, err := strconv.Atoi(strings.TrimPrefix(input, "/"))
		if err != nil {
			return Conversion{}, fmt.Errorf("%w: %s", errInvalidPrefix, input)
		}
		if _, err := prefixToMask(v); err != nil {
			return Conversion{}, err
		}
		prefixLen = v
	case notationSubnet:
		kind = "Subnet Mask"
		mask, err := parseDottedQuad(input)
		if err != nil {
			return Conversion{}, err
		}
		prefixLen, err = maskToPrefix(mask)
		if err != nil {
			return Conversion{}, err
		}
	case notationWildcard:
		kind = "Wildcard Mask"
		wildcard, err := parseDottedQuad(input)
		if err != nil {
			return Conversion{}, err
		}
		prefixLen, err = maskToPrefix(wildcardToMask(wildcard))
		if err != nil {
			return Conversion{}, err
		}
	default:
		return Conversion{}, fmt.Errorf("%w: %q", errUnknownNotation, input)
	}

	mask, _ := prefixToMask(prefixLen)
	return Conversion{
		NotationType: kind,
		PrefixLength: prefixLen,
		CIDR:         "/" + strconv.Itoa(prefixLen),
		SubnetMask:   u32ToIPv4(mask).String(),
		WildcardMask: u32ToIPv4(maskToWildcard(mask)).String(),
		BinaryMask:   formatBinary(mask),
		HexMask:      hexString(mask),
		NetworkBits:  prefixLen,
		HostBits:     maxPrefixLength - prefixLen,
		MaxAddresses: prefixSize(prefixLen),
		UsableHosts:  hostsPerPrefix(prefixLen),
	}, nil
}
