package main

import (
	"net/netip"
	"strconv"
	"strings"
)

type Classification struct {
	Addr      netip.Addr
	Class     string
	Type      string
	RangeInfo string
	CommType  string
	Binary    string
	Hex       string
	Decimal   uint32
	Octets    string
}

func addrClass(firstOctet int) string {
	switch {
	case firstOctet == loopbackOctet:
		return "Loopback (127)"
	case firstOctet >= classAStart && firstOctet <= classAEnd:
		return "Class A (1-126)"
	case firstOctet >= classBStart && firstOctet <= classBEnd:
		return "Class B (128-191)"
	case firstOctet >= classCStart && firstOctet <= classCEnd:
		return "Class C (192-223)"
	case firstOctet >= classDStart && firstOctet <= classDEnd:
		return "Class D (Multicast) (224-239)"
	case firstOctet >= classEStart && firstOctet <= classEEnd:
		return "Class E (Reserved) (240-255)"
	default:
		return "Unclassified (0)"
	}
}

func isRFC1918(o [4]byte) bool {
	switch {
	case o[0] == 10:
		return true
	case o[0] == 172 && o[1] >= 16 && o[1] <= 31:
		return true
	case o[0] == 192 && o[1] == 168:
		return true
	}
	return false
}

// classifyAddr reports class and scope for a single address. Scope checks
// run in a fixed order so that overlapping single-predicate ranges resolve
// deterministically: loopback, private, multicast, reserved, link-local,
// then public.
func classifyAddr(a netip.Addr) Classification {
	o := a.As4()
	v := ipv4ToU32(a)

	octets := make([]string, 4)
	for i, b := range o {
		octets[i] = strconv.Itoa(int(b))
	}

	c := Classification{
		Addr:      a,
		Class:     addrClass(int(o[0])),
		Binary:    formatBinary(v),
		Hex:       hexString(v),
		Decimal:   v,
		Octets:    strings.Join(octets, " | "),
		RangeInfo: "No specific range information available",
		CommType:  "Address is unicast (host to host communication)",
	}

	switch {
	case o[0] == loopbackOctet:
		c.Type = "Loopback Address"
		c.RangeInfo = "Address is in the loopback range 127.0.0.0/8"
	case isRFC1918(o):
		c.Type = "Private Address"
		switch {
		case o[0] == 10:
			c.RangeInfo = "Address is in the private range 10.0.0.0/8 (RFC1918)"
		case o[0] == 172:
			c.RangeInfo = "Address is in the private range 172.16.0.0/12 (RFC1918)"
		default:
			c.RangeInfo = "Address is in the private range 192.168.0.0/16 (RFC1918)"
		}
	case o[0] >= classDStart && o[0] <= classDEnd:
		c.Type = "Multicast Address"
		c.RangeInfo = "Address is used for multicast (one to many) communication"
		c.CommType = "Address is multicast (one to many communication)"
	case o[0] >= classEStart:
		c.Type = "Reserved Address"
		c.RangeInfo = "Address is reserved for special use"
	case o[0] == 169 && o[1] == 254:
		c.Type = "Link Local Address"
		c.RangeInfo = "Address is in the link-local range 169.254.0.0/16"
	default:
		c.Type = "Public Address"
		c.RangeInfo = "Address is publicly routable on the internet"
	}

	return c
}
