package main

import (
	"net/netip"

	"go4.org/netipx"
)

// RangeSummary is the minimal CIDR cover of an inclusive address range.
type RangeSummary struct {
	Start          netip.Addr
	End            netip.Addr
	TotalAddresses uint64
	Blocks         []netip.Prefix
}

// summarizeRange produces the minimal ordered list of CIDR blocks whose
// union is exactly [start,end]. Reversed endpoints are swapped.
func summarizeRange(start, end netip.Addr) RangeSummary {
	if start.Compare(end) > 0 {
		start, end = end, start
	}
	r := netipx.IPRangeFrom(start, end)
	return RangeSummary{
		Start:          start,
		End:            end,
		TotalAddresses: uint64(ipv4ToU32(end)-ipv4ToU32(start)) + 1,
		Blocks:         r.Prefixes(),
	}
}
