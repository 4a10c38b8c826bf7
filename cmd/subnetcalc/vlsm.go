package main

import (
	"fmt"
	"net/netip"
	"sort"
)

// VLSMSubnetInfo describes one demand-sized subnet allocation.
type VLSMSubnetInfo struct {
	Subnet      netip.Prefix
	NeededHosts int
	TotalHosts  uint64
}

type vlsmRequest struct {
	hosts  int
	prefix int
}

// planVLSM sizes one subnet per host requirement and packs them into the
// base network, largest first, with no gaps between consecutive
// allocations. It either allocates every request or fails before
// allocating any.
func planVLSM(base netip.Prefix, hostsRequired []int) ([]VLSMSubnetInfo, error) {
	if len(hostsRequired) == 0 {
		return nil, fmt.Errorf("at least one host requirement must be specified")
	}
	base = base.Masked()
	baseSize := prefixSize(base.Bits())

	requests := make([]vlsmRequest, 0, len(hostsRequired))
	for _, hosts := range hostsRequired {
		if hosts < 1 {
			return nil, fmt.Errorf("host requirements must be greater than 0")
		}
		if uint64(hosts)+hostOverhead > baseSize {
			return nil, fmt.Errorf("%w: %d hosts need %d addresses but the base /%d has %d",
				errInsufficientSpace, hosts, uint64(hosts)+hostOverhead, base.Bits(), baseSize)
		}
		requests = append(requests, vlsmRequest{hosts: hosts, prefix: requiredPrefix(hosts)})
	}

	// Largest subnets first keeps the packing contiguous and aligned.
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].prefix < requests[j].prefix
	})

	var totalNeeded uint64
	for _, r := range requests {
		totalNeeded += prefixSize(r.prefix)
	}
	if totalNeeded > baseSize {
		return nil, fmt.Errorf("%w: %d addresses requested, %d available",
			errCapacityExceeded, totalNeeded, baseSize)
	}

	out := make([]VLSMSubnetInfo, 0, len(requests))
	cursor := uint64(ipv4ToU32(base.Addr()))
	for _, r := range requests {
		subnet := netip.PrefixFrom(u32ToIPv4(uint32(cursor)), r.prefix)
		out = append(out, VLSMSubnetInfo{
			Subnet:      subnet,
			NeededHosts: r.hosts,
			TotalHosts:  hostsPerPrefix(r.prefix),
		})
		cursor += prefixSize(r.prefix)
	}
	return out, nil
}
