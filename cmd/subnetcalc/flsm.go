package main

import (
	"fmt"
	"net/netip"
)

// SubnetInfo describes one fixed-length subnet of a base network.
type SubnetInfo struct {
	Subnet     netip.Prefix
	Index      int
	TotalHosts uint64
}

// splitByCount carves the base network into equal subnets sized for
// numSubnets. The address space is divided at the next power of two, and
// only the first numSubnets entries are returned; trailing subnets are
// discarded, not an error.
func splitByCount(base netip.Prefix, numSubnets int) ([]SubnetInfo, error) {
	if numSubnets < 1 {
		return nil, fmt.Errorf("number of subnets must be greater than 0")
	}
	base = base.Masked()
	newPrefix := base.Bits() + subnetBits(numSubnets)
	if newPrefix > maxUsablePrefix {
		return nil, fmt.Errorf("%w: cannot create %d subnets, the resulting prefix /%d exceeds the maximum usable prefix /%d",
			errInvalidPrefix, numSubnets, newPrefix, maxUsablePrefix)
	}
	if numSubnets > maxSubnetsToCreate {
		return nil, fmt.Errorf("%w: %d exceeds the limit of %d", errTooManySubnets, numSubnets, maxSubnetsToCreate)
	}
	return enumerateSubnets(base, newPrefix, numSubnets), nil
}

// splitByPrefix carves the base network into every subnet of the target
// prefix length.
func splitByPrefix(base netip.Prefix, newPrefix int) ([]SubnetInfo, error) {
	base = base.Masked()
	if newPrefix <= base.Bits() {
		return nil, fmt.Errorf("%w: /%d vs base /%d", errPrefixNotLarger, newPrefix, base.Bits())
	}
	if newPrefix > maxUsablePrefix {
		return nil, fmt.Errorf("%w: /%d is too small, the smallest supported prefix is /%d",
			errInvalidPrefix, newPrefix, maxUsablePrefix)
	}
	total := uint64(1) << (newPrefix - base.Bits())
	if total > maxSubnetsToCreate {
		return nil, fmt.Errorf("%w: /%d of /%d yields %d subnets, limit is %d",
			errTooManySubnets, newPrefix, base.Bits(), total, maxSubnetsToCreate)
	}
	return enumerateSubnets(base, newPrefix, int(total)), nil
}

func enumerateSubnets(base netip.Prefix, newPrefix, count int) []SubnetInfo {
	hosts := hostsPerPrefix(newPrefix)
	step := prefixSize(newPrefix)
	start := uint64(ipv4ToU32(base.Addr()))

	out := make([]SubnetInfo, 0, count)
	for i := 0; i < count; i++ {
		addr := u32ToIPv4(uint32(start + uint64(i)*step))
		out = append(out, SubnetInfo{
			Subnet:     netip.PrefixFrom(addr, newPrefix),
			Index:      i + 1,
			TotalHosts: hosts,
		})
	}
	return out
}
