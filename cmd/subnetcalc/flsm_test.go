package main

import (
	"errors"
	"net/netip"
	"testing"
)

func TestSplitByCountTruncates(t *testing.T) {
	base := netip.MustParsePrefix("192.168.0.0/24")
	subnets, err := splitByCount(base, 3)
	if err != nil {
		t.Fatalf("splitByCount: %v", err)
	}
	if len(subnets) != 3 {
		t.Fatalf("expected 3 subnets, got %d", len(subnets))
	}
	want := []string{"192.168.0.0/26", "192.168.0.64/26", "192.168.0.128/26"}
	for i, s := range subnets {
		if s.Subnet.String() != want[i] {
			t.Fatalf("subnet %d: expected %s, got %s", i, want[i], s.Subnet)
		}
		if s.Index != i+1 {
			t.Fatalf("subnet %d: expected index %d, got %d", i, i+1, s.Index)
		}
		if s.TotalHosts != 62 {
			t.Fatalf("subnet %d: expected 62 usable hosts, got %d", i, s.TotalHosts)
		}
	}
}

func TestSplitByCountExactPowerOfTwo(t *testing.T) {
	base := netip.MustParsePrefix("10.0.0.0/24")
	subnets, err := splitByCount(base, 4)
	if err != nil {
		t.Fatalf("splitByCount: %v", err)
	}
	if len(subnets) != 4 {
		t.Fatalf("expected 4 subnets, got %d", len(subnets))
	}
	if subnets[3].Subnet.String() != "10.0.0.192/26" {
		t.Fatalf("expected last subnet 10.0.0.192/26, got %s", subnets[3].Subnet)
	}
}

func TestSplitByPrefixEnumeratesAll(t *testing.T) {
	base := netip.MustParsePrefix("172.16.0.0/22")
	subnets, err := splitByPrefix(base, 24)
	if err != nil {
		t.Fatalf("splitByPrefix: %v", err)
	}
	if len(subnets) != 4 {
		t.Fatalf("expected 4 subnets, got %d", len(subnets))
	}
	// Consecutive and non-overlapping: each starts where the previous ended.
	for i := 1; i < len(subnets); i++ {
		prevEnd := ipv4ToU32(broadcastOf(subnets[i-1].Subnet))
		start := ipv4ToU32(subnets[i].Subnet.Addr())
		if start != prevEnd+1 {
			t.Fatalf("subnet %d starts at %s, expected contiguous with %s",
				i, subnets[i].Subnet.Addr(), subnets[i-1].Subnet)
		}
	}
	if subnets[0].Subnet.String() != "172.16.0.0/24" {
		t.Fatalf("expected first subnet 172.16.0.0/24, got %s", subnets[0].Subnet)
	}
}

func TestSplitMasksHostBits(t *testing.T) {
	base := netip.MustParsePrefix("192.168.1.0/24")
	subnets, err := splitByCount(netip.PrefixFrom(netip.MustParseAddr("192.168.1.37"), 24), 2)
	if err != nil {
		t.Fatalf("splitByCount: %v", err)
	}
	if subnets[0].Subnet.Addr() != base.Addr() {
		t.Fatalf("expected host bits masked to %s, got %s", base.Addr(), subnets[0].Subnet.Addr())
	}
}

func TestSplitBelowUsableFloor(t *testing.T) {
	base := netip.MustParsePrefix("192.168.0.0/30")
	if _, err := splitByCount(base, 4); !errors.Is(err, errInvalidPrefix) {
		t.Fatalf("expected errInvalidPrefix, got %v", err)
	}
	if _, err := splitByPrefix(netip.MustParsePrefix("10.0.0.0/30"), 31); !errors.Is(err, errInvalidPrefix) {
		t.Fatalf("expected errInvalidPrefix, got %v", err)
	}
}

func TestSplitByPrefixNotLarger(t *testing.T) {
	base := netip.MustParsePrefix("10.0.0.0/24")
	if _, err := splitByPrefix(base, 24); !errors.Is(err, errPrefixNotLarger) {
		t.Fatalf("expected errPrefixNotLarger for equal prefix, got %v", err)
	}
	if _, err := splitByPrefix(base, 16); !errors.Is(err, errPrefixNotLarger) {
		t.Fatalf("expected errPrefixNotLarger for shorter prefix, got %v", err)
	}
}

func TestSplitSubnetLimit(t *testing.T) {
	base := netip.MustParsePrefix("10.0.0.0/8")
	if _, err := splitByCount(base, 5000); !errors.Is(err, errTooManySubnets) {
		t.Fatalf("expected errTooManySubnets, got %v", err)
	}
	if _, err := splitByPrefix(base, 21); !errors.Is(err, errTooManySubnets) {
		t.Fatalf("expected errTooManySubnets, got %v", err)
	}
	// 4096 exactly is still allowed.
	if _, err := splitByPrefix(base, 20); err != nil {
		t.Fatalf("expected /20 split of /8 to succeed, got %v", err)
	}
}

func TestSplitByCountRejectsZero(t *testing.T) {
	base := netip.MustParsePrefix("10.0.0.0/24")
	if _, err := splitByCount(base, 0); err == nil {
		t.Fatal("expected error for zero subnets")
	}
}
