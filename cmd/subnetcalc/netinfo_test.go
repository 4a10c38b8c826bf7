package main

import (
	"net/netip"
	"testing"
)

func TestNetworkSummary(t *testing.T) {
	s := networkSummary(netip.MustParsePrefix("192.168.10.0/26"))
	if s.Netmask != "255.255.255.192" {
		t.Fatalf("expected netmask 255.255.255.192, got %s", s.Netmask)
	}
	if s.Wildcard != "0.0.0.63" {
		t.Fatalf("expected wildcard 0.0.0.63, got %s", s.Wildcard)
	}
	if s.Broadcast.String() != "192.168.10.63" {
		t.Fatalf("expected broadcast 192.168.10.63, got %s", s.Broadcast)
	}
	if s.NumAddresses != 64 || s.UsableHosts != 62 {
		t.Fatalf("expected 64 addresses / 62 hosts, got %d / %d", s.NumAddresses, s.UsableHosts)
	}
	if s.FirstUsable.String() != "192.168.10.1" || s.LastUsable.String() != "192.168.10.62" {
		t.Fatalf("unexpected usable range %s - %s", s.FirstUsable, s.LastUsable)
	}
}

func TestNetworkSummaryPointToPoint(t *testing.T) {
	s := networkSummary(netip.MustParsePrefix("10.0.0.0/31"))
	if s.UsableHosts != 2 {
		t.Fatalf("expected 2 usable hosts on /31, got %d", s.UsableHosts)
	}
	if s.FirstUsable.String() != "10.0.0.0" || s.LastUsable.String() != "10.0.0.1" {
		t.Fatalf("unexpected /31 usable range %s - %s", s.FirstUsable, s.LastUsable)
	}
}

func TestCheckMembership(t *testing.T) {
	m := checkMembership(netip.MustParseAddr("192.168.1.130"), netip.MustParsePrefix("192.168.1.0/24"))
	if !m.InNetwork {
		t.Fatal("expected address inside network")
	}
	if m.HostPosition != 130 {
		t.Fatalf("expected position 130, got %d", m.HostPosition)
	}
	if m.PositionFromEnd != 125 {
		t.Fatalf("expected position 125 from end, got %d", m.PositionFromEnd)
	}
}

func TestCheckMembershipOutside(t *testing.T) {
	m := checkMembership(netip.MustParseAddr("192.168.2.1"), netip.MustParsePrefix("192.168.1.0/24"))
	if m.InNetwork {
		t.Fatal("expected address outside network")
	}
}
