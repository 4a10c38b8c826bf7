package main

import (
	"net/netip"
	"testing"
)

func TestSummarizeAlignedRange(t *testing.T) {
	s := summarizeRange(netip.MustParseAddr("10.0.0.0"), netip.MustParseAddr("10.0.0.7"))
	if s.TotalAddresses != 8 {
		t.Fatalf("expected 8 addresses, got %d", s.TotalAddresses)
	}
	if len(s.Blocks) != 1 || s.Blocks[0].String() != "10.0.0.0/29" {
		t.Fatalf("expected single block 10.0.0.0/29, got %v", s.Blocks)
	}
}

func TestSummarizeUnalignedRange(t *testing.T) {
	s := summarizeRange(netip.MustParseAddr("10.0.0.1"), netip.MustParseAddr("10.0.0.6"))
	want := []string{"10.0.0.1/32", "10.0.0.2/31", "10.0.0.4/31", "10.0.0.6/32"}
	if len(s.Blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %v", len(want), s.Blocks)
	}
	for i, w := range want {
		if s.Blocks[i].String() != w {
			t.Fatalf("block %d: expected %s, got %s", i, w, s.Blocks[i])
		}
	}
	if s.TotalAddresses != 6 {
		t.Fatalf("expected 6 addresses, got %d", s.TotalAddresses)
	}
}

func TestSummarizeCoversExactly(t *testing.T) {
	start := netip.MustParseAddr("192.168.0.100")
	end := netip.MustParseAddr("192.168.1.50")
	s := summarizeRange(start, end)

	var covered uint64
	for i, b := range s.Blocks {
		covered += prefixSize(b.Bits())
		if i > 0 {
			prevEnd := ipv4ToU32(broadcastOf(s.Blocks[i-1]))
			if ipv4ToU32(b.Addr()) != prevEnd+1 {
				t.Fatalf("block %d (%s) is not contiguous with %s", i, b, s.Blocks[i-1])
			}
		}
	}
	if covered != s.TotalAddresses {
		t.Fatalf("blocks cover %d addresses, range has %d", covered, s.TotalAddresses)
	}
	if s.Blocks[0].Addr() != start {
		t.Fatalf("cover starts at %s, expected %s", s.Blocks[0].Addr(), start)
	}
	if broadcastOf(s.Blocks[len(s.Blocks)-1]) != end {
		t.Fatalf("cover ends at %s, expected %s", broadcastOf(s.Blocks[len(s.Blocks)-1]), end)
	}
}

func TestSummarizeSwapsEndpoints(t *testing.T) {
	s := summarizeRange(netip.MustParseAddr("10.0.0.7"), netip.MustParseAddr("10.0.0.0"))
	if s.Start.String() != "10.0.0.0" || s.End.String() != "10.0.0.7" {
		t.Fatalf("expected endpoints normalized, got %s - %s", s.Start, s.End)
	}
	if len(s.Blocks) != 1 {
		t.Fatalf("expected single block, got %v", s.Blocks)
	}
}

func TestSummarizeSingleAddress(t *testing.T) {
	a := netip.MustParseAddr("172.16.5.9")
	s := summarizeRange(a, a)
	if s.TotalAddresses != 1 {
		t.Fatalf("expected 1 address, got %d", s.TotalAddresses)
	}
	if len(s.Blocks) != 1 || s.Blocks[0].String() != "172.16.5.9/32" {
		t.Fatalf("expected 172.16.5.9/32, got %v", s.Blocks)
	}
}
