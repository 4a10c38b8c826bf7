package main

import (
	"errors"
	"testing"
)

func TestDetectNotation(t *testing.T) {
	cases := map[string]string{
		"/24":           notationCIDR,
		"24":            notationCIDR,
		"255.255.255.0": notationSubnet,
		"255.255.240.0": notationSubnet,
		"0.0.0.255":     notationWildcard,
		"0.0.63.255":    notationWildcard,
		"hello":         notationUnknown,
		"1.2.3":         notationUnknown,
		"256.0.0.0":     notationUnknown,
		"255.0.255.0":   notationUnknown,
		// Quads matching both shapes resolve as subnet masks.
		"0.0.0.0":         notationSubnet,
		"255.255.255.255": notationSubnet,
	}
	for input, want := range cases {
		if got := detectNotation(input); got != want {
			t.Fatalf("detectNotation(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestConvertCIDR(t *testing.T) {
	conv, err := convertNotation("/26")
	if err != nil {
		t.Fatalf("convert /26: %v", err)
	}
	if conv.SubnetMask != "255.255.255.192" {
		t.Fatalf("subnet mask: %s", conv.SubnetMask)
	}
	if conv.WildcardMask != "0.0.0.63" {
		t.Fatalf("wildcard mask: %s", conv.WildcardMask)
	}
	if conv.HexMask != "FFFFFFC0" {
		t.Fatalf("hex mask: %s", conv.HexMask)
	}
	if conv.MaxAddresses != 64 || conv.UsableHosts != 62 {
		t.Fatalf("addresses: %d/%d", conv.MaxAddresses, conv.UsableHosts)
	}
}

func TestConvertBarePrefix(t *testing.T) {
	conv, err := convertNotation("24")
	if err != nil {
		t.Fatalf("convert 24: %v", err)
	}
	if conv.CIDR != "/24" || conv.SubnetMask != "255.255.255.0" {
		t.Fatalf("got %s %s", conv.CIDR, conv.SubnetMask)
	}
	if conv.BinaryMask != "11111111.11111111.11111111.00000000" {
		t.Fatalf("binary mask: %s", conv.BinaryMask)
	}
}

func TestConvertSubnetMask(t *testing.T) {
	conv, err := convertNotation("255.255.240.0")
	if err != nil {
		t.Fatalf("convert mask: %v", err)
	}
	if conv.NotationType != "Subnet Mask" || conv.CIDR != "/20" {
		t.Fatalf("got %s %s", conv.NotationType, conv.CIDR)
	}
	if conv.WildcardMask != "0.0.15.255" {
		t.Fatalf("wildcard: %s", conv.WildcardMask)
	}
}

func TestConvertWildcardMask(t *testing.T) {
	conv, err := convertNotation("0.0.0.63")
	if err != nil {
		t.Fatalf("convert wildcard: %v", err)
	}
	if conv.NotationType != "Wildcard Mask" || conv.CIDR != "/26" {
		t.Fatalf("got %s %s", conv.NotationType, conv.CIDR)
	}
}

func TestConvertZeroQuadIsPrefixZero(t *testing.T) {
	conv, err := convertNotation("0.0.0.0")
	if err != nil {
		t.Fatalf("convert 0.0.0.0: %v", err)
	}
	if conv.NotationType != "Subnet Mask" || conv.PrefixLength != 0 {
		t.Fatalf("got %s /%d", conv.NotationType, conv.PrefixLength)
	}
}

func TestConvertErrors(t *testing.T) {
	if _, err := convertNotation("not-a-mask"); !errors.Is(err, errUnknownNotation) {
		t.Fatalf("expected errUnknownNotation, got %v", err)
	}
	if _, err := convertNotation("/33"); !errors.Is(err, errInvalidPrefix) {
		t.Fatalf("expected errInvalidPrefix, got %v", err)
	}
	// Shape-valid quad whose bits are not one contiguous run.
	if _, err := convertNotation("255.192.128.0"); !errors.Is(err, errInvalidMask) {
		t.Fatalf("expected errInvalidMask, got %v", err)
	}
}
