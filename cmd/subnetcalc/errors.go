package main

import "errors"

var (
	errInvalidAddress    = errors.New("invalid IPv4 address")
	errInvalidNetwork    = errors.New("invalid network address, provide a valid network in CIDR notation")
	errInvalidPrefix     = errors.New("invalid prefix length")
	errInvalidMask       = errors.New("invalid subnet mask")
	errPrefixNotLarger   = errors.New("new prefix must be larger than the original prefix")
	errInsufficientSpace = errors.New("host requirement does not fit in the base network")
	errCapacityExceeded  = errors.New("total host requirements exceed the capacity of the base network")
	errUnknownNotation   = errors.New("unknown notation format, provide a CIDR prefix, subnet mask, or wildcard mask")
	errTooManySubnets    = errors.New("too many subnets")
)
