package main

const version = "1.3.0"

// IPv4 prefix limits.
const (
	minPrefixLength    = 0
	maxPrefixLength    = 32
	maxUsablePrefix    = 30 // smallest subnet the partitioners will create
	pointToPointPrefix = 31 // RFC 3021, both addresses usable
	hostPrefix         = 32
)

// hostOverhead is the number of addresses reserved per subnet
// (network + broadcast) below the /31 boundary.
const hostOverhead = 2

// largeNetworkThreshold is the total-address cutoff between direct address
// enumeration and interval arithmetic in the overlap/unique-count paths.
const largeNetworkThreshold = 65536

// maxSubnetsToCreate caps how many subnets a single FLSM call may enumerate.
const maxSubnetsToCreate = 4096

// IPv4 class boundaries (first octet).
const (
	classAStart = 1
	classAEnd   = 126
	classBStart = 128
	classBEnd   = 191
	classCStart = 192
	classCEnd   = 223
	classDStart = 224
	classDEnd   = 239
	classEStart = 240
	classEEnd   = 255

	loopbackOctet = 127
)
