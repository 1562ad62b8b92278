package config

import (
	"fmt"
	"regexp"
	"strconv"
)

// masterCIDRRegex is compiled once at package init. GKE only accepts a /28
// for the control plane range, so the prefix length is part of the format.
var masterCIDRRegex = regexp.MustCompile(`^(\d{1,3})\.(\d{1,3})\.(\d{1,3})\.(\d{1,3})/28$`)

// ValidateMasterCIDR validates a GKE control plane (master) CIDR block.
//
// The checks run in a fixed order and the first failure wins:
//
//  1. the string must be a dotted quad followed by a literal /28
//  2. every octet must be 0-255
//  3. the address must be inside an RFC 1918 private range
//  4. the block must start on a 16-address boundary
//
// Each stage reports its own error kind so callers can tell a typo from a
// policy violation.
func ValidateMasterCIDR(cidr string) error {
	m := masterCIDRRegex.FindStringSubmatch(cidr)
	if m == nil {
		return fmt.Errorf("%w: %q must look like a.b.c.d/28", ErrMalformedCIDR, cidr)
	}

	var octets [4]int
	for i := 0; i < 4; i++ {
		n, err := strconv.Atoi(m[i+1])
		if err != nil || n > 255 {
			return fmt.Errorf("%w: %q has octet %s outside 0-255", ErrMalformedCIDR, cidr, m[i+1])
		}
		octets[i] = n
	}

	if !isRFC1918(octets[0], octets[1]) {
		return fmt.Errorf("%w: %q must be within 10.0.0.0/8, 172.16.0.0/12 or 192.168.0.0/16", ErrNotPrivateRange, cidr)
	}

	// A /28 covers 16 addresses, so the block must start on a multiple of 16.
	if octets[3]%16 != 0 {
		return fmt.Errorf("%w: %q does not start on a /28 boundary (last octet must be a multiple of 16)", ErrMisalignedBlock, cidr)
	}

	return nil
}

// isRFC1918 reports whether the leading octets fall inside one of the
// RFC 1918 private ranges.
func isRFC1918(octet0, octet1 int) bool {
	switch {
	case octet0 == 10:
		return true
	case octet0 == 172 && octet1 >= 16 && octet1 <= 31:
		return true
	case octet0 == 192 && octet1 == 168:
		return true
	default:
		return false
	}
}
