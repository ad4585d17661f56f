// Package netiface enumerates host network interfaces and their
// addresses for DNS-SD address record selection.
package netiface

import "errors"

// Family is the address family of an interface address.
type Family uint8

const (
	// FamilyIPv4 is an IPv4 address.
	FamilyIPv4 Family = iota
	// FamilyIPv6 is an IPv6 address.
	FamilyIPv6
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "IPv4"
	case FamilyIPv6:
		return "IPv6"
	default:
		return "UNKNOWN"
	}
}

// zeroMAC is the hardware address reported by virtual or disabled
// adapters.
const zeroMAC = "00:00:00:00:00:00"

// ErrEnumerate indicates the operating system query for interfaces
// failed.
var ErrEnumerate = errors.New("enumerating network interfaces failed")

// Addr is one address assigned to an interface.
type Addr struct {
	// IP is the textual address without prefix length or zone.
	IP string

	// Family is the address family.
	Family Family

	// Internal marks loopback addresses, which are never advertised.
	Internal bool
}

// Interface is a snapshot of one host network interface.
type Interface struct {
	// Name is the OS interface name, e.g. "eth0".
	Name string

	// MAC is the hardware address in colon-separated form. Empty if
	// the interface has none.
	MAC string

	// Addrs lists the addresses assigned to the interface.
	Addrs []Addr
}

// ZeroMAC reports whether the interface advertises the all-zero
// hardware address used by virtual or disabled adapters.
func (i Interface) ZeroMAC() bool {
	return i.MAC == zeroMAC
}

// Enumerator yields a snapshot of the host's network interfaces.
// Implementations must return a fresh snapshot on every call so that
// hot-plugged adapters are observed.
type Enumerator interface {
	// List returns all host interfaces with their addresses, or an
	// error if the snapshot could not be taken.
	List() ([]Interface, error)
}
