package netiface

import (
	"fmt"
	"net"
)

// System is the Enumerator backed by the operating system's interface
// table. The zero value is ready to use.
type System struct{}

// List queries the OS for all network interfaces and their addresses.
func (System) List() ([]Interface, error) {
	osIfaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnumerate, err)
	}

	ifaces := make([]Interface, 0, len(osIfaces))
	for _, osIface := range osIfaces {
		addrs, err := osIface.Addrs()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrEnumerate, osIface.Name, err)
		}

		iface := Interface{
			Name: osIface.Name,
			MAC:  osIface.HardwareAddr.String(),
		}
		internal := osIface.Flags&net.FlagLoopback != 0

		for _, addr := range addrs {
			ip := addrIP(addr)
			if ip == nil {
				continue
			}
			iface.Addrs = append(iface.Addrs, Addr{
				IP:       ip.String(),
				Family:   family(ip),
				Internal: internal || ip.IsLoopback(),
			})
		}
		ifaces = append(ifaces, iface)
	}
	return ifaces, nil
}

// addrIP extracts the bare IP from an interface address, which the OS
// reports with a prefix length.
func addrIP(addr net.Addr) net.IP {
	switch a := addr.(type) {
	case *net.IPNet:
		return a.IP
	case *net.IPAddr:
		return a.IP
	default:
		return nil
	}
}

func family(ip net.IP) Family {
	if ip.To4() != nil {
		return FamilyIPv4
	}
	return FamilyIPv6
}

// Compile-time interface satisfaction check.
var _ Enumerator = System{}
