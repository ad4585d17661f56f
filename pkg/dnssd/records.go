package dnssd

import (
	"fmt"
	"slices"

	"github.com/beacon-protocol/beacon-go/pkg/netiface"
	"github.com/beacon-protocol/beacon-go/pkg/txt"
)

// ptrRecord announces the service instance at the shared browse name
// of its type.
func (s *Service) ptrRecord() Record {
	return Record{
		Name:   s.serviceType + "." + Domain,
		Type:   TypePTR,
		TTL:    TTLPointer,
		Target: s.fqdn,
	}
}

// subtypePTRRecord announces the service instance under one of its
// subtypes.
func (s *Service) subtypePTRRecord(subtype string) Record {
	return Record{
		Name:   "_" + subtype + "._sub." + s.serviceType + "." + Domain,
		Type:   TypePTR,
		TTL:    TTLPointer,
		Target: s.fqdn,
	}
}

// srvRecord ties the service instance to its host and port.
func (s *Service) srvRecord() Record {
	return Record{
		Name: s.fqdn,
		Type: TypeSRV,
		TTL:  TTLService,
		SRV:  &SRVData{Port: s.port, Target: s.host},
	}
}

// txtRecord carries the encoded service metadata. It is emitted even
// when the metadata is empty, since browsing clients query for it.
func (s *Service) txtRecord() (Record, error) {
	payload, err := txt.Encode(s.txtValues)
	if err != nil {
		return Record{}, fmt.Errorf("encoding TXT payload: %w", err)
	}
	return Record{
		Name: s.fqdn,
		Type: TypeTXT,
		TTL:  TTLText,
		TXT:  payload,
	}, nil
}

// aRecord maps the advertised host to one IPv4 address.
func (s *Service) aRecord(ip string) Record {
	return Record{Name: s.host, Type: TypeA, TTL: TTLAddress, Target: ip}
}

// aaaaRecord maps the advertised host to one IPv6 address.
func (s *Service) aaaaRecord(ip string) Record {
	return Record{Name: s.host, Type: TypeAAAA, TTL: TTLAddress, Target: ip}
}

// Records assembles the full advertisement record set: one PTR, one
// SRV and one TXT record, one PTR record per subtype in input order,
// then one A or AAAA record per eligible interface address in
// enumerator order. The interface snapshot is taken fresh on every
// call. If the snapshot or the TXT encoding fails, no records are
// returned at all; a partial advertisement is worse than a failed one.
func (s *Service) Records() ([]Record, error) {
	txtRec, err := s.txtRecord()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, 3+len(s.subtypes))
	records = append(records, s.ptrRecord(), s.srvRecord(), txtRec)

	for _, subtype := range s.subtypes {
		records = append(records, s.subtypePTRRecord(subtype))
	}

	ifaces, err := s.enum.List()
	if err != nil {
		return nil, err
	}

	for _, iface := range ifaces {
		if !interfaceAllowed(s.allowList, iface.Name) {
			continue
		}
		for _, addr := range iface.Addrs {
			if addr.Internal || iface.ZeroMAC() {
				continue
			}
			switch addr.Family {
			case netiface.FamilyIPv4:
				records = append(records, s.aRecord(addr.IP))
			case netiface.FamilyIPv6:
				if s.disableIPv6 {
					continue
				}
				records = append(records, s.aaaaRecord(addr.IP))
			}
		}
	}

	return records, nil
}

// interfaceAllowed applies an interface allow-list to one interface
// name. The list is passed in explicitly so the check can only ever
// read the entity's own allow-list, never ambient state. An empty
// list admits every interface.
func interfaceAllowed(allowList []string, name string) bool {
	if len(allowList) == 0 {
		return true
	}
	return slices.Contains(allowList, name)
}
