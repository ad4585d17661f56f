package dnssd

import (
	"errors"
	"fmt"
	"net"

	"github.com/miekg/dns"

	"github.com/beacon-protocol/beacon-go/pkg/txt"
)

// Record TTLs in seconds. These are DNS-SD convention and must not be
// changed: existing mDNS client caches expect exactly these values.
const (
	// TTLPointer is the TTL of PTR records, including subtype PTRs.
	TTLPointer = 28800

	// TTLService is the TTL of SRV records.
	TTLService = 120

	// TTLText is the TTL of TXT records.
	TTLText = 4500

	// TTLAddress is the TTL of A and AAAA records.
	TTLAddress = 120
)

// RecordType identifies the DNS resource record kind.
type RecordType string

const (
	// TypePTR is a pointer record.
	TypePTR RecordType = "PTR"
	// TypeSRV is a service location record.
	TypeSRV RecordType = "SRV"
	// TypeTXT is a text record.
	TypeTXT RecordType = "TXT"
	// TypeA is an IPv4 address record.
	TypeA RecordType = "A"
	// TypeAAAA is an IPv6 address record.
	TypeAAAA RecordType = "AAAA"
)

// ErrMalformedRecord indicates a Record whose data does not match its
// type.
var ErrMalformedRecord = errors.New("malformed record")

// SRVData is the data carried by an SRV record.
type SRVData struct {
	// Port is the advertised service port.
	Port int

	// Target is the host name the service runs on.
	Target string
}

// Record is one DNS resource record of a service advertisement.
// Exactly one data field is populated, selected by Type.
type Record struct {
	// Name is the record owner name, without trailing dot.
	Name string

	// Type is the record kind.
	Type RecordType

	// TTL is the advertised cache lifetime in seconds.
	TTL uint32

	// Target holds the data of PTR, A and AAAA records: a domain
	// name for PTR, a textual address for A and AAAA.
	Target string

	// SRV holds the data of SRV records.
	SRV *SRVData

	// TXT holds the encoded payload of TXT records.
	TXT []byte
}

// RR converts the record into a miekg/dns resource record, ready for
// an announcer to serialize onto the wire.
func (r Record) RR() (dns.RR, error) {
	hdr := dns.RR_Header{
		Name:  dns.Fqdn(r.Name),
		Class: dns.ClassINET,
		Ttl:   r.TTL,
	}

	switch r.Type {
	case TypePTR:
		hdr.Rrtype = dns.TypePTR
		return &dns.PTR{Hdr: hdr, Ptr: dns.Fqdn(r.Target)}, nil

	case TypeSRV:
		if r.SRV == nil {
			return nil, fmt.Errorf("%w: SRV record without data", ErrMalformedRecord)
		}
		hdr.Rrtype = dns.TypeSRV
		return &dns.SRV{
			Hdr:    hdr,
			Port:   uint16(r.SRV.Port),
			Target: dns.Fqdn(r.SRV.Target),
		}, nil

	case TypeTXT:
		hdr.Rrtype = dns.TypeTXT
		strs, err := txt.Split(r.TXT)
		if err != nil {
			return nil, err
		}
		return &dns.TXT{Hdr: hdr, Txt: strs}, nil

	case TypeA:
		ip := net.ParseIP(r.Target)
		if ip == nil || ip.To4() == nil {
			return nil, fmt.Errorf("%w: %q is not an IPv4 address", ErrMalformedRecord, r.Target)
		}
		hdr.Rrtype = dns.TypeA
		return &dns.A{Hdr: hdr, A: ip.To4()}, nil

	case TypeAAAA:
		ip := net.ParseIP(r.Target)
		if ip == nil || ip.To4() != nil {
			return nil, fmt.Errorf("%w: %q is not an IPv6 address", ErrMalformedRecord, r.Target)
		}
		hdr.Rrtype = dns.TypeAAAA
		return &dns.AAAA{Hdr: hdr, AAAA: ip.To16()}, nil

	default:
		return nil, fmt.Errorf("%w: unknown record type %q", ErrMalformedRecord, r.Type)
	}
}
