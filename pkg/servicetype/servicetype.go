// Package servicetype formats and parses DNS-SD service type strings.
//
// DNS-SD names service types with a leading-underscore label pair,
// e.g. "_http._tcp" (RFC 6763, section 7). Subtypes extend a type
// with "_sub" labels, e.g. "_printer._sub._http._tcp".
package servicetype

import (
	"errors"
	"fmt"
	"strings"
)

// Protocol is the transport label of a service type.
type Protocol string

const (
	// TCP is the transport label for TCP services.
	TCP Protocol = "tcp"

	// UDP is the transport label for everything that is not TCP,
	// per the DNS-SD convention.
	UDP Protocol = "udp"
)

// Service type errors.
var (
	// ErrInvalidProtocol indicates a protocol other than tcp or udp.
	ErrInvalidProtocol = errors.New("protocol must be tcp or udp")

	// ErrInvalidType indicates a service type string that does not
	// follow the "_type._protocol" form.
	ErrInvalidType = errors.New("invalid service type string")
)

// Validate checks that the protocol is one of the two DNS-SD
// transport labels.
func (p Protocol) Validate() error {
	switch p {
	case TCP, UDP:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidProtocol, string(p))
	}
}

// String returns the protocol label.
func (p Protocol) String() string {
	return string(p)
}

// Format canonicalizes a bare type name and protocol into the
// "_type._protocol" form. Leading underscores and surrounding dots on
// the name are stripped first, so Format is idempotent over its own
// output names.
func Format(name string, proto Protocol) string {
	name = strings.Trim(name, ".")
	name = strings.TrimPrefix(name, "_")
	return "_" + name + "._" + string(proto)
}

// Parse splits a canonical service type string into its bare name,
// protocol and any "_sub" subtype prefixes.
func Parse(s string) (name string, proto Protocol, subtypes []string, err error) {
	labels := strings.Split(strings.Trim(s, "."), ".")
	if len(labels) < 2 {
		return "", "", nil, fmt.Errorf("%w: %q", ErrInvalidType, s)
	}

	protoLabel := labels[len(labels)-1]
	typeLabel := labels[len(labels)-2]
	if !strings.HasPrefix(protoLabel, "_") || !strings.HasPrefix(typeLabel, "_") {
		return "", "", nil, fmt.Errorf("%w: %q", ErrInvalidType, s)
	}

	proto = Protocol(strings.TrimPrefix(protoLabel, "_"))
	if err := proto.Validate(); err != nil {
		return "", "", nil, err
	}
	name = strings.TrimPrefix(typeLabel, "_")
	if name == "" {
		return "", "", nil, fmt.Errorf("%w: %q", ErrInvalidType, s)
	}

	// Anything before the type label must be "_subtype._sub" pairs.
	rest := labels[:len(labels)-2]
	for len(rest) > 0 {
		if len(rest) < 2 || rest[len(rest)-1] != "_sub" || !strings.HasPrefix(rest[len(rest)-2], "_") {
			return "", "", nil, fmt.Errorf("%w: %q", ErrInvalidType, s)
		}
		subtypes = append(subtypes, strings.TrimPrefix(rest[len(rest)-2], "_"))
		rest = rest[:len(rest)-2]
	}

	return name, proto, subtypes, nil
}
