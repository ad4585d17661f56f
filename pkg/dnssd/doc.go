// Package dnssd converts a declarative service description into the
// DNS resource record set that advertises the service over multicast
// DNS (RFC 6762/6763, the Bonjour record model).
//
// # Service entity
//
// A Service is built once from a Config and is immutable afterwards:
// the instance name has dots replaced with hyphens, the service type
// is canonicalized to the "_type._protocol" form, and the FQDN is
// derived as "<name>.<type>.local". Construction fails outright when
// name, type or port is missing, so a half-built entity is never
// observable.
//
// # Record assembly
//
// Records returns, in order: one PTR record at the shared browse
// name, one SRV and one TXT record at the service FQDN, one PTR
// record per subtype, and one A or AAAA record per eligible interface
// address. Eligibility applies the entity's own interface allow-list,
// skips loopback addresses and all-zero-MAC adapters, and honors the
// dual-stack policy. TTLs follow DNS-SD convention and are fixed:
// pointer records 28800s, TXT 4500s, SRV and address records 120s.
//
// Record assembly is a pure computation over the entity and a fresh
// interface snapshot; it holds no state and is safe to call
// concurrently. Transmission, probing and conflict resolution belong
// to the announcer layer (package announce), not here.
package dnssd
