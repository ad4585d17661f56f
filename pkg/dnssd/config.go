package dnssd

import (
	"errors"

	"github.com/beacon-protocol/beacon-go/pkg/netiface"
	"github.com/beacon-protocol/beacon-go/pkg/servicetype"
	"github.com/beacon-protocol/beacon-go/pkg/txt"
)

// Validation errors.
var (
	// ErrMissingName indicates a config without a service instance name.
	ErrMissingName = errors.New("service name is required")

	// ErrMissingType indicates a config without a service type.
	ErrMissingType = errors.New("service type is required")

	// ErrInvalidPort indicates a missing or non-positive port.
	ErrInvalidPort = errors.New("service port must be positive")
)

// Config describes a service to advertise. All fields are read once
// at construction; the resulting Service does not observe later
// mutations of the config.
type Config struct {
	// Name is the service instance name, e.g. "My Printer". Required.
	Name string `yaml:"name"`

	// Type is the bare service type without the DNS-SD underscore
	// prefix, e.g. "http". Required.
	Type string `yaml:"type"`

	// Port is the port the service listens on. Required.
	Port int `yaml:"port"`

	// Protocol is the transport label of the service type.
	// Defaults to tcp.
	Protocol servicetype.Protocol `yaml:"protocol"`

	// Host is the host name advertised in SRV and address records.
	// Defaults to the local host name.
	Host string `yaml:"host"`

	// TXT holds the metadata published in the TXT record. An empty
	// mapping still yields a TXT record with an empty payload.
	TXT txt.Values `yaml:"txt"`

	// Subtypes lists DNS-SD subtypes, each advertised with an
	// additional PTR record.
	Subtypes []string `yaml:"subtypes"`

	// DisableIPv6 suppresses all AAAA records.
	DisableIPv6 bool `yaml:"disable_ipv6"`

	// Interfaces is an allow-list of interface names eligible for
	// address records. Empty means every non-internal interface.
	Interfaces []string `yaml:"interfaces"`

	// Enumerator supplies the interface snapshot for address
	// records. Nil selects the operating system enumerator.
	Enumerator netiface.Enumerator `yaml:"-"`
}

// validate checks the required fields.
func (c *Config) validate() error {
	if c.Name == "" {
		return ErrMissingName
	}
	if c.Type == "" {
		return ErrMissingType
	}
	if c.Port <= 0 {
		return ErrInvalidPort
	}
	return nil
}
