package dnssd

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/beacon-protocol/beacon-go/pkg/netiface"
	"github.com/beacon-protocol/beacon-go/pkg/servicetype"
	"github.com/beacon-protocol/beacon-go/pkg/txt"
)

// Domain is the multicast DNS domain.
const Domain = "local"

// LifecycleFlag identifies one of the announcement lifecycle flags of
// a Service.
type LifecycleFlag uint8

const (
	// FlagPublished is set while the service records are being
	// broadcast by a responder.
	FlagPublished LifecycleFlag = iota

	// FlagActivated is set once an announcement has been started for
	// the service, and stays set across republishes.
	FlagActivated

	// FlagDestroyed is set when the service is permanently retired.
	// A destroyed service is never published again.
	FlagDestroyed
)

// String returns the flag name.
func (f LifecycleFlag) String() string {
	switch f {
	case FlagPublished:
		return "PUBLISHED"
	case FlagActivated:
		return "ACTIVATED"
	case FlagDestroyed:
		return "DESTROYED"
	default:
		return "UNKNOWN"
	}
}

// LifecycleEvent reports one lifecycle flag transition.
type LifecycleEvent struct {
	// FQDN identifies the service.
	FQDN string

	// Flag is the flag that changed.
	Flag LifecycleFlag

	// Value is the new flag value.
	Value bool
}

// Service is the validated, normalized description of one advertised
// service. The descriptive fields are fixed at construction: name and
// type changes require building a new Service, which keeps the FQDN
// consistent with them. Lifecycle flags are mutated by the announcing
// session only; record generation never reads them.
type Service struct {
	name        string
	serviceType string
	fqdn        string
	host        string
	port        int
	txtValues   txt.Values
	subtypes    []string
	allowList   []string
	disableIPv6 bool
	enum        netiface.Enumerator

	mu          sync.Mutex
	published   bool
	activated   bool
	destroyed   bool
	onLifecycle func(LifecycleEvent)
}

// New validates the config and builds the Service entity. Dots in the
// instance name become hyphens, since a multi-label name cannot be
// carried unescaped inside a single DNS label. The host name defaults
// to the local host name and the protocol to tcp.
func New(cfg Config) (*Service, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	proto := cfg.Protocol
	if proto == "" {
		proto = servicetype.TCP
	}
	if err := proto.Validate(); err != nil {
		return nil, err
	}

	host := cfg.Host
	if host == "" {
		h, err := os.Hostname()
		if err != nil {
			return nil, fmt.Errorf("resolving local host name: %w", err)
		}
		host = h
	}

	enum := cfg.Enumerator
	if enum == nil {
		enum = netiface.System{}
	}

	name := strings.ReplaceAll(cfg.Name, ".", "-")
	serviceType := servicetype.Format(cfg.Type, proto)

	return &Service{
		name:        name,
		serviceType: serviceType,
		fqdn:        name + "." + serviceType + "." + Domain,
		host:        host,
		port:        cfg.Port,
		txtValues:   cfg.TXT,
		subtypes:    slices.Clone(cfg.Subtypes),
		allowList:   slices.Clone(cfg.Interfaces),
		disableIPv6: cfg.DisableIPv6,
		enum:        enum,
	}, nil
}

// Name returns the normalized instance name, e.g. "My-Printer".
func (s *Service) Name() string { return s.name }

// Type returns the canonical service type, e.g. "_http._tcp".
func (s *Service) Type() string { return s.serviceType }

// FQDN returns the fully-qualified service instance name, e.g.
// "My-Printer._http._tcp.local".
func (s *Service) FQDN() string { return s.fqdn }

// Host returns the advertised host name.
func (s *Service) Host() string { return s.host }

// Port returns the advertised port.
func (s *Service) Port() int { return s.port }

// TXT returns the service metadata values.
func (s *Service) TXT() txt.Values { return s.txtValues }

// Subtypes returns the advertised subtypes in input order.
func (s *Service) Subtypes() []string { return slices.Clone(s.subtypes) }

// Interfaces returns the interface allow-list. Empty means every
// non-internal interface is eligible.
func (s *Service) Interfaces() []string { return slices.Clone(s.allowList) }

// DisableIPv6 reports whether AAAA records are suppressed.
func (s *Service) DisableIPv6() bool { return s.disableIPv6 }

// Published reports whether the service is currently broadcast.
func (s *Service) Published() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.published
}

// Activated reports whether an announcement was ever started.
func (s *Service) Activated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activated
}

// Destroyed reports whether the service is permanently retired.
func (s *Service) Destroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

// OnLifecycle registers fn to be called on every lifecycle flag
// transition. The callback runs synchronously with the transition;
// it must not call back into the Service's lifecycle setters.
func (s *Service) OnLifecycle(fn func(LifecycleEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLifecycle = fn
}

// SetPublished updates the published flag. Called by the announcing
// session, not by applications.
func (s *Service) SetPublished(v bool) { s.setFlag(FlagPublished, v) }

// SetActivated updates the activated flag. Called by the announcing
// session, not by applications.
func (s *Service) SetActivated(v bool) { s.setFlag(FlagActivated, v) }

// SetDestroyed updates the destroyed flag. Called by the announcing
// session, not by applications.
func (s *Service) SetDestroyed(v bool) { s.setFlag(FlagDestroyed, v) }

func (s *Service) setFlag(flag LifecycleFlag, v bool) {
	s.mu.Lock()

	var changed bool
	switch flag {
	case FlagPublished:
		changed = s.published != v
		s.published = v
	case FlagActivated:
		changed = s.activated != v
		s.activated = v
	case FlagDestroyed:
		changed = s.destroyed != v
		s.destroyed = v
	}
	fn := s.onLifecycle
	s.mu.Unlock()

	if changed && fn != nil {
		fn(LifecycleEvent{FQDN: s.fqdn, Flag: flag, Value: v})
	}
}
