package announce

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/enbility/zeroconf/v3"

	"github.com/beacon-protocol/beacon-go/pkg/dnssd"
	"github.com/beacon-protocol/beacon-go/pkg/txt"
)

// ZeroconfResponder broadcasts advertisements through the
// enbility/zeroconf mDNS responder. It keeps one zeroconf server per
// published service FQDN.
type ZeroconfResponder struct {
	mu      sync.Mutex
	servers map[string]*zeroconf.Server
}

// NewZeroconfResponder creates an empty responder.
func NewZeroconfResponder() *ZeroconfResponder {
	return &ZeroconfResponder{
		servers: make(map[string]*zeroconf.Server),
	}
}

// Start registers the service with zeroconf. A previous registration
// for the same FQDN is shut down first.
func (r *ZeroconfResponder) Start(_ context.Context, s *dnssd.Service) error {
	txtStrings, err := txt.Strings(s.TXT())
	if err != nil {
		return fmt.Errorf("encoding TXT strings: %w", err)
	}

	ifaces := selectInterfaces(s.Interfaces())

	r.mu.Lock()
	defer r.mu.Unlock()

	if server, exists := r.servers[s.FQDN()]; exists {
		server.Shutdown()
		delete(r.servers, s.FQDN())
	}

	server, err := zeroconf.Register(
		s.Name(),
		s.Type(),
		dnssd.Domain,
		s.Port(),
		txtStrings,
		ifaces,
	)
	if err != nil {
		return fmt.Errorf("failed to register %s: %w", s.FQDN(), err)
	}

	r.servers[s.FQDN()] = server
	return nil
}

// Stop shuts down the zeroconf server for the service.
func (r *ZeroconfResponder) Stop(s *dnssd.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	server, exists := r.servers[s.FQDN()]
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, s.FQDN())
	}

	server.Shutdown()
	delete(r.servers, s.FQDN())
	return nil
}

// StopAll shuts down every registered server.
func (r *ZeroconfResponder) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for fqdn, server := range r.servers {
		server.Shutdown()
		delete(r.servers, fqdn)
	}
}

// selectInterfaces resolves an allow-list of interface names for
// zeroconf. Nil means all multicast interfaces; names that do not
// resolve are skipped, matching the record assembly behavior of
// ignoring unknown allow-list entries.
func selectInterfaces(names []string) []net.Interface {
	if len(names) == 0 {
		return nil
	}

	ifaces := make([]net.Interface, 0, len(names))
	for _, name := range names {
		iface, err := net.InterfaceByName(name)
		if err != nil {
			continue
		}
		ifaces = append(ifaces, *iface)
	}
	return ifaces
}

// Compile-time interface satisfaction check.
var _ Responder = (*ZeroconfResponder)(nil)
