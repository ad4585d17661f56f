package announce

import (
	"context"
	"errors"

	"github.com/beacon-protocol/beacon-go/pkg/dnssd"
)

// Announcement errors.
var (
	// ErrDestroyed indicates an operation on a destroyed session or
	// announcer.
	ErrDestroyed = errors.New("announcement destroyed")

	// ErrNotFound indicates the service is not currently registered.
	ErrNotFound = errors.New("service not found")

	// ErrAlreadyExists indicates a service with the same FQDN is
	// already being announced.
	ErrAlreadyExists = errors.New("service already exists")
)

// Responder is the transport capability that broadcasts a service
// advertisement. Implementations own the multicast sockets and the
// announcement schedule; the session layer only drives start and
// stop. Implementations must be safe for concurrent use.
type Responder interface {
	// Start begins broadcasting the service and returns once the
	// advertisement is running. Broadcasting continues until Stop is
	// called for the same service.
	Start(ctx context.Context, s *dnssd.Service) error

	// Stop withdraws the advertisement and releases the transport
	// resources held for the service.
	Stop(s *dnssd.Service) error
}
