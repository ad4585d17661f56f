package announce

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/beacon-protocol/beacon-go/pkg/dnssd"
	"github.com/beacon-protocol/beacon-go/pkg/log"
)

// Announcer is a registry of announcement sessions, one per service
// FQDN. It publishes services from configs and withdraws them
// together on shutdown.
type Announcer struct {
	responder Responder
	logger    log.Logger

	mu        sync.Mutex
	sessions  map[string]*Session // keyed by service FQDN
	destroyed bool
}

// Option configures an Announcer.
type Option func(*Announcer)

// WithLogger sets the event logger for all sessions created by the
// announcer.
func WithLogger(logger log.Logger) Option {
	return func(a *Announcer) {
		a.logger = logger
	}
}

// New creates an Announcer that broadcasts through the given
// responder.
func New(responder Responder, opts ...Option) *Announcer {
	a := &Announcer{
		responder: responder,
		logger:    log.NoopLogger{},
		sessions:  make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Publish builds a service from the config, creates a session for it
// and starts broadcasting. The session is registered only if
// publishing succeeded.
func (a *Announcer) Publish(ctx context.Context, cfg dnssd.Config) (*Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.destroyed {
		return nil, ErrDestroyed
	}

	service, err := dnssd.New(cfg)
	if err != nil {
		return nil, err
	}
	if _, exists := a.sessions[service.FQDN()]; exists {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, service.FQDN())
	}

	session := NewSession(service, a.responder, a.logger)
	if err := session.Publish(ctx); err != nil {
		return nil, err
	}

	a.sessions[service.FQDN()] = session
	return session, nil
}

// Unpublish withdraws and removes the session for the given FQDN.
func (a *Announcer) Unpublish(fqdn string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	session, exists := a.sessions[fqdn]
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, fqdn)
	}

	if err := session.Destroy(); err != nil {
		return err
	}
	delete(a.sessions, fqdn)
	return nil
}

// UnpublishAll withdraws every registered session. All sessions are
// attempted even if some fail; the errors are joined.
func (a *Announcer) UnpublishAll() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.unpublishAllLocked()
}

func (a *Announcer) unpublishAllLocked() error {
	var errs []error
	for fqdn, session := range a.sessions {
		if err := session.Destroy(); err != nil {
			errs = append(errs, err)
			continue
		}
		delete(a.sessions, fqdn)
	}
	return errors.Join(errs...)
}

// Destroy withdraws every session and retires the announcer. A
// destroyed announcer rejects further publishes.
func (a *Announcer) Destroy() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.destroyed {
		return nil
	}
	a.destroyed = true
	return a.unpublishAllLocked()
}

// Sessions returns the currently registered sessions.
func (a *Announcer) Sessions() []*Session {
	a.mu.Lock()
	defer a.mu.Unlock()

	sessions := make([]*Session, 0, len(a.sessions))
	for _, s := range a.sessions {
		sessions = append(sessions, s)
	}
	return sessions
}
