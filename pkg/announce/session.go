package announce

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/beacon-protocol/beacon-go/pkg/dnssd"
	"github.com/beacon-protocol/beacon-go/pkg/log"
)

// Session owns the announcement of one service. It is the only
// component that mutates the service's lifecycle flags.
type Session struct {
	id        string
	service   *dnssd.Service
	responder Responder
	logger    log.Logger

	mu sync.Mutex
}

// NewSession creates a session for the service. The responder is the
// injected transport capability; logger may be nil to disable event
// logging.
func NewSession(service *dnssd.Service, responder Responder, logger log.Logger) *Session {
	if logger == nil {
		logger = log.NoopLogger{}
	}

	s := &Session{
		id:        uuid.NewString(),
		service:   service,
		responder: responder,
		logger:    logger,
	}

	// Surface every lifecycle transition in the event stream.
	service.OnLifecycle(func(e dnssd.LifecycleEvent) {
		s.logEvent(log.Event{
			Kind:   log.KindLifecycle,
			Detail: fmt.Sprintf("%s=%t", e.Flag, e.Value),
		})
	})

	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Service returns the announced service.
func (s *Session) Service() *dnssd.Service { return s.service }

// Publish starts broadcasting the service. The record set is
// assembled first as a preflight check, so a service whose records
// cannot be produced is never handed to the responder. Publishing an
// already-published session is a no-op.
func (s *Session) Publish(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.service.Destroyed() {
		return ErrDestroyed
	}
	if s.service.Published() {
		return nil
	}

	records, err := s.service.Records()
	if err != nil {
		s.logError(err)
		return fmt.Errorf("assembling records for %s: %w", s.service.FQDN(), err)
	}
	s.logEvent(log.Event{Kind: log.KindRecords, RecordCount: len(records)})

	if err := s.responder.Start(ctx, s.service); err != nil {
		s.logError(err)
		return fmt.Errorf("starting responder for %s: %w", s.service.FQDN(), err)
	}

	s.service.SetActivated(true)
	s.service.SetPublished(true)
	s.logEvent(log.Event{Kind: log.KindPublished})
	return nil
}

// Unpublish withdraws the advertisement. Unpublishing a session that
// is not published is a no-op.
func (s *Session) Unpublish() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unpublishLocked()
}

func (s *Session) unpublishLocked() error {
	if !s.service.Published() {
		return nil
	}

	if err := s.responder.Stop(s.service); err != nil {
		s.logError(err)
		return fmt.Errorf("stopping responder for %s: %w", s.service.FQDN(), err)
	}

	s.service.SetPublished(false)
	s.logEvent(log.Event{Kind: log.KindUnpublished})
	return nil
}

// Destroy withdraws the advertisement and permanently retires the
// session. A destroyed session cannot be published again. Destroy is
// idempotent.
func (s *Session) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.service.Destroyed() {
		return nil
	}
	if err := s.unpublishLocked(); err != nil {
		return err
	}

	s.service.SetDestroyed(true)
	s.logEvent(log.Event{Kind: log.KindDestroyed})
	return nil
}

func (s *Session) logEvent(event log.Event) {
	event.Timestamp = time.Now().UTC()
	event.SessionID = s.id
	event.FQDN = s.service.FQDN()
	event.Instance = s.service.Name()
	event.ServiceType = s.service.Type()
	s.logger.Log(event)
}

func (s *Session) logError(err error) {
	s.logEvent(log.Event{Kind: log.KindError, Error: err.Error()})
}
