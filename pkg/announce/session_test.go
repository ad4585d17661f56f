package announce_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beacon-protocol/beacon-go/pkg/announce"
	"github.com/beacon-protocol/beacon-go/pkg/dnssd"
	"github.com/beacon-protocol/beacon-go/pkg/log"
	"github.com/beacon-protocol/beacon-go/pkg/netiface"
)

// fakeResponder records start/stop calls and can fail on demand.
type fakeResponder struct {
	mu       sync.Mutex
	started  []string
	stopped  []string
	startErr error
	stopErr  error
}

func (f *fakeResponder) Start(_ context.Context, s *dnssd.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return f.startErr
	}
	f.started = append(f.started, s.FQDN())
	return nil
}

func (f *fakeResponder) Stop(s *dnssd.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopErr != nil {
		return f.stopErr
	}
	f.stopped = append(f.stopped, s.FQDN())
	return nil
}

// fakeEnumerator keeps session tests off the real interface table.
type fakeEnumerator struct {
	ifaces []netiface.Interface
	err    error
}

func (f *fakeEnumerator) List() ([]netiface.Interface, error) {
	return f.ifaces, f.err
}

// captureLogger collects events for assertions.
type captureLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (c *captureLogger) Log(event log.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureLogger) kinds() []log.Kind {
	c.mu.Lock()
	defer c.mu.Unlock()
	kinds := make([]log.Kind, len(c.events))
	for i, e := range c.events {
		kinds[i] = e.Kind
	}
	return kinds
}

func testService(t *testing.T) *dnssd.Service {
	t.Helper()
	s, err := dnssd.New(dnssd.Config{
		Name: "svc", Type: "http", Port: 8080, Host: "myhost",
		Enumerator: &fakeEnumerator{},
	})
	require.NoError(t, err)
	return s
}

func TestSessionPublishUnpublish(t *testing.T) {
	responder := &fakeResponder{}
	service := testService(t)
	session := announce.NewSession(service, responder, nil)

	require.NoError(t, session.Publish(context.Background()))
	assert.True(t, service.Published())
	assert.True(t, service.Activated())
	assert.Equal(t, []string{service.FQDN()}, responder.started)

	// Publishing again is a no-op, not a second responder start.
	require.NoError(t, session.Publish(context.Background()))
	assert.Len(t, responder.started, 1)

	require.NoError(t, session.Unpublish())
	assert.False(t, service.Published())
	assert.True(t, service.Activated(), "activated survives unpublish")
	assert.Equal(t, []string{service.FQDN()}, responder.stopped)

	// Unpublishing an unpublished session is a no-op.
	require.NoError(t, session.Unpublish())
	assert.Len(t, responder.stopped, 1)
}

func TestSessionPublishResponderFailure(t *testing.T) {
	startErr := errors.New("socket bind failed")
	responder := &fakeResponder{startErr: startErr}
	service := testService(t)
	session := announce.NewSession(service, responder, nil)

	err := session.Publish(context.Background())
	assert.ErrorIs(t, err, startErr)
	assert.False(t, service.Published(), "failed publish must not mark the service published")
	assert.False(t, service.Activated())
}

func TestSessionPublishRecordAssemblyFailure(t *testing.T) {
	enumErr := errors.New("netlink query failed")
	service, err := dnssd.New(dnssd.Config{
		Name: "svc", Type: "http", Port: 8080,
		Enumerator: &fakeEnumerator{err: enumErr},
	})
	require.NoError(t, err)

	responder := &fakeResponder{}
	session := announce.NewSession(service, responder, nil)

	pubErr := session.Publish(context.Background())
	assert.ErrorIs(t, pubErr, enumErr)
	assert.Empty(t, responder.started, "responder must not start when record assembly fails")
}

func TestSessionDestroy(t *testing.T) {
	responder := &fakeResponder{}
	service := testService(t)
	session := announce.NewSession(service, responder, nil)

	require.NoError(t, session.Publish(context.Background()))
	require.NoError(t, session.Destroy())

	assert.True(t, service.Destroyed())
	assert.False(t, service.Published())
	assert.Len(t, responder.stopped, 1)

	// Destroy is idempotent, and a destroyed session rejects publish.
	require.NoError(t, session.Destroy())
	assert.ErrorIs(t, session.Publish(context.Background()), announce.ErrDestroyed)
}

func TestSessionEventStream(t *testing.T) {
	logger := &captureLogger{}
	responder := &fakeResponder{}
	service := testService(t)
	session := announce.NewSession(service, responder, logger)

	require.NoError(t, session.Publish(context.Background()))
	require.NoError(t, session.Destroy())

	kinds := logger.kinds()
	want := []log.Kind{
		log.KindRecords,
		log.KindLifecycle, // activated=true
		log.KindLifecycle, // published=true
		log.KindPublished,
		log.KindLifecycle, // published=false
		log.KindUnpublished,
		log.KindLifecycle, // destroyed=true
		log.KindDestroyed,
	}
	assert.Equal(t, want, kinds)

	// Every event carries the session and service identity.
	for _, e := range logger.events {
		assert.Equal(t, session.ID(), e.SessionID)
		assert.Equal(t, service.FQDN(), e.FQDN)
	}
}
