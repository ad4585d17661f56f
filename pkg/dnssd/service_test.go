package dnssd

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/beacon-protocol/beacon-go/pkg/servicetype"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name:    "MissingName",
			cfg:     Config{Type: "http", Port: 8080},
			wantErr: ErrMissingName,
		},
		{
			name:    "MissingType",
			cfg:     Config{Name: "svc", Port: 8080},
			wantErr: ErrMissingType,
		},
		{
			name:    "ZeroPort",
			cfg:     Config{Name: "svc", Type: "http"},
			wantErr: ErrInvalidPort,
		},
		{
			name:    "NegativePort",
			cfg:     Config{Name: "svc", Type: "http", Port: -1},
			wantErr: ErrInvalidPort,
		},
		{
			name:    "InvalidProtocol",
			cfg:     Config{Name: "svc", Type: "http", Port: 8080, Protocol: "sctp"},
			wantErr: servicetype.ErrInvalidProtocol,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New error = %v, want %v", err, tt.wantErr)
			}
			if s != nil {
				t.Errorf("New returned a service despite the error")
			}
		})
	}
}

func TestNewNormalizesName(t *testing.T) {
	s, err := New(Config{Name: "My.Printer.v2", Type: "http", Port: 8080})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if s.Name() != "My-Printer-v2" {
		t.Errorf("Name = %q, want My-Printer-v2", s.Name())
	}

	// Every dot from the original name must be gone: the only dots
	// left in the FQDN are the name/type/domain separators.
	if got, want := strings.Count(s.FQDN(), "."), 3; got != want {
		t.Errorf("FQDN %q has %d dots, want %d", s.FQDN(), got, want)
	}
	if s.FQDN() != "My-Printer-v2._http._tcp.local" {
		t.Errorf("FQDN = %q", s.FQDN())
	}
}

func TestNewDefaults(t *testing.T) {
	s, err := New(Config{Name: "svc", Type: "osc", Port: 9000})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Protocol defaults to tcp.
	if s.Type() != "_osc._tcp" {
		t.Errorf("Type = %q, want _osc._tcp", s.Type())
	}

	// Host defaults to the local host name.
	hostname, err := os.Hostname()
	if err != nil {
		t.Fatalf("os.Hostname failed: %v", err)
	}
	if s.Host() != hostname {
		t.Errorf("Host = %q, want %q", s.Host(), hostname)
	}
}

func TestNewUDPProtocol(t *testing.T) {
	s, err := New(Config{Name: "svc", Type: "sleep-proxy", Port: 9000, Protocol: servicetype.UDP})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Type() != "_sleep-proxy._udp" {
		t.Errorf("Type = %q, want _sleep-proxy._udp", s.Type())
	}
	if s.FQDN() != "svc._sleep-proxy._udp.local" {
		t.Errorf("FQDN = %q", s.FQDN())
	}
}

func TestNewCopiesSlices(t *testing.T) {
	subtypes := []string{"printer"}
	ifaces := []string{"eth0"}
	s, err := New(Config{
		Name: "svc", Type: "http", Port: 80,
		Subtypes: subtypes, Interfaces: ifaces,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	subtypes[0] = "mutated"
	ifaces[0] = "mutated"

	if s.Subtypes()[0] != "printer" {
		t.Errorf("Subtypes observed caller mutation: %v", s.Subtypes())
	}
	if s.Interfaces()[0] != "eth0" {
		t.Errorf("Interfaces observed caller mutation: %v", s.Interfaces())
	}
}

func TestLifecycleFlags(t *testing.T) {
	s, err := New(Config{Name: "svc", Type: "http", Port: 80})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if s.Published() || s.Activated() || s.Destroyed() {
		t.Fatalf("new service has lifecycle flags set")
	}

	var events []LifecycleEvent
	s.OnLifecycle(func(e LifecycleEvent) { events = append(events, e) })

	s.SetActivated(true)
	s.SetPublished(true)
	s.SetPublished(true) // no transition, no event
	s.SetPublished(false)
	s.SetDestroyed(true)

	if !s.Activated() || s.Published() || !s.Destroyed() {
		t.Errorf("flags = published:%v activated:%v destroyed:%v",
			s.Published(), s.Activated(), s.Destroyed())
	}

	want := []LifecycleEvent{
		{FQDN: s.FQDN(), Flag: FlagActivated, Value: true},
		{FQDN: s.FQDN(), Flag: FlagPublished, Value: true},
		{FQDN: s.FQDN(), Flag: FlagPublished, Value: false},
		{FQDN: s.FQDN(), Flag: FlagDestroyed, Value: true},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d lifecycle events, want %d: %v", len(events), len(want), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
}

func TestLifecycleFlagString(t *testing.T) {
	if FlagPublished.String() != "PUBLISHED" ||
		FlagActivated.String() != "ACTIVATED" ||
		FlagDestroyed.String() != "DESTROYED" {
		t.Errorf("unexpected flag names: %s %s %s",
			FlagPublished, FlagActivated, FlagDestroyed)
	}
}
