package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/beacon-protocol/beacon-go/pkg/dnssd"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "service.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
name: My.Printer
type: http
port: 8080
protocol: tcp
txt:
  path: /api
  secure: true
subtypes:
  - printer
disable_ipv6: true
interfaces:
  - eth0
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if cfg.Name != "My.Printer" || cfg.Type != "http" || cfg.Port != 8080 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.TXT["path"] != "/api" || cfg.TXT["secure"] != true {
		t.Errorf("TXT = %v", cfg.TXT)
	}
	if len(cfg.Subtypes) != 1 || cfg.Subtypes[0] != "printer" {
		t.Errorf("Subtypes = %v", cfg.Subtypes)
	}
	if !cfg.DisableIPv6 {
		t.Errorf("DisableIPv6 not set")
	}
	if len(cfg.Interfaces) != 1 || cfg.Interfaces[0] != "eth0" {
		t.Errorf("Interfaces = %v", cfg.Interfaces)
	}

	// The loaded config builds a valid service.
	s, err := dnssd.New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.FQDN() != "My-Printer._http._tcp.local" {
		t.Errorf("FQDN = %q", s.FQDN())
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("loadConfig succeeded on a missing file")
	}
}

func TestLoadConfigInvalidService(t *testing.T) {
	path := writeConfig(t, "type: http\nport: 8080\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if _, err := dnssd.New(cfg); !errors.Is(err, dnssd.ErrMissingName) {
		t.Errorf("New error = %v, want ErrMissingName", err)
	}
}
