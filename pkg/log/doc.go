// Package log provides structured announcement logging for beacon.
//
// This package defines the Logger interface and Event type for
// capturing what the announcer did: lifecycle flag transitions,
// record-set generation, responder start/stop and failures. It is
// separate from operational logging (slog) - the event stream is a
// machine-readable trace of every advertisement decision.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	a := announce.New(responder, announce.WithLogger(log.NewSlogAdapter(slog.Default())))
//
//	// For production: write to a binary event file
//	fl, _ := log.NewFileLogger("/var/log/beacon/events.blog")
//	a := announce.New(responder, announce.WithLogger(fl))
//
//	// Both at once
//	a := announce.New(responder, announce.WithLogger(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()), fl,
//	)))
//
// # File Format
//
// Event files use a CBOR stream, one Event per item, with integer map
// keys for compactness.
package log
