package log

import "time"

// Event represents one announcement log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the announcing session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Kind classifies the event.
	Kind Kind `cbor:"3,keyasint"`

	// FQDN is the fully-qualified service instance name.
	FQDN string `cbor:"4,keyasint,omitempty"`

	// Instance is the service instance name.
	Instance string `cbor:"5,keyasint,omitempty"`

	// ServiceType is the canonical service type, e.g. "_http._tcp".
	ServiceType string `cbor:"6,keyasint,omitempty"`

	// RecordCount is the size of the generated record set, for
	// KindRecords events.
	RecordCount int `cbor:"7,keyasint,omitempty"`

	// Detail carries a free-form description, e.g. the flag that
	// changed on a lifecycle event.
	Detail string `cbor:"8,keyasint,omitempty"`

	// Error is the failure message, for KindError events.
	Error string `cbor:"9,keyasint,omitempty"`
}

// Kind classifies an announcement event.
type Kind uint8

const (
	// KindPublished indicates the responder started broadcasting the
	// service.
	KindPublished Kind = 0
	// KindUnpublished indicates the advertisement was withdrawn.
	KindUnpublished Kind = 1
	// KindDestroyed indicates the session was permanently retired.
	KindDestroyed Kind = 2
	// KindRecords indicates a record set was generated.
	KindRecords Kind = 3
	// KindLifecycle indicates a lifecycle flag transition.
	KindLifecycle Kind = 4
	// KindError indicates a responder or assembly failure.
	KindError Kind = 5
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPublished:
		return "PUBLISHED"
	case KindUnpublished:
		return "UNPUBLISHED"
	case KindDestroyed:
		return "DESTROYED"
	case KindRecords:
		return "RECORDS"
	case KindLifecycle:
		return "LIFECYCLE"
	case KindError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
