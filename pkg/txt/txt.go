// Package txt encodes and decodes DNS-SD TXT record payloads.
//
// A TXT record carries a sequence of character-strings: each one is a
// length byte followed by up to 255 bytes of "key=value" data
// (RFC 6763, section 6). Values may be strings, numbers or booleans.
// A boolean true is encoded as a bare key with no value, following
// the attribute-presence convention. An empty mapping still encodes
// to a valid payload: a single zero-length character-string.
package txt

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Values is a mapping of TXT attribute keys to their values.
// Supported value types are string, bool, the integer kinds,
// float64 and []byte.
type Values map[string]any

// TXT codec errors.
var (
	// ErrEmptyKey indicates an attribute with an empty key.
	ErrEmptyKey = errors.New("empty attribute key")

	// ErrEntryTooLong indicates an attribute that does not fit in a
	// single 255-byte character-string.
	ErrEntryTooLong = errors.New("attribute exceeds 255 bytes")

	// ErrUnsupportedValue indicates an attribute value of a type the
	// codec cannot represent.
	ErrUnsupportedValue = errors.New("unsupported attribute value type")

	// ErrMalformedPayload indicates a payload whose length bytes do
	// not match its size.
	ErrMalformedPayload = errors.New("malformed TXT payload")
)

// Encode converts the values into the binary TXT record payload.
// Attributes are emitted in lexical key order so that equal inputs
// always produce byte-identical payloads. An empty or nil mapping
// encodes to the single-zero-byte empty payload, never to nil.
func Encode(v Values) ([]byte, error) {
	if len(v) == 0 {
		// RFC 6763 section 6.1: a service with no attributes still
		// publishes a TXT record containing one empty string.
		return []byte{0}, nil
	}

	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var payload []byte
	for _, k := range keys {
		entry, err := formatEntry(k, v[k])
		if err != nil {
			return nil, err
		}
		payload = append(payload, byte(len(entry)))
		payload = append(payload, entry...)
	}
	return payload, nil
}

// Decode parses a binary TXT payload back into values. Bare keys
// decode as boolean true; everything after the first '=' is kept as
// a string, including an empty value.
func Decode(payload []byte) (Values, error) {
	strs, err := Split(payload)
	if err != nil {
		return nil, err
	}

	v := make(Values)
	for _, s := range strs {
		if s == "" {
			continue
		}
		key, val, found := strings.Cut(s, "=")
		if key == "" {
			continue
		}
		if found {
			v[key] = val
		} else {
			v[key] = true
		}
	}
	return v, nil
}

// Split divides a binary TXT payload into its character-strings.
func Split(payload []byte) ([]string, error) {
	var strs []string
	for i := 0; i < len(payload); {
		n := int(payload[i])
		i++
		if i+n > len(payload) {
			return nil, fmt.Errorf("%w: character-string of length %d overruns payload", ErrMalformedPayload, n)
		}
		strs = append(strs, string(payload[i:i+n]))
		i += n
	}
	return strs, nil
}

// Strings renders the values as "key=value" strings in lexical key
// order, the form expected by most mDNS responder libraries.
func Strings(v Values) ([]string, error) {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	strs := make([]string, 0, len(keys))
	for _, k := range keys {
		entry, err := formatEntry(k, v[k])
		if err != nil {
			return nil, err
		}
		strs = append(strs, entry)
	}
	return strs, nil
}

// formatEntry renders one attribute as a "key=value" string, or a
// bare "key" for boolean true.
func formatEntry(key string, value any) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	entry := key
	if value != true {
		s, err := formatValue(value)
		if err != nil {
			return "", fmt.Errorf("%w: key %q", err, key)
		}
		entry += "=" + s
	}

	if len(entry) > 255 {
		return "", fmt.Errorf("%w: key %q", ErrEntryTooLong, key)
	}
	return entry, nil
}

func formatValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case bool:
		// true is handled by the caller as a bare key.
		return "false", nil
	case int:
		return strconv.Itoa(v), nil
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", ErrUnsupportedValue
	}
}
