// Package envelope codes text to and from its quoted JSON string
// representation. The transform core works on plain decoded text; this
// package is the boundary that unwraps incoming payloads and re-wraps
// outgoing ones.
package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// InputError reports a payload the caller got wrong: bytes that are not
// UTF-8, not JSON, or JSON that is not a string. It maps to a
// bad-request response at the transport boundary.
type InputError struct {
	Reason string
	Cause  error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("envelope: %s: %v", e.Reason, e.Cause)
	}
	return "envelope: " + e.Reason
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// Decode unwraps a JSON quoted string into plain text. The raw bytes
// must be strictly valid UTF-8 and decode to a JSON string value;
// anything else is an *InputError.
func Decode(raw []byte) (string, error) {
	if _, _, err := transform.Bytes(encoding.UTF8Validator, raw); err != nil {
		return "", &InputError{Reason: "payload is not valid UTF-8", Cause: err}
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return "", &InputError{Reason: "payload is not a JSON string", Cause: err}
	}
	return text, nil
}

// Encode wraps plain text back into a JSON quoted string. Non-ASCII
// characters are preserved verbatim rather than \u-escaped, and
// HTML-significant characters are not escaped either; only the escapes
// JSON itself requires are applied.
func Encode(text string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(text); err != nil {
		return nil, fmt.Errorf("envelope: encode: %w", err)
	}
	// Encode terminates the value with a newline.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
