package stateid

import (
	"errors"
	"fmt"
)

// Kind classifies a verdict.
type Kind int

const (
	KindValid Kind = iota
	KindUnknownJurisdiction
	KindFormatMismatch
)

func (k Kind) String() string {
	switch k {
	case KindValid:
		return "valid"
	case KindUnknownJurisdiction:
		return "unknown_jurisdiction"
	case KindFormatMismatch:
		return "format_mismatch"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Verdict is the outcome of validating one identifier.
type Verdict struct {
	Kind Kind
	// Code is the jurisdiction code exactly as the caller passed it.
	Code string
	// Synopsis of the resolved jurisdiction. Empty for unknown jurisdictions and NONE.
	Synopsis string
	// Message is a human-readable failure description. Empty when valid.
	Message string
}

// Valid reports whether the identifier passed both checks.
func (v Verdict) Valid() bool {
	return v.Kind == KindValid
}

// Err converts a failed verdict into an error matching ErrUnknownJurisdiction
// or ErrFormatMismatch with errors.Is. It returns nil for a valid verdict.
func (v Verdict) Err() error {
	switch v.Kind {
	case KindValid:
		return nil
	case KindUnknownJurisdiction:
		return errors.Join(ErrUnknownJurisdiction, errors.New(v.Message))
	default:
		return errors.Join(ErrFormatMismatch, errors.New(v.Message))
	}
}
