package stateid

import "errors"

var (
	// ErrUnknownJurisdiction is returned by Verdict.Err when the jurisdiction code is not in the catalog.
	ErrUnknownJurisdiction = errors.New("unknown jurisdiction")

	// ErrFormatMismatch is returned by Verdict.Err when the identifier matches none of the jurisdiction rules.
	ErrFormatMismatch = errors.New("identifier format mismatch")

	// ErrInvalidCatalog is returned when a catalog cannot be built from the supplied entries.
	ErrInvalidCatalog = errors.New("invalid jurisdiction catalog")

	// ErrInvalidPattern is returned when a rule expression does not compile.
	ErrInvalidPattern = errors.New("invalid rule pattern")
)
