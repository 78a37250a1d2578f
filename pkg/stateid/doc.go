// Package stateid validates state-issued identifier numbers (driver licences and
// state IDs) against the format each US jurisdiction publishes.
//
// The package is a rule table plus a matcher. A Catalog maps a jurisdiction code
// (AL, AK, ..., WY, DC) to a Format: a human-readable synopsis and an ordered list
// of Pattern rules. A candidate is valid when it matches at least one rule from its
// first character to its last; a rule that only matches a prefix or a substring does
// not count.
//
// # Usage
//
//	v := stateid.Validate("wi", "A123")
//	if !v.Valid() {
//	    fmt.Println(v.Message) // "wi must have the following format: 1 Alpha + 13 Numeric"
//	}
//
// Jurisdiction codes are case-insensitive. Messages quote the code as passed in.
//
// # Blank jurisdiction
//
// A blank code means no jurisdiction was selected. It is accepted by IsKnown and
// resolves to the NONE entry, which has no rules: any non-blank identifier passes.
// NONE is the only unconstrained entry in the built-in table; jurisdictions without
// a published format (AK, CO, DC, PA) still require 3 to 15 alphanumeric characters.
//
// # Errors
//
// Validate never fails. It returns a Verdict whose Kind is KindValid,
// KindUnknownJurisdiction or KindFormatMismatch. The jurisdiction check always runs
// before the format check, so at most one problem is reported per call.
// Verdict.Err converts a failure into an error that matches ErrUnknownJurisdiction
// or ErrFormatMismatch with errors.Is.
//
// # Concurrency
//
// Catalogs are built once and never modified, so Default and any catalog returned by
// NewCatalog can be shared across goroutines without locking.
package stateid
