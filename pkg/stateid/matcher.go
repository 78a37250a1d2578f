package stateid

import "fmt"

// Validate checks candidate against the format of the jurisdiction identified by code.
//
// The jurisdiction check runs first: a non-blank code missing from the catalog yields
// KindUnknownJurisdiction. A blank code resolves to NONE, which accepts any non-blank
// candidate. Otherwise candidate must fully match one of the jurisdiction rules.
// Messages quote code as given, without case folding.
func (c *Catalog) Validate(code, candidate string) Verdict {
	if !c.IsKnown(code) {
		return Verdict{
			Kind:    KindUnknownJurisdiction,
			Code:    code,
			Message: fmt.Sprintf("%s is not valid", code),
		}
	}

	format := c.resolve(code)
	if matches(format, candidate) {
		return Verdict{Kind: KindValid, Code: code, Synopsis: format.Synopsis}
	}

	return Verdict{
		Kind:     KindFormatMismatch,
		Code:     code,
		Synopsis: format.Synopsis,
		Message:  fmt.Sprintf("%s must have the following format: %s", code, format.Synopsis),
	}
}

// Validate runs Catalog.Validate against the Default catalog.
func Validate(code, candidate string) Verdict {
	return Default.Validate(code, candidate)
}

// IsKnown runs Catalog.IsKnown against the Default catalog.
func IsKnown(code string) bool {
	return Default.IsKnown(code)
}

// Lookup runs Catalog.Lookup against the Default catalog.
func Lookup(code string) (Format, bool) {
	return Default.Lookup(code)
}

func matches(f Format, candidate string) bool {
	if !f.Constrained() {
		// Presence is still required without rules.
		return !isBlank(candidate)
	}
	return f.Match(candidate)
}
