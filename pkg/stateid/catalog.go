package stateid

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// None is the catalog key used when no jurisdiction is selected.
const None = "NONE"

// Format describes the accepted shape of identifiers for one jurisdiction.
// Nil Rules means no constraint beyond presence.
type Format struct {
	Synopsis string
	Rules    []Pattern
}

// Constrained reports whether the format carries at least one rule.
func (f Format) Constrained() bool {
	return f.Rules != nil
}

// Match reports whether candidate fully matches one of the rules.
// Rules are tried in order and evaluation stops at the first match.
func (f Format) Match(candidate string) bool {
	for _, rule := range f.Rules {
		if rule.Match(candidate) {
			return true
		}
	}
	return false
}

// Catalog maps uppercase jurisdiction codes to their formats.
// A Catalog is never modified after NewCatalog returns, so it is safe for concurrent use.
type Catalog struct {
	formats map[string]Format
	codes   []string
}

// NewCatalog builds a catalog from entries. Keys are uppercased.
// A NONE entry with no synopsis and no rules is added when entries does not contain one.
func NewCatalog(entries map[string]Format) (*Catalog, error) {
	formats := make(map[string]Format, len(entries)+1)
	codes := make([]string, 0, len(entries))

	for key, f := range entries {
		code := strings.ToUpper(strings.TrimSpace(key))
		if code == "" {
			return nil, errors.Join(ErrInvalidCatalog, errors.New("empty jurisdiction code"))
		}
		if _, dup := formats[code]; dup {
			return nil, errors.Join(ErrInvalidCatalog, fmt.Errorf("duplicate jurisdiction code %q", code))
		}
		if code != None && f.Synopsis == "" {
			return nil, errors.Join(ErrInvalidCatalog, fmt.Errorf("jurisdiction %s has no synopsis", code))
		}
		if f.Rules != nil && len(f.Rules) == 0 {
			return nil, errors.Join(ErrInvalidCatalog, fmt.Errorf("jurisdiction %s has an empty rule list", code))
		}
		for i, rule := range f.Rules {
			if rule.re == nil {
				return nil, errors.Join(ErrInvalidCatalog, fmt.Errorf("jurisdiction %s rule %d is not compiled", code, i))
			}
		}

		formats[code] = Format{Synopsis: f.Synopsis, Rules: slices.Clone(f.Rules)}
		if code != None {
			codes = append(codes, code)
		}
	}

	if _, ok := formats[None]; !ok {
		formats[None] = Format{}
	}
	sort.Strings(codes)

	return &Catalog{formats: formats, codes: codes}, nil
}

// MustCatalog is like NewCatalog but panics on error.
func MustCatalog(entries map[string]Format) *Catalog {
	c, err := NewCatalog(entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the format for code, compared after uppercasing.
// The returned rules slice is a copy.
func (c *Catalog) Lookup(code string) (Format, bool) {
	f, ok := c.formats[strings.ToUpper(code)]
	if !ok {
		return Format{}, false
	}
	return Format{Synopsis: f.Synopsis, Rules: slices.Clone(f.Rules)}, true
}

// IsKnown reports whether code is blank or present in the catalog.
// A blank code stands for "no jurisdiction selected" and resolves to NONE.
func (c *Catalog) IsKnown(code string) bool {
	if isBlank(code) {
		return true
	}
	_, ok := c.formats[strings.ToUpper(code)]
	return ok
}

// Synopsis returns the human-readable format description for code.
func (c *Catalog) Synopsis(code string) (string, bool) {
	f, ok := c.formats[strings.ToUpper(code)]
	return f.Synopsis, ok
}

// Codes returns the sorted jurisdiction codes, without NONE.
func (c *Catalog) Codes() []string {
	return slices.Clone(c.codes)
}

// Len returns the number of jurisdictions, without NONE.
func (c *Catalog) Len() int {
	return len(c.codes)
}

// resolve picks the format used for the format check. It expects a known code.
func (c *Catalog) resolve(code string) Format {
	if isBlank(code) {
		return c.formats[None]
	}
	return c.formats[strings.ToUpper(code)]
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
