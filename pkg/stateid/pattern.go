package stateid

import (
	"errors"
	"regexp"
)

// Pattern is a rule expression that only matches when it consumes the whole candidate.
// The zero value matches nothing.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// NewPattern compiles expr wrapped in explicit start and end anchors.
func NewPattern(expr string) (Pattern, error) {
	if expr == "" {
		return Pattern{}, errors.Join(ErrInvalidPattern, errors.New("empty expression"))
	}
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return Pattern{}, errors.Join(ErrInvalidPattern, err)
	}
	return Pattern{expr: expr, re: re}, nil
}

// MustPattern is like NewPattern but panics on a bad expression.
// Intended for static tables built at init.
func MustPattern(expr string) Pattern {
	p, err := NewPattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether s matches the pattern from start to end.
func (p Pattern) Match(s string) bool {
	if p.re == nil {
		return false
	}
	return p.re.MatchString(s)
}

// String returns the source expression without the anchors.
func (p Pattern) String() string {
	return p.expr
}

func patterns(exprs ...string) []Pattern {
	out := make([]Pattern, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, MustPattern(e))
	}
	return out
}
