package permission

import (
	"fmt"
	"strings"
)

const (
	// Wildcard is the full-segment wildcard.
	Wildcard = "*"

	// Delimiter separates the scope, resource and action segments.
	Delimiter = ":"
)

// Permission is an immutable scope:resource:action value.
type Permission struct {
	Scope    string
	Resource string
	Action   string
}

// Parse converts a "scope:resource:action" string into a Permission.
//
// The two-segment "scope:resource" form defaults the action to "*". Any
// other segment count, or an empty segment, fails with ErrInvalidFormat.
func Parse(s string) (Permission, error) {
	parts := strings.Split(s, Delimiter)
	if len(parts) < 2 || len(parts) > 3 {
		return Permission{}, fmt.Errorf("%w: %q must have 2 or 3 segments", ErrInvalidFormat, s)
	}
	for _, part := range parts {
		if part == "" {
			return Permission{}, fmt.Errorf("%w: %q contains an empty segment", ErrInvalidFormat, s)
		}
	}

	p := Permission{
		Scope:    parts[0],
		Resource: parts[1],
		Action:   Wildcard,
	}
	if len(parts) == 3 {
		p.Action = parts[2]
	}
	return p, nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for static catalogues where the input is a compile-time constant.
func MustParse(s string) Permission {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the canonical "scope:resource:action" rendering.
func (p Permission) String() string {
	return p.Scope + Delimiter + p.Resource + Delimiter + p.Action
}

// Matches reports whether this granted permission covers the required one.
//
// Each segment matches when the granted side is the wildcard "*" or the two
// segments are equal (case-sensitive). The required side is always treated
// as a literal, so a required "*" only matches a granted "*".
func (p Permission) Matches(required Permission) bool {
	return segmentMatches(p.Scope, required.Scope) &&
		segmentMatches(p.Resource, required.Resource) &&
		segmentMatches(p.Action, required.Action)
}

// MatchesString parses required and delegates to Matches.
// Malformed input never matches.
func (p Permission) MatchesString(required string) bool {
	req, err := Parse(required)
	if err != nil {
		return false
	}
	return p.Matches(req)
}

func segmentMatches(granted, required string) bool {
	return granted == Wildcard || granted == required
}
