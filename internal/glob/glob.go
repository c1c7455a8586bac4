// Package glob provides filename pattern matching for search filters.
//
// Patterns are matched against a file's base name only and always
// case-insensitively, independent of how the content search treats case.
// Supported syntax:
//
//	*        any run of characters (including none)
//	?        exactly one character
//	{a,b,c}  alternation; the pattern matches if any expansion matches
//
// Everything else is literal, so "*.d.ts" does not treat "." as a wildcard.
// Brace groups expand left to right and may appear more than once
// ("{src,test}.{ts,js}" yields four alternatives).
package glob

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrTooManyAlternatives is returned when brace expansion exceeds MaxAlternatives.
var ErrTooManyAlternatives = errors.New("glob pattern expands to too many alternatives")

// MaxAlternatives bounds brace expansion so a hostile pattern
// ("{a,b}{a,b}{a,b}...") cannot allocate without limit.
const MaxAlternatives = 1024

// braceGroup finds the first non-empty {...} group.
var braceGroup = regexp.MustCompile(`\{([^}]+)\}`)

// Pattern is a compiled glob.
type Pattern struct {
	source string
	alts   []*regexp.Regexp
}

// Compile parses a glob pattern into a reusable matcher.
func Compile(pattern string) (*Pattern, error) {
	expanded, err := expand(pattern, nil)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	p := &Pattern{source: pattern, alts: make([]*regexp.Regexp, 0, len(expanded))}
	for _, alt := range expanded {
		re, err := regexp.Compile("(?i)^" + translate(alt) + "$")
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		p.alts = append(p.alts, re)
	}
	return p, nil
}

// Match reports whether name matches the glob pattern.
// Convenience wrapper for one-off checks; use Compile in loops.
func Match(pattern, name string) (bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return p.Match(name), nil
}

// Match reports whether name matches any expansion of the pattern.
func (p *Pattern) Match(name string) bool {
	for _, re := range p.alts {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return p.source
}

// expand performs brace expansion, appending results to acc.
// Alternatives are trimmed, so "{ts, tsx}" behaves like "{ts,tsx}".
func expand(pattern string, acc []string) ([]string, error) {
	loc := braceGroup.FindStringSubmatchIndex(pattern)
	if loc == nil {
		if len(acc) >= MaxAlternatives {
			return nil, ErrTooManyAlternatives
		}
		return append(acc, pattern), nil
	}

	head, tail := pattern[:loc[0]], pattern[loc[1]:]
	var err error
	for _, opt := range strings.Split(pattern[loc[2]:loc[3]], ",") {
		acc, err = expand(head+strings.TrimSpace(opt)+tail, acc)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// translate converts a brace-free glob into a regular expression body.
func translate(glob string) string {
	var b strings.Builder
	for _, r := range glob {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return b.String()
}
