package pattern

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/dlclark/regexp2"
)

// Boundary is prepended to every rule fragment.
const Boundary = `(?:^|[^A-Z0-9_-]|[^A-Z0-9-]_|sprd-|MZ-)`

// Groups holds the submatches of a successful match; index 0 is the whole match.
type Groups []string

// Group returns capture group n, or "" when the group is out of range or did
// not participate in the match.
func (g Groups) Group(n int) string {
	if n < 0 || n >= len(g) {
		return ""
	}
	return g[n]
}

// Pattern is a compiled, immutable regular expression backed by either the
// standard library or regexp2.
type Pattern struct {
	source string
	std    *regexp.Regexp
	ext    *regexp2.Regexp
}

// Compile compiles a rule fragment behind the boundary prefix, case-insensitively.
func Compile(fragment string) (*Pattern, error) {
	if fragment == "" {
		return nil, ErrEmptyPattern
	}
	return CompileRaw(Boundary+"(?:"+fragment+")", true)
}

// MustCompile is like Compile but panics on error. Intended for package-level
// fixed expressions only.
func MustCompile(fragment string) *Pattern {
	p, err := Compile(fragment)
	if err != nil {
		panic(err)
	}
	return p
}

// CompileExtended is like Compile but always uses regexp2. Rules sharing a
// combined pattern that needed regexp2 are compiled this way so the gate and
// the rules fold case identically.
func CompileExtended(fragment string) (*Pattern, error) {
	if fragment == "" {
		return nil, ErrEmptyPattern
	}
	return compile(Boundary+"(?:"+fragment+")", true, true)
}

// CompileRaw compiles expr as-is, without the boundary prefix.
func CompileRaw(expr string, ignoreCase bool) (*Pattern, error) {
	return compile(expr, ignoreCase, false)
}

func compile(expr string, ignoreCase, extended bool) (*Pattern, error) {
	if expr == "" {
		return nil, ErrEmptyPattern
	}

	var stdErr error
	if !extended {
		stdExpr := expr
		if ignoreCase {
			stdExpr = "(?i)" + expr
		}
		std, err := regexp.Compile(stdExpr)
		if err == nil {
			return &Pattern{source: expr, std: std}, nil
		}
		stdErr = err
	}

	opts := regexp2.None
	if ignoreCase {
		opts = regexp2.IgnoreCase
	}
	ext, extErr := regexp2.Compile(expr, opts)
	if extErr != nil {
		return nil, errors.Join(fmt.Errorf("%w: %q", ErrInvalidPattern, expr), stdErr, extErr)
	}
	return &Pattern{source: expr, ext: ext}, nil
}

// MustCompileRaw is like CompileRaw but panics on error.
func MustCompileRaw(expr string, ignoreCase bool) *Pattern {
	p, err := CompileRaw(expr, ignoreCase)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the expression the pattern was compiled from.
func (p *Pattern) String() string { return p.source }

// Extended reports whether the pattern needed the look-around capable engine.
func (p *Pattern) Extended() bool { return p.ext != nil }

// MatchString reports whether s contains a match.
func (p *Pattern) MatchString(s string) bool {
	if p == nil {
		return false
	}
	if p.std != nil {
		return p.std.MatchString(s)
	}
	ok, err := p.ext.MatchString(s)
	return err == nil && ok
}

// FindGroups returns the capture groups of the leftmost match in s.
func (p *Pattern) FindGroups(s string) (Groups, bool) {
	if p == nil {
		return nil, false
	}
	if p.std != nil {
		m := p.std.FindStringSubmatch(s)
		if m == nil {
			return nil, false
		}
		return Groups(m), true
	}

	m, err := p.ext.FindStringMatch(s)
	if err != nil || m == nil {
		return nil, false
	}
	raw := m.Groups()
	groups := make(Groups, len(raw))
	for i := range raw {
		if len(raw[i].Captures) > 0 {
			groups[i] = raw[i].String()
		}
	}
	return groups, true
}
