package pattern

import "strings"

// CombinedSource builds the alternation of fragments in reverse declaration
// order, wrapped in the boundary prefix.
func CombinedSource(fragments []string) string {
	var b strings.Builder
	b.WriteString(Boundary)
	b.WriteString("(?:")
	for i := len(fragments) - 1; i >= 0; i-- {
		b.WriteString(fragments[i])
		if i > 0 {
			b.WriteByte('|')
		}
	}
	b.WriteString(")")
	return b.String()
}

// Combine compiles the combined reject gate for a category. A nil pattern with
// no error is returned for an empty fragment list; it never matches.
func Combine(fragments []string) (*Pattern, error) {
	if len(fragments) == 0 {
		return nil, nil
	}
	for _, f := range fragments {
		if f == "" {
			return nil, ErrEmptyPattern
		}
	}
	return CompileRaw(CombinedSource(fragments), true)
}
