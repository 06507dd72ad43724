package pattern

import (
	"regexp"
	"strings"
)

var trailingTD = regexp.MustCompile(`(?i) TD$`)

// Resolve substitutes "$1".."$9" in template with the matching groups, then
// trims and collapses whitespace. It reports false when nothing is left.
func Resolve(template string, groups Groups) (string, bool) {
	if template == "" {
		return "", false
	}

	out := template
	if strings.IndexByte(template, '$') >= 0 {
		var b strings.Builder
		b.Grow(len(template))
		for i := 0; i < len(template); i++ {
			c := template[i]
			if c == '$' && i+1 < len(template) && template[i+1] >= '1' && template[i+1] <= '9' {
				b.WriteString(groups.Group(int(template[i+1] - '0')))
				i++
				continue
			}
			b.WriteByte(c)
		}
		out = b.String()
	}

	out = strings.Join(strings.Fields(out), " ")
	return out, out != ""
}

// ResolveVersion resolves a version template: underscores become dots and
// surrounding spaces and dots are trimmed.
func ResolveVersion(template string, groups Groups) (string, bool) {
	v, ok := Resolve(template, groups)
	if !ok {
		return "", false
	}
	v = strings.Trim(strings.ReplaceAll(v, "_", "."), " .")
	return v, v != ""
}

// ResolveModel resolves a device model template: underscores become spaces,
// a trailing " TD" marker is dropped and the bare "Build" token is rejected.
func ResolveModel(template string, groups Groups) (string, bool) {
	m, ok := Resolve(template, groups)
	if !ok {
		return "", false
	}
	m = strings.ReplaceAll(m, "_", " ")
	m = trailingTD.ReplaceAllString(m, "")
	m = strings.Join(strings.Fields(m), " ")
	if m == "" || m == "Build" {
		return "", false
	}
	return m, true
}
