package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is the number of dotted components retained by Truncate.
type Level int

const (
	// None keeps the version unchanged
	None Level = iota
	// Major keeps one component
	Major
	// Minor keeps two components
	Minor
	// Patch keeps three components
	Patch
	// Build keeps four components
	Build
)

var levelNames = map[Level]string{
	None:  "none",
	Major: "major",
	Minor: "minor",
	Patch: "patch",
	Build: "build",
}

// String returns the lower-case level name.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "level(" + strconv.Itoa(int(l)) + ")"
}

// Components returns how many components the level keeps, 0 meaning all.
func (l Level) Components() int {
	if l < None || l > Build {
		return 0
	}
	return int(l)
}

// ParseLevel converts a level name (case-insensitive) into a Level.
// An empty string is None.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return None, nil
	}
	for level, name := range levelNames {
		if name == s {
			return level, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Truncate keeps at most level.Components() dotted components of v.
// Versions with fewer components than requested are returned unchanged.
func Truncate(v string, level Level) string {
	keep := level.Components()
	if keep == 0 || v == "" {
		return v
	}

	idx := 0
	for range keep {
		next := strings.IndexByte(v[idx:], '.')
		if next < 0 {
			return v
		}
		idx += next + 1
	}
	return v[:idx-1]
}

// Compare compares two dotted versions numerically component by component.
// Missing components count as zero, so "1.0" equals "1". Components that are
// not purely numeric are compared by their leading digits first and then
// lexically by the remainder. The result is -1, 0 or +1.
func Compare(a, b string) int {
	as := splitComponents(a)
	bs := splitComponents(b)

	n := max(len(as), len(bs))
	for i := range n {
		var x, y string
		if i < len(as) {
			x = as[i]
		}
		if i < len(bs) {
			y = bs[i]
		}
		if c := compareComponent(x, y); c != 0 {
			return c
		}
	}
	return 0
}

func splitComponents(v string) []string {
	v = strings.Trim(strings.TrimSpace(v), ".")
	if v == "" {
		return nil
	}
	return strings.Split(v, ".")
}

func compareComponent(x, y string) int {
	xn, xrest := leadingNumber(x)
	yn, yrest := leadingNumber(y)
	switch {
	case xn < yn:
		return -1
	case xn > yn:
		return 1
	}
	return strings.Compare(xrest, yrest)
}

// leadingNumber splits "12beta" into 12 and "beta". Overlong digit runs saturate.
func leadingNumber(s string) (uint64, string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, s
	}
	n, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		n = ^uint64(0)
	}
	return n, s[i:]
}
