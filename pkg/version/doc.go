// Package version reduces dotted version strings to a requested precision and
// compares them component by component.
//
// A version is treated as a dot-separated sequence of components. Truncation
// only ever drops surplus trailing components; it never pads a short version:
//
//	version.Truncate("1.2.3.4", version.Major) // "1"
//	version.Truncate("1.2", version.Patch)     // "1.2"
//	version.Truncate("1.2.3", version.None)    // "1.2.3"
//
// Level implements encoding.TextUnmarshaler, so it can be decoded directly from
// environment variables or configuration files ("none", "major", "minor",
// "patch", "build").
package version
