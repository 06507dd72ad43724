// Package pattern compiles User-Agent rule fragments and resolves name and
// version templates from their capture groups.
//
// Every rule fragment is compiled case-insensitively behind a token boundary
// prefix:
//
//	(?:^|[^A-Z0-9_-]|[^A-Z0-9-]_|sprd-|MZ-)(?:<fragment>)
//
// so that "Mini" never matches inside "OperaMini" while "sprd-" and "MZ-"
// vendor prefixes still count as token starts.
//
// # Engines
//
// Fragments are compiled with the standard library first. Corpus fragments
// that use look-around ("SAMSUNG(?! ?Browser)", "(?<!like )Gecko") are not
// expressible in RE2 and fall back to github.com/dlclark/regexp2. Both engines
// use leftmost-first semantics, so capture groups resolve the same way.
// Compiled patterns are safe for concurrent use.
//
// # Combined patterns
//
// Combine joins a category's fragments in reverse declaration order behind a
// single boundary prefix. The combined pattern is a reject gate only: when it
// does not match, no individual fragment can match either.
//
// # Templates
//
// Resolve fills "$1".."$9" placeholders from capture groups. Placeholders of
// groups that did not participate resolve to empty, whitespace is collapsed,
// and an empty outcome reports ok == false rather than "".
package pattern
