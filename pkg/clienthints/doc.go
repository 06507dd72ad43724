// Package clienthints parses User-Agent client hint headers.
//
// Values follow the HTTP structured field syntax (RFC 8941) and are decoded
// with github.com/dunglas/httpsfv. A value that fails strict parsing is still
// used when it is a plain token, since intermediaries commonly strip the
// quotes. GREASE brands ("Not A;Brand" and friends) are dropped.
//
//	hints := clienthints.FromHeader(r.Header)
//	if hints.Platform != "" { ... }
//
// Hints from a map are matched by header name case-insensitively; unknown
// keys are ignored.
package clienthints
