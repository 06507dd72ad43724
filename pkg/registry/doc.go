// Package registry maps canonical names to compact codes for operating
// systems, browsers and device brands.
//
// Each Registry is injective: one canonical name per code and no name shared
// by two codes. Deprecated or alternative spellings live in a separate alias
// table and resolve to a current code without becoming canonical names, so
// Name(code) always returns the canonical spelling.
//
// # Lookup policy
//
// Code performs exact, case-sensitive lookup over canonical names and then
// aliases. CodeFold applies Unicode simple case folding (cases.Fold from
// golang.org/x/text) to both sides, which is locale independent; it is used
// for client hint values whose capitalisation is not under our control.
//
// NewDefault builds a fresh, immutable Set of every built-in table. Tables are
// plain values owned by the caller and safe for concurrent reads.
package registry
