// Package ruleset holds an ordered, immutable collection of compiled rules for
// one classification category and evaluates it against User-Agent strings.
//
// Match is two-phase. The category's combined pattern is evaluated first and
// rejects the input in a single pass when no rule can apply. Only then are the
// rules scanned in declaration order; the first rule whose pattern matches wins.
// Declaration order encodes priority and is never rearranged.
//
//	set, err := ruleset.New("browsers", []ruleset.Definition[string]{
//	    {Regex: `Edg/(\d+[.\d]*)`, Result: "Microsoft Edge"},
//	    {Regex: `Chrome/(\d+[.\d]*)`, Result: "Chrome"},
//	})
//	rule, groups, ok := set.Match(ua)
//
// A Set is built once and is safe for concurrent use without locking.
package ruleset
