package metrics

import "time"

// Detection outcome labels
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeBot      = "bot"
)

// Cache lookup labels
const (
	CacheHit      = "hit"
	CacheMiss     = "miss"
	CacheRejected = "rejected"
)

// Reload status labels
const (
	ReloadSuccess = "success"
	ReloadFailure = "failure"
)

// Recorder receives detector observations. Implementations must be safe for concurrent use.
type Recorder interface {
	// Detection records one Detect call with its outcome and duration.
	Detection(outcome string, d time.Duration)
	// CacheLookup records a cache hit, miss or rejected write.
	CacheLookup(result string)
	// CategoryMatch records that a category parser produced a result.
	CategoryMatch(category string)
	// Reload records a corpus reload attempt.
	Reload(status string)
}

// Noop is a Recorder that discards everything.
type Noop struct{}

func (Noop) Detection(string, time.Duration) {}
func (Noop) CacheLookup(string)              {}
func (Noop) CategoryMatch(string)            {}
func (Noop) Reload(string)                   {}
