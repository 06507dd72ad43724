package uadetector

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"

	"github.com/dmitrymomot/uadetector/pkg/clienthints"
	"github.com/dmitrymomot/uadetector/pkg/corpus"
	"github.com/dmitrymomot/uadetector/pkg/registry"
	"github.com/dmitrymomot/uadetector/pkg/version"
)

// CacheKey returns the fingerprint of a detection input: the length-prefixed
// User-Agent followed by the stable form of the hints. Distinct inputs never
// share a fingerprint.
func CacheKey(ua string, hints clienthints.Hints) string {
	return strconv.Itoa(len(ua)) + ":" + ua + hints.Key()
}

// CacheKey returns the key d stores the result of (ua, hints) under. It is
// CacheKey prefixed with the detector's scope, so detectors built from other
// rules or options never read each other's results from a shared cache.
func (d *Detector) CacheKey(ua string, hints clienthints.Hints) string {
	return d.scope + CacheKey(ua, hints)
}

// cacheScope identifies the rules and options results are produced with.
func cacheScope(c *corpus.Corpus, reg *registry.Set, level version.Level, skipBots bool) (string, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)
	if err := enc.Encode(c); err != nil {
		return "", err
	}
	for _, r := range []*registry.Registry{reg.OS, reg.Browsers, reg.Brands} {
		if err := enc.Encode(r.Entries()); err != nil {
			return "", err
		}
	}
	if err := enc.Encode(reg.Engines); err != nil {
		return "", err
	}

	bots := "bots"
	if skipBots {
		bots = "nobots"
	}
	return level.String() + ";" + bots + ";" + hex.EncodeToString(h.Sum(nil)[:8]) + ";", nil
}
