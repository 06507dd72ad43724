package uadetector

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/uadetector/pkg/cache"
	"github.com/dmitrymomot/uadetector/pkg/clienthints"
	"github.com/dmitrymomot/uadetector/pkg/corpus"
	"github.com/dmitrymomot/uadetector/pkg/logger"
	"github.com/dmitrymomot/uadetector/pkg/metrics"
	"github.com/dmitrymomot/uadetector/pkg/parser"
	"github.com/dmitrymomot/uadetector/pkg/registry"
	"github.com/dmitrymomot/uadetector/pkg/ruleset"
	"github.com/dmitrymomot/uadetector/pkg/version"
)

// Detector classifies User-Agent strings. It is immutable after New and safe
// for concurrent use; the configured cache is the only shared mutable state.
type Detector struct {
	parsers    *parser.Parsers
	registry   *registry.Set
	cache      cache.Cache[Info]
	log        *slog.Logger
	metrics    metrics.Recorder
	truncation version.Level
	skipBots   bool
	scope      string // cache key prefix, see cacheScope
}

// New loads the rule corpus, builds the registries and compiles every parser.
// Any malformed rule is returned as an error.
func New(opts ...Option) (*Detector, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	start := time.Now()

	c := o.corpus
	if c == nil {
		var err error
		if o.corpusFS != nil {
			c, err = corpus.Load(o.corpusFS)
		} else {
			c, err = corpus.Embedded()
		}
		if err != nil {
			return nil, errors.Join(ErrLoadCorpus, err)
		}
	}

	reg := o.registry
	if reg == nil {
		var err error
		if reg, err = registry.NewDefault(); err != nil {
			return nil, errors.Join(ErrBuildRegistry, err)
		}
	}

	log := o.logger.With(logger.Component("uadetector"))
	parsers, err := parser.New(c, reg, ruleset.WithLogger(log))
	if err != nil {
		return nil, errors.Join(ErrBuildParsers, err)
	}

	d := &Detector{
		parsers:    parsers,
		registry:   reg,
		cache:      o.cache,
		log:        log,
		metrics:    o.metrics,
		truncation: o.truncation,
		skipBots:   o.skipBots,
	}
	if d.cache != nil {
		if d.scope, err = cacheScope(c, reg, o.truncation, o.skipBots); err != nil {
			return nil, errors.Join(ErrCacheScope, err)
		}
	}

	for _, n := range []struct {
		category string
		count    int
	}{
		{corpus.FileBots, len(c.Bots)},
		{corpus.FileOS, len(c.OS)},
		{corpus.FileBrowsers, len(c.Browsers)},
		{corpus.FileEngines, len(c.Engines)},
		{corpus.FileFeedReaders, len(c.FeedReaders)},
		{corpus.FileMobileApps, len(c.MobileApps)},
		{corpus.FileMediaPlayers, len(c.MediaPlayers)},
		{corpus.FilePIM, len(c.PIM)},
		{corpus.FileLibraries, len(c.Libraries)},
		{corpus.FileDevices, len(c.Devices)},
		{corpus.FileVendorFragments, len(c.VendorFragments)},
	} {
		d.log.Info("rules loaded", logger.Category(n.category), logger.Count(n.count))
	}
	d.log.Info("detector ready", logger.Duration(time.Since(start)))

	return d, nil
}

// Detect classifies ua with optional client-hint headers keyed by header name.
// The boolean is false when nothing could be detected.
func (d *Detector) Detect(ua string, hints map[string]string) (Info, bool) {
	return d.DetectHints(ua, clienthints.FromMap(hints))
}

// DetectRequest classifies the User-Agent and client-hint headers of r.
func (d *Detector) DetectRequest(r *http.Request) (Info, bool) {
	return d.DetectHints(r.UserAgent(), clienthints.FromHeader(r.Header))
}

// DetectHints classifies ua with already parsed client hints.
func (d *Detector) DetectHints(ua string, hints clienthints.Hints) (Info, bool) {
	start := time.Now()

	if !hasLetter(ua) && hints.IsZero() {
		d.metrics.Detection(metrics.OutcomeNotFound, time.Since(start))
		return Info{}, false
	}

	var key string
	if d.cache != nil {
		key = d.CacheKey(ua, hints)
		if cached, ok := d.cache.TryGet(key); ok {
			d.metrics.CacheLookup(metrics.CacheHit)
			return d.finish(cached.clone(), start)
		}
		d.metrics.CacheLookup(metrics.CacheMiss)
	}

	info := d.parse(ua, hints)

	if d.cache != nil && !d.cache.Set(key, info.clone()) {
		d.metrics.CacheLookup(metrics.CacheRejected)
		d.log.Debug("cache rejected result", slog.Int("key_length", len(key)))
	}

	return d.finish(info, start)
}

func (d *Detector) finish(info Info, start time.Time) (Info, bool) {
	outcome := metrics.OutcomeNotFound
	switch {
	case info.IsBot:
		outcome = metrics.OutcomeBot
	case info.Found():
		outcome = metrics.OutcomeFound
	}
	d.metrics.Detection(outcome, time.Since(start))
	return info, info.Found()
}

func (d *Detector) parse(ua string, hints clienthints.Hints) Info {
	var info Info

	if !d.skipBots {
		if bot, ok := d.parsers.Bot.Parse(ua); ok {
			info.IsBot = true
			info.Bot = bot
			d.metrics.CategoryMatch("bot")
		}
	}

	os, _ := d.parsers.OS.Parse(ua, hints)
	browser, _ := d.parsers.Browser.Parse(ua, hints)
	client, _ := d.parsers.Client.ParseWithBrowser(ua, browser)
	device, _ := d.parsers.Device.Parse(ua, hints)
	device = refineDevice(ua, hints, d.registry, os, browser, device)

	if os != nil {
		os.Version = version.Truncate(os.Version, d.truncation)
		d.metrics.CategoryMatch("os")
	}
	if browser != nil {
		browser.Version = version.Truncate(browser.Version, d.truncation)
		d.metrics.CategoryMatch("browser")
	}
	if client != nil {
		client.Version = version.Truncate(client.Version, d.truncation)
		d.metrics.CategoryMatch("client")
	}
	if device != nil {
		d.metrics.CategoryMatch("device")
	}

	info.OS = os
	info.Browser = browser
	info.Client = client
	info.Device = device
	return info
}

func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c >= 'a' && c <= 'z' {
			return true
		}
	}
	return false
}
