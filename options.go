package uadetector

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/dmitrymomot/uadetector/pkg/cache"
	"github.com/dmitrymomot/uadetector/pkg/corpus"
	"github.com/dmitrymomot/uadetector/pkg/metrics"
	"github.com/dmitrymomot/uadetector/pkg/registry"
	"github.com/dmitrymomot/uadetector/pkg/version"
)

// Option configures a Detector.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	cache      cache.Cache[Info]
	metrics    metrics.Recorder
	truncation version.Level
	skipBots   bool
	corpus     *corpus.Corpus
	corpusFS   fs.FS
	registry   *registry.Set
}

func defaultOptions() *options {
	return &options{
		logger:     slog.New(slog.DiscardHandler),
		metrics:    metrics.Noop{},
		truncation: version.None,
	}
}

// WithLogger sets the logger used for initialization and hot-path diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCache enables result caching keyed by User-Agent and client hints.
func WithCache(c cache.Cache[Info]) Option {
	return func(o *options) { o.cache = c }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(r metrics.Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.metrics = r
		}
	}
}

// WithVersionTruncation reduces reported OS, browser and client versions to level.
func WithVersionTruncation(level version.Level) Option {
	return func(o *options) { o.truncation = level }
}

// WithSkipBotDetection disables the bot parser; IsBot is then always false.
func WithSkipBotDetection() Option {
	return func(o *options) { o.skipBots = true }
}

// WithCorpus uses an already loaded rule corpus.
func WithCorpus(c *corpus.Corpus) Option {
	return func(o *options) { o.corpus = c }
}

// WithCorpusFS loads the rule corpus from fsys instead of the embedded one.
func WithCorpusFS(fsys fs.FS) Option {
	return func(o *options) { o.corpusFS = fsys }
}

// WithRulesDir loads the rule corpus from a directory on disk.
func WithRulesDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.corpusFS = os.DirFS(dir)
		}
	}
}

// WithRegistry replaces the built-in code registries.
func WithRegistry(r *registry.Set) Option {
	return func(o *options) { o.registry = r }
}
