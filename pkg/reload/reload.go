package reload

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/uadetector"
	"github.com/dmitrymomot/uadetector/pkg/cache"
	"github.com/dmitrymomot/uadetector/pkg/clienthints"
	"github.com/dmitrymomot/uadetector/pkg/logger"
	"github.com/dmitrymomot/uadetector/pkg/metrics"
)

// DefaultDebounce is the quiet period after the last file event before a rebuild.
const DefaultDebounce = 250 * time.Millisecond

// Option configures a Holder.
type Option func(*Holder)

// WithDetectorOptions adds options applied to every detector the Holder builds.
func WithDetectorOptions(opts ...uadetector.Option) Option {
	return func(h *Holder) { h.detectorOpts = append(h.detectorOpts, opts...) }
}

// WithLogger sets the logger for reload events.
func WithLogger(l *slog.Logger) Option {
	return func(h *Holder) {
		if l != nil {
			h.log = l
		}
	}
}

// WithMetrics records reload outcomes.
func WithMetrics(r metrics.Recorder) Option {
	return func(h *Holder) {
		if r != nil {
			h.metrics = r
		}
	}
}

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(h *Holder) {
		if d > 0 {
			h.debounce = d
		}
	}
}

// WithCacheSize gives every built detector its own LRU result cache of n entries.
func WithCacheSize(n int) Option {
	return func(h *Holder) { h.cacheSize = n }
}

// Holder serves the most recent successfully built Detector.
type Holder struct {
	dir          string
	detectorOpts []uadetector.Option
	log          *slog.Logger
	metrics      metrics.Recorder
	debounce     time.Duration
	cacheSize    int

	current atomic.Pointer[uadetector.Detector]
	mu      sync.Mutex // serializes rebuilds
	closed  atomic.Bool
}

// New builds the initial detector from dir. The initial build must succeed.
func New(dir string, opts ...Option) (*Holder, error) {
	if dir == "" {
		return nil, ErrEmptyDir
	}
	h := &Holder{
		dir:      dir,
		log:      logger.Discard(),
		metrics:  metrics.Noop{},
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("reload"))

	det, err := h.build()
	if err != nil {
		return nil, err
	}
	h.current.Store(det)
	return h, nil
}

// Detector returns the detector currently in use.
func (h *Holder) Detector() *uadetector.Detector {
	return h.current.Load()
}

// Detect classifies ua with the current detector.
func (h *Holder) Detect(ua string, hints map[string]string) (uadetector.Info, bool) {
	return h.current.Load().Detect(ua, hints)
}

// DetectHints classifies ua with already parsed hints using the current detector.
func (h *Holder) DetectHints(ua string, hints clienthints.Hints) (uadetector.Info, bool) {
	return h.current.Load().DetectHints(ua, hints)
}

// Reload rebuilds the detector now. On failure the previous detector stays
// in place and the error is returned.
func (h *Holder) Reload() error {
	if h.closed.Load() {
		return ErrHolderClosed
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	start := time.Now()
	det, err := h.build()
	if err != nil {
		h.metrics.Reload(metrics.ReloadFailure)
		h.log.Error("reload failed, keeping previous rules", logger.Path(h.dir), logger.Error(err))
		return err
	}
	h.current.Store(det)
	h.metrics.Reload(metrics.ReloadSuccess)
	h.log.Info("rules reloaded", logger.Path(h.dir), logger.Duration(time.Since(start)))
	return nil
}

func (h *Holder) build() (*uadetector.Detector, error) {
	opts := make([]uadetector.Option, 0, len(h.detectorOpts)+2)
	opts = append(opts, h.detectorOpts...)
	opts = append(opts, uadetector.WithRulesDir(h.dir))
	if h.cacheSize > 0 {
		opts = append(opts, uadetector.WithCache(cache.NewLRU[uadetector.Info](h.cacheSize)))
	}

	det, err := uadetector.New(opts...)
	if err != nil {
		return nil, errors.Join(ErrBuild, err)
	}
	return det, nil
}

// Run watches the rules directory and reloads on changes until ctx is done.
// Rebuild failures are logged; Run only returns early if the watcher cannot start.
func (h *Holder) Run(ctx context.Context) error {
	if h.closed.Load() {
		return ErrHolderClosed
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Join(ErrWatch, err)
	}
	defer watcher.Close()

	if err := watcher.Add(h.dir); err != nil {
		return errors.Join(ErrWatch, err)
	}
	h.log.Info("watching rules directory", logger.Path(h.dir))

	// pending is nil while no rebuild is scheduled
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			h.log.Debug("rules changed", logger.Path(event.Name), slog.String("op", event.Op.String()))
			pending = time.After(h.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			h.log.Warn("watcher error", logger.Error(err))

		case <-pending:
			pending = nil
			_ = h.Reload()
		}
	}
}

// Close stops future reloads. The current detector keeps working.
func (h *Holder) Close() error {
	h.closed.Store(true)
	return nil
}

func relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(event.Name))
	return ext == ".yml" || ext == ".yaml"
}
