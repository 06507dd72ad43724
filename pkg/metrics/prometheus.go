package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus is a Recorder backed by Prometheus collectors.
type Prometheus struct {
	detections *prometheus.CounterVec
	duration   prometheus.Histogram
	cache      *prometheus.CounterVec
	categories *prometheus.CounterVec
	reloads    *prometheus.CounterVec
}

var _ Recorder = (*Prometheus)(nil)

// NewPrometheus registers the detector collectors with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
// It panics if the collectors are already registered with reg.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Prometheus{
		// detections counts Detect calls by outcome
		detections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uadetector_detections_total",
				Help: "Total number of User-Agent detections by outcome",
			},
			[]string{"outcome"},
		),
		// duration tracks time spent in Detect, cache lookups included
		duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "uadetector_detection_duration_seconds",
				Help:    "User-Agent detection duration in seconds",
				Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
			},
		),
		cache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uadetector_cache_operations_total",
				Help: "Total number of result cache operations by result",
			},
			[]string{"result"},
		),
		categories: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uadetector_category_matches_total",
				Help: "Total number of category parser matches",
			},
			[]string{"category"},
		),
		reloads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uadetector_reloads_total",
				Help: "Total number of rule corpus reloads by status",
			},
			[]string{"status"},
		),
	}
}

func (p *Prometheus) Detection(outcome string, d time.Duration) {
	p.detections.WithLabelValues(outcome).Inc()
	p.duration.Observe(d.Seconds())
}

func (p *Prometheus) CacheLookup(result string) {
	p.cache.WithLabelValues(result).Inc()
}

func (p *Prometheus) CategoryMatch(category string) {
	p.categories.WithLabelValues(category).Inc()
}

func (p *Prometheus) Reload(status string) {
	p.reloads.WithLabelValues(status).Inc()
}
