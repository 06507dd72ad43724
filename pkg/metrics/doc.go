// Package metrics records detector activity.
//
// The detector reports through the Recorder interface. Noop discards every
// observation and is the default; Prometheus exports counters and a latency
// histogram via github.com/prometheus/client_golang:
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewPrometheus(reg)
//	det, err := uadetector.New(uadetector.WithMetrics(rec))
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package metrics
