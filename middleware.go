package uadetector

import (
	"context"
	"log/slog"
	"net/http"
)

// Middleware classifies every request and stores the Info in its context.
// Requests that match nothing still get a zero Info.
func Middleware(d *Detector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info, _ := d.DetectRequest(r)
			next.ServeHTTP(w, r.WithContext(SetInfoToContext(r.Context(), info)))
		})
	}
}

// LogExtractor adds a "client" group with the short identifier and device
// type of the request to log records. It matches logger.ContextExtractor.
func LogExtractor(ctx context.Context) (slog.Attr, bool) {
	info, ok := InfoFromContext(ctx)
	if !ok || !info.Found() {
		return slog.Attr{}, false
	}
	return slog.Group("client",
		slog.String("id", info.ShortIdentifier()),
		slog.String("device", formatDeviceType(info.DeviceType())),
		slog.Bool("bot", info.IsBot),
	), true
}
