package uadetector

import "context"

type infoContextKey struct{}

// SetInfoToContext stores a detection result in ctx.
func SetInfoToContext(ctx context.Context, info Info) context.Context {
	return context.WithValue(ctx, infoContextKey{}, info)
}

// InfoFromContext returns the detection result stored by Middleware.
func InfoFromContext(ctx context.Context) (Info, bool) {
	info, ok := ctx.Value(infoContextKey{}).(Info)
	return info, ok
}
