package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// maxUserAgentLength caps logged User-Agent values.
const maxUserAgentLength = 256

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Category records a rule category such as "bots" or "oss".
func Category(name string) slog.Attr {
	return slog.String("category", name)
}

// UserAgentKey is the attribute key of User-Agent strings.
const UserAgentKey = "user_agent"

// UserAgent records a User-Agent string, cut to a bounded length.
func UserAgent(ua string) slog.Attr {
	return slog.String(UserAgentKey, boundUserAgent(ua))
}

func boundUserAgent(ua string) string {
	if len(ua) > maxUserAgentLength {
		return ua[:maxUserAgentLength] + "..."
	}
	return ua
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Count records a number of items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Path records a file system path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}
