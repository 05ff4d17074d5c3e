package logger

import (
	"log/slog"
	"time"
)

// Component identifies the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names a discrete occurrence such as "cache_refresh" or "submit".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Error attaches an error message. Nil-safe.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Duration records elapsed time in milliseconds.
func Duration(d time.Duration) slog.Attr {
	return slog.Float64("duration_ms", float64(d.Microseconds())/1000.0)
}

// Method records the HTTP method.
func Method(m string) slog.Attr {
	return slog.String("method", m)
}

// Path records the request path.
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Query records the raw query string.
func Query(q string) slog.Attr {
	return slog.String("query", q)
}

// StatusCode records the HTTP response status.
func StatusCode(code int) slog.Attr {
	return slog.Int("status", code)
}

// RequestID records the request correlation identifier.
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// RemoteAddr records the client address.
func RemoteAddr(addr string) slog.Attr {
	return slog.String("remote_addr", addr)
}

// BytesOut records the response body size.
func BytesOut(n int) slog.Attr {
	return slog.Int("bytes_out", n)
}

// Count records a generic quantity such as items served from cache.
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
