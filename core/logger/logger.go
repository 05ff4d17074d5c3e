// Package logger provides structured logging built on log/slog:
// environment presets, a functional-options factory, and attribute helpers
// for common logging patterns.
//
//	log := logger.New(logger.WithDevelopment("checkout-verification"))
//	log.Info("server starting", logger.Component("server"))
package logger

import (
	"io"
	"log/slog"
	"os"
)

type options struct {
	level   slog.Level
	json    bool
	output  io.Writer
	attrs   []slog.Attr
	appName string
}

// Option configures the logger factory.
type Option func(*options)

// New creates a slog.Logger with the given options. Defaults to text
// output at info level on stdout.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var h slog.Handler
	if o.json {
		h = slog.NewJSONHandler(o.output, handlerOpts)
	} else {
		h = slog.NewTextHandler(o.output, handlerOpts)
	}

	attrs := o.attrs
	if o.appName != "" {
		attrs = append([]slog.Attr{slog.String("app", o.appName)}, attrs...)
	}
	if len(attrs) > 0 {
		h = h.WithAttrs(attrs)
	}

	return slog.New(h)
}

// WithDevelopment configures text output at debug level, tagged with the
// application name.
func WithDevelopment(appName string) Option {
	return func(o *options) {
		o.appName = appName
		o.level = slog.LevelDebug
		o.json = false
	}
}

// WithProduction configures JSON output at info level, tagged with the
// application name.
func WithProduction(appName string) Option {
	return func(o *options) {
		o.appName = appName
		o.level = slog.LevelInfo
		o.json = true
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSONFormatter switches output to JSON regardless of preset.
func WithJSONFormatter() Option {
	return func(o *options) {
		o.json = true
	}
}

// WithOutput sets the output writer.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttr adds a default attribute to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}
