// Package gologger adapts go-logger onto the module's logging contract so
// hosts that already run glog get per-pipeline child loggers for free.
package gologger

import (
	"context"
	"fmt"
	"sort"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-affiliate/internal/logging"
	"github.com/goliatone/go-affiliate/pkg/interfaces"
)

// Config captures the go-logger options the runtime exposes.
type Config struct {
	Level     string
	Format    string
	AddSource bool

	// Focus restricts output to the named module loggers, e.g.
	// "affiliate.render" while debugging widget templates.
	Focus []string
}

// Provider hands out go-logger child loggers keyed by module name.
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider builds the provider the DI container installs when the
// gologger provider is configured.
func NewProvider(cfg Config) (*Provider, error) {
	var options []glog.Option

	if level := levelOption(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	}

	format, err := formatOption(cfg.Format)
	if err != nil {
		return nil, err
	}
	options = append(options, format)

	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}

	root := glog.NewLogger(options...)
	if focus := trimmedNames(cfg.Focus); len(focus) > 0 {
		root.Focus(focus...)
	}

	return &Provider{root: root}, nil
}

// GetLogger satisfies interfaces.LoggerProvider.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil {
		return logging.NoOp()
	}
	if name = strings.TrimSpace(name); name == "" {
		return wrap(p.root)
	}
	return wrap(p.root.GetLogger(name))
}

func wrap(inner glog.Logger) interfaces.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return &logger{inner: inner}
}

type logger struct {
	inner glog.Logger
}

func (l *logger) Trace(msg string, args ...any) { l.inner.Trace(msg, args...) }
func (l *logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *logger) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *logger) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
func (l *logger) Fatal(msg string, args ...any) { l.inner.Fatal(msg, args...) }

func (l *logger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}

	if with, ok := l.inner.(glog.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		for k, v := range fields {
			copied[k] = v
		}
		return wrap(with.WithFields(copied))
	}

	if with, ok := l.inner.(interface{ With(...any) *glog.BaseLogger }); ok {
		return wrap(with.With(sortedPairs(fields)...))
	}
	return l
}

func (l *logger) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	return wrap(l.inner.WithContext(ctx))
}

// sortedPairs flattens fields into key/value args with a stable order so log
// lines stay diffable.
func sortedPairs(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}

func levelOption(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	case "fatal":
		return glog.Fatal
	}
	return ""
}

func formatOption(format string) (glog.Option, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return glog.WithLoggerTypeJSON(), nil
	case "console":
		return glog.WithLoggerTypeConsole(), nil
	case "pretty":
		return glog.WithLoggerTypePretty(), nil
	}
	return nil, fmt.Errorf("logging: unsupported go-logger format %q", format)
}

func trimmedNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
