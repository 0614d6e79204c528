package logging

import (
	"context"

	"github.com/goliatone/go-affiliate/pkg/interfaces"
)

const (
	rootModule     = "affiliate"
	catalogModule  = "affiliate.catalog"
	articlesModule = "affiliate.articles"
	renderModule   = "affiliate.render"
	markdownModule = "affiliate.markdown"
	sitesModule    = "affiliate.sites"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{"module": module})
	}
	return logger
}

// CatalogLogger returns the logger namespace reserved for catalog services.
func CatalogLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, catalogModule)
}

// ArticlesLogger returns the logger namespace reserved for article services.
func ArticlesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, articlesModule)
}

// RenderLogger returns the logger namespace reserved for the render engine.
func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

// MarkdownLogger returns the logger namespace reserved for markdown ingestion.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// SitesLogger returns the logger namespace reserved for site services.
func SitesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, sitesModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
