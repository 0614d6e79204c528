// Package runtimeconfig aggregates the feature flags and adapter bindings a
// host application hands the module at startup.
package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

var ErrMarkdownContentDirRequired = errors.New("affiliate config: markdown content directory is required when markdown is enabled")
var ErrMarkdownFeatureRequired = errors.New("affiliate config: markdown feature must be enabled to configure markdown")
var ErrLoggingProviderRequired = errors.New("affiliate config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("affiliate config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("affiliate config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("affiliate config: logging format is invalid")
var ErrProductsLimitInvalid = errors.New("affiliate config: default products limit must be positive")
var ErrStorageDialectUnknown = errors.New("affiliate config: storage dialect is invalid")

// Config aggregates module configuration. Fields use simple types so host
// applications can populate them from any configuration source.
type Config struct {
	Enabled  bool
	Storage  StorageConfig
	Cache    CacheConfig
	Routes   RoutesConfig
	Render   RenderConfig
	Markdown MarkdownConfig
	Features Features
	Logging  LoggingConfig
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string

	// Dialect selects the bun dialect when the host supplies a raw
	// *sql.DB instead of a prepared *bun.DB. Supported values are
	// "sqlite" (default) and "postgres".
	Dialect string
}

// CacheConfig captures repository cache behaviour.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// RoutesConfig captures routing configuration for entity URL resolution.
type RoutesConfig struct {
	RouteConfig *urlkit.Config
	URLKit      URLKitResolverConfig
}

// URLKitResolverConfig configures the go-urlkit based link resolver.
type URLKitResolverConfig struct {
	Group         string
	ProductRoute  string
	CategoryRoute string
	SiteParam     string
	SlugParam     string
}

// RenderConfig tunes the shortcode renderer.
type RenderConfig struct {
	// TemplateOverrides replaces individual widget templates by name.
	TemplateOverrides map[string]string

	// DefaultProductsLimit applies when a grid shortcode omits its limit.
	// Zero means the built-in default of 3.
	DefaultProductsLimit int
}

// MarkdownConfig captures filesystem and parser behaviour for article ingestion.
type MarkdownConfig struct {
	Enabled    bool
	ContentDir string
	Pattern    string
	Recursive  bool
	Parser     MarkdownParserConfig
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownParserConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// Features toggles module functionality.
type Features struct {
	AutoLink bool
	Cache    bool
	Markdown bool
	Logger   bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the defaults a host gets without any tuning:
// bun storage, caching on, auto-linking on, markdown ingestion off.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Storage: StorageConfig{
			Provider: "bun",
			Dialect:  "sqlite",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Routes: RoutesConfig{},
		Render: RenderConfig{},
		Markdown: MarkdownConfig{
			ContentDir: "content",
			Pattern:    "*.md",
			Recursive:  true,
		},
		Features: Features{
			AutoLink: true,
			Cache:    true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Markdown.Enabled {
		if !cfg.Features.Markdown {
			return ErrMarkdownFeatureRequired
		}
		if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
			return ErrMarkdownContentDirRequired
		}
	}
	if cfg.Render.DefaultProductsLimit < 0 {
		return ErrProductsLimitInvalid
	}
	if dialect := normalizeProvider(cfg.Storage.Dialect); dialect != "" && !isSupportedDialect(dialect) {
		return fmt.Errorf("%w: %s", ErrStorageDialectUnknown, dialect)
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedDialect(dialect string) bool {
	switch dialect {
	case "sqlite", "sqlite3", "postgres", "postgresql", "pg":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
