package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-affiliate/internal/runtimeconfig"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if !cfg.Features.AutoLink {
		t.Fatal("auto-linking must default to on")
	}
	if !cfg.Cache.Enabled {
		t.Fatal("cache must default to on")
	}
}

func TestValidate_MarkdownRequiresFeature(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Markdown.Enabled = true

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrMarkdownFeatureRequired) {
		t.Fatalf("expected markdown feature error, got %v", err)
	}

	cfg.Features.Markdown = true
	cfg.Markdown.ContentDir = "  "
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrMarkdownContentDirRequired) {
		t.Fatalf("expected content dir error, got %v", err)
	}
}

func TestValidate_Logging(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true

	cfg.Logging.Provider = ""
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected provider required, got %v", err)
	}

	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected unknown provider, got %v", err)
	}

	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected invalid level, got %v", err)
	}

	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected invalid format, got %v", err)
	}

	cfg.Logging.Format = "json"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid logging config, got %v", err)
	}
}

func TestValidate_StorageDialect(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()

	cfg.Storage.Dialect = "mysql"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrStorageDialectUnknown) {
		t.Fatalf("expected dialect error, got %v", err)
	}

	for _, dialect := range []string{"", "sqlite", "Postgres", "pg"} {
		cfg.Storage.Dialect = dialect
		if err := cfg.Validate(); err != nil {
			t.Fatalf("dialect %q must validate: %v", dialect, err)
		}
	}
}

func TestValidate_ProductsLimit(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Render.DefaultProductsLimit = -1
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrProductsLimitInvalid) {
		t.Fatalf("expected products limit error, got %v", err)
	}
}
