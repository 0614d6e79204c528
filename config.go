package affiliate

import "github.com/goliatone/go-affiliate/internal/runtimeconfig"

var (
	ErrMarkdownFeatureRequired    = runtimeconfig.ErrMarkdownFeatureRequired
	ErrMarkdownContentDirRequired = runtimeconfig.ErrMarkdownContentDirRequired
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
	ErrProductsLimitInvalid       = runtimeconfig.ErrProductsLimitInvalid
	ErrStorageDialectUnknown      = runtimeconfig.ErrStorageDialectUnknown
)

type (
	Config               = runtimeconfig.Config
	StorageConfig        = runtimeconfig.StorageConfig
	CacheConfig          = runtimeconfig.CacheConfig
	RoutesConfig         = runtimeconfig.RoutesConfig
	URLKitResolverConfig = runtimeconfig.URLKitResolverConfig
	RenderConfig         = runtimeconfig.RenderConfig
	MarkdownConfig       = runtimeconfig.MarkdownConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	Features             = runtimeconfig.Features
	LoggingConfig        = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
