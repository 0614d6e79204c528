package interfaces

// MarkdownParser converts Markdown input into HTML output. Implementations
// must be safe for concurrent use; parse options are supplied per call.
type MarkdownParser interface {
	Parse(markdown []byte) ([]byte, error)
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}
