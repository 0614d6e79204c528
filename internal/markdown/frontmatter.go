package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
)

// ArticleFrontMatter is the metadata block editors put at the top of an
// article source file.
type ArticleFrontMatter struct {
	Title         string         `yaml:"title"`
	Slug          string         `yaml:"slug"`
	Excerpt       string         `yaml:"excerpt"`
	Kind          string         `yaml:"kind"`
	Status        string         `yaml:"status"`
	FeaturedImage string         `yaml:"featured_image"`
	Date          time.Time      `yaml:"date"`
	Draft         bool           `yaml:"draft"`
	Custom        map[string]any `yaml:",inline"`
}

// ParseFrontMatter splits an article source file into its metadata block and
// the Markdown body without delimiters.
func ParseFrontMatter(source []byte) (ArticleFrontMatter, []byte, error) {
	var meta ArticleFrontMatter

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return ArticleFrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	if meta.Custom == nil {
		meta.Custom = map[string]any{}
	}

	return meta, body, nil
}
