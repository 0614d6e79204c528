// Package markdown turns editor-authored Markdown files into article records.
// Conversion happens once at ingestion; the rendering pipeline always works
// from the stored HTML.
package markdown

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	articlespkg "github.com/goliatone/go-affiliate/articles"
	"github.com/goliatone/go-affiliate/catalog"
	"github.com/goliatone/go-affiliate/internal/domain"
	"github.com/goliatone/go-affiliate/pkg/interfaces"
)

var (
	ErrTitleRequired = errors.New("markdown: article title is required")
	ErrBodyRequired  = errors.New("markdown: article body is required")
)

// Importer converts Markdown sources into article records ready for storage.
type Importer struct {
	parser interfaces.MarkdownParser
	dir    DirConfig
	now    func() time.Time
	id     func() uuid.UUID
}

// ImporterOption customizes the importer.
type ImporterOption func(*Importer)

// WithNow overrides the clock, used by tests.
func WithNow(now func() time.Time) ImporterOption {
	return func(i *Importer) {
		if now != nil {
			i.now = now
		}
	}
}

// WithIDGenerator overrides record id generation, used by tests.
func WithIDGenerator(gen func() uuid.UUID) ImporterOption {
	return func(i *Importer) {
		if gen != nil {
			i.id = gen
		}
	}
}

// NewImporter constructs an importer around a Markdown parser.
func NewImporter(parser interfaces.MarkdownParser, opts ...ImporterOption) *Importer {
	imp := &Importer{
		parser: parser,
		now:    time.Now,
		id:     uuid.New,
	}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// Import parses one article source file and produces the storable record.
// The slug comes from the frontmatter when present, otherwise it is derived
// from the title.
func (i *Importer) Import(siteID uuid.UUID, source []byte) (*articlespkg.Article, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, ErrBodyRequired
	}

	slug := strings.TrimSpace(meta.Slug)
	if slug == "" {
		slug, err = catalog.NormalizeSlug(title)
		if err != nil {
			return nil, fmt.Errorf("markdown: deriving slug from title: %w", err)
		}
	} else if !catalog.IsValidSlug(slug) {
		return nil, fmt.Errorf("markdown: invalid slug %q", slug)
	}

	html, err := i.parser.Parse(body)
	if err != nil {
		return nil, err
	}

	now := i.now()
	article := &articlespkg.Article{
		ID:        i.id(),
		SiteID:    siteID,
		Slug:      slug,
		Title:     title,
		Content:   string(html),
		Kind:      articleKind(meta.Kind),
		Status:    articleStatus(meta),
		Metadata:  meta.Custom,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if excerpt := strings.TrimSpace(meta.Excerpt); excerpt != "" {
		article.Excerpt = &excerpt
	}
	if image := strings.TrimSpace(meta.FeaturedImage); image != "" {
		article.FeaturedImage = &image
	}
	if !meta.Date.IsZero() {
		date := meta.Date
		if date.After(now) {
			article.PublishAt = &date
			article.Status = domain.StatusScheduled
		} else if article.Status == domain.StatusPublished {
			article.PublishedAt = &date
		}
	}

	return article, nil
}

func articleKind(raw string) articlespkg.Kind {
	switch articlespkg.Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case articlespkg.KindRoundup:
		return articlespkg.KindRoundup
	case articlespkg.KindComparison:
		return articlespkg.KindComparison
	case articlespkg.KindGuide:
		return articlespkg.KindGuide
	default:
		return articlespkg.KindReview
	}
}

func articleStatus(meta ArticleFrontMatter) domain.Status {
	if meta.Draft {
		return domain.StatusDraft
	}
	switch domain.Status(strings.ToLower(strings.TrimSpace(meta.Status))) {
	case domain.StatusPublished:
		return domain.StatusPublished
	case domain.StatusArchived:
		return domain.StatusArchived
	case domain.StatusScheduled:
		return domain.StatusScheduled
	default:
		return domain.StatusDraft
	}
}
