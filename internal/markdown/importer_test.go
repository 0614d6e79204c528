package markdown_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-affiliate/internal/domain"
	"github.com/goliatone/go-affiliate/internal/markdown"
	"github.com/goliatone/go-affiliate/pkg/interfaces"
)

const reviewSource = `---
title: Acme Widget Review
excerpt: Our long-term test of the Acme Widget.
kind: review
status: published
gear_score: 9
---

## Verdict

The **Acme Widget** holds up.

[product:acme-widget,featured]

Buy it if you can find it in stock.
`

func newImporter(t *testing.T, opts ...markdown.ImporterOption) *markdown.Importer {
	t.Helper()
	parser := markdown.NewGoldmarkParser(interfaces.ParseOptions{})
	return markdown.NewImporter(parser, opts...)
}

func TestImporter_Import(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	imp := newImporter(t, markdown.WithNow(func() time.Time { return now }))

	siteID := uuid.New()
	article, err := imp.Import(siteID, []byte(reviewSource))
	if err != nil {
		t.Fatalf("import: %v", err)
	}

	if article.Slug != "acme-widget-review" {
		t.Fatalf("slug must derive from title, got %q", article.Slug)
	}
	if article.SiteID != siteID {
		t.Fatalf("unexpected site id: %s", article.SiteID)
	}
	if article.Status != domain.StatusPublished {
		t.Fatalf("unexpected status: %s", article.Status)
	}
	if article.Excerpt == nil || !strings.Contains(*article.Excerpt, "long-term test") {
		t.Fatalf("unexpected excerpt: %v", article.Excerpt)
	}
	if article.Metadata["gear_score"] != 9 {
		t.Fatalf("custom frontmatter keys must land in metadata: %v", article.Metadata)
	}

	if !strings.Contains(article.Content, "<h2") {
		t.Fatalf("markdown body must convert to HTML:\n%s", article.Content)
	}
	if !strings.Contains(article.Content, "[product:acme-widget,featured]") {
		t.Fatalf("shortcodes must survive conversion verbatim:\n%s", article.Content)
	}
}

func TestImporter_ExplicitSlugWins(t *testing.T) {
	source := strings.Replace(reviewSource, "title: Acme Widget Review", "title: Acme Widget Review\nslug: acme-widget-longterm", 1)

	article, err := newImporter(t).Import(uuid.New(), []byte(source))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if article.Slug != "acme-widget-longterm" {
		t.Fatalf("frontmatter slug must win, got %q", article.Slug)
	}
}

func TestImporter_InvalidSlugRejected(t *testing.T) {
	source := strings.Replace(reviewSource, "title: Acme Widget Review", "title: Acme Widget Review\nslug: \"Not A Slug!\"", 1)

	if _, err := newImporter(t).Import(uuid.New(), []byte(source)); err == nil {
		t.Fatal("expected invalid slug error")
	}
}

func TestImporter_FutureDateSchedules(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	source := strings.Replace(reviewSource, "status: published", "status: published\ndate: 2025-06-01T00:00:00Z", 1)

	article, err := newImporter(t, markdown.WithNow(func() time.Time { return now })).Import(uuid.New(), []byte(source))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if article.Status != domain.StatusScheduled {
		t.Fatalf("future-dated article must be scheduled, got %s", article.Status)
	}
	if article.PublishAt == nil || !article.PublishAt.After(now) {
		t.Fatalf("publish_at must carry the date: %v", article.PublishAt)
	}
}

func TestImporter_MissingTitle(t *testing.T) {
	source := "---\nkind: guide\n---\n\nBody.\n"
	if _, err := newImporter(t).Import(uuid.New(), []byte(source)); !errors.Is(err, markdown.ErrTitleRequired) {
		t.Fatalf("expected title required, got %v", err)
	}
}

func TestImporter_MissingBody(t *testing.T) {
	source := "---\ntitle: Stub\n---\n\n   \n"
	if _, err := newImporter(t).Import(uuid.New(), []byte(source)); !errors.Is(err, markdown.ErrBodyRequired) {
		t.Fatalf("expected body required, got %v", err)
	}
}

func TestImporter_ImportContentDir(t *testing.T) {
	dir := t.TempDir()
	writeArticle := func(rel, title string) {
		t.Helper()
		source := strings.Replace(reviewSource, "title: Acme Widget Review", "title: "+title, 1)
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
	writeArticle("beta-review.md", "Beta Widget Review")
	writeArticle("guides/acme-guide.md", "Acme Widget Guide")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("scratch"), 0o644); err != nil {
		t.Fatalf("write notes: %v", err)
	}

	imp := newImporter(t, markdown.WithDirConfig(markdown.DirConfig{
		ContentDir: dir,
		Pattern:    "*.md",
		Recursive:  true,
	}))

	siteID := uuid.New()
	articles, err := imp.ImportContentDir(context.Background(), siteID)
	if err != nil {
		t.Fatalf("import content dir: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	// Results are ordered by source path.
	if articles[0].Slug != "beta-widget-review" || articles[1].Slug != "acme-widget-guide" {
		t.Fatalf("unexpected slugs: %q %q", articles[0].Slug, articles[1].Slug)
	}
	for _, a := range articles {
		if a.SiteID != siteID {
			t.Fatalf("article %q bound to wrong site", a.Slug)
		}
	}
}

func TestImporter_ImportDirNonRecursiveSkipsSubdirs(t *testing.T) {
	dir := t.TempDir()
	source := strings.Replace(reviewSource, "title: Acme Widget Review", "title: Top Level", 1)
	if err := os.WriteFile(filepath.Join(dir, "top.md"), []byte(source), 0o644); err != nil {
		t.Fatalf("write top: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	nested := strings.Replace(reviewSource, "title: Acme Widget Review", "title: Nested", 1)
	if err := os.WriteFile(filepath.Join(dir, "nested", "deep.md"), []byte(nested), 0o644); err != nil {
		t.Fatalf("write nested: %v", err)
	}

	imp := newImporter(t, markdown.WithDirConfig(markdown.DirConfig{ContentDir: dir}))

	articles, err := imp.ImportContentDir(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("import content dir: %v", err)
	}
	if len(articles) != 1 || articles[0].Slug != "top-level" {
		t.Fatalf("non-recursive import must stay in the root: %+v", articles)
	}
}

func TestImporter_ImportDirBadFileFailsBatch(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.md"), []byte("---\nkind: guide\n---\n\nBody.\n"), 0o644); err != nil {
		t.Fatalf("write broken: %v", err)
	}

	imp := newImporter(t, markdown.WithDirConfig(markdown.DirConfig{ContentDir: dir}))

	if _, err := imp.ImportContentDir(context.Background(), uuid.New()); !errors.Is(err, markdown.ErrTitleRequired) {
		t.Fatalf("expected title required from batch import, got %v", err)
	}
}

func TestGoldmarkParser_SafeModeSuppressesRawHTML(t *testing.T) {
	parser := markdown.NewGoldmarkParser(interfaces.ParseOptions{SafeMode: true})

	out, err := parser.Parse([]byte("before\n\n<script>alert(1)</script>\n\nafter"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Fatalf("raw HTML must be suppressed in safe mode:\n%s", out)
	}
}
