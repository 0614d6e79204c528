package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	articlespkg "github.com/goliatone/go-affiliate/articles"
)

// DirConfig configures how article sources are discovered within a content
// directory.
type DirConfig struct {
	// ContentDir is the root directory where article sources live. Used by
	// ImportContentDir; ImportDir callers supply their own filesystem.
	ContentDir string
	// Pattern limits discovered files to those matching the glob
	// (defaults to "*.md"). Patterns without a separator match base names.
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// WithDirConfig sets the discovery defaults used by ImportDir and
// ImportContentDir.
func WithDirConfig(cfg DirConfig) ImporterOption {
	return func(i *Importer) {
		i.dir = cfg
	}
}

// ImportContentDir imports every matching source under the configured
// content directory.
func (i *Importer) ImportContentDir(ctx context.Context, siteID uuid.UUID) ([]*articlespkg.Article, error) {
	dir := strings.TrimSpace(i.dir.ContentDir)
	if dir == "" {
		return nil, fmt.Errorf("markdown: content directory is not configured")
	}
	return i.ImportDir(ctx, os.DirFS(dir), siteID)
}

// ImportDir walks fsys and imports every file matching the configured
// pattern, returning the records sorted by source path. A single bad file
// fails the whole import so partial batches never reach storage.
func (i *Importer) ImportDir(ctx context.Context, fsys fs.FS, siteID uuid.UUID) ([]*articlespkg.Article, error) {
	type entry struct {
		path    string
		article *articlespkg.Article
	}
	var entries []entry

	walkErr := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if !i.dir.Recursive && path != "." {
				return fs.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !matchesPattern(i.dir.Pattern, path) {
			return nil
		}

		source, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("markdown: reading %s: %w", path, err)
		}
		article, err := i.Import(siteID, source)
		if err != nil {
			return fmt.Errorf("markdown: importing %s: %w", path, err)
		}
		entries = append(entries, entry{path: path, article: article})
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(entries, func(a, b int) bool {
		return entries[a].path < entries[b].path
	})

	articles := make([]*articlespkg.Article, 0, len(entries))
	for _, e := range entries {
		articles = append(articles, e.article)
	}
	return articles, nil
}

func matchesPattern(pattern, path string) bool {
	pattern = filepath.ToSlash(strings.TrimSpace(pattern))
	if pattern == "" {
		pattern = "*.md"
	}
	target := path
	if !strings.Contains(pattern, "/") {
		target = filepath.Base(path)
	}
	match, err := filepath.Match(pattern, filepath.ToSlash(target))
	if err != nil {
		return false
	}
	return match
}
