package render

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/goliatone/go-affiliate/catalog"
	"github.com/goliatone/go-affiliate/pkg/interfaces"
	nethtml "golang.org/x/net/html"
)

// linkTarget is one catalog entity the auto-linker scans prose for.
type linkTarget struct {
	key  string // kind-scoped identity, e.g. "product:wireless-mouse"
	name string // verbatim text to match, case-sensitive
	kind string
	slug string
}

// autoLinker wraps the first plain-text mention of each known entity name in
// a hyperlink. It operates on text nodes only: existing links, tag
// attributes and raw-text elements are never touched, and shortcode-rendered
// markup never reaches it.
type autoLinker struct {
	resolver interfaces.LinkResolver
	siteSlug string
	targets  []linkTarget
	linked   map[string]bool
	names    []string

	// Markup state survives across fragments: a shortcode can sit inside
	// an open anchor, and the trailing fragment must still know it is
	// inside that anchor.
	anchorDepth int
	rawTag      string
}

func newAutoLinker(resolver interfaces.LinkResolver, siteSlug string, products []catalog.ProductLink, categories []catalog.CategoryLink) *autoLinker {
	targets := make([]linkTarget, 0, len(products)+len(categories))
	for _, p := range products {
		if p.Title == "" || p.Slug == "" {
			continue
		}
		targets = append(targets, linkTarget{key: "product:" + p.Slug, name: p.Title, kind: "product", slug: p.Slug})
	}
	for _, c := range categories {
		if c.Name == "" || c.Slug == "" {
			continue
		}
		targets = append(targets, linkTarget{key: "category:" + c.Slug, name: c.Name, kind: "category", slug: c.Slug})
	}

	// Longer names win when one entity name contains another, so
	// "Wireless Mouse Pro" links before "Wireless Mouse" can claim the
	// same span.
	sort.SliceStable(targets, func(i, j int) bool {
		return len(targets[i].name) > len(targets[j].name)
	})

	return &autoLinker{
		resolver: resolver,
		siteSlug: siteSlug,
		targets:  targets,
		linked:   map[string]bool{},
	}
}

// linkFragment rewrites one literal HTML fragment, linking entity mentions
// found in its text nodes. Markup passes through byte for byte.
func (l *autoLinker) linkFragment(ctx context.Context, fragment string) string {
	if l == nil || len(l.targets) == 0 || fragment == "" {
		return fragment
	}

	var out strings.Builder
	out.Grow(len(fragment))

	tokenizer := nethtml.NewTokenizer(strings.NewReader(fragment))
	for {
		tokenType := tokenizer.Next()
		if tokenType == nethtml.ErrorToken {
			return out.String()
		}

		raw := tokenizer.Raw()

		switch tokenType {
		case nethtml.StartTagToken:
			name, _ := tokenizer.TagName()
			switch tag := string(name); tag {
			case "a":
				l.anchorDepth++
			case "script", "style", "textarea", "title":
				l.rawTag = tag
			}
			out.Write(raw)
		case nethtml.EndTagToken:
			name, _ := tokenizer.TagName()
			switch tag := string(name); {
			case tag == "a" && l.anchorDepth > 0:
				l.anchorDepth--
			case tag == l.rawTag:
				l.rawTag = ""
			}
			out.Write(raw)
		case nethtml.TextToken:
			if l.anchorDepth > 0 || l.rawTag != "" {
				out.Write(raw)
				continue
			}
			out.WriteString(l.linkText(ctx, string(raw)))
		default:
			out.Write(raw)
		}
	}
}

type textMatch struct {
	start  int
	end    int
	href   string
	target linkTarget
}

// linkText finds at most one occurrence per still-unlinked entity inside a
// single text node, then splices the anchors in one pass so an inserted link
// can never be matched again by a shorter name.
func (l *autoLinker) linkText(ctx context.Context, text string) string {
	var matches []textMatch

	for _, target := range l.targets {
		if l.linked[target.key] {
			continue
		}
		idx := indexOutside(text, target.name, matches)
		if idx < 0 {
			continue
		}
		href, err := l.resolve(ctx, target)
		if err != nil || href == "" {
			// An unresolvable route degrades to plain text.
			continue
		}
		matches = append(matches, textMatch{start: idx, end: idx + len(target.name), href: href, target: target})
		l.linked[target.key] = true
		l.names = append(l.names, target.name)
	}

	if len(matches) == 0 {
		return text
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	var out strings.Builder
	out.Grow(len(text) + len(matches)*48)
	pos := 0
	for _, m := range matches {
		out.WriteString(text[pos:m.start])
		fmt.Fprintf(&out, `<a href="%s">%s</a>`, html.EscapeString(m.href), text[m.start:m.end])
		pos = m.end
	}
	out.WriteString(text[pos:])
	return out.String()
}

func (l *autoLinker) resolve(ctx context.Context, target linkTarget) (string, error) {
	if l.resolver == nil {
		return "", nil
	}
	if target.kind == "category" {
		return l.resolver.CategoryURL(ctx, l.siteSlug, target.slug)
	}
	return l.resolver.ProductURL(ctx, l.siteSlug, target.slug)
}

// indexOutside returns the first occurrence of name in text that does not
// overlap a span already claimed by another match, or -1.
func indexOutside(text, name string, claimed []textMatch) int {
	from := 0
	for {
		idx := strings.Index(text[from:], name)
		if idx < 0 {
			return -1
		}
		idx += from
		if !overlaps(idx, idx+len(name), claimed) {
			return idx
		}
		from = idx + 1
	}
}

func overlaps(start, end int, claimed []textMatch) bool {
	for _, m := range claimed {
		if start < m.end && end > m.start {
			return true
		}
	}
	return false
}
