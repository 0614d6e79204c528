// Package links resolves public URLs for catalog entities. Routes live in a
// go-urlkit RouteManager so the host application controls the final URL
// shape; the pipeline only asks for "the product page of slug X on site Y".
package links

import (
	"context"
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"
)

// URLKitResolverOptions configures the go-urlkit backed resolver.
type URLKitResolverOptions struct {
	Manager *urlkit.RouteManager

	// Group is the route-group path holding the entity routes,
	// "frontend" by default. Nested groups use dot notation.
	Group string

	ProductRoute  string
	CategoryRoute string
	SiteParam     string
	SlugParam     string
}

// URLKitResolver implements interfaces.LinkResolver on top of a go-urlkit
// RouteManager.
type URLKitResolver struct {
	manager *urlkit.RouteManager

	group         string
	productRoute  string
	categoryRoute string
	siteParam     string
	slugParam     string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

// NewURLKitResolver constructs a resolver backed by go-urlkit.
func NewURLKitResolver(opts URLKitResolverOptions) *URLKitResolver {
	if opts.Group == "" {
		opts.Group = "frontend"
	}
	if opts.ProductRoute == "" {
		opts.ProductRoute = "product"
	}
	if opts.CategoryRoute == "" {
		opts.CategoryRoute = "category"
	}
	if opts.SiteParam == "" {
		opts.SiteParam = "site"
	}
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}

	return &URLKitResolver{
		manager:       opts.Manager,
		group:         strings.TrimSpace(opts.Group),
		productRoute:  opts.ProductRoute,
		categoryRoute: opts.CategoryRoute,
		siteParam:     opts.SiteParam,
		slugParam:     opts.SlugParam,
		groupCache:    make(map[string]*urlkit.Group),
	}
}

// ProductURL builds the public product page URL.
func (r *URLKitResolver) ProductURL(ctx context.Context, siteSlug, productSlug string) (string, error) {
	return r.build(ctx, r.productRoute, siteSlug, productSlug)
}

// CategoryURL builds the public category listing URL.
func (r *URLKitResolver) CategoryURL(ctx context.Context, siteSlug, categorySlug string) (string, error) {
	return r.build(ctx, r.categoryRoute, siteSlug, categorySlug)
}

func (r *URLKitResolver) build(ctx context.Context, route, siteSlug, slug string) (string, error) {
	_ = ctx // reserved for future use
	if r == nil || r.manager == nil {
		return "", nil
	}
	if strings.TrimSpace(slug) == "" {
		return "", fmt.Errorf("links: slug is required")
	}

	group, err := r.groupForPath(r.group)
	if err != nil || group == nil {
		return "", err
	}

	builder, err := r.safeBuilder(group, route)
	if err != nil || builder == nil {
		return "", err
	}

	builder.WithParam(r.slugParam, slug)
	if strings.TrimSpace(siteSlug) != "" {
		builder.WithParam(r.siteParam, siteSlug)
	}

	return builder.Build()
}

func (r *URLKitResolver) groupForPath(path string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	if len(parts) == 0 {
		return nil, fmt.Errorf("links: invalid route group path %q", path)
	}

	root, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	current := root
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

func (r *URLKitResolver) safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("links: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("links: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, nil
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("links: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("links: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, nil
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	if parent == nil {
		return nil, fmt.Errorf("links: parent group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("links: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, nil
}
