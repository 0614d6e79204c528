package layout_test

import (
	"context"
	"errors"
	"html/template"
	"testing"

	"github.com/goliatone/go-affiliate/layout"
	"github.com/goliatone/go-affiliate/pkg/interfaces"
)

type stubSection struct {
	id string
}

func (s stubSection) ID() string { return s.id }

func (s stubSection) Render(context.Context, interfaces.SectionPayload) (template.HTML, error) {
	return template.HTML("<section>" + s.id + "</section>"), nil
}

func registryWith(t *testing.T, ids ...string) *layout.Registry {
	t.Helper()
	registry := layout.NewRegistry()
	for _, id := range ids {
		if err := registry.Register(stubSection{id: id}); err != nil {
			t.Fatalf("register %s: %v", id, err)
		}
	}
	return registry
}

func defaultSectionIDs() []string {
	return []string{
		layout.SectionHero,
		layout.SectionProsCons,
		layout.SectionFullReview,
		layout.SectionFeaturedArticles,
		layout.SectionRelatedProducts,
		layout.SectionStickyBar,
	}
}

func TestResolve_NilConfigUsesDefault(t *testing.T) {
	registry := registryWith(t, defaultSectionIDs()...)

	resolved := layout.Resolve(nil, registry)
	if len(resolved.Zones) != 3 {
		t.Fatalf("expected 3 default zones, got %d", len(resolved.Zones))
	}
	if resolved.Zones[0].Sections[0].ID != layout.SectionHero {
		t.Fatalf("expected hero first, got %q", resolved.Zones[0].Sections[0].ID)
	}
}

func TestResolve_EmptyZonesUsesDefault(t *testing.T) {
	registry := registryWith(t, defaultSectionIDs()...)

	resolved := layout.Resolve(&layout.Config{}, registry)
	if len(resolved.Zones) == 0 {
		t.Fatalf("expected default zones")
	}
}

func TestResolve_SkipsUnknownSections(t *testing.T) {
	registry := registryWith(t, "hero", "full-review")

	cfg := &layout.Config{
		Zones: []layout.Zone{
			{ID: "main", Sections: []layout.Section{
				{ID: "hero"},
				{ID: "video-review"},
				{ID: "full-review"},
			}},
			{ID: "aside", Sections: []layout.Section{
				{ID: "newsletter"},
			}},
		},
	}

	resolved := layout.Resolve(cfg, registry)
	if len(resolved.Zones) != 1 {
		t.Fatalf("expected aside zone to drop, got %d zones", len(resolved.Zones))
	}
	if len(resolved.Zones[0].Sections) != 2 {
		t.Fatalf("expected unknown section to be skipped, got %#v", resolved.Zones[0].Sections)
	}
}

func TestResolve_KeepsConditionFields(t *testing.T) {
	registry := registryWith(t, "pros-cons")

	cfg := &layout.Config{
		Zones: []layout.Zone{
			{ID: "main", Sections: []layout.Section{
				{ID: "pros-cons", ConditionField: "pros"},
			}},
		},
	}

	resolved := layout.Resolve(cfg, registry)
	if resolved.Zones[0].Sections[0].ConditionField != "pros" {
		t.Fatalf("condition field must survive resolution untouched")
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	registry := layout.NewRegistry()
	if err := registry.Register(stubSection{id: "hero"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := registry.Register(stubSection{id: "hero"})
	if !errors.Is(err, layout.ErrDuplicateComponent) {
		t.Fatalf("expected ErrDuplicateComponent, got %v", err)
	}
}

func TestRegistry_RejectsEmptyID(t *testing.T) {
	registry := layout.NewRegistry()
	if err := registry.Register(stubSection{id: "  "}); !errors.Is(err, layout.ErrInvalidComponent) {
		t.Fatalf("expected ErrInvalidComponent, got %v", err)
	}
}
