package identity_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-affiliate/internal/identity"
)

func TestUUID_Deterministic(t *testing.T) {
	a := identity.UUID("go-affiliate:site:gadget-site")
	b := identity.UUID("go-affiliate:site:gadget-site")
	if a != b {
		t.Fatalf("same key must yield same id: %s vs %s", a, b)
	}
	if a == uuid.Nil {
		t.Fatal("non-empty key must not yield nil id")
	}
	if identity.UUID("  ") != uuid.Nil {
		t.Fatal("blank key must yield nil id")
	}
}

func TestUUID_TenantScoping(t *testing.T) {
	siteA := identity.SiteUUID("gadget-site")
	siteB := identity.SiteUUID("mouse-site")

	if identity.ProductUUID(siteA, "acme-widget") == identity.ProductUUID(siteB, "acme-widget") {
		t.Fatal("same slug on different sites must yield different ids")
	}
	if identity.ProductUUID(siteA, "acme-widget") == identity.CategoryUUID(siteA, "acme-widget") {
		t.Fatal("product and category namespaces must not collide")
	}
}
