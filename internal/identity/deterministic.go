// Package identity derives stable UUIDs for records created from external
// sources, so re-importing the same content file or seeding the same catalog
// twice never produces duplicates.
package identity

import (
	"strings"

	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

func SiteUUID(siteSlug string) uuid.UUID {
	return UUID("go-affiliate:site:" + strings.ToLower(strings.TrimSpace(siteSlug)))
}

func NicheUUID(nicheSlug string) uuid.UUID {
	return UUID("go-affiliate:niche:" + strings.ToLower(strings.TrimSpace(nicheSlug)))
}

func ProductUUID(siteID uuid.UUID, slug string) uuid.UUID {
	return UUID("go-affiliate:product:" + siteID.String() + ":" + strings.TrimSpace(slug))
}

func CategoryUUID(siteID uuid.UUID, slug string) uuid.UUID {
	return UUID("go-affiliate:category:" + siteID.String() + ":" + strings.TrimSpace(slug))
}

func ArticleUUID(siteID uuid.UUID, slug string) uuid.UUID {
	return UUID("go-affiliate:article:" + siteID.String() + ":" + strings.TrimSpace(slug))
}
