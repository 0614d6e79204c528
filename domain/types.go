package domain

import internaldomain "github.com/goliatone/go-affiliate/internal/domain"

// Status represents lifecycle states for platform entities.
type Status = internaldomain.Status

const (
	// StatusDraft indicates content still under preparation.
	StatusDraft = internaldomain.StatusDraft
	// StatusPublished identifies content available to site visitors.
	StatusPublished = internaldomain.StatusPublished
	// StatusArchived marks content that is retained for history but no longer served.
	StatusArchived = internaldomain.StatusArchived
	// StatusScheduled marks content that has a future publish time configured.
	StatusScheduled = internaldomain.StatusScheduled
)
