package domain

// Status represents lifecycle states for platform entities
type Status string

const (
	// StatusDraft indicates content still under preparation
	StatusDraft Status = "draft"
	// StatusPublished identifies content available to site visitors
	StatusPublished Status = "published"
	// StatusArchived marks content retained for history but no longer served
	StatusArchived Status = "archived"
	// StatusScheduled marks content with a future publish time configured
	StatusScheduled Status = "scheduled"
)
