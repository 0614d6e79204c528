package articles

import "errors"

var (
	ErrArticleNotFound = errors.New("articles: article not found")
	ErrSlugRequired    = errors.New("articles: slug is required")
	ErrSiteRequired    = errors.New("articles: site id is required")
	ErrContentRequired = errors.New("articles: content is required")
)
