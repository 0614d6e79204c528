package sites

import "errors"

var (
	ErrSiteNotFound  = errors.New("sites: site not found")
	ErrNicheNotFound = errors.New("sites: niche not found")
	ErrSlugRequired  = errors.New("sites: slug is required")
	ErrSlugInvalid   = errors.New("sites: slug contains invalid characters")
	ErrLayoutInvalid = errors.New("sites: niche layout document is invalid")
)
