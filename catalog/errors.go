package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrProductNotFound     = errors.New("catalog: product not found")
	ErrCategoryNotFound    = errors.New("catalog: category not found")
	ErrSlugRequired        = errors.New("catalog: slug is required")
	ErrSlugInvalid         = errors.New("catalog: slug contains invalid characters")
	ErrSiteRequired        = errors.New("catalog: site id is required")
	ErrDetailsInvalid      = errors.New("catalog: product details payload is invalid")
	ErrTitleRequired       = errors.New("catalog: title is required")
	ErrCurrencyUnsupported = errors.New("catalog: price currency is not supported")
)

// NotFoundError surfaces lookups that missed, carrying the resource kind and
// the key that was requested.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrProductNotFound.Error()
	}
	key := strings.TrimSpace(e.Key)
	if key == "" {
		return fmt.Sprintf("catalog: %s not found", e.Resource)
	}
	return fmt.Sprintf("catalog: %s not found: %s", e.Resource, key)
}

func (e *NotFoundError) Unwrap() error {
	if e != nil && e.Resource == "category" {
		return ErrCategoryNotFound
	}
	return ErrProductNotFound
}

// DetailsValidationError reports which fields of a product details payload
// failed boundary validation.
type DetailsValidationError struct {
	Slug   string
	Issues []string
}

func (e *DetailsValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return ErrDetailsInvalid.Error()
	}
	return fmt.Sprintf("%s: %s: %s", ErrDetailsInvalid.Error(), e.Slug, strings.Join(e.Issues, "; "))
}

func (e *DetailsValidationError) Unwrap() error {
	return ErrDetailsInvalid
}
