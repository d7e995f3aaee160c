package models

import (
	"errors"
	"fmt"

	"spartoo_api/internal/spartoo/provisioning"
)

// Catalog tables a code can be checked against.
const (
	DomainCountries    = "languages"
	DomainSexes        = "products_sex"
	DomainColors       = "colors"
	DomainCompositions = "compositions"
	DomainCategories   = "categories"
	DomainSelections   = "selections"
	DomainSizes        = "sizes"
)

var (
	ErrNoCatalog        = errors.New("no provisionning catalog to validate against")
	ErrMissingReference = errors.New("reference is required")
)

// ValidationError reports a code that the active catalog does not know.
type ValidationError struct {
	Field  string
	Value  string
	Domain string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("the %s %s is not supported by Spartoo (not found in %s)", e.Field, e.Value, e.Domain)
}

// InconsistentCollectionTypeError reports a collection holding something
// other than the entity it must be made of.
type InconsistentCollectionTypeError struct {
	Field string
	Type  string
	Index int
}

func (e *InconsistentCollectionTypeError) Error() string {
	return fmt.Sprintf("each element of %s must be of type %s (element %d is not)", e.Field, e.Type, e.Index)
}

func validate(catalog *provisioning.Catalog, has func(*provisioning.Catalog, string) bool, field, value, domain string) error {
	if catalog == nil {
		return fmt.Errorf("%s: %w", field, ErrNoCatalog)
	}
	if !has(catalog, value) {
		return &ValidationError{Field: field, Value: value, Domain: domain}
	}
	return nil
}
