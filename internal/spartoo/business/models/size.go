package models

import (
	"fmt"

	"spartoo_api/internal/spartoo/business/xmlnode"
	"spartoo_api/internal/spartoo/provisioning"
)

// Size is one stock line of a product. The name may be empty when the line is
// sent in a stock update, where only quantity and reference count.
type Size struct {
	catalog *provisioning.Catalog

	name      string
	Quantity  int
	Reference string
	EAN       string
}

// NewSize rejects an empty reference: it is the key stock updates and status
// checks address the size by.
func NewSize(catalog *provisioning.Catalog, name string, quantity int, reference, ean string) (*Size, error) {
	if reference == "" {
		return nil, fmt.Errorf("size_reference: %w", ErrMissingReference)
	}
	s := &Size{catalog: catalog, Quantity: quantity, Reference: reference, EAN: ean}
	if err := s.SetName(name); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Size) Name() string { return s.name }

// SetName validates against the size table. An empty name clears it.
func (s *Size) SetName(name string) error {
	if name != "" {
		if err := validate(s.catalog, (*provisioning.Catalog).HasSize, "size", name, DomainSizes); err != nil {
			return err
		}
	}
	s.name = name
	return nil
}

// StockLine is a copy without name and EAN, the shape stock updates and
// status checks expect.
func (s *Size) StockLine() *Size {
	return &Size{catalog: s.catalog, Quantity: s.Quantity, Reference: s.Reference}
}

func (s *Size) Node() *xmlnode.Node {
	return xmlnode.Element("size",
		xmlnode.Text("size_name", s.name),
		xmlnode.Int("size_quantity", s.Quantity),
		xmlnode.Text("size_reference", s.Reference),
		xmlnode.Text("ean", s.EAN),
	)
}
