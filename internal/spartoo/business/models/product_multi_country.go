package models

import (
	"spartoo_api/internal/spartoo/business/xmlnode"
	"spartoo_api/internal/spartoo/provisioning"
)

// ProductMultiCountry is one manufacturer product listed in several
// countries. Name, description, color, price and discount are carried by each
// Language; the values set on the embedded Product are never sent.
type ProductMultiCountry struct {
	Product

	languages []*Language
}

func NewProductMultiCountry(catalog *provisioning.Catalog, reference string) *ProductMultiCountry {
	return &ProductMultiCountry{Product: Product{catalog: catalog, ReferencePartenaire: reference}}
}

func (m *ProductMultiCountry) Kind() Kind      { return MultiCountry }
func (m *ProductMultiCountry) Base() *Product { return &m.Product }

func (m *ProductMultiCountry) Languages() []*Language { return m.languages }

// SetLanguages checks every listing against the catalog of the product, which
// may differ from the one the listing was built with.
func (m *ProductMultiCountry) SetLanguages(languages []*Language) error {
	for i, l := range languages {
		if l == nil {
			return &InconsistentCollectionTypeError{Field: "languages", Type: "Language", Index: i}
		}
		if err := validate(m.catalog, (*provisioning.Catalog).HasCountry, "country", l.code, DomainCountries); err != nil {
			return err
		}
	}
	m.languages = languages
	return nil
}

// Node serializes a projection of the product with the per-country fields
// cleared. m itself is left untouched.
func (m *ProductMultiCountry) Node() *xmlnode.Node {
	base := m.Product
	base.ProductName = ""
	base.ProductDescription = ""
	base.ProductColor = ""
	base.ProductPrice = 0
	base.Discount = nil

	return xmlnode.Element("product", append(base.fields(), xmlnode.Collection("languages", m.languages))...)
}
