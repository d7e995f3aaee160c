package models

import (
	"spartoo_api/internal/spartoo/business/xmlnode"
	"spartoo_api/internal/spartoo/provisioning"
)

// Language is the listing of a multi-country product in one country.
type Language struct {
	code string

	ProductName        string
	ProductDescription string
	ProductColor       string
	ProductPrice       float64
	Discount           *Discount
}

func NewLanguage(catalog *provisioning.Catalog, code, name, description, color string, price float64, discount *Discount) (*Language, error) {
	l := &Language{
		ProductName:        name,
		ProductDescription: description,
		ProductColor:       color,
		ProductPrice:       price,
		Discount:           discount,
	}
	if err := l.SetCode(catalog, code); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Language) Code() string { return l.code }

func (l *Language) SetCode(catalog *provisioning.Catalog, code string) error {
	if err := validate(catalog, (*provisioning.Catalog).HasCountry, "country", code, DomainCountries); err != nil {
		return err
	}
	l.code = code
	return nil
}

func (l *Language) Node() *xmlnode.Node {
	return xmlnode.Element("language",
		xmlnode.Text("code", l.code),
		xmlnode.Text("product_name", l.ProductName),
		xmlnode.Text("product_description", l.ProductDescription),
		xmlnode.Text("product_color", l.ProductColor),
		xmlnode.Float("product_price", l.ProductPrice),
		l.Discount.Node(),
	)
}
