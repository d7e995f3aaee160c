// Package feed reads a YAML product feed into validated listings.
package feed

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
	"spartoo_api/internal/spartoo/business/models"
	"spartoo_api/internal/spartoo/provisioning"
	"spartoo_api/pkg/logger"
)

type Discount struct {
	StartDate     int     `yaml:"startdate"`
	StopDate      int     `yaml:"stopdate"`
	PriceDiscount float64 `yaml:"price_discount"`
	Rate          int     `yaml:"rate"`
	Sales         bool    `yaml:"sales"`
}

type Size struct {
	Name      string `yaml:"name"`
	Quantity  int    `yaml:"quantity"`
	Reference string `yaml:"reference"`
	EAN       string `yaml:"ean"`
}

type Info struct {
	ID    int     `yaml:"id"`
	Value float64 `yaml:"value"`
}

type Compositions struct {
	Product int `yaml:"product"`
	Voering int `yaml:"voering"`
	First   int `yaml:"first"`
	Zool    int `yaml:"zool"`
}

type Language struct {
	Code        string    `yaml:"code"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Color       string    `yaml:"color"`
	Price       float64   `yaml:"price"`
	Discount    *Discount `yaml:"discount"`
}

// Item is one product of the feed. It becomes a multi-country listing as soon
// as it declares languages.
type Item struct {
	Reference    string       `yaml:"reference"`
	Name         string       `yaml:"name"`
	Manufacturer string       `yaml:"manufacturer"`
	Sex          string       `yaml:"sex"`
	Price        float64      `yaml:"price"`
	Quantity     int          `yaml:"quantity"`
	ColorID      int          `yaml:"color_id"`
	Style        int          `yaml:"style"`
	Description  string       `yaml:"description"`
	Color        string       `yaml:"color"`
	HeelHeight   float64      `yaml:"heel_height"`
	Sizes        []Size       `yaml:"sizes"`
	Compositions Compositions `yaml:"compositions"`
	Photos       []string     `yaml:"photos"`
	Discount     *Discount    `yaml:"discount"`
	ExtraInfos   []Info       `yaml:"extra_infos"`
	Selections   []int        `yaml:"selections"`
	Languages    []Language   `yaml:"languages"`
}

type Feed struct {
	Products []Item `yaml:"products"`
}

// ItemError reports the feed position of an item that could not be built.
type ItemError struct {
	Index     int
	Reference string
	Err       error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("feed item %d (%s): %v", e.Index, e.Reference, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// ErrMissingReference is returned for an item or a size without reference.
var ErrMissingReference = models.ErrMissingReference

// Loader turns feed items into listings checked against a catalog.
type Loader struct {
	catalog *provisioning.Catalog
	log     logger.Logger
}

func NewLoader(catalog *provisioning.Catalog, log logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop{}
	}
	return &Loader{catalog: catalog, log: log}
}

// Load decodes a whole feed. The first invalid item aborts the load.
func (l *Loader) Load(r io.Reader) ([]models.Listing, error) {
	var f Feed
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}

	listings := make([]models.Listing, 0, len(f.Products))
	for i, item := range f.Products {
		listing, err := l.Build(item)
		if err != nil {
			return nil, &ItemError{Index: i, Reference: item.Reference, Err: err}
		}
		listings = append(listings, listing)
	}
	l.log.Log("loaded %d listings from feed", len(listings))
	return listings, nil
}

// Build validates one item.
func (l *Loader) Build(item Item) (models.Listing, error) {
	if item.Reference == "" {
		return nil, ErrMissingReference
	}

	var (
		listing models.Listing
		p       *models.Product
	)
	if len(item.Languages) > 0 {
		m := models.NewProductMultiCountry(l.catalog, item.Reference)
		languages, err := l.languages(item.Languages)
		if err != nil {
			return nil, err
		}
		if err := m.SetLanguages(languages); err != nil {
			return nil, err
		}
		listing, p = m, m.Base()
	} else {
		p = models.NewProduct(l.catalog, item.Reference)
		listing = p
	}

	p.ProductName = item.Name
	p.ManufacturersName = item.Manufacturer
	p.ProductPrice = item.Price
	p.ProductQuantity = item.Quantity
	p.ProductDescription = item.Description
	p.ProductColor = item.Color
	p.HeelHeight = item.HeelHeight
	p.Photos = item.Photos
	p.Discount = discount(item.Discount)

	if item.Sex != "" {
		if err := p.SetProductSex(item.Sex); err != nil {
			return nil, err
		}
	}
	if item.ColorID != 0 {
		if err := p.SetColorID(item.ColorID); err != nil {
			return nil, err
		}
	}
	if item.Style != 0 {
		if err := p.SetProductStyle(item.Style); err != nil {
			return nil, err
		}
	}
	if err := setCompositions(p, item.Compositions); err != nil {
		return nil, err
	}
	if err := l.sizes(p, item.Sizes); err != nil {
		return nil, err
	}
	if len(item.ExtraInfos) > 0 {
		infos := make([]*models.Info, 0, len(item.ExtraInfos))
		for _, info := range item.ExtraInfos {
			infos = append(infos, models.NewInfo(info.ID, info.Value))
		}
		if err := p.SetExtraInfos(infos); err != nil {
			return nil, err
		}
	}
	if len(item.Selections) > 0 {
		if err := p.SetSelections(item.Selections); err != nil {
			return nil, err
		}
	}
	return listing, nil
}

func setCompositions(p *models.Product, c Compositions) error {
	setters := []struct {
		code int
		set  func(int) error
	}{
		{c.Product, p.SetProductComposition},
		{c.Voering, p.SetVoeringComposition},
		{c.First, p.SetFirstComposition},
		{c.Zool, p.SetZoolComposition},
	}
	for _, s := range setters {
		if s.code == 0 {
			continue
		}
		if err := s.set(s.code); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) sizes(p *models.Product, in []Size) error {
	style := ""
	if p.ProductStyle() != 0 {
		style = strconv.Itoa(p.ProductStyle())
	}
	for _, s := range in {
		size, err := models.NewSize(l.catalog, s.Name, s.Quantity, s.Reference, s.EAN)
		if err != nil {
			return err
		}
		if style != "" && s.Name != "" && !l.catalog.SizeAllowedFor(s.Name, style) {
			l.log.Log("size %q is not listed for product style %s of %s", s.Name, style, p.ReferencePartenaire)
		}
		if err := p.AddSize(size); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) languages(in []Language) ([]*models.Language, error) {
	out := make([]*models.Language, 0, len(in))
	for _, lang := range in {
		ml, err := models.NewLanguage(l.catalog, lang.Code, lang.Name, lang.Description, lang.Color, lang.Price, discount(lang.Discount))
		if err != nil {
			return nil, err
		}
		out = append(out, ml)
	}
	return out, nil
}

func discount(d *Discount) *models.Discount {
	if d == nil {
		return nil
	}
	return models.NewDiscount(d.StartDate, d.StopDate, d.PriceDiscount, d.Rate, d.Sales)
}
