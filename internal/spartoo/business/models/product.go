package models

import (
	"strconv"

	"spartoo_api/internal/spartoo/business/xmlnode"
	"spartoo_api/internal/spartoo/provisioning"
)

// MaxPhotos is how many photo urls Spartoo reads; later ones are not sent.
const MaxPhotos = 8

type Kind int

const (
	SingleCountry Kind = iota
	MultiCountry
)

func (k Kind) String() string {
	if k == MultiCountry {
		return "multi_country"
	}
	return "single_country"
}

// Listing is what can be imported: a Product or a ProductMultiCountry.
type Listing interface {
	xmlnode.Transformer
	Kind() Kind
	Base() *Product
}

// Product is a catalog item sold in a single country. Codes checked against
// the provisioning catalog are only reachable through their setters.
type Product struct {
	catalog *provisioning.Catalog

	ReferencePartenaire string
	ProductName         string
	ManufacturersName   string
	ProductPrice        float64
	ProductQuantity     int
	ProductDescription  string
	ProductColor        string
	HeelHeight          float64
	Photos              []string
	Discount            *Discount

	productSex         string
	colorID            int
	productStyle       int
	sizeList           []*Size
	productComposition int
	voeringComposition int
	firstComposition   int
	zoolComposition    int
	extraInfos         []*Info
	selections         []int
}

// NewProduct does not check reference; an empty ReferencePartenaire is left out
// of the document like any other empty field. Loaders reject it up front with
// ErrMissingReference.
func NewProduct(catalog *provisioning.Catalog, reference string) *Product {
	return &Product{catalog: catalog, ReferencePartenaire: reference}
}

func (p *Product) Kind() Kind      { return SingleCountry }
func (p *Product) Base() *Product { return p }

func (p *Product) Catalog() *provisioning.Catalog { return p.catalog }

func (p *Product) ProductSex() string { return p.productSex }

// SetProductSex rejects codes missing from products_sex.
func (p *Product) SetProductSex(sex string) error {
	if err := validate(p.catalog, (*provisioning.Catalog).HasSex, "product_sex", sex, DomainSexes); err != nil {
		return err
	}
	p.productSex = sex
	return nil
}

func (p *Product) ColorID() int { return p.colorID }

func (p *Product) SetColorID(id int) error {
	if err := validate(p.catalog, (*provisioning.Catalog).HasColor, "color_id", strconv.Itoa(id), DomainColors); err != nil {
		return err
	}
	p.colorID = id
	return nil
}

func (p *Product) ProductStyle() int { return p.productStyle }

func (p *Product) SetProductStyle(style int) error {
	if err := validate(p.catalog, (*provisioning.Catalog).HasCategory, "product_style", strconv.Itoa(style), DomainCategories); err != nil {
		return err
	}
	p.productStyle = style
	return nil
}

func (p *Product) SizeList() []*Size { return p.sizeList }

func (p *Product) SetSizeList(sizes []*Size) error {
	for i, s := range sizes {
		if s == nil {
			return &InconsistentCollectionTypeError{Field: "size_list", Type: "Size", Index: i}
		}
	}
	p.sizeList = sizes
	return nil
}

func (p *Product) AddSize(s *Size) error {
	if s == nil {
		return &InconsistentCollectionTypeError{Field: "size_list", Type: "Size", Index: len(p.sizeList)}
	}
	p.sizeList = append(p.sizeList, s)
	return nil
}

func (p *Product) ProductComposition() int { return p.productComposition }
func (p *Product) VoeringComposition() int { return p.voeringComposition }
func (p *Product) FirstComposition() int   { return p.firstComposition }
func (p *Product) ZoolComposition() int    { return p.zoolComposition }

func (p *Product) SetProductComposition(code int) error {
	return p.setComposition(&p.productComposition, "product_composition", code)
}

// SetVoeringComposition sets the lining material.
func (p *Product) SetVoeringComposition(code int) error {
	return p.setComposition(&p.voeringComposition, "voering_composition", code)
}

// SetFirstComposition sets the insole material.
func (p *Product) SetFirstComposition(code int) error {
	return p.setComposition(&p.firstComposition, "first_composition", code)
}

// SetZoolComposition sets the sole material.
func (p *Product) SetZoolComposition(code int) error {
	return p.setComposition(&p.zoolComposition, "zool_composition", code)
}

func (p *Product) setComposition(dst *int, field string, code int) error {
	if err := validate(p.catalog, (*provisioning.Catalog).HasComposition, field, strconv.Itoa(code), DomainCompositions); err != nil {
		return err
	}
	*dst = code
	return nil
}

func (p *Product) ExtraInfos() []*Info { return p.extraInfos }

func (p *Product) SetExtraInfos(infos []*Info) error {
	for i, info := range infos {
		if info == nil {
			return &InconsistentCollectionTypeError{Field: "extra_infos", Type: "Info", Index: i}
		}
	}
	p.extraInfos = infos
	return nil
}

func (p *Product) Selections() []int { return p.selections }

// SetSelections validates every code; on error nothing is assigned.
func (p *Product) SetSelections(codes []int) error {
	for _, code := range codes {
		if err := validate(p.catalog, (*provisioning.Catalog).HasSelection, "selection", strconv.Itoa(code), DomainSelections); err != nil {
			return err
		}
	}
	p.selections = codes
	return nil
}

// TotalQuantity is the product quantity, or the sum of the sizes when the
// product has any.
func (p *Product) TotalQuantity() int {
	if len(p.sizeList) == 0 {
		return p.ProductQuantity
	}
	total := 0
	for _, s := range p.sizeList {
		total += s.Quantity
	}
	return total
}

func (p *Product) Node() *xmlnode.Node {
	return xmlnode.Element("product", p.fields()...)
}

// fields lists the product attributes in wire order.
func (p *Product) fields() []*xmlnode.Node {
	return []*xmlnode.Node{
		xmlnode.Text("reference_partenaire", p.ReferencePartenaire),
		xmlnode.CData("product_name", p.ProductName),
		xmlnode.CData("manufacturers_name", p.ManufacturersName),
		xmlnode.Text("product_sex", p.productSex),
		xmlnode.Float("product_price", p.ProductPrice),
		xmlnode.Int("product_quantity", p.ProductQuantity),
		xmlnode.Int("color_id", p.colorID),
		xmlnode.Int("product_style", p.productStyle),
		xmlnode.CData("product_description", p.ProductDescription),
		xmlnode.CData("product_color", p.ProductColor),
		xmlnode.Float("heel_height", p.HeelHeight),
		xmlnode.Collection("size_list", p.sizeList),
		xmlnode.Int("product_composition", p.productComposition),
		xmlnode.Int("voering_composition", p.voeringComposition),
		xmlnode.Int("first_composition", p.firstComposition),
		xmlnode.Int("zool_composition", p.zoolComposition),
		xmlnode.Indexed("photos", "url", p.Photos, MaxPhotos),
		p.Discount.Node(),
		xmlnode.Collection("extra_infos", p.extraInfos),
		xmlnode.Repeated("selections", "selection", itoa(p.selections)),
	}
}

func itoa(values []int) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return out
}
