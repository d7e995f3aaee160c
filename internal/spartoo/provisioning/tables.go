package provisioning

// Records of the provisioning reference file. Field names follow the element
// names of the file so the tables can be decoded straight from it.

type Sex struct {
	Code string `xml:"code"`
	Name string `xml:"name"`
}

type Color struct {
	Code string `xml:"code"`
	Name string `xml:"name"`
}

type Composition struct {
	Code string `xml:"code"`
	Name string `xml:"name"`
}

// Category is a product style. Genders lists the product_sex codes the
// category can be sold for.
type Category struct {
	Code            string   `xml:"code"`
	Name            string   `xml:"name"`
	ProductType     string   `xml:"product_type"`
	ProductTypeName string   `xml:"product_type_name"`
	MacroCategory   string   `xml:"macro_category"`
	Genders         []string `xml:"genders>gender"`
}

type Selection struct {
	Code string `xml:"code"`
	Name string `xml:"name"`
}

type ExtraInfo struct {
	ID   string `xml:"id"`
	Name string `xml:"name"`
}

type Status struct {
	Code string `xml:"code"`
	Name string `xml:"name"`
}

// Size is a size label. A size without Restrictions is valid for every
// category; otherwise only for the listed product_style codes.
type Size struct {
	Name             string   `xml:"size_name"`
	ProductsTypeID   string   `xml:"products_type_id"`
	ProductsTypeName string   `xml:"products_type_name"`
	Restrictions     []string `xml:"restrictions>products_style"`
}

type Currency struct {
	Name string `xml:"name"`
	Code string `xml:"code"`
}

type InvoiceType struct {
	ID   string `xml:"lib_id"`
	Name string `xml:"lib_name"`
}

type Language struct {
	Code string `xml:"code"`
}

// Tables is the full content of one provisioning file, in file order.
type Tables struct {
	Languages      []Language    `xml:"languages>language"`
	Sexes          []Sex         `xml:"products_sex>product_sex"`
	Colors         []Color       `xml:"colors>color"`
	Compositions   []Composition `xml:"compositions>composition"`
	Categories     []Category    `xml:"categories>categorie"`
	Selections     []Selection   `xml:"selections>selection"`
	ExtraInfos     []ExtraInfo   `xml:"extra_info>info"`
	OrderStatuses  []Status      `xml:"orders_status>status"`
	ReturnStatuses []Status      `xml:"returns_status>status"`
	Sizes          []Size        `xml:"sizes>size"`
	Currencies     []Currency    `xml:"currencies>currency"`
	InvoiceTypes   []InvoiceType `xml:"invoice_types>lib"`
}

func (s Size) allows(style string) bool {
	if len(s.Restrictions) == 0 {
		return true
	}
	for _, r := range s.Restrictions {
		if r == style {
			return true
		}
	}
	return false
}
