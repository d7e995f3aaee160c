// Package documents assembles the request documents of the Spartoo API from
// entities. Builders work on copies and never modify what they are given.
package documents

import (
	"strconv"

	"spartoo_api/internal/spartoo/business/models"
	"spartoo_api/internal/spartoo/business/xmlnode"
)

// Import wraps fully serialized listings: root/products/product*.
func Import(listings ...models.Listing) *xmlnode.Node {
	products := xmlnode.Element("products")
	for _, l := range listings {
		products.Append(Listing(l))
	}
	return xmlnode.Element("root", products)
}

// Listing renders a listing by kind. Only multi-country listings carry the
// languages block; anything else is sent as its base product.
func Listing(l models.Listing) *xmlnode.Node {
	if l.Kind() == models.MultiCountry {
		return l.Node()
	}
	return l.Base().Node()
}

// BatchStock lists stock per product: the quantity of a sizeless product, or
// its sizes stripped of name and EAN.
func BatchStock(products ...*models.Product) *xmlnode.Node {
	catalogue := xmlnode.Element("catalogue")
	for _, p := range products {
		record := xmlnode.Element("product", xmlnode.Leaf("reference_partenaire", p.ReferencePartenaire))

		sizes := p.SizeList()
		if len(sizes) == 0 {
			record.Append(xmlnode.Leaf("product_quantity", strconv.Itoa(p.ProductQuantity)))
		} else {
			sizeList := xmlnode.Element("size_list")
			for _, s := range sizes {
				sizeList.Append(s.StockLine().Node())
			}
			record.Append(sizeList)
		}
		catalogue.Append(record)
	}
	return catalogue
}

// StatusCheck asks for one status per size, or per product when it has no
// sizes.
func StatusCheck(products ...*models.Product) *xmlnode.Node {
	list := xmlnode.Element("products")
	for _, p := range products {
		sizes := p.SizeList()
		if len(sizes) == 0 {
			list.Append(xmlnode.Element("product", xmlnode.Leaf("reference_partenaire", p.ReferencePartenaire)))
			continue
		}
		for _, s := range sizes {
			line := s.StockLine()
			list.Append(xmlnode.Element("product",
				xmlnode.Leaf("reference_partenaire", p.ReferencePartenaire),
				xmlnode.Leaf("products_size_reference", line.Reference),
			))
		}
	}
	return xmlnode.Element("root", list)
}

// DeliveryNote requests the delivery note (BL) of one product of an order.
func DeliveryNote(orderID string, p *models.Product) *xmlnode.Node {
	return xmlnode.Element("root",
		xmlnode.Leaf("order_id", orderID),
		xmlnode.Element("products",
			xmlnode.Element("product",
				xmlnode.Leaf("reference_partenaire", p.ReferencePartenaire),
				xmlnode.Leaf("product_quantity", strconv.Itoa(p.ProductQuantity)),
			),
		),
	)
}
