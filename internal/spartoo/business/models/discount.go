package models

import "spartoo_api/internal/spartoo/business/xmlnode"

// Discount is a timed price reduction. StartDate and StopDate are unix
// timestamps; their order is the caller's business.
type Discount struct {
	StartDate     int
	StopDate      int
	PriceDiscount float64
	Rate          int
	Sales         bool
}

func NewDiscount(startDate, stopDate int, priceDiscount float64, rate int, sales bool) *Discount {
	return &Discount{
		StartDate:     startDate,
		StopDate:      stopDate,
		PriceDiscount: priceDiscount,
		Rate:          rate,
		Sales:         sales,
	}
}

func (d *Discount) Node() *xmlnode.Node {
	if d == nil {
		return nil
	}
	return xmlnode.Element("discount",
		xmlnode.Int("startdate", d.StartDate),
		xmlnode.Int("stopdate", d.StopDate),
		xmlnode.Float("price_discount", d.PriceDiscount),
		xmlnode.Int("rate", d.Rate),
		xmlnode.Bool("sales", d.Sales),
	)
}
