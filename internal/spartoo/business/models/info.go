package models

import "spartoo_api/internal/spartoo/business/xmlnode"

// Info is a free (id, value) extension pair.
type Info struct {
	ID    int
	Value float64
}

func NewInfo(id int, value float64) *Info {
	return &Info{ID: id, Value: value}
}

func (i *Info) Node() *xmlnode.Node {
	return xmlnode.Element("info",
		xmlnode.Int("id", i.ID),
		xmlnode.Float("value", i.Value),
	)
}
