// Package provisioning loads the Spartoo reference file of one language and
// answers which catalog codes the marketplace accepts.
package provisioning

import (
	"slices"
	"strings"
)

// Catalog is the immutable content of one provisioning file. Lookups return
// copies; a Catalog is safe for concurrent readers.
type Catalog struct {
	lang   string
	tables Tables

	countries    map[string]struct{}
	sexes        map[string]struct{}
	colors       map[string]struct{}
	compositions map[string]struct{}
	categories   map[string]struct{}
	selections   map[string]struct{}
	sizes        map[string]Size
}

// New builds a catalog from already decoded tables. The tables are copied.
func New(lang string, t Tables) *Catalog {
	c := &Catalog{
		lang:         strings.ToLower(lang),
		tables:       cloneTables(t),
		countries:    make(map[string]struct{}, len(t.Languages)),
		sexes:        make(map[string]struct{}, len(t.Sexes)),
		colors:       make(map[string]struct{}, len(t.Colors)),
		compositions: make(map[string]struct{}, len(t.Compositions)),
		categories:   make(map[string]struct{}, len(t.Categories)),
		selections:   make(map[string]struct{}, len(t.Selections)),
		sizes:        make(map[string]Size, len(t.Sizes)),
	}
	for _, l := range c.tables.Languages {
		c.countries[l.Code] = struct{}{}
	}
	for _, s := range c.tables.Sexes {
		c.sexes[s.Code] = struct{}{}
	}
	for _, col := range c.tables.Colors {
		c.colors[col.Code] = struct{}{}
	}
	for _, comp := range c.tables.Compositions {
		c.compositions[comp.Code] = struct{}{}
	}
	for _, cat := range c.tables.Categories {
		c.categories[cat.Code] = struct{}{}
	}
	for _, sel := range c.tables.Selections {
		c.selections[sel.Code] = struct{}{}
	}
	for _, sz := range c.tables.Sizes {
		if _, ok := c.sizes[sz.Name]; !ok {
			c.sizes[sz.Name] = sz
		}
	}
	return c
}

// Language is the lower-case code of the file the catalog was loaded from.
func (c *Catalog) Language() string { return c.lang }

func (c *Catalog) Countries() []string {
	out := make([]string, 0, len(c.tables.Languages))
	for _, l := range c.tables.Languages {
		out = append(out, l.Code)
	}
	return out
}

func (c *Catalog) Sexes() []Sex                { return slices.Clone(c.tables.Sexes) }
func (c *Catalog) Colors() []Color             { return slices.Clone(c.tables.Colors) }
func (c *Catalog) Compositions() []Composition { return slices.Clone(c.tables.Compositions) }
func (c *Catalog) Selections() []Selection     { return slices.Clone(c.tables.Selections) }
func (c *Catalog) ExtraInfos() []ExtraInfo     { return slices.Clone(c.tables.ExtraInfos) }
func (c *Catalog) OrderStatuses() []Status     { return slices.Clone(c.tables.OrderStatuses) }
func (c *Catalog) ReturnStatuses() []Status    { return slices.Clone(c.tables.ReturnStatuses) }
func (c *Catalog) Currencies() []Currency      { return slices.Clone(c.tables.Currencies) }
func (c *Catalog) InvoiceTypes() []InvoiceType { return slices.Clone(c.tables.InvoiceTypes) }
func (c *Catalog) Categories() []Category      { return cloneCategories(c.tables.Categories) }
func (c *Catalog) Sizes() []Size               { return cloneSizes(c.tables.Sizes) }

// ProductStylesWithSizeRestrictions returns every product_style named by at
// least one size restriction, without duplicates, in first-seen order.
func (c *Catalog) ProductStylesWithSizeRestrictions() []string {
	seen := make(map[string]struct{})
	var styles []string
	for _, sz := range c.tables.Sizes {
		for _, style := range sz.Restrictions {
			if _, ok := seen[style]; ok {
				continue
			}
			seen[style] = struct{}{}
			styles = append(styles, style)
		}
	}
	return styles
}

func (c *Catalog) HasCountry(code string) bool     { return has(c.countries, code) }
func (c *Catalog) HasSex(code string) bool         { return has(c.sexes, code) }
func (c *Catalog) HasColor(code string) bool       { return has(c.colors, code) }
func (c *Catalog) HasComposition(code string) bool { return has(c.compositions, code) }
func (c *Catalog) HasCategory(code string) bool    { return has(c.categories, code) }
func (c *Catalog) HasSelection(code string) bool   { return has(c.selections, code) }

func (c *Catalog) HasSize(name string) bool {
	_, ok := c.sizes[name]
	return ok
}

// SizeAllowedFor reports whether the size may be used for the product_style.
// Unknown sizes are never allowed.
func (c *Catalog) SizeAllowedFor(name, style string) bool {
	sz, ok := c.sizes[name]
	if !ok {
		return false
	}
	return sz.allows(style)
}

func has(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func cloneTables(t Tables) Tables {
	return Tables{
		Languages:      slices.Clone(t.Languages),
		Sexes:          slices.Clone(t.Sexes),
		Colors:         slices.Clone(t.Colors),
		Compositions:   slices.Clone(t.Compositions),
		Categories:     cloneCategories(t.Categories),
		Selections:     slices.Clone(t.Selections),
		ExtraInfos:     slices.Clone(t.ExtraInfos),
		OrderStatuses:  slices.Clone(t.OrderStatuses),
		ReturnStatuses: slices.Clone(t.ReturnStatuses),
		Sizes:          cloneSizes(t.Sizes),
		Currencies:     slices.Clone(t.Currencies),
		InvoiceTypes:   slices.Clone(t.InvoiceTypes),
	}
}

func cloneCategories(in []Category) []Category {
	if in == nil {
		return nil
	}
	out := make([]Category, len(in))
	for i, cat := range in {
		cat.Genders = slices.Clone(cat.Genders)
		out[i] = cat
	}
	return out
}

func cloneSizes(in []Size) []Size {
	if in == nil {
		return nil
	}
	out := make([]Size, len(in))
	for i, sz := range in {
		sz.Restrictions = slices.Clone(sz.Restrictions)
		out[i] = sz
	}
	return out
}
