// Package models defines the records the server reads from and writes to the
// document store.
package models

import (
	"encoding/json"

	"github.com/dmitrijs2005/electro/internal/docstore"
)

// Product field names as stored in catalog partitions.
const (
	FieldCategory     = "category"
	FieldBrand        = "brand"
	FieldPrice        = "price"
	FieldAvailability = "availability"
	FieldTags         = "tags"
	FieldWarranty     = "warranty"
)

// Product is a catalog record. The typed fields are a read-only view over
// the stored document; display attributes are carried along untouched.
type Product struct {
	ID           string
	Category     string
	Brand        string
	Price        float64
	Availability string
	Tags         []string
	Warranty     string

	doc docstore.Document
}

// ProductFromDocument builds a Product view over doc.
func ProductFromDocument(doc docstore.Document) *Product {
	p := &Product{ID: doc.ID(), doc: doc}
	p.Category, _ = doc.String(FieldCategory)
	p.Brand, _ = doc.String(FieldBrand)
	p.Price, _ = doc.Float(FieldPrice)
	p.Availability, _ = doc.String(FieldAvailability)
	p.Tags = doc.Strings(FieldTags)
	p.Warranty, _ = doc.String(FieldWarranty)
	return p
}

// ProductsFromDocuments converts a result set, keeping order.
func ProductsFromDocuments(docs []docstore.Document) []*Product {
	out := make([]*Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, ProductFromDocument(d))
	}
	return out
}

// HasCategory reports whether the stored record carries a category.
func (p *Product) HasCategory() bool {
	_, ok := p.doc.String(FieldCategory)
	return ok
}

// Attribute returns a raw stored field.
func (p *Product) Attribute(key string) (any, bool) {
	v, ok := p.doc[key]
	return v, ok
}

// MarshalJSON emits the stored document as is.
func (p *Product) MarshalJSON() ([]byte, error) {
	if p.doc != nil {
		return json.Marshal(p.doc)
	}
	return json.Marshal(docstore.Document{
		docstore.IDField:  p.ID,
		FieldCategory:     p.Category,
		FieldBrand:        p.Brand,
		FieldPrice:        p.Price,
		FieldAvailability: p.Availability,
		FieldTags:         p.Tags,
		FieldWarranty:     p.Warranty,
	})
}

// ProductDetail is a located product with its same-category siblings from
// the canonical partition.
type ProductDetail struct {
	Product         *Product   `json:"product"`
	RelatedProducts []*Product `json:"relatedProducts"`
}
