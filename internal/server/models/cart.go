package models

import (
	"encoding/json"

	"github.com/dmitrijs2005/electro/internal/docstore"
)

// Cart line item field names.
const (
	FieldEmail      = "email"
	FieldProductID  = "productId"
	FieldQuantity   = "quantity"
	FieldTotalPrice = "totalPrice"
)

// CartItem is one cart line owned by a single account. Product attributes are
// a snapshot copied when the item was added.
type CartItem struct {
	ID         string
	Email      string
	ProductID  string
	Price      float64
	Quantity   int
	TotalPrice float64

	doc docstore.Document
}

// CartItemFromDocument builds a CartItem view over doc.
func CartItemFromDocument(doc docstore.Document) *CartItem {
	it := &CartItem{ID: doc.ID(), doc: doc}
	it.Email, _ = doc.String(FieldEmail)
	it.ProductID, _ = doc.String(FieldProductID)
	it.Price, _ = doc.Float(FieldPrice)
	q, _ := doc.Float(FieldQuantity)
	it.Quantity = int(q)
	it.TotalPrice, _ = doc.Float(FieldTotalPrice)
	return it
}

// NewCartItem assembles a line item from a product snapshot. The snapshot's
// own identifier and owner fields are replaced, and the total is derived.
func NewCartItem(email, productID string, snapshot map[string]any, price float64, quantity int) *CartItem {
	doc := make(docstore.Document, len(snapshot)+5)
	for k, v := range snapshot {
		doc[k] = v
	}
	delete(doc, docstore.IDField)

	it := &CartItem{
		Email:     email,
		ProductID: productID,
		Price:     price,
		Quantity:  quantity,
		doc:       doc,
	}
	it.SetQuantity(quantity)
	doc[FieldEmail] = email
	doc[FieldProductID] = productID
	doc[FieldPrice] = price
	return it
}

// LineTotal is the derived total for a unit price and quantity.
func LineTotal(price float64, quantity int) float64 {
	return price * float64(quantity)
}

// SetQuantity replaces the quantity and recomputes the total from the unit
// price.
func (it *CartItem) SetQuantity(quantity int) {
	it.Quantity = quantity
	it.TotalPrice = LineTotal(it.Price, quantity)
	if it.doc != nil {
		it.doc[FieldQuantity] = quantity
		it.doc[FieldTotalPrice] = it.TotalPrice
	}
}

// Document returns the stored representation.
func (it *CartItem) Document() docstore.Document {
	if it.doc == nil {
		it.doc = docstore.Document{}
	}
	it.doc[FieldEmail] = it.Email
	it.doc[FieldProductID] = it.ProductID
	it.doc[FieldPrice] = it.Price
	it.doc[FieldQuantity] = it.Quantity
	it.doc[FieldTotalPrice] = it.TotalPrice
	if it.ID != "" {
		it.doc[docstore.IDField] = it.ID
	}
	return it.doc
}

func (it *CartItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(it.Document())
}
