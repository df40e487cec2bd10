package models

import (
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/electro/internal/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductFromDocument(t *testing.T) {
	doc := docstore.Document{
		docstore.IDField: "p1",
		"name":           "Smart TV",
		"image":          "tv.png",
		"category":       "tv",
		"brand":          "Acme",
		"price":          float64(499),
		"availability":   "in stock",
		"tags":           []any{"4k", "hdr"},
		"warranty":       "2 years",
	}

	p := ProductFromDocument(doc)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "tv", p.Category)
	assert.Equal(t, "Acme", p.Brand)
	assert.Equal(t, 499.0, p.Price)
	assert.Equal(t, []string{"4k", "hdr"}, p.Tags)
	assert.True(t, p.HasCategory())

	name, ok := p.Attribute("name")
	assert.True(t, ok)
	assert.Equal(t, "Smart TV", name)

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"p1","name":"Smart TV","image":"tv.png","category":"tv","brand":"Acme",
		"price":499,"availability":"in stock","tags":["4k","hdr"],"warranty":"2 years"}`, string(b))
}

func TestProduct_WithoutCategory(t *testing.T) {
	p := ProductFromDocument(docstore.Document{docstore.IDField: "p2"})
	assert.False(t, p.HasCategory())
	assert.Empty(t, p.Category)
}

func TestNewCartItem_DerivesTotal(t *testing.T) {
	snapshot := map[string]any{
		docstore.IDField: "client-id",
		"email":          "spoofed@x.io",
		"name":           "Cable",
	}

	it := NewCartItem("owner@x.io", "prod-1", snapshot, 50, 3)
	assert.Equal(t, 150.0, it.TotalPrice)

	doc := it.Document()
	assert.Equal(t, "owner@x.io", doc[FieldEmail])
	assert.Equal(t, "prod-1", doc[FieldProductID])
	assert.Equal(t, "Cable", doc["name"])
	assert.Equal(t, 150.0, doc[FieldTotalPrice])
	_, hasID := doc[docstore.IDField]
	assert.False(t, hasID, "client supplied id is dropped")
	assert.Equal(t, "client-id", snapshot[docstore.IDField], "snapshot is not mutated")

	it.SetQuantity(5)
	assert.Equal(t, 250.0, it.TotalPrice)
	assert.Equal(t, 5, it.Document()[FieldQuantity])
}

func TestCartItemFromDocument(t *testing.T) {
	it := CartItemFromDocument(docstore.Document{
		docstore.IDField: "c1",
		FieldEmail:       "a@x.io",
		FieldProductID:   "p1",
		FieldPrice:       12.5,
		FieldQuantity:    float64(2),
		FieldTotalPrice:  25.0,
	})
	assert.Equal(t, "c1", it.ID)
	assert.Equal(t, 2, it.Quantity)
	assert.Equal(t, 25.0, it.TotalPrice)

	b, err := json.Marshal(it)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"c1","email":"a@x.io","productId":"p1","price":12.5,"quantity":2,"totalPrice":25}`, string(b))
}

func TestUserDocument_Vendor(t *testing.T) {
	first := "Ann"
	u := &User{
		Email:        "shop@x.io",
		PasswordHash: "hash",
		UserType:     "vendor",
		ShopName:     "Gadgets",
		ShopURL:      "gadgets.example",
		FirstName:    &first,
	}

	doc := u.Document()
	assert.Equal(t, "Gadgets", doc[FieldShopName])
	assert.Equal(t, "Ann", doc[FieldFirstName])
	assert.Nil(t, doc[FieldLastName])
	_, hasLast := doc[FieldLastName]
	assert.True(t, hasLast, "optional vendor fields are stored as null")
	_, hasUsername := doc[FieldUsername]
	assert.False(t, hasUsername)

	doc[docstore.IDField] = "u1"
	back := UserFromDocument(doc)
	assert.Equal(t, "u1", back.ID)
	require.NotNil(t, back.FirstName)
	assert.Equal(t, "Ann", *back.FirstName)
	assert.Nil(t, back.LastName)
	assert.Equal(t, PublicUser{ID: "u1", Email: "shop@x.io", UserType: "vendor"}, back.Public())
}

func TestUserDocument_Customer(t *testing.T) {
	u := &User{Email: "c@x.io", PasswordHash: "h", UserType: "customer", Username: "cee"}
	doc := u.Document()
	assert.Equal(t, "cee", doc[FieldUsername])
	_, hasShop := doc[FieldShopName]
	assert.False(t, hasShop)
}
