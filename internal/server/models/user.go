package models

import (
	"github.com/dmitrijs2005/electro/internal/common"
	"github.com/dmitrijs2005/electro/internal/docstore"
)

// User account field names.
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldUserType    = "userType"
	FieldShopName    = "shopName"
	FieldShopURL     = "shopUrl"
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldPhoneNumber = "phoneNumber"
)

// User is a stored account. PasswordHash is a bcrypt hash and must never
// leave the server.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	UserType     string

	ShopName    string
	ShopURL     string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

// PublicUser is the projection of a User that is safe to return.
type PublicUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, UserType: u.UserType}
}

// UserFromDocument decodes a stored account.
func UserFromDocument(doc docstore.Document) *User {
	u := &User{ID: doc.ID()}
	u.Email, _ = doc.String(FieldEmail)
	u.Username, _ = doc.String(FieldUsername)
	u.PasswordHash, _ = doc.String(FieldPassword)
	u.UserType, _ = doc.String(FieldUserType)
	u.ShopName, _ = doc.String(FieldShopName)
	u.ShopURL, _ = doc.String(FieldShopURL)
	u.FirstName = optional(doc, FieldFirstName)
	u.LastName = optional(doc, FieldLastName)
	u.PhoneNumber = optional(doc, FieldPhoneNumber)
	return u
}

// Document encodes the account. Customers carry a username; vendors carry
// shop fields and nullable personal fields.
func (u *User) Document() docstore.Document {
	doc := docstore.Document{
		FieldUserType: u.UserType,
		FieldEmail:    u.Email,
		FieldPassword: u.PasswordHash,
	}
	if u.ID != "" {
		doc[docstore.IDField] = u.ID
	}
	switch u.UserType {
	case common.UserTypeCustomer:
		doc[FieldUsername] = u.Username
	case common.UserTypeVendor:
		doc[FieldShopName] = u.ShopName
		doc[FieldShopURL] = u.ShopURL
		doc[FieldFirstName] = nullable(u.FirstName)
		doc[FieldLastName] = nullable(u.LastName)
		doc[FieldPhoneNumber] = nullable(u.PhoneNumber)
	}
	return doc
}

func optional(doc docstore.Document, key string) *string {
	s, ok := doc.String(key)
	if !ok {
		return nil
	}
	return &s
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
