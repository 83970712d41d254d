package models

import "time"

// Address is a single address row, owned by exactly one contact. The five
// textual columns are nullable in storage; reads coalesce NULL to "".
type Address struct {
	ID         int64     `json:"id" db:"id"`
	ContactID  int64     `json:"-" db:"contact_id"`
	Street     string    `json:"street" db:"street"`
	City       string    `json:"city" db:"city"`
	Province   string    `json:"province" db:"province"`
	Country    string    `json:"country" db:"country"`
	PostalCode string    `json:"postal_code" db:"postal_code"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// CreateAddressRequest defines the body for creating an address. ContactID
// comes from the URL path, not the body.
type CreateAddressRequest struct {
	ContactID  int64  `json:"-" validate:"required"`
	Street     string `json:"street" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=100"`
	Province   string `json:"province" validate:"required,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
}

// UpdateAddressRequest overwrites all five fields of an address; partial
// updates are not supported.
type UpdateAddressRequest struct {
	ID         int64  `json:"-" validate:"required"`
	ContactID  int64  `json:"-" validate:"required"`
	Street     string `json:"street" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=100"`
	Province   string `json:"province" validate:"required,max=100"`
	Country    string `json:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
}

type GetAddressRequest struct {
	ContactID int64 `validate:"required"`
	AddressID int64 `validate:"required"`
}

type RemoveAddressRequest struct {
	ContactID int64 `validate:"required"`
	AddressID int64 `validate:"required"`
}

// AddressResponse is the public projection of an address row. It excludes
// the contact linkage and storage metadata.
type AddressResponse struct {
	ID         int64  `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}
