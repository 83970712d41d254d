package models

import "time"

// Contact is the parent entity of zero or more addresses, owned by the user
// identified by Username.
type Contact struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"-" db:"username"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type CreateContactRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

// UpdateContactRequest overwrites every mutable field of a contact. ID comes
// from the URL path, not the body.
type UpdateContactRequest struct {
	ID        int64  `json:"-" validate:"required"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
}

// SearchContactRequest carries the optional filters and paging for contact
// search. Name matches against first or last name.
type SearchContactRequest struct {
	Name  string `query:"name" validate:"omitempty,max=100"`
	Email string `query:"email" validate:"omitempty,max=100"`
	Phone string `query:"phone" validate:"omitempty,max=20"`
	Page  int    `query:"page" validate:"min=1"`
	Size  int    `query:"size" validate:"min=1,max=100"`
}

// ContactResponse is the public projection of a contact record.
type ContactResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}
