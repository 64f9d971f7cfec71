package models

import (
	"time"

	"github.com/google/uuid"
)

// Client is a person or contact the agency bills. A client may belong to a
// company; freelancer-direct clients have no company.
type Client struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Company groups clients under one organization.
type Company struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Website   string    `json:"website,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
