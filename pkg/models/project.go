// Package models contains the domain types for the agencydesk back office.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is the aggregate root: the project row plus its owned credential,
// hosting, other-access and payment children, treated as one consistency unit
// at the application boundary.
//
// ProjectTypeID and ProjectCategoryID hold whatever the caller supplied -
// either a persisted UUID or a seed-prefixed id ("type-1", "cat-3"). Only
// persisted UUIDs are forwarded to the store; seed ids are kept here so the UI
// keeps showing the sample selection across the update cycle.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ClientID    uuid.UUID `json:"client_id"`
	ClientName  string    `json:"client_name"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url,omitempty"`

	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	Price float64 `json:"price"`

	// Status is always a member of the closed set; OriginalStatus retains the
	// free-text label the caller sent (e.g. "planning") for display.
	Status         ProjectStatus `json:"status"`
	OriginalStatus string        `json:"original_status"`

	ProjectTypeID     string `json:"project_type_id,omitempty"`
	ProjectCategoryID string `json:"project_category_id,omitempty"`
	ProjectType       string `json:"project_type,omitempty"`
	ProjectCategory   string `json:"project_category,omitempty"`

	// Never nil on a Project returned from the reader: absent rows default to
	// blank structures so downstream code does not null-check.
	Credentials Credential    `json:"credentials"`
	Hosting     Hosting       `json:"hosting"`
	OtherAccess []OtherAccess `json:"other_access"`
	Payments    []Payment     `json:"payments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayStatusLabel returns the human label for this project's status.
func (p *Project) DisplayStatusLabel() string {
	return DisplayStatus(p.Status, p.OriginalStatus)
}
