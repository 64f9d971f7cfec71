package models

import "time"

// ProjectType is a coarse project classification. Dual-sourced: rows either
// live in the project_types table (UUID ids) or come from the static seed set
// below (ids prefixed "type-"). The prefix is the discriminant everywhere.
type ProjectType struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// ProjectCategory is a finer classification under a project type. Seed rows
// carry the "cat-" prefix.
type ProjectCategory struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ProjectTypeID string    `json:"project_type_id"`
	CreatedAt     time.Time `json:"created_at,omitzero"`
	UpdatedAt     time.Time `json:"updated_at,omitzero"`
}

// SeedProjectTypes returns the static sample types used before (or without) a
// populated project_types table. Callers receive a fresh slice; the seed data
// itself is never mutated.
func SeedProjectTypes() []ProjectType {
	return []ProjectType{
		{ID: "type-1", Name: "Web Development"},
		{ID: "type-2", Name: "Mobile App"},
		{ID: "type-3", Name: "Design"},
		{ID: "type-4", Name: "Consulting"},
		{ID: "type-5", Name: "Maintenance"},
	}
}

// SeedProjectCategories returns the static sample categories, parented to the
// seed types above.
func SeedProjectCategories() []ProjectCategory {
	return []ProjectCategory{
		{ID: "cat-1", Name: "E-commerce", ProjectTypeID: "type-1"},
		{ID: "cat-2", Name: "Corporate Site", ProjectTypeID: "type-1"},
		{ID: "cat-3", Name: "Landing Page", ProjectTypeID: "type-1"},
		{ID: "cat-4", Name: "iOS", ProjectTypeID: "type-2"},
		{ID: "cat-5", Name: "Android", ProjectTypeID: "type-2"},
		{ID: "cat-6", Name: "Branding", ProjectTypeID: "type-3"},
		{ID: "cat-7", Name: "UI/UX", ProjectTypeID: "type-3"},
		{ID: "cat-8", Name: "Technical Audit", ProjectTypeID: "type-4"},
		{ID: "cat-9", Name: "Hosting & Support", ProjectTypeID: "type-5"},
	}
}
