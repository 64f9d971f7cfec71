//go:build integration

package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/agencydesk/backoffice/pkg/testhelpers"
)

// Rows written by hand or by older tooling leave the optional text columns
// NULL instead of empty. Reads must survive that.

func TestClientReadsTolerateNullColumns(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	repo := NewClientRepository(testDB.DB)

	id := uuid.New()
	_, err := testDB.DB.Exec(context.Background(), `
		INSERT INTO clients (id, name, email, phone, notes)
		VALUES ($1, 'Null Columns Client', NULL, NULL, NULL)
	`, id)
	if err != nil {
		t.Fatalf("failed to insert client: %v", err)
	}
	t.Cleanup(func() {
		_, _ = testDB.DB.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	})

	c, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if c.Email != "" || c.Phone != "" || c.Notes != "" {
		t.Errorf("null columns should read as empty strings, got email=%q phone=%q notes=%q",
			c.Email, c.Phone, c.Notes)
	}

	if _, err := repo.List(context.Background()); err != nil {
		t.Errorf("List failed over a row with null columns: %v", err)
	}
}

func TestCompanyReadsTolerateNullColumns(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	repo := NewCompanyRepository(testDB.DB)

	id := uuid.New()
	_, err := testDB.DB.Exec(context.Background(), `
		INSERT INTO companies (id, name, website, notes)
		VALUES ($1, 'Null Columns Co', NULL, NULL)
	`, id)
	if err != nil {
		t.Fatalf("failed to insert company: %v", err)
	}
	t.Cleanup(func() {
		_, _ = testDB.DB.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	})

	c, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if c.Website != "" || c.Notes != "" {
		t.Errorf("null columns should read as empty strings, got website=%q notes=%q",
			c.Website, c.Notes)
	}
}

func TestListCategoriesToleratesOrphanedType(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	repo := NewTaxonomyRepository(testDB.DB)

	// ON DELETE SET NULL leaves categories with no type after a type deletion.
	id := uuid.New()
	_, err := testDB.DB.Exec(context.Background(), `
		INSERT INTO project_categories (id, name, project_type_id)
		VALUES ($1, 'Orphaned Category', NULL)
	`, id)
	if err != nil {
		t.Fatalf("failed to insert category: %v", err)
	}
	t.Cleanup(func() {
		_, _ = testDB.DB.Exec(context.Background(), `DELETE FROM project_categories WHERE id = $1`, id)
	})

	categories, err := repo.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories failed over an orphaned category: %v", err)
	}
	found := false
	for _, c := range categories {
		if c.Name == "Orphaned Category" {
			found = true
			if c.ProjectTypeID != "" {
				t.Errorf("orphaned category project_type_id = %q, want empty", c.ProjectTypeID)
			}
		}
	}
	if !found {
		t.Error("orphaned category missing from listing")
	}
}
