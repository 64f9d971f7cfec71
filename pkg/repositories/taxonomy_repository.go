package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agencydesk/backoffice/pkg/database"
	"github.com/agencydesk/backoffice/pkg/models"
)

// TaxonomyRepository serves project types and categories. Two implementations
// exist: the fixed seed catalog and the relational tables. Lookups by seed id
// resolve against the seed catalog in both.
type TaxonomyRepository interface {
	ListTypes(ctx context.Context) ([]models.ProjectType, error)
	ListCategories(ctx context.Context) ([]models.ProjectCategory, error)
	// TypeName and CategoryName resolve a raw identifier to its display
	// name. Unknown identifiers resolve to "".
	TypeName(ctx context.Context, id string) (string, error)
	CategoryName(ctx context.Context, id string) (string, error)
}

// seedTaxonomyRepository serves the built-in catalog only.
type seedTaxonomyRepository struct{}

func NewSeedTaxonomyRepository() TaxonomyRepository {
	return &seedTaxonomyRepository{}
}

func (r *seedTaxonomyRepository) ListTypes(_ context.Context) ([]models.ProjectType, error) {
	return models.SeedProjectTypes(), nil
}

func (r *seedTaxonomyRepository) ListCategories(_ context.Context) ([]models.ProjectCategory, error) {
	return models.SeedProjectCategories(), nil
}

func (r *seedTaxonomyRepository) TypeName(_ context.Context, id string) (string, error) {
	return seedTypeName(id), nil
}

func (r *seedTaxonomyRepository) CategoryName(_ context.Context, id string) (string, error) {
	return seedCategoryName(id), nil
}

// postgresTaxonomyRepository merges the relational tables with the seed
// catalog: listings come from the tables, falling back to seeds when the
// tables are empty, and name lookups try the seed catalog first so that
// seed-prefixed ids never hit the database.
type postgresTaxonomyRepository struct {
	db *database.DB
}

func NewTaxonomyRepository(db *database.DB) TaxonomyRepository {
	return &postgresTaxonomyRepository{db: db}
}

func (r *postgresTaxonomyRepository) ListTypes(ctx context.Context) ([]models.ProjectType, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM project_types ORDER BY name`)
	if err != nil {
		return nil, mapStoreError(err, "project_types")
	}
	defer rows.Close()

	var types []models.ProjectType
	for rows.Next() {
		var t models.ProjectType
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project type: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStoreError(err, "project_types")
	}
	if len(types) == 0 {
		return models.SeedProjectTypes(), nil
	}
	return types, nil
}

func (r *postgresTaxonomyRepository) ListCategories(ctx context.Context) ([]models.ProjectCategory, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, name, COALESCE(project_type_id::text, ''), created_at, updated_at
		FROM project_categories ORDER BY name`)
	if err != nil {
		return nil, mapStoreError(err, "project_categories")
	}
	defer rows.Close()

	var categories []models.ProjectCategory
	for rows.Next() {
		var c models.ProjectCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.ProjectTypeID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStoreError(err, "project_categories")
	}
	if len(categories) == 0 {
		return models.SeedProjectCategories(), nil
	}
	return categories, nil
}

func (r *postgresTaxonomyRepository) TypeName(ctx context.Context, id string) (string, error) {
	if name := seedTypeName(id); name != "" {
		return name, nil
	}
	ref := models.ClassifyRef(models.EntityProjectType, id)
	storageID := ref.StorageID()
	if storageID == nil {
		return "", nil
	}

	var name string
	err := r.db.Pool.QueryRow(ctx,
		`SELECT name FROM project_types WHERE id = $1`, *storageID).Scan(&name)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", mapStoreError(err, "project_types")
	}
	return name, nil
}

func (r *postgresTaxonomyRepository) CategoryName(ctx context.Context, id string) (string, error) {
	if name := seedCategoryName(id); name != "" {
		return name, nil
	}
	ref := models.ClassifyRef(models.EntityProjectCategory, id)
	storageID := ref.StorageID()
	if storageID == nil {
		return "", nil
	}

	var name string
	err := r.db.Pool.QueryRow(ctx,
		`SELECT name FROM project_categories WHERE id = $1`, *storageID).Scan(&name)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", mapStoreError(err, "project_categories")
	}
	return name, nil
}

func seedTypeName(id string) string {
	for _, t := range models.SeedProjectTypes() {
		if t.ID == id {
			return t.Name
		}
	}
	return ""
}

func seedCategoryName(id string) string {
	for _, c := range models.SeedProjectCategories() {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}
