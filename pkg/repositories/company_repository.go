package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/agencydesk/backoffice/pkg/apperrors"
	"github.com/agencydesk/backoffice/pkg/database"
	"github.com/agencydesk/backoffice/pkg/models"
)

type CompanyRepository interface {
	List(ctx context.Context) ([]models.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	Create(ctx context.Context, company *models.Company) error
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) CompanyRepository {
	return &companyRepository{db: db}
}

const companySelect = `
	SELECT id, name, COALESCE(website, ''), COALESCE(notes, ''), created_at, updated_at
	FROM companies`

func (r *companyRepository) List(ctx context.Context) ([]models.Company, error) {
	rows, err := r.db.Pool.Query(ctx, companySelect+` ORDER BY name`)
	if err != nil {
		return nil, mapStoreError(err, "companies")
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStoreError(err, "companies")
	}
	return companies, nil
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	row := r.db.Pool.QueryRow(ctx, companySelect+` WHERE id = $1`, id)
	c, err := scanCompany(row)
	if err == pgx.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, mapStoreError(err, "companies")
	}
	return c, nil
}

func (r *companyRepository) Create(ctx context.Context, company *models.Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	now := time.Now().UTC()
	company.CreatedAt = now
	company.UpdatedAt = now

	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO companies (id, name, website, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		company.ID, company.Name, company.Website, company.Notes,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return mapStoreError(err, "companies")
	}
	return nil
}

func (r *companyRepository) Update(ctx context.Context, company *models.Company) error {
	company.UpdatedAt = time.Now().UTC()
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE companies SET name = $1, website = $2, notes = $3, updated_at = $4
		WHERE id = $5`,
		company.Name, company.Website, company.Notes, company.UpdatedAt, company.ID,
	)
	if err != nil {
		return mapStoreError(err, "companies")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *companyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return mapStoreError(err, "companies")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanCompany(row pgx.Row) (*models.Company, error) {
	var c models.Company
	err := row.Scan(&c.ID, &c.Name, &c.Website, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan company: %w", err)
	}
	return &c, nil
}
