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

type ClientRepository interface {
	List(ctx context.Context) ([]models.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientRepository struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) ClientRepository {
	return &clientRepository{db: db}
}

const clientSelect = `
	SELECT id, name, company_id,
	       COALESCE(email, ''), COALESCE(phone, ''), COALESCE(notes, ''),
	       created_at, updated_at
	FROM clients`

func (r *clientRepository) List(ctx context.Context) ([]models.Client, error) {
	rows, err := r.db.Pool.Query(ctx, clientSelect+` ORDER BY name`)
	if err != nil {
		return nil, mapStoreError(err, "clients")
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStoreError(err, "clients")
	}
	return clients, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	row := r.db.Pool.QueryRow(ctx, clientSelect+` WHERE id = $1`, id)
	c, err := scanClient(row)
	if err == pgx.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, mapStoreError(err, "clients")
	}
	return c, nil
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	now := time.Now().UTC()
	client.CreatedAt = now
	client.UpdatedAt = now

	_, err := r.db.Pool.Exec(ctx, `
		INSERT INTO clients (id, name, company_id, email, phone, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		client.ID, client.Name, client.CompanyID, client.Email, client.Phone, client.Notes,
		client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		return mapStoreError(err, "clients")
	}
	return nil
}

func (r *clientRepository) Update(ctx context.Context, client *models.Client) error {
	client.UpdatedAt = time.Now().UTC()
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE clients SET name = $1, company_id = $2, email = $3, phone = $4, notes = $5, updated_at = $6
		WHERE id = $7`,
		client.Name, client.CompanyID, client.Email, client.Phone, client.Notes,
		client.UpdatedAt, client.ID,
	)
	if err != nil {
		return mapStoreError(err, "clients")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return mapStoreError(err, "clients")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanClient(row pgx.Row) (*models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ID, &c.Name, &c.CompanyID, &c.Email, &c.Phone, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err == pgx.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan client: %w", err)
	}
	return &c, nil
}
