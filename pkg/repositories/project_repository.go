// Package repositories implements PostgreSQL data access for the back office.
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

// ProjectUpdate carries the fields of a project update. Nil pointer fields
// are left untouched. For the two replaced-wholesale collections the slice
// nilness is the contract: nil means "do not touch", a non-nil slice (empty
// included) means "replace everything with this".
type ProjectUpdate struct {
	Name           *string
	ClientID       *uuid.UUID
	Description    *string
	URL            *string
	StartDate      *time.Time
	EndDate        *time.Time
	Price          *float64
	Status         *models.ProjectStatus
	OriginalStatus *string

	// SetProjectType / SetProjectCategory distinguish "leave the column alone"
	// from "write this value (possibly NULL, for seed ids)".
	SetProjectType     bool
	ProjectTypeID      *uuid.UUID
	SetProjectCategory bool
	ProjectCategoryID  *uuid.UUID

	Credentials *models.Credential
	Hosting     *models.Hosting
	OtherAccess []models.OtherAccess
	Payments    []models.Payment
}

// ProjectRepository persists the Project aggregate across the projects,
// project_credentials and payments tables. All multi-table writes for one
// aggregate run inside a single transaction: a project row never commits
// without its dependent rows.
type ProjectRepository interface {
	List(ctx context.Context) ([]*models.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Create(ctx context.Context, p *models.Project) error
	Update(ctx context.Context, id uuid.UUID, upd *ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepository struct {
	db *database.DB
}

// NewProjectRepository creates a PostgreSQL-backed project repository.
func NewProjectRepository(db *database.DB) ProjectRepository {
	return &projectRepository{db: db}
}

const projectSelect = `
	SELECT p.id, p.name, p.client_id, COALESCE(c.name, ''),
	       COALESCE(p.description, ''), COALESCE(p.url, ''),
	       p.start_date, p.deadline_date, COALESCE(p.budget, 0),
	       p.status, COALESCE(p.original_status, ''),
	       p.project_type_id, p.project_category_id,
	       p.created_at, p.updated_at
	FROM projects p
	LEFT JOIN clients c ON c.id = p.client_id`

// List returns all projects, most recently created first, each with its
// dependent credential and payment rows decoded.
func (r *projectRepository) List(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.Query(ctx, projectSelect+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, mapStoreError(err, "projects")
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStoreError(err, "projects")
	}

	for _, p := range projects {
		if err := r.loadDependents(ctx, p); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

// GetByID returns one project aggregate, or apperrors.ErrNotFound.
func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	row := r.db.QueryRow(ctx, projectSelect+` WHERE p.id = $1`, id)
	p, err := scanProject(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapStoreError(err, "projects")
	}
	if err := r.loadDependents(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts the project row and all dependent rows in one transaction.
// The aggregate's ID and timestamps are assigned here.
func (r *projectRepository) Create(ctx context.Context, p *models.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Only persisted type/category ids reach the store; seed ids stay on
	// the in-memory aggregate (classified upstream, stored as NULL here).
	typeID := models.ClassifyRef(models.EntityProjectType, p.ProjectTypeID).StorageID()
	categoryID := models.ClassifyRef(models.EntityProjectCategory, p.ProjectCategoryID).StorageID()

	_, err = tx.Exec(ctx, `
		INSERT INTO projects (id, name, client_id, description, url,
		                      start_date, deadline_date, budget, status, original_status,
		                      project_type_id, project_category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		p.ID, p.Name, p.ClientID, p.Description, p.URL,
		dateParam(p.StartDate), optionalDateParam(p.EndDate), p.Price, p.Status, p.OriginalStatus,
		typeID, categoryID, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return mapStoreError(err, "projects")
	}

	if err := insertCredentialRows(ctx, tx, EncodeCredentialRows(p), now); err != nil {
		return err
	}
	if err := insertPaymentRows(ctx, tx, EncodePaymentRows(p.ID, p.Payments, now), now); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit project create: %w", err)
	}
	return nil
}

// Update applies the partial update and dependent-row replacement rules, then
// returns the freshly reconstructed aggregate.
func (r *projectRepository) Update(ctx context.Context, id uuid.UUID, upd *ProjectUpdate) (*models.Project, error) {
	now := time.Now().UTC()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	set, args := buildProjectSet(upd, now)
	args = append(args, id)
	tag, err := tx.Exec(ctx, fmt.Sprintf(`UPDATE projects SET %s WHERE id = $%d`, set, len(args)), args...)
	if err != nil {
		return nil, mapStoreError(err, "projects")
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrNotFound
	}

	if upd.Credentials != nil {
		if err := upsertPlatformRow(ctx, tx, id, models.MainKey().String(), *upd.Credentials, now); err != nil {
			return nil, err
		}
	}
	if upd.Hosting != nil {
		if err := upsertHostingRow(ctx, tx, id, *upd.Hosting, now); err != nil {
			return nil, err
		}
	}
	if upd.OtherAccess != nil {
		if err := replaceAccessRows(ctx, tx, id, upd.OtherAccess, now); err != nil {
			return nil, err
		}
	}
	if upd.Payments != nil {
		// Full delete-then-insert whenever the field is present; an empty
		// slice therefore clears all payment rows.
		if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE project_id = $1`, id); err != nil {
			return nil, mapStoreError(err, "payments")
		}
		if err := insertPaymentRows(ctx, tx, EncodePaymentRows(id, upd.Payments, now), now); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit project update: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Delete removes the project row; dependent rows cascade in the schema.
func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return mapStoreError(err, "projects")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// loadDependents fetches and decodes credential and payment rows, guaranteeing
// non-nil structures on the aggregate even when no rows exist.
func (r *projectRepository) loadDependents(ctx context.Context, p *models.Project) error {
	credRows, err := r.fetchCredentialRows(ctx, p.ID)
	if err != nil {
		return err
	}
	decoded, err := DecodeCredentialRows(credRows)
	if err != nil {
		return err
	}
	p.Credentials = decoded.Main
	p.Hosting = decoded.Hosting
	p.OtherAccess = decoded.OtherAccess

	payRows, err := r.fetchPaymentRows(ctx, p.ID)
	if err != nil {
		return err
	}
	p.Payments = DecodePaymentRows(payRows)
	return nil
}

func (r *projectRepository) fetchCredentialRows(ctx context.Context, projectID uuid.UUID) ([]CredentialRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, project_id, platform, COALESCE(username, ''), COALESCE(password, ''), COALESCE(notes, ''),
		       created_at, updated_at
		FROM project_credentials
		WHERE project_id = $1
		ORDER BY created_at, platform`, projectID)
	if err != nil {
		return nil, mapStoreError(err, "project_credentials")
	}
	defer rows.Close()

	var out []CredentialRow
	for rows.Next() {
		var c CredentialRow
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Platform, &c.Username, &c.Password, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan credential row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *projectRepository) fetchPaymentRows(ctx context.Context, projectID uuid.UUID) ([]PaymentRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, project_id, amount, payment_date, COALESCE(payment_method, 'pending'),
		       COALESCE(description, ''), COALESCE(currency, 'USD'), created_at, updated_at
		FROM payments
		WHERE project_id = $1`, projectID)
	if err != nil {
		return nil, mapStoreError(err, "payments")
	}
	defer rows.Close()

	var out []PaymentRow
	for rows.Next() {
		var p PaymentRow
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Amount, &p.PaymentDate, &p.PaymentMethod, &p.Description, &p.Currency, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// scanProject reads one joined project row.
func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	var startDate, deadline *time.Time
	var typeID, categoryID *uuid.UUID

	err := row.Scan(&p.ID, &p.Name, &p.ClientID, &p.ClientName,
		&p.Description, &p.URL,
		&startDate, &deadline, &p.Price,
		&p.Status, &p.OriginalStatus,
		&typeID, &categoryID,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if startDate != nil {
		p.StartDate = *startDate
	}
	p.EndDate = deadline
	if typeID != nil {
		p.ProjectTypeID = typeID.String()
	}
	if categoryID != nil {
		p.ProjectCategoryID = categoryID.String()
	}
	return &p, nil
}

// buildProjectSet renders the SET clause for the provided fields plus
// updated_at. Returns the clause and its positional arguments.
func buildProjectSet(upd *ProjectUpdate, now time.Time) (string, []any) {
	set := "updated_at = $1"
	args := []any{now}

	add := func(column string, value any) {
		args = append(args, value)
		set += fmt.Sprintf(", %s = $%d", column, len(args))
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.ClientID != nil {
		add("client_id", *upd.ClientID)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.URL != nil {
		add("url", *upd.URL)
	}
	if upd.StartDate != nil {
		add("start_date", dateParam(*upd.StartDate))
	}
	if upd.EndDate != nil {
		// Sending the zero time clears the deadline.
		add("deadline_date", dateParam(*upd.EndDate))
	}
	if upd.Price != nil {
		add("budget", *upd.Price)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.OriginalStatus != nil {
		add("original_status", *upd.OriginalStatus)
	}
	if upd.SetProjectType {
		add("project_type_id", upd.ProjectTypeID)
	}
	if upd.SetProjectCategory {
		add("project_category_id", upd.ProjectCategoryID)
	}
	return set, args
}

// dateParam truncates to a calendar date; the zero time stores as NULL.
func dateParam(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return truncateToDay(t)
}

func optionalDateParam(t *time.Time) any {
	if t == nil {
		return nil
	}
	return truncateToDay(*t)
}
