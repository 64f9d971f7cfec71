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

type InvoiceRepository interface {
	List(ctx context.Context) ([]models.Invoice, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]models.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	Create(ctx context.Context, invoice *models.Invoice) error
	Update(ctx context.Context, invoice *models.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceRepository struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

const invoiceSelect = `
	SELECT id, number, client_id, project_id, amount, currency, status,
	       issued_date, due_date, sent_date, paid_date, created_at, updated_at
	FROM invoices`

func (r *invoiceRepository) List(ctx context.Context) ([]models.Invoice, error) {
	rows, err := r.db.Pool.Query(ctx, invoiceSelect+` ORDER BY issued_date DESC, number DESC`)
	if err != nil {
		return nil, mapStoreError(err, "invoices")
	}
	return r.collectInvoices(ctx, rows)
}

func (r *invoiceRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]models.Invoice, error) {
	rows, err := r.db.Pool.Query(ctx, invoiceSelect+` WHERE client_id = $1 ORDER BY issued_date DESC, number DESC`, clientID)
	if err != nil {
		return nil, mapStoreError(err, "invoices")
	}
	return r.collectInvoices(ctx, rows)
}

func (r *invoiceRepository) collectInvoices(ctx context.Context, rows pgx.Rows) ([]models.Invoice, error) {
	defer rows.Close()

	var invoices []models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStoreError(err, "invoices")
	}

	for i := range invoices {
		items, err := r.fetchItems(ctx, invoices[i].ID)
		if err != nil {
			return nil, err
		}
		invoices[i].Items = items
	}
	return invoices, nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	row := r.db.Pool.QueryRow(ctx, invoiceSelect+` WHERE id = $1`, id)
	inv, err := scanInvoice(row)
	if err == pgx.ErrNoRows {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, mapStoreError(err, "invoices")
	}

	items, err := r.fetchItems(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return inv, nil
}

// Create writes the invoice and its line items in one transaction.
func (r *invoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	now := time.Now().UTC()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO invoices (id, number, client_id, project_id, amount, currency, status,
		                      issued_date, due_date, sent_date, paid_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		invoice.ID, invoice.Number, invoice.ClientID, invoice.ProjectID,
		invoice.Amount, invoice.Currency, invoice.Status,
		invoice.IssuedDate, invoice.DueDate, invoice.SentDate, invoice.PaidDate,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		return mapStoreError(err, "invoices")
	}

	if err := insertInvoiceItems(ctx, tx, invoice.ID, invoice.Items); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update rewrites the invoice row and replaces its line items.
func (r *invoiceRepository) Update(ctx context.Context, invoice *models.Invoice) error {
	invoice.UpdatedAt = time.Now().UTC()

	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE invoices SET number = $1, client_id = $2, project_id = $3, amount = $4,
		       currency = $5, status = $6, issued_date = $7, due_date = $8,
		       sent_date = $9, paid_date = $10, updated_at = $11
		WHERE id = $12`,
		invoice.Number, invoice.ClientID, invoice.ProjectID, invoice.Amount,
		invoice.Currency, invoice.Status, invoice.IssuedDate, invoice.DueDate,
		invoice.SentDate, invoice.PaidDate, invoice.UpdatedAt, invoice.ID,
	)
	if err != nil {
		return mapStoreError(err, "invoices")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, invoice.ID); err != nil {
		return mapStoreError(err, "invoice_items")
	}
	if err := insertInvoiceItems(ctx, tx, invoice.ID, invoice.Items); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return mapStoreError(err, "invoices")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *invoiceRepository) fetchItems(ctx context.Context, invoiceID uuid.UUID) ([]models.InvoiceItem, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, invoice_id, description, quantity, unit_price
		FROM invoice_items WHERE invoice_id = $1 ORDER BY created_at`, invoiceID)
	if err != nil {
		return nil, mapStoreError(err, "invoice_items")
	}
	defer rows.Close()

	items := []models.InvoiceItem{}
	for rows.Next() {
		var item models.InvoiceItem
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.Description, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan invoice item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, mapStoreError(err, "invoice_items")
	}
	return items, nil
}

func insertInvoiceItems(ctx context.Context, tx pgx.Tx, invoiceID uuid.UUID, items []models.InvoiceItem) error {
	now := time.Now().UTC()
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].InvoiceID = invoiceID
		_, err := tx.Exec(ctx, `
			INSERT INTO invoice_items (id, invoice_id, description, quantity, unit_price, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			items[i].ID, invoiceID, items[i].Description, items[i].Quantity, items[i].UnitPrice, now,
		)
		if err != nil {
			return mapStoreError(err, "invoice_items")
		}
	}
	return nil
}

func scanInvoice(row pgx.Row) (*models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(
		&inv.ID, &inv.Number, &inv.ClientID, &inv.ProjectID,
		&inv.Amount, &inv.Currency, &inv.Status,
		&inv.IssuedDate, &inv.DueDate, &inv.SentDate, &inv.PaidDate,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoice: %w", err)
	}
	return &inv, nil
}
