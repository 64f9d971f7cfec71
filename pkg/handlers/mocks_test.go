package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/agencydesk/backoffice/pkg/apperrors"
	"github.com/agencydesk/backoffice/pkg/models"
	"github.com/agencydesk/backoffice/pkg/repositories"
	"github.com/agencydesk/backoffice/pkg/services"
)

type mockProjectService struct {
	listFn   func(ctx context.Context) []*models.Project
	getFn    func(ctx context.Context, id uuid.UUID) *models.Project
	createFn func(ctx context.Context, p *models.Project) (*models.Project, error)
	updateFn func(ctx context.Context, id uuid.UUID, upd *repositories.ProjectUpdate) *models.Project
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockProjectService) List(ctx context.Context) []*models.Project {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []*models.Project{}
}

func (m *mockProjectService) GetByID(ctx context.Context, id uuid.UUID) *models.Project {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil
}

func (m *mockProjectService) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	p.ID = uuid.New()
	return p, nil
}

func (m *mockProjectService) Update(ctx context.Context, id uuid.UUID, upd *repositories.ProjectUpdate) *models.Project {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, upd)
	}
	return nil
}

func (m *mockProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockInvoiceService struct {
	invoices map[uuid.UUID]*models.Invoice
	sends    []string
	sendErr  error
}

func (m *mockInvoiceService) List(ctx context.Context) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range m.invoices {
		out = append(out, *inv)
	}
	return out, nil
}

func (m *mockInvoiceService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range m.invoices {
		if inv.ClientID == clientID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (m *mockInvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	if inv, ok := m.invoices[id]; ok {
		return inv, nil
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockInvoiceService) Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	if invoice.Number == "" {
		return nil, apperrors.NewValidationError("number", "invoice number is required")
	}
	invoice.ID = uuid.New()
	if m.invoices == nil {
		m.invoices = map[uuid.UUID]*models.Invoice{}
	}
	m.invoices[invoice.ID] = invoice
	return invoice, nil
}

func (m *mockInvoiceService) Update(ctx context.Context, invoice *models.Invoice) error {
	if _, ok := m.invoices[invoice.ID]; !ok {
		return apperrors.ErrNotFound
	}
	m.invoices[invoice.ID] = invoice
	return nil
}

func (m *mockInvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.invoices[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.invoices, id)
	return nil
}

func (m *mockInvoiceService) Send(ctx context.Context, req services.SendInvoice) (*models.Invoice, error) {
	if m.sendErr != nil {
		return nil, m.sendErr
	}
	inv, ok := m.invoices[req.InvoiceID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	m.sends = append(m.sends, req.ClientEmail)
	inv.Status = models.InvoiceSent
	return inv, nil
}

func (m *mockInvoiceService) MarkPaid(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	inv, ok := m.invoices[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	inv.Status = models.InvoicePaid
	return inv, nil
}
