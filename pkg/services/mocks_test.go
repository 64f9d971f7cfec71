package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/agencydesk/backoffice/pkg/apperrors"
	"github.com/agencydesk/backoffice/pkg/models"
	"github.com/agencydesk/backoffice/pkg/repositories"
)

// mockProjectRepo counts every call so tests can assert the store was never
// touched on validation failures.
type mockProjectRepo struct {
	calls int

	listFn   func(ctx context.Context) ([]*models.Project, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*models.Project, error)
	createFn func(ctx context.Context, p *models.Project) error
	updateFn func(ctx context.Context, id uuid.UUID, upd *repositories.ProjectUpdate) (*models.Project, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockProjectRepo) List(ctx context.Context) ([]*models.Project, error) {
	m.calls++
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	m.calls++
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockProjectRepo) Create(ctx context.Context, p *models.Project) error {
	m.calls++
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	return nil
}

func (m *mockProjectRepo) Update(ctx context.Context, id uuid.UUID, upd *repositories.ProjectUpdate) (*models.Project, error) {
	m.calls++
	if m.updateFn != nil {
		return m.updateFn(ctx, id, upd)
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.calls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockClientRepo struct {
	clients map[uuid.UUID]*models.Client
}

func (m *mockClientRepo) List(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	for _, c := range m.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	if c, ok := m.clients[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockClientRepo) Create(ctx context.Context, client *models.Client) error {
	if m.clients == nil {
		m.clients = map[uuid.UUID]*models.Client{}
	}
	m.clients[client.ID] = client
	return nil
}

func (m *mockClientRepo) Update(ctx context.Context, client *models.Client) error {
	if _, ok := m.clients[client.ID]; !ok {
		return apperrors.ErrNotFound
	}
	m.clients[client.ID] = client
	return nil
}

func (m *mockClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.clients[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.clients, id)
	return nil
}

type mockTaxonomyRepo struct {
	typeNames     map[string]string
	categoryNames map[string]string
	err           error
}

func (m *mockTaxonomyRepo) ListTypes(ctx context.Context) ([]models.ProjectType, error) {
	return models.SeedProjectTypes(), m.err
}

func (m *mockTaxonomyRepo) ListCategories(ctx context.Context) ([]models.ProjectCategory, error) {
	return models.SeedProjectCategories(), m.err
}

func (m *mockTaxonomyRepo) TypeName(ctx context.Context, id string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.typeNames[id], nil
}

func (m *mockTaxonomyRepo) CategoryName(ctx context.Context, id string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.categoryNames[id], nil
}

type mockInvoiceRepo struct {
	invoices map[uuid.UUID]*models.Invoice
	updates  int
}

func (m *mockInvoiceRepo) List(ctx context.Context) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range m.invoices {
		out = append(out, *inv)
	}
	return out, nil
}

func (m *mockInvoiceRepo) ListByClient(ctx context.Context, clientID uuid.UUID) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range m.invoices {
		if inv.ClientID == clientID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (m *mockInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	if inv, ok := m.invoices[id]; ok {
		copied := *inv
		return &copied, nil
	}
	return nil, apperrors.ErrNotFound
}

func (m *mockInvoiceRepo) Create(ctx context.Context, invoice *models.Invoice) error {
	if m.invoices == nil {
		m.invoices = map[uuid.UUID]*models.Invoice{}
	}
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	m.invoices[invoice.ID] = invoice
	return nil
}

func (m *mockInvoiceRepo) Update(ctx context.Context, invoice *models.Invoice) error {
	if _, ok := m.invoices[invoice.ID]; !ok {
		return apperrors.ErrNotFound
	}
	m.updates++
	copied := *invoice
	m.invoices[invoice.ID] = &copied
	return nil
}

func (m *mockInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.invoices[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.invoices, id)
	return nil
}

// mockNotifier records invoice notifications.
type mockNotifier struct {
	sent []string
	err  error
}

func (m *mockNotifier) NotifyInvoiceSent(ctx context.Context, invoice *models.Invoice, clientEmail, clientName, projectName string) error {
	m.sent = append(m.sent, clientEmail)
	return m.err
}
