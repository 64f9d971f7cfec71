package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agencydesk/backoffice/pkg/apperrors"
	"github.com/agencydesk/backoffice/pkg/audit"
	"github.com/agencydesk/backoffice/pkg/models"
	"github.com/agencydesk/backoffice/pkg/notify"
	"github.com/agencydesk/backoffice/pkg/repositories"
)

// SendInvoice carries the delivery details for sending an invoice out.
type SendInvoice struct {
	InvoiceID   uuid.UUID
	ClientEmail string
	ClientName  string
	ProjectName string
}

type InvoiceService interface {
	List(ctx context.Context) ([]models.Invoice, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]models.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error)
	Update(ctx context.Context, invoice *models.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Send delivers the invoice via the notifier and transitions it to sent.
	// Re-sending is allowed and refreshes sent_date each time.
	Send(ctx context.Context, req SendInvoice) (*models.Invoice, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
}

type invoiceService struct {
	invoices repositories.InvoiceRepository
	notifier notify.InvoiceNotifier
	auditor  *audit.Auditor
	logger   *zap.Logger
}

func NewInvoiceService(invoices repositories.InvoiceRepository, notifier notify.InvoiceNotifier, auditor *audit.Auditor, logger *zap.Logger) InvoiceService {
	return &invoiceService{invoices: invoices, notifier: notifier, auditor: auditor, logger: logger}
}

func (s *invoiceService) List(ctx context.Context) ([]models.Invoice, error) {
	return s.invoices.List(ctx)
}

func (s *invoiceService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]models.Invoice, error) {
	return s.invoices.ListByClient(ctx, clientID)
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *invoiceService) Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	if invoice.Number == "" {
		return nil, apperrors.NewValidationError("number", "invoice number is required")
	}
	if invoice.ClientID == uuid.Nil {
		return nil, apperrors.NewValidationError("client_id", "client is required")
	}

	if invoice.Status == "" {
		invoice.Status = models.InvoiceDraft
	}
	if invoice.Currency == "" {
		invoice.Currency = models.DefaultCurrency
	}
	if invoice.Amount == 0 && len(invoice.Items) > 0 {
		invoice.Amount = invoice.Total()
	}
	if invoice.IssuedDate.IsZero() {
		invoice.IssuedDate = time.Now().UTC()
	}

	if err := s.invoices.Create(ctx, invoice); err != nil {
		s.logger.Error("failed to create invoice", zap.String("invoice_number", invoice.Number), zap.Error(err))
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) Update(ctx context.Context, invoice *models.Invoice) error {
	return s.invoices.Update(ctx, invoice)
}

func (s *invoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.invoices.Delete(ctx, id)
}

// Send fetches the invoice, invokes the notifier, then records the sent
// transition. A delivery failure leaves the invoice untouched. Calling Send
// again overwrites sent_date with the newer timestamp.
func (s *invoiceService) Send(ctx context.Context, req SendInvoice) (*models.Invoice, error) {
	invoice, err := s.invoices.GetByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyInvoiceSent(ctx, invoice, req.ClientEmail, req.ClientName, req.ProjectName); err != nil {
		s.logger.Error("invoice delivery failed",
			zap.String("invoice_id", req.InvoiceID.String()),
			zap.String("client_email", req.ClientEmail),
			zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC()
	invoice.Status = models.InvoiceSent
	invoice.SentDate = &now
	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}
	s.auditor.LogInvoiceSent(ctx, invoice.ID, req.ClientEmail)
	return invoice, nil
}

// MarkPaid transitions the invoice to paid. Unlike Send, the paid date is set
// only once: marking an already-paid invoice keeps the first paid_date.
func (s *invoiceService) MarkPaid(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	invoice, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	invoice.Status = models.InvoicePaid
	if invoice.PaidDate == nil {
		now := time.Now().UTC()
		invoice.PaidDate = &now
	}
	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}
