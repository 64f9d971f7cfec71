package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agencydesk/backoffice/pkg/apperrors"
	"github.com/agencydesk/backoffice/pkg/audit"
	"github.com/agencydesk/backoffice/pkg/models"
)

func TestSendOverwritesSentDate(t *testing.T) {
	id := uuid.New()
	earlier := time.Now().UTC().Add(-24 * time.Hour)
	repo := &mockInvoiceRepo{invoices: map[uuid.UUID]*models.Invoice{
		id: {ID: id, Number: "INV-001", ClientID: uuid.New(), Status: models.InvoiceSent, SentDate: &earlier},
	}}
	notifier := &mockNotifier{}
	svc := NewInvoiceService(repo, notifier, audit.NewAuditor(zap.NewNop()), zap.NewNop())

	sent, err := svc.Send(context.Background(), SendInvoice{InvoiceID: id, ClientEmail: "billing@acme.test"})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if sent.SentDate == nil || !sent.SentDate.After(earlier) {
		t.Errorf("sent_date not refreshed on re-send: %v", sent.SentDate)
	}
	if sent.Status != models.InvoiceSent {
		t.Errorf("status = %q, want sent", sent.Status)
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != "billing@acme.test" {
		t.Errorf("notifier calls = %v", notifier.sent)
	}
}

func TestSendLeavesInvoiceOnDeliveryFailure(t *testing.T) {
	id := uuid.New()
	repo := &mockInvoiceRepo{invoices: map[uuid.UUID]*models.Invoice{
		id: {ID: id, Number: "INV-002", ClientID: uuid.New(), Status: models.InvoiceDraft},
	}}
	notifier := &mockNotifier{err: errors.New("smtp unavailable")}
	svc := NewInvoiceService(repo, notifier, audit.NewAuditor(zap.NewNop()), zap.NewNop())

	if _, err := svc.Send(context.Background(), SendInvoice{InvoiceID: id}); err == nil {
		t.Fatal("expected delivery error")
	}
	if repo.updates != 0 {
		t.Errorf("invoice updated despite delivery failure")
	}
	if repo.invoices[id].Status != models.InvoiceDraft {
		t.Errorf("status changed to %q on failed delivery", repo.invoices[id].Status)
	}
}

func TestMarkPaidKeepsFirstPaidDate(t *testing.T) {
	id := uuid.New()
	first := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	repo := &mockInvoiceRepo{invoices: map[uuid.UUID]*models.Invoice{
		id: {ID: id, Number: "INV-003", ClientID: uuid.New(), Status: models.InvoicePaid, PaidDate: &first},
	}}
	svc := NewInvoiceService(repo, &mockNotifier{}, audit.NewAuditor(zap.NewNop()), zap.NewNop())

	paid, err := svc.MarkPaid(context.Background(), id)
	if err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	if paid.PaidDate == nil || !paid.PaidDate.Equal(first) {
		t.Errorf("paid_date = %v, want original %v", paid.PaidDate, first)
	}
}

func TestCreateInvoiceValidation(t *testing.T) {
	svc := NewInvoiceService(&mockInvoiceRepo{}, &mockNotifier{}, audit.NewAuditor(zap.NewNop()), zap.NewNop())

	_, err := svc.Create(context.Background(), &models.Invoice{ClientID: uuid.New()})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for missing number, got %v", err)
	}

	_, err = svc.Create(context.Background(), &models.Invoice{Number: "INV-004"})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error for missing client, got %v", err)
	}
}

func TestCreateInvoiceDefaults(t *testing.T) {
	svc := NewInvoiceService(&mockInvoiceRepo{}, &mockNotifier{}, audit.NewAuditor(zap.NewNop()), zap.NewNop())

	created, err := svc.Create(context.Background(), &models.Invoice{
		Number:   "INV-005",
		ClientID: uuid.New(),
		Items: []models.InvoiceItem{
			{Description: "Design sprint", Quantity: 2, UnitPrice: 1500},
			{Description: "Hosting setup", Quantity: 1, UnitPrice: 250},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != models.InvoiceDraft {
		t.Errorf("status = %q, want draft", created.Status)
	}
	if created.Currency != models.DefaultCurrency {
		t.Errorf("currency = %q, want %q", created.Currency, models.DefaultCurrency)
	}
	if created.Amount != 3250 {
		t.Errorf("amount = %v, want 3250 from line items", created.Amount)
	}
	if created.IssuedDate.IsZero() {
		t.Error("issued date not defaulted")
	}
}
