// Package notify delivers outbound notifications for the back office.
package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/agencydesk/backoffice/pkg/models"
)

// InvoiceNotifier delivers an invoice to a client. Real email delivery is out
// of scope; implementations may log, queue, or hand off to a provider.
type InvoiceNotifier interface {
	NotifyInvoiceSent(ctx context.Context, invoice *models.Invoice, clientEmail, clientName, projectName string) error
}

// LogNotifier is the default delivery stub: it records the send in the
// application log and succeeds.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyInvoiceSent(_ context.Context, invoice *models.Invoice, clientEmail, clientName, projectName string) error {
	n.logger.Info("invoice notification",
		zap.String("invoice_number", invoice.Number),
		zap.String("client_email", clientEmail),
		zap.String("client_name", clientName),
		zap.String("project_name", projectName),
		zap.Float64("amount", invoice.Amount),
		zap.String("currency", invoice.Currency),
	)
	return nil
}
