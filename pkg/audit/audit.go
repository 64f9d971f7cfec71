// Package audit provides security audit logging for SIEM consumption.
// Credential rows are stored in plaintext, so every read and write of login
// material is logged in structured JSON with enough context to answer
// "who touched which account, when".
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agencydesk/backoffice/pkg/auth"
)

// EventType categorizes audit events for filtering and alerting.
type EventType string

const (
	// EventCredentialAccess is logged whenever credential rows are served.
	EventCredentialAccess EventType = "credential_access"
	// EventCredentialWrite is logged when credential rows are created or replaced.
	EventCredentialWrite EventType = "credential_write"
	// EventProjectDelete is logged when a project and its credentials are removed.
	EventProjectDelete EventType = "project_delete"
	// EventInvoiceSent is logged when an invoice leaves the system.
	EventInvoiceSent EventType = "invoice_sent"
)

// Auditor logs audit events under a dedicated logger namespace so they can be
// routed separately from application logs.
type Auditor struct {
	logger *zap.Logger
}

func NewAuditor(logger *zap.Logger) *Auditor {
	return &Auditor{logger: logger.Named("security_audit")}
}

// LogCredentialAccess records that credential rows for a project were read.
// platforms lists the platform keys served, never the secrets themselves.
func (a *Auditor) LogCredentialAccess(ctx context.Context, projectID uuid.UUID, platforms []string) {
	if len(platforms) == 0 {
		return
	}
	a.log(ctx, EventCredentialAccess, "info",
		zap.String("project_id", projectID.String()),
		zap.Strings("platforms", platforms))
}

// LogCredentialWrite records that credential rows for a project were written.
func (a *Auditor) LogCredentialWrite(ctx context.Context, projectID uuid.UUID, platforms []string) {
	if len(platforms) == 0 {
		return
	}
	a.log(ctx, EventCredentialWrite, "warning",
		zap.String("project_id", projectID.String()),
		zap.Strings("platforms", platforms))
}

// LogProjectDelete records the removal of a project aggregate.
func (a *Auditor) LogProjectDelete(ctx context.Context, projectID uuid.UUID) {
	a.log(ctx, EventProjectDelete, "warning",
		zap.String("project_id", projectID.String()))
}

// LogInvoiceSent records an outbound invoice delivery.
func (a *Auditor) LogInvoiceSent(ctx context.Context, invoiceID uuid.UUID, clientEmail string) {
	a.log(ctx, EventInvoiceSent, "info",
		zap.String("invoice_id", invoiceID.String()),
		zap.String("client_email", clientEmail))
}

func (a *Auditor) log(ctx context.Context, event EventType, severity string, fields ...zap.Field) {
	base := []zap.Field{
		zap.Time("timestamp", time.Now().UTC()),
		zap.String("event_type", string(event)),
		zap.String("severity", severity),
	}
	if claims, ok := auth.GetClaims(ctx); ok {
		base = append(base, zap.String("actor", claims.Email))
	}
	a.logger.Info("audit event", append(base, fields...)...)
}
