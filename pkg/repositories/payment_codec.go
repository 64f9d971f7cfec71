package repositories

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/agencydesk/backoffice/pkg/models"
)

// PaymentRow mirrors one row of the payments table. The payment_method column
// is a legacy name: it stores the payment STATUS string, not a method.
type PaymentRow struct {
	ID            uuid.UUID
	ProjectID     uuid.UUID
	Amount        float64
	PaymentDate   time.Time
	PaymentMethod string
	Description   string
	Currency      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// truncateToDay drops the time-of-day component. The payments table stores
// calendar dates only, so sub-day precision is lost on write - a documented,
// accepted lossy conversion.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EncodePaymentRows maps payments onto storage rows, applying the documented
// defaults: zero amount stays 0, a missing date becomes now, a missing status
// becomes pending, a missing currency becomes USD.
func EncodePaymentRows(projectID uuid.UUID, payments []models.Payment, now time.Time) []PaymentRow {
	rows := make([]PaymentRow, 0, len(payments))
	for _, p := range payments {
		date := p.Date
		if date.IsZero() {
			date = now
		}
		status := p.Status
		if status == "" {
			status = models.PaymentPending
		}
		currency := p.Currency
		if currency == "" {
			currency = models.DefaultCurrency
		}
		rows = append(rows, PaymentRow{
			ProjectID:     projectID,
			Amount:        p.Amount,
			PaymentDate:   truncateToDay(date),
			PaymentMethod: string(status),
			Description:   p.Description,
			Currency:      currency,
		})
	}
	return rows
}

// DecodePaymentRows maps rows back to payments and sorts them by date
// descending (most recent first). The ordering is a decode-time guarantee, not
// a storage guarantee: input row order does not matter.
func DecodePaymentRows(rows []PaymentRow) []models.Payment {
	payments := make([]models.Payment, 0, len(rows))
	for _, row := range rows {
		currency := row.Currency
		if currency == "" {
			currency = models.DefaultCurrency
		}
		payments = append(payments, models.Payment{
			ID:          row.ID,
			Amount:      row.Amount,
			Date:        row.PaymentDate,
			Description: row.Description,
			Status:      models.PaymentStatus(row.PaymentMethod),
			Currency:    currency,
		})
	}
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date.After(payments[j].Date)
	})
	return payments
}
