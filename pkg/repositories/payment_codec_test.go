package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencydesk/backoffice/pkg/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEncodePaymentRows_Defaults(t *testing.T) {
	pid := uuid.New()
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	rows := EncodePaymentRows(pid, []models.Payment{{}}, now)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(0), rows[0].Amount)
	assert.Equal(t, date(2026, 3, 14), rows[0].PaymentDate)
	assert.Equal(t, "pending", rows[0].PaymentMethod)
	assert.Equal(t, "USD", rows[0].Currency)
	assert.Equal(t, pid, rows[0].ProjectID)
}

func TestEncodePaymentRows_TruncatesToCalendarDate(t *testing.T) {
	in := []models.Payment{{
		Amount: 500,
		Date:   time.Date(2026, 1, 2, 23, 59, 59, 0, time.UTC),
		Status: models.PaymentCompleted,
	}}
	rows := EncodePaymentRows(uuid.New(), in, time.Now())
	assert.Equal(t, date(2026, 1, 2), rows[0].PaymentDate)
	assert.Equal(t, "completed", rows[0].PaymentMethod)
}

func TestDecodePaymentRows_SortsByDateDescending(t *testing.T) {
	rows := []PaymentRow{
		{ID: uuid.New(), Amount: 1, PaymentDate: date(2026, 1, 1), PaymentMethod: "pending", Currency: "USD"},
		{ID: uuid.New(), Amount: 3, PaymentDate: date(2026, 3, 1), PaymentMethod: "completed", Currency: "USD"},
		{ID: uuid.New(), Amount: 2, PaymentDate: date(2026, 2, 1), PaymentMethod: "pending", Currency: "USD"},
	}

	got := DecodePaymentRows(rows)
	require.Len(t, got, 3)
	assert.Equal(t, float64(3), got[0].Amount)
	assert.Equal(t, float64(2), got[1].Amount)
	assert.Equal(t, float64(1), got[2].Amount)

	// Ordering is a decode-time guarantee regardless of input order.
	reversed := []PaymentRow{rows[1], rows[2], rows[0]}
	got2 := DecodePaymentRows(reversed)
	for i := range got {
		assert.Equal(t, got[i].Amount, got2[i].Amount)
	}
}

func TestPaymentRows_RoundTripPreservesFields(t *testing.T) {
	pid := uuid.New()
	in := []models.Payment{
		{Amount: 500, Date: date(2026, 2, 10), Description: "milestone 1", Status: models.PaymentCompleted, Currency: "EUR"},
		{Amount: 250, Date: date(2026, 1, 5), Description: "deposit", Status: models.PaymentPending, Currency: "USD"},
	}
	got := DecodePaymentRows(EncodePaymentRows(pid, in, time.Now()))
	require.Len(t, got, 2)
	// Input was already sorted descending, so positions are stable.
	for i := range in {
		assert.Equal(t, in[i].Amount, got[i].Amount)
		assert.Equal(t, in[i].Description, got[i].Description)
		assert.Equal(t, in[i].Status, got[i].Status)
		assert.Equal(t, in[i].Currency, got[i].Currency)
		assert.Equal(t, in[i].Date, got[i].Date)
	}
}

func TestDecodePaymentRows_EmptyCurrencyDefaults(t *testing.T) {
	got := DecodePaymentRows([]PaymentRow{{PaymentDate: date(2026, 1, 1), PaymentMethod: "pending"}})
	require.Len(t, got, 1)
	assert.Equal(t, "USD", got[0].Currency)
}
