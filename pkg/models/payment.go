package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the closed set of payment states.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// DefaultCurrency is applied when a payment arrives without a currency code.
const DefaultCurrency = "USD"

// Payment is a single payment against a project. Date is a calendar date: the
// store keeps no time-of-day component, so any sub-day precision is truncated
// on write. That truncation is deliberate and documented, not a defect.
type Payment struct {
	ID          uuid.UUID     `json:"id"`
	Amount      float64       `json:"amount"`
	Date        time.Time     `json:"date"`
	Description string        `json:"description,omitempty"`
	Status      PaymentStatus `json:"status"`
	Currency    string        `json:"currency"`
}
