package models

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus is the closed set of invoice states.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice is a billing document for a client, optionally tied to a project.
// SentDate and PaidDate are nil until the corresponding transition happens.
type Invoice struct {
	ID        uuid.UUID  `json:"id"`
	Number    string     `json:"number"`
	ClientID  uuid.UUID  `json:"client_id"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`

	Amount   float64       `json:"amount"`
	Currency string        `json:"currency"`
	Status   InvoiceStatus `json:"status"`

	IssuedDate time.Time  `json:"issued_date"`
	DueDate    time.Time  `json:"due_date"`
	SentDate   *time.Time `json:"sent_date,omitempty"`
	PaidDate   *time.Time `json:"paid_date,omitempty"`

	Items []InvoiceItem `json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InvoiceItem is a single line on an invoice.
type InvoiceItem struct {
	ID          uuid.UUID `json:"id"`
	InvoiceID   uuid.UUID `json:"invoice_id"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
}

// Total sums the invoice's line items.
func (i *Invoice) Total() float64 {
	var total float64
	for _, item := range i.Items {
		total += item.Quantity * item.UnitPrice
	}
	return total
}
