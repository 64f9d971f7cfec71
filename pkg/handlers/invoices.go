package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agencydesk/backoffice/pkg/auth"
	"github.com/agencydesk/backoffice/pkg/jsonutil"
	"github.com/agencydesk/backoffice/pkg/models"
	"github.com/agencydesk/backoffice/pkg/services"
)

type invoiceItemPayload struct {
	Description string                  `json:"description"`
	Quantity    jsonutil.FlexibleAmount `json:"quantity"`
	UnitPrice   jsonutil.FlexibleAmount `json:"unit_price"`
}

type invoiceRequest struct {
	Number     string                  `json:"number"`
	ClientID   uuid.UUID               `json:"client_id"`
	ProjectID  *uuid.UUID              `json:"project_id"`
	Amount     jsonutil.FlexibleAmount `json:"amount"`
	Currency   string                  `json:"currency"`
	Status     string                  `json:"status"`
	IssuedDate jsonutil.FlexibleDate   `json:"issued_date"`
	DueDate    jsonutil.FlexibleDate   `json:"due_date"`
	Items      []invoiceItemPayload    `json:"items"`
}

type sendInvoiceRequest struct {
	ClientEmail string `json:"client_email"`
	ClientName  string `json:"client_name"`
	ProjectName string `json:"project_name"`
}

// InvoicesHandler handles invoice HTTP requests.
type InvoicesHandler struct {
	invoiceService services.InvoiceService
	logger         *zap.Logger
}

func NewInvoicesHandler(invoiceService services.InvoiceService, logger *zap.Logger) *InvoicesHandler {
	return &InvoicesHandler{invoiceService: invoiceService, logger: logger}
}

// RegisterRoutes registers invoice routes on the given mux.
func (h *InvoicesHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	mux.HandleFunc("GET /api/invoices", authMiddleware.RequireAuth(h.List))
	mux.HandleFunc("POST /api/invoices", authMiddleware.RequireAuth(h.Create))
	mux.HandleFunc("GET /api/invoices/{id}", authMiddleware.RequireAuth(h.Get))
	mux.HandleFunc("PUT /api/invoices/{id}", authMiddleware.RequireAuth(h.Update))
	mux.HandleFunc("DELETE /api/invoices/{id}", authMiddleware.RequireAuth(h.Delete))
	mux.HandleFunc("POST /api/invoices/{id}/send", authMiddleware.RequireAuth(h.Send))
	mux.HandleFunc("POST /api/invoices/{id}/paid", authMiddleware.RequireAuth(h.MarkPaid))
}

// List handles GET /api/invoices, optionally filtered by ?client_id=.
func (h *InvoicesHandler) List(w http.ResponseWriter, r *http.Request) {
	var invoices []models.Invoice
	var err error

	if raw := r.URL.Query().Get("client_id"); raw != "" {
		clientID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			h.writeError(w, http.StatusBadRequest, "invalid_id", "Invalid client ID")
			return
		}
		invoices, err = h.invoiceService.ListByClient(r.Context(), clientID)
	} else {
		invoices, err = h.invoiceService.List(r.Context())
	}
	if err != nil {
		h.fail(w, err, "Failed to list invoices")
		return
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	h.write(w, http.StatusOK, invoices)
}

func (h *InvoicesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	invoice, err := h.invoiceService.GetByID(r.Context(), id)
	if err != nil {
		h.fail(w, err, "Failed to get invoice")
		return
	}
	h.write(w, http.StatusOK, invoice)
}

func (h *InvoicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_body", "Invalid request body")
		return
	}

	created, err := h.invoiceService.Create(r.Context(), req.toInvoice())
	if err != nil {
		h.fail(w, err, "Failed to create invoice")
		return
	}
	h.write(w, http.StatusCreated, created)
}

func (h *InvoicesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req invoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_body", "Invalid request body")
		return
	}

	invoice := req.toInvoice()
	invoice.ID = id
	if err := h.invoiceService.Update(r.Context(), invoice); err != nil {
		h.fail(w, err, "Failed to update invoice")
		return
	}
	h.write(w, http.StatusOK, invoice)
}

func (h *InvoicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.invoiceService.Delete(r.Context(), id); err != nil {
		h.fail(w, err, "Failed to delete invoice")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Send handles POST /api/invoices/{id}/send.
func (h *InvoicesHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req sendInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_body", "Invalid request body")
		return
	}

	invoice, err := h.invoiceService.Send(r.Context(), services.SendInvoice{
		InvoiceID:   id,
		ClientEmail: req.ClientEmail,
		ClientName:  req.ClientName,
		ProjectName: req.ProjectName,
	})
	if err != nil {
		h.fail(w, err, "Failed to send invoice")
		return
	}
	h.write(w, http.StatusOK, invoice)
}

// MarkPaid handles POST /api/invoices/{id}/paid.
func (h *InvoicesHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	invoice, err := h.invoiceService.MarkPaid(r.Context(), id)
	if err != nil {
		h.fail(w, err, "Failed to mark invoice paid")
		return
	}
	h.write(w, http.StatusOK, invoice)
}

func (req *invoiceRequest) toInvoice() *models.Invoice {
	invoice := &models.Invoice{
		Number:     req.Number,
		ClientID:   req.ClientID,
		ProjectID:  req.ProjectID,
		Amount:     float64(req.Amount),
		Currency:   req.Currency,
		Status:     models.InvoiceStatus(req.Status),
		IssuedDate: req.IssuedDate.Time,
		DueDate:    req.DueDate.Time,
	}
	for _, item := range req.Items {
		invoice.Items = append(invoice.Items, models.InvoiceItem{
			Description: item.Description,
			Quantity:    float64(item.Quantity),
			UnitPrice:   float64(item.UnitPrice),
		})
	}
	return invoice
}

func (h *InvoicesHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_id", "Invalid invoice ID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *InvoicesHandler) write(w http.ResponseWriter, status int, data interface{}) {
	if err := WriteJSON(w, status, data); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func (h *InvoicesHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	if err := ErrorResponse(w, status, code, message); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}

func (h *InvoicesHandler) fail(w http.ResponseWriter, err error, fallback string) {
	h.logger.Error(fallback, zap.Error(err))
	writeAPIError(h.logger, w, err, fallback)
}
