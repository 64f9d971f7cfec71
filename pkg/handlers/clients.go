package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agencydesk/backoffice/pkg/auth"
	"github.com/agencydesk/backoffice/pkg/models"
	"github.com/agencydesk/backoffice/pkg/services"
)

// ClientsHandler handles client and company HTTP requests.
type ClientsHandler struct {
	clientService services.ClientService
	logger        *zap.Logger
}

func NewClientsHandler(clientService services.ClientService, logger *zap.Logger) *ClientsHandler {
	return &ClientsHandler{clientService: clientService, logger: logger}
}

// RegisterRoutes registers client and company routes on the given mux.
func (h *ClientsHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	mux.HandleFunc("GET /api/clients", authMiddleware.RequireAuth(h.ListClients))
	mux.HandleFunc("POST /api/clients", authMiddleware.RequireAuth(h.CreateClient))
	mux.HandleFunc("GET /api/clients/{id}", authMiddleware.RequireAuth(h.GetClient))
	mux.HandleFunc("PUT /api/clients/{id}", authMiddleware.RequireAuth(h.UpdateClient))
	mux.HandleFunc("DELETE /api/clients/{id}", authMiddleware.RequireAuth(h.DeleteClient))

	mux.HandleFunc("GET /api/companies", authMiddleware.RequireAuth(h.ListCompanies))
	mux.HandleFunc("POST /api/companies", authMiddleware.RequireAuth(h.CreateCompany))
	mux.HandleFunc("GET /api/companies/{id}", authMiddleware.RequireAuth(h.GetCompany))
	mux.HandleFunc("PUT /api/companies/{id}", authMiddleware.RequireAuth(h.UpdateCompany))
	mux.HandleFunc("DELETE /api/companies/{id}", authMiddleware.RequireAuth(h.DeleteCompany))
}

func (h *ClientsHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientService.ListClients(r.Context())
	if err != nil {
		h.fail(w, err, "Failed to list clients")
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}
	h.write(w, http.StatusOK, clients)
}

func (h *ClientsHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	client, err := h.clientService.GetClient(r.Context(), id)
	if err != nil {
		h.fail(w, err, "Failed to get client")
		return
	}
	h.write(w, http.StatusOK, client)
}

func (h *ClientsHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		h.badBody(w)
		return
	}
	created, err := h.clientService.CreateClient(r.Context(), &client)
	if err != nil {
		h.fail(w, err, "Failed to create client")
		return
	}
	h.write(w, http.StatusCreated, created)
}

func (h *ClientsHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var client models.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		h.badBody(w)
		return
	}
	client.ID = id
	if err := h.clientService.UpdateClient(r.Context(), &client); err != nil {
		h.fail(w, err, "Failed to update client")
		return
	}
	h.write(w, http.StatusOK, client)
}

func (h *ClientsHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.clientService.DeleteClient(r.Context(), id); err != nil {
		h.fail(w, err, "Failed to delete client")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClientsHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.clientService.ListCompanies(r.Context())
	if err != nil {
		h.fail(w, err, "Failed to list companies")
		return
	}
	if companies == nil {
		companies = []models.Company{}
	}
	h.write(w, http.StatusOK, companies)
}

func (h *ClientsHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	company, err := h.clientService.GetCompany(r.Context(), id)
	if err != nil {
		h.fail(w, err, "Failed to get company")
		return
	}
	h.write(w, http.StatusOK, company)
}

func (h *ClientsHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var company models.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		h.badBody(w)
		return
	}
	created, err := h.clientService.CreateCompany(r.Context(), &company)
	if err != nil {
		h.fail(w, err, "Failed to create company")
		return
	}
	h.write(w, http.StatusCreated, created)
}

func (h *ClientsHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var company models.Company
	if err := json.NewDecoder(r.Body).Decode(&company); err != nil {
		h.badBody(w)
		return
	}
	company.ID = id
	if err := h.clientService.UpdateCompany(r.Context(), &company); err != nil {
		h.fail(w, err, "Failed to update company")
		return
	}
	h.write(w, http.StatusOK, company)
}

func (h *ClientsHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.clientService.DeleteCompany(r.Context(), id); err != nil {
		h.fail(w, err, "Failed to delete company")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClientsHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_id", "Invalid ID"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return uuid.Nil, false
	}
	return id, true
}

func (h *ClientsHandler) write(w http.ResponseWriter, status int, data interface{}) {
	if err := WriteJSON(w, status, data); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func (h *ClientsHandler) badBody(w http.ResponseWriter) {
	if err := ErrorResponse(w, http.StatusBadRequest, "invalid_body", "Invalid request body"); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}

func (h *ClientsHandler) fail(w http.ResponseWriter, err error, fallback string) {
	h.logger.Error(fallback, zap.Error(err))
	writeAPIError(h.logger, w, err, fallback)
}
