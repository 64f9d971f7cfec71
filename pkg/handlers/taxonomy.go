package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/agencydesk/backoffice/pkg/auth"
	"github.com/agencydesk/backoffice/pkg/models"
	"github.com/agencydesk/backoffice/pkg/repositories"
)

// TaxonomyHandler serves project types and categories.
type TaxonomyHandler struct {
	taxonomy repositories.TaxonomyRepository
	logger   *zap.Logger
}

func NewTaxonomyHandler(taxonomy repositories.TaxonomyRepository, logger *zap.Logger) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomy: taxonomy, logger: logger}
}

// RegisterRoutes registers taxonomy routes on the given mux.
func (h *TaxonomyHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	mux.HandleFunc("GET /api/project-types", authMiddleware.RequireAuth(h.ListTypes))
	mux.HandleFunc("GET /api/project-categories", authMiddleware.RequireAuth(h.ListCategories))
}

func (h *TaxonomyHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.taxonomy.ListTypes(r.Context())
	if err != nil {
		h.logger.Error("Failed to list project types", zap.Error(err))
		writeAPIError(h.logger, w, err, "Failed to list project types")
		return
	}
	if types == nil {
		types = []models.ProjectType{}
	}
	if err := WriteJSON(w, http.StatusOK, types); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func (h *TaxonomyHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.taxonomy.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("Failed to list project categories", zap.Error(err))
		writeAPIError(h.logger, w, err, "Failed to list project categories")
		return
	}
	if categories == nil {
		categories = []models.ProjectCategory{}
	}
	if err := WriteJSON(w, http.StatusOK, categories); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}
