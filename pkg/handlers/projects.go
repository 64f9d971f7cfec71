package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agencydesk/backoffice/pkg/apperrors"
	"github.com/agencydesk/backoffice/pkg/auth"
	"github.com/agencydesk/backoffice/pkg/jsonutil"
	"github.com/agencydesk/backoffice/pkg/models"
	"github.com/agencydesk/backoffice/pkg/repositories"
	"github.com/agencydesk/backoffice/pkg/services"
)

// credentialsPayload carries login details for the main or hosting account.
type credentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Notes    string `json:"notes"`
}

type hostingPayload struct {
	Provider string `json:"provider"`
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url"`
	Notes    string `json:"notes"`
}

type otherAccessPayload struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Notes    string `json:"notes"`
}

type paymentPayload struct {
	Amount      jsonutil.FlexibleAmount `json:"amount"`
	Date        jsonutil.FlexibleDate   `json:"date"`
	Description string                  `json:"description"`
	Status      string                  `json:"status"`
	Currency    string                  `json:"currency"`
}

type createProjectRequest struct {
	Name              string                  `json:"name"`
	ClientID          uuid.UUID               `json:"client_id"`
	Description       string                  `json:"description"`
	URL               string                  `json:"url"`
	StartDate         jsonutil.FlexibleDate   `json:"start_date"`
	EndDate           jsonutil.FlexibleDate   `json:"end_date"`
	Price             jsonutil.FlexibleAmount `json:"price"`
	Status            string                  `json:"status"`
	OriginalStatus    string                  `json:"original_status"`
	ProjectTypeID     string                  `json:"project_type_id"`
	ProjectCategoryID string                  `json:"project_category_id"`
	ProjectType       string                  `json:"project_type"`
	ProjectCategory   string                  `json:"project_category"`
	Credentials       *credentialsPayload     `json:"credentials"`
	Hosting           *hostingPayload         `json:"hosting"`
	OtherAccess       []otherAccessPayload    `json:"other_access"`
	Payments          []paymentPayload        `json:"payments"`
}

// updateProjectRequest uses pointers throughout: absent fields stay untouched.
// For other_access and payments the slice nilness carries the same meaning -
// absent leaves rows alone, present (even empty) replaces them all.
type updateProjectRequest struct {
	Name              *string                  `json:"name"`
	ClientID          *uuid.UUID               `json:"client_id"`
	Description       *string                  `json:"description"`
	URL               *string                  `json:"url"`
	StartDate         *jsonutil.FlexibleDate   `json:"start_date"`
	EndDate           *jsonutil.FlexibleDate   `json:"end_date"`
	Price             *jsonutil.FlexibleAmount `json:"price"`
	Status            *string                  `json:"status"`
	OriginalStatus    *string                  `json:"original_status"`
	ProjectTypeID     *string                  `json:"project_type_id"`
	ProjectCategoryID *string                  `json:"project_category_id"`
	Credentials       *credentialsPayload      `json:"credentials"`
	Hosting           *hostingPayload          `json:"hosting"`
	OtherAccess       []otherAccessPayload     `json:"other_access"`
	Payments          []paymentPayload         `json:"payments"`
}

// ProjectsHandler handles project aggregate HTTP requests.
type ProjectsHandler struct {
	projectService services.ProjectService
	logger         *zap.Logger
}

func NewProjectsHandler(projectService services.ProjectService, logger *zap.Logger) *ProjectsHandler {
	return &ProjectsHandler{projectService: projectService, logger: logger}
}

// RegisterRoutes registers the project routes on the given mux.
func (h *ProjectsHandler) RegisterRoutes(mux *http.ServeMux, authMiddleware *auth.Middleware) {
	mux.HandleFunc("GET /api/projects", authMiddleware.RequireAuth(h.List))
	mux.HandleFunc("POST /api/projects", authMiddleware.RequireAuth(h.Create))
	mux.HandleFunc("GET /api/projects/{id}", authMiddleware.RequireAuth(h.Get))
	mux.HandleFunc("PATCH /api/projects/{id}", authMiddleware.RequireAuth(h.Update))
	mux.HandleFunc("DELETE /api/projects/{id}", authMiddleware.RequireAuth(h.Delete))
}

// List handles GET /api/projects. Store failures surface as an empty list.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.List(r.Context())
	if err := WriteJSON(w, http.StatusOK, projects); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /api/projects/{id}.
func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	project := h.projectService.GetByID(r.Context(), id)
	if project == nil {
		h.writeError(w, http.StatusNotFound, "not_found", "Project not found")
		return
	}
	if err := WriteJSON(w, http.StatusOK, project); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Create handles POST /api/projects.
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_body", "Invalid request body")
		return
	}

	project := &models.Project{
		Name:              req.Name,
		ClientID:          req.ClientID,
		Description:       req.Description,
		URL:               req.URL,
		StartDate:         req.StartDate.Time,
		Price:             float64(req.Price),
		Status:            models.ProjectStatus(req.Status),
		OriginalStatus:    req.OriginalStatus,
		ProjectTypeID:     req.ProjectTypeID,
		ProjectCategoryID: req.ProjectCategoryID,
		ProjectType:       req.ProjectType,
		ProjectCategory:   req.ProjectCategory,
		OtherAccess:       decodeAccessPayloads(req.OtherAccess),
		Payments:          decodePaymentPayloads(req.Payments),
	}
	if !req.EndDate.Time.IsZero() {
		end := req.EndDate.Time
		project.EndDate = &end
	}
	if req.Credentials != nil {
		project.Credentials = models.Credential{
			Username: req.Credentials.Username,
			Password: req.Credentials.Password,
			Notes:    req.Credentials.Notes,
		}
	}
	if req.Hosting != nil {
		project.Hosting = decodeHostingPayload(req.Hosting)
	}

	created, err := h.projectService.Create(r.Context(), project)
	if err != nil {
		h.writeServiceError(w, err, "Failed to create project")
		return
	}
	if err := WriteJSON(w, http.StatusCreated, created); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Update handles PATCH /api/projects/{id}.
func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_body", "Invalid request body")
		return
	}

	project := h.projectService.Update(r.Context(), id, buildProjectUpdate(&req))
	if project == nil {
		h.writeError(w, http.StatusNotFound, "not_found", "Project not found")
		return
	}
	if err := WriteJSON(w, http.StatusOK, project); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "not_found", "Project not found")
			return
		}
		h.logger.Error("Failed to delete project", zap.String("project_id", id.String()), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal_error", "Failed to delete project")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func buildProjectUpdate(req *updateProjectRequest) *repositories.ProjectUpdate {
	upd := &repositories.ProjectUpdate{
		Name:           req.Name,
		ClientID:       req.ClientID,
		Description:    req.Description,
		URL:            req.URL,
		OriginalStatus: req.OriginalStatus,
	}

	if req.StartDate != nil {
		upd.StartDate = &req.StartDate.Time
	}
	if req.EndDate != nil {
		upd.EndDate = &req.EndDate.Time
	}
	if req.Price != nil {
		price := float64(*req.Price)
		upd.Price = &price
	}
	if req.Status != nil {
		status := models.ProjectStatus(*req.Status)
		upd.Status = &status
	}

	if req.ProjectTypeID != nil {
		upd.SetProjectType = true
		upd.ProjectTypeID = models.ClassifyRef(models.EntityProjectType, *req.ProjectTypeID).StorageID()
	}
	if req.ProjectCategoryID != nil {
		upd.SetProjectCategory = true
		upd.ProjectCategoryID = models.ClassifyRef(models.EntityProjectCategory, *req.ProjectCategoryID).StorageID()
	}

	if req.Credentials != nil {
		upd.Credentials = &models.Credential{
			Username: req.Credentials.Username,
			Password: req.Credentials.Password,
			Notes:    req.Credentials.Notes,
		}
	}
	if req.Hosting != nil {
		hosting := decodeHostingPayload(req.Hosting)
		upd.Hosting = &hosting
	}
	if req.OtherAccess != nil {
		upd.OtherAccess = decodeAccessPayloads(req.OtherAccess)
	}
	if req.Payments != nil {
		upd.Payments = decodePaymentPayloads(req.Payments)
	}
	return upd
}

func decodeHostingPayload(p *hostingPayload) models.Hosting {
	return models.Hosting{
		Provider: p.Provider,
		Credential: models.Credential{
			Username: p.Username,
			Password: p.Password,
		},
		URL:   p.URL,
		Notes: p.Notes,
	}
}

func decodeAccessPayloads(payloads []otherAccessPayload) []models.OtherAccess {
	if payloads == nil {
		return nil
	}
	out := make([]models.OtherAccess, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, models.OtherAccess{
			Type: models.AccessType(p.Type),
			Name: p.Name,
			Credential: models.Credential{
				Username: p.Username,
				Password: p.Password,
			},
			Notes: p.Notes,
		})
	}
	return out
}

func decodePaymentPayloads(payloads []paymentPayload) []models.Payment {
	if payloads == nil {
		return nil
	}
	out := make([]models.Payment, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, models.Payment{
			Amount:      float64(p.Amount),
			Date:        p.Date.Time,
			Description: p.Description,
			Status:      models.PaymentStatus(p.Status),
			Currency:    p.Currency,
		})
	}
	return out
}

func (h *ProjectsHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_id", "Invalid project ID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ProjectsHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	if err := ErrorResponse(w, status, code, message); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}

func (h *ProjectsHandler) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	writeAPIError(h.logger, w, err, fallback)
}
