// Package services contains the business logic between the HTTP handlers and
// the repositories.
package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agencydesk/backoffice/pkg/apperrors"
	"github.com/agencydesk/backoffice/pkg/audit"
	"github.com/agencydesk/backoffice/pkg/models"
	"github.com/agencydesk/backoffice/pkg/repositories"
)

// ProjectService owns validation, status normalization and display-name
// resolution for the project aggregate.
//
// Read paths never surface store errors: a failing List returns an empty
// slice and a failing GetByID or Update returns nil, with the cause logged.
// Create is the exception - its errors (validation, schema mismatch,
// conflicts) propagate so the caller can tell why the write was refused.
type ProjectService interface {
	List(ctx context.Context) []*models.Project
	GetByID(ctx context.Context, id uuid.UUID) *models.Project
	Create(ctx context.Context, p *models.Project) (*models.Project, error)
	Update(ctx context.Context, id uuid.UUID, upd *repositories.ProjectUpdate) *models.Project
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	projects repositories.ProjectRepository
	clients  repositories.ClientRepository
	taxonomy repositories.TaxonomyRepository
	auditor  *audit.Auditor
	logger   *zap.Logger
}

func NewProjectService(
	projects repositories.ProjectRepository,
	clients repositories.ClientRepository,
	taxonomy repositories.TaxonomyRepository,
	auditor *audit.Auditor,
	logger *zap.Logger,
) ProjectService {
	return &projectService{
		projects: projects,
		clients:  clients,
		taxonomy: taxonomy,
		auditor:  auditor,
		logger:   logger,
	}
}

func (s *projectService) List(ctx context.Context) []*models.Project {
	projects, err := s.projects.List(ctx)
	if err != nil {
		s.logger.Error("failed to list projects", zap.Error(err))
		return []*models.Project{}
	}
	if projects == nil {
		projects = []*models.Project{}
	}
	for _, p := range projects {
		s.resolveDisplayNames(ctx, p)
	}
	return projects
}

func (s *projectService) GetByID(ctx context.Context, id uuid.UUID) *models.Project {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if err != apperrors.ErrNotFound {
			s.logger.Error("failed to load project", zap.String("project_id", id.String()), zap.Error(err))
		}
		return nil
	}
	s.resolveDisplayNames(ctx, p)
	s.auditor.LogCredentialAccess(ctx, p.ID, credentialPlatforms(p))
	return p
}

// Create validates, normalizes and persists a new project aggregate.
// Validation happens before any store call.
func (s *projectService) Create(ctx context.Context, p *models.Project) (*models.Project, error) {
	if p.Name == "" {
		return nil, apperrors.NewValidationError("name", "project name is required")
	}
	if p.ClientID == uuid.Nil {
		return nil, apperrors.NewValidationError("client_id", "client is required")
	}

	// The raw status string survives as original_status so the UI can keep
	// showing labels like "planning" that the closed set coerces away.
	raw := string(p.Status)
	p.Status = models.NormalizeStatus(raw)
	if p.OriginalStatus == "" {
		if raw != "" {
			p.OriginalStatus = raw
		} else {
			p.OriginalStatus = string(models.StatusActive)
		}
	}

	if err := s.projects.Create(ctx, p); err != nil {
		s.logger.Error("failed to create project",
			zap.String("project_name", p.Name), zap.Error(err))
		return nil, err
	}

	// Re-read the committed aggregate so the response matches a later GET:
	// store-assigned row ids, encode-time defaults, dates truncated, payments
	// sorted. Seed type/category ids live only in memory (the columns hold
	// NULL), so they carry over from the request.
	if stored, err := s.projects.GetByID(ctx, p.ID); err != nil {
		s.logger.Error("failed to re-read created project",
			zap.String("project_id", p.ID.String()), zap.Error(err))
	} else {
		if stored.ProjectTypeID == "" {
			stored.ProjectTypeID = p.ProjectTypeID
		}
		if stored.ProjectCategoryID == "" {
			stored.ProjectCategoryID = p.ProjectCategoryID
		}
		p = stored
	}

	s.resolveDisplayNames(ctx, p)
	if p.OtherAccess == nil {
		p.OtherAccess = []models.OtherAccess{}
	}
	if p.Payments == nil {
		p.Payments = []models.Payment{}
	}
	s.auditor.LogCredentialWrite(ctx, p.ID, credentialPlatforms(p))
	return p, nil
}

// Update applies a partial update. Any failure is logged and reported as nil,
// matching the read-path contract.
func (s *projectService) Update(ctx context.Context, id uuid.UUID, upd *repositories.ProjectUpdate) *models.Project {
	if upd.Status != nil {
		// Same two-field scheme as Create: the raw label lands in
		// original_status before the closed set coerces it away.
		raw := string(*upd.Status)
		if upd.OriginalStatus == nil && raw != "" {
			upd.OriginalStatus = &raw
		}
		normalized := models.NormalizeStatus(raw)
		upd.Status = &normalized
	}

	p, err := s.projects.Update(ctx, id, upd)
	if err != nil {
		s.logger.Error("failed to update project", zap.String("project_id", id.String()), zap.Error(err))
		return nil
	}
	s.resolveDisplayNames(ctx, p)
	if upd.Credentials != nil || upd.Hosting != nil || upd.OtherAccess != nil {
		s.auditor.LogCredentialWrite(ctx, id, credentialPlatforms(p))
	}
	return p
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.auditor.LogProjectDelete(ctx, id)
	return nil
}

// credentialPlatforms lists the platform keys present on the aggregate, for
// audit trails. Secrets never appear here.
func credentialPlatforms(p *models.Project) []string {
	var platforms []string
	if !p.Credentials.IsZero() {
		platforms = append(platforms, models.MainKey().String())
	}
	if p.Hosting.Provider != "" {
		platforms = append(platforms, models.HostingKey(p.Hosting.Provider).String())
	}
	for _, a := range p.OtherAccess {
		platforms = append(platforms, models.AccessKey(string(a.Type), a.Name).String())
	}
	return platforms
}

// resolveDisplayNames fills ClientName, ProjectType and ProjectCategory.
// Caller-supplied names win; lookups are best effort and never fail the call.
func (s *projectService) resolveDisplayNames(ctx context.Context, p *models.Project) {
	if p == nil {
		return
	}

	if p.ClientName == "" && p.ClientID != uuid.Nil {
		client, err := s.clients.GetByID(ctx, p.ClientID)
		if err == nil {
			p.ClientName = client.Name
		} else if err != apperrors.ErrNotFound {
			s.logger.Warn("failed to resolve client name",
				zap.String("client_id", p.ClientID.String()), zap.Error(err))
		}
	}

	if p.ProjectType == "" && p.ProjectTypeID != "" {
		name, err := s.taxonomy.TypeName(ctx, p.ProjectTypeID)
		if err != nil {
			s.logger.Warn("failed to resolve project type name",
				zap.String("project_type_id", p.ProjectTypeID), zap.Error(err))
		} else {
			p.ProjectType = name
		}
	}
	if p.ProjectCategory == "" && p.ProjectCategoryID != "" {
		name, err := s.taxonomy.CategoryName(ctx, p.ProjectCategoryID)
		if err != nil {
			s.logger.Warn("failed to resolve project category name",
				zap.String("project_category_id", p.ProjectCategoryID), zap.Error(err))
		} else {
			p.ProjectCategory = name
		}
	}
}
