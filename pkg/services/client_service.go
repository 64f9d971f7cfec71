package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agencydesk/backoffice/pkg/apperrors"
	"github.com/agencydesk/backoffice/pkg/models"
	"github.com/agencydesk/backoffice/pkg/repositories"
)

type ClientService interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id uuid.UUID) (*models.Client, error)
	CreateClient(ctx context.Context, client *models.Client) (*models.Client, error)
	UpdateClient(ctx context.Context, client *models.Client) error
	DeleteClient(ctx context.Context, id uuid.UUID) error

	ListCompanies(ctx context.Context) ([]models.Company, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error)
	CreateCompany(ctx context.Context, company *models.Company) (*models.Company, error)
	UpdateCompany(ctx context.Context, company *models.Company) error
	DeleteCompany(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	clients   repositories.ClientRepository
	companies repositories.CompanyRepository
	logger    *zap.Logger
}

func NewClientService(clients repositories.ClientRepository, companies repositories.CompanyRepository, logger *zap.Logger) ClientService {
	return &clientService{clients: clients, companies: companies, logger: logger}
}

func (s *clientService) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.clients.List(ctx)
}

func (s *clientService) GetClient(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	return s.clients.GetByID(ctx, id)
}

func (s *clientService) CreateClient(ctx context.Context, client *models.Client) (*models.Client, error) {
	if client.Name == "" {
		return nil, apperrors.NewValidationError("name", "client name is required")
	}
	if err := s.clients.Create(ctx, client); err != nil {
		s.logger.Error("failed to create client", zap.String("client_name", client.Name), zap.Error(err))
		return nil, err
	}
	return client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, client *models.Client) error {
	if client.Name == "" {
		return apperrors.NewValidationError("name", "client name is required")
	}
	return s.clients.Update(ctx, client)
}

func (s *clientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	return s.clients.Delete(ctx, id)
}

func (s *clientService) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return s.companies.List(ctx)
}

func (s *clientService) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	return s.companies.GetByID(ctx, id)
}

func (s *clientService) CreateCompany(ctx context.Context, company *models.Company) (*models.Company, error) {
	if company.Name == "" {
		return nil, apperrors.NewValidationError("name", "company name is required")
	}
	if err := s.companies.Create(ctx, company); err != nil {
		s.logger.Error("failed to create company", zap.String("company_name", company.Name), zap.Error(err))
		return nil, err
	}
	return company, nil
}

func (s *clientService) UpdateCompany(ctx context.Context, company *models.Company) error {
	if company.Name == "" {
		return apperrors.NewValidationError("name", "company name is required")
	}
	return s.companies.Update(ctx, company)
}

func (s *clientService) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	return s.companies.Delete(ctx, id)
}
