package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/paydocs/billscan/gen/ent"
	"github.com/paydocs/billscan/gen/ent/company"
	"github.com/paydocs/billscan/internal/entity"
	"github.com/paydocs/billscan/internal/utils"
)

type Company struct {
	Name            string
	DefaultCurrency string
}

type CompanyRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	CreateCompany(ctx context.Context, c *Company) (*entity.Company, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type companyRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCompanyRepository(client *ent.Client, logger *slog.Logger) CompanyRepository {
	return &companyRepository{
		client: client,
		logger: logger,
	}
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	c, err := r.client.Company.
		Query().
		Where(company.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToCompany(c), nil
}

func (r *companyRepository) CreateCompany(ctx context.Context, in *Company) (*entity.Company, error) {
	c, err := r.client.Company.Create().
		SetName(in.Name).
		SetDefaultCurrency(in.DefaultCurrency).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create company", "name", in.Name, "error", err)
		return nil, err
	}
	return utils.ToCompany(c), nil
}

func (r *companyRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.client.Company.
		Query().
		Where(company.ID(id)).
		Exist(ctx)
}
