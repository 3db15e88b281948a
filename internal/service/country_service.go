package service

import (
	"context"
	"errors"

	"ridersapp/internal/model"
	"ridersapp/internal/repository"

	"gorm.io/gorm"

	"ridersapp/pkg/datatable"
)

// --- DTOs ---

type CountryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CountryVM struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// --- Interface ---

type CountryService interface {
	GetAll(ctx context.Context) ([]CountryVM, error)
	GetByID(ctx context.Context, id uint) (*CountryVM, error)
	Create(ctx context.Context, req CountryRequest, actor Actor) (*CountryVM, error)
	Update(ctx context.Context, id uint, req CountryRequest, actor Actor) (*CountryVM, error)
	Delete(ctx context.Context, id uint, actor Actor) error
	Query(ctx context.Context, req datatable.Request) (datatable.Response[CountryVM], error)
}

type countryService struct {
	repo      repository.CountryRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
}

// NewCountryService returns a new instance of CountryService
func NewCountryService(repo repository.CountryRepository, auditRepo repository.AuditRepository, txManager repository.TransactionManager) CountryService {
	return &countryService{repo: repo, auditRepo: auditRepo, txManager: txManager}
}

func countryColumns() []datatable.Column[CountryVM] {
	return []datatable.Column[CountryVM]{
		{Name: "Name", Value: func(v CountryVM) string { return v.Name }, Searchable: true},
	}
}

func mapCountryToVM(c *model.Country) *CountryVM {
	return &CountryVM{ID: c.ID, Name: c.Name}
}

func (s *countryService) GetAll(ctx context.Context) ([]CountryVM, error) {
	countries, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	vms := make([]CountryVM, 0, len(countries))
	for i := range countries {
		vms = append(vms, *mapCountryToVM(&countries[i]))
	}
	return vms, nil
}

func (s *countryService) GetByID(ctx context.Context, id uint) (*CountryVM, error) {
	country, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundf("country not found")
	}
	return mapCountryToVM(country), nil
}

func (s *countryService) Create(ctx context.Context, req CountryRequest, actor Actor) (*CountryVM, error) {
	country := &model.Country{Name: req.Name}
	if err := s.repo.Create(ctx, country); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionCreateCountry, country.ID, country.Name, req)
	return mapCountryToVM(country), nil
}

func (s *countryService) Update(ctx context.Context, id uint, req CountryRequest, actor Actor) (*CountryVM, error) {
	country, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("country not found")
		}
		return nil, err
	}

	country.Name = req.Name
	if err := s.repo.Update(ctx, country); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionUpdateCountry, country.ID, country.Name, req)
	return mapCountryToVM(country), nil
}

// Delete removes a country unless cities or employees still reference
// it. The guard checks and the delete run inside one transaction so a
// concurrent insert cannot slip between check and commit.
func (s *countryService) Delete(ctx context.Context, id uint, actor Actor) error {
	var name string

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		country, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("country with ID %d not found", id)
			}
			return err
		}
		name = country.Name

		hasCities, err := s.repo.HasCities(txCtx, id)
		if err != nil {
			return err
		}
		if hasCities {
			return conflictf("cannot delete country '%s' because it has related cities; delete or reassign the cities first", country.Name)
		}

		hasEmployees, err := s.repo.HasEmployees(txCtx, id)
		if err != nil {
			return err
		}
		if hasEmployees {
			return conflictf("cannot delete country '%s' because it has related employees; delete or reassign the employees first", country.Name)
		}

		return s.repo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionDeleteCountry, id, name, nil)
	return nil
}

func (s *countryService) Query(ctx context.Context, req datatable.Request) (datatable.Response[CountryVM], error) {
	countries, err := s.GetAll(ctx)
	if err != nil {
		return datatable.Response[CountryVM]{}, err
	}
	return datatable.Apply(countries, req, countryColumns()), nil
}
