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

type CityRequest struct {
	CityName   string `json:"city_name" binding:"required,max=100"`
	PostalCode string `json:"postal_code" binding:"required,max=20"`
	CountryID  uint   `json:"country_id" binding:"required"`
}

type CityVM struct {
	ID          uint   `json:"id"`
	CityName    string `json:"city_name"`
	PostalCode  string `json:"postal_code"`
	CountryID   uint   `json:"country_id"`
	CountryName string `json:"country_name"`
}

// --- Interface ---

type CityService interface {
	GetAll(ctx context.Context) ([]CityVM, error)
	GetByID(ctx context.Context, id uint) (*CityVM, error)
	Create(ctx context.Context, req CityRequest, actor Actor) (*CityVM, error)
	Update(ctx context.Context, id uint, req CityRequest, actor Actor) (*CityVM, error)
	Delete(ctx context.Context, id uint, actor Actor) error
	Query(ctx context.Context, req datatable.Request) (datatable.Response[CityVM], error)
}

type cityService struct {
	repo        repository.CityRepository
	countryRepo repository.CountryRepository
	auditRepo   repository.AuditRepository
	txManager   repository.TransactionManager
}

// NewCityService returns a new instance of CityService
func NewCityService(repo repository.CityRepository, countryRepo repository.CountryRepository, auditRepo repository.AuditRepository, txManager repository.TransactionManager) CityService {
	return &cityService{repo: repo, countryRepo: countryRepo, auditRepo: auditRepo, txManager: txManager}
}

// Column order mirrors the admin grid: CityName, PostalCode, CountryName.
func cityColumns() []datatable.Column[CityVM] {
	return []datatable.Column[CityVM]{
		{Name: "CityName", Value: func(v CityVM) string { return v.CityName }, Searchable: true},
		{Name: "PostalCode", Value: func(v CityVM) string { return v.PostalCode }, Searchable: true},
		{Name: "CountryName", Value: func(v CityVM) string { return v.CountryName }, Searchable: true},
	}
}

func mapCityToVM(c *model.City) *CityVM {
	vm := &CityVM{
		ID:         c.ID,
		CityName:   c.CityName,
		PostalCode: c.PostalCode,
		CountryID:  c.CountryID,
	}
	if c.Country != nil {
		vm.CountryName = c.Country.Name
	}
	return vm
}

func (s *cityService) GetAll(ctx context.Context) ([]CityVM, error) {
	cities, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	vms := make([]CityVM, 0, len(cities))
	for i := range cities {
		vms = append(vms, *mapCityToVM(&cities[i]))
	}
	return vms, nil
}

func (s *cityService) GetByID(ctx context.Context, id uint) (*CityVM, error) {
	city, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundf("city not found")
	}
	return mapCityToVM(city), nil
}

func (s *cityService) Create(ctx context.Context, req CityRequest, actor Actor) (*CityVM, error) {
	if _, err := s.countryRepo.GetByID(ctx, req.CountryID); err != nil {
		return nil, errors.New("selected country does not exist")
	}

	city := &model.City{
		CityName:   req.CityName,
		PostalCode: req.PostalCode,
		CountryID:  req.CountryID,
	}
	if err := s.repo.Create(ctx, city); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionCreateCity, city.ID, city.CityName, req)
	return s.GetByID(ctx, city.ID)
}

func (s *cityService) Update(ctx context.Context, id uint, req CityRequest, actor Actor) (*CityVM, error) {
	city, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("city not found")
		}
		return nil, err
	}

	if _, err := s.countryRepo.GetByID(ctx, req.CountryID); err != nil {
		return nil, errors.New("selected country does not exist")
	}

	city.CityName = req.CityName
	city.PostalCode = req.PostalCode
	city.CountryID = req.CountryID
	if err := s.repo.Update(ctx, city); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionUpdateCity, city.ID, city.CityName, req)
	return s.GetByID(ctx, city.ID)
}

// Delete removes a city unless employees still reference it. Check and
// delete share one transaction.
func (s *cityService) Delete(ctx context.Context, id uint, actor Actor) error {
	var name string

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		city, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("city with ID %d not found", id)
			}
			return err
		}
		name = city.CityName

		hasEmployees, err := s.repo.HasEmployees(txCtx, id)
		if err != nil {
			return err
		}
		if hasEmployees {
			return conflictf("cannot delete city '%s' because it has related employees; delete or reassign the employees first", city.CityName)
		}

		return s.repo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionDeleteCity, id, name, nil)
	return nil
}

func (s *cityService) Query(ctx context.Context, req datatable.Request) (datatable.Response[CityVM], error) {
	cities, err := s.GetAll(ctx)
	if err != nil {
		return datatable.Response[CityVM]{}, err
	}
	return datatable.Apply(cities, req, cityColumns()), nil
}
