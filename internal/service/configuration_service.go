package service

import (
	"context"
	"errors"

	"ridersapp/internal/model"
	"ridersapp/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ridersapp/pkg/datatable"
)

// --- DTOs ---

type CreateConfigurationRequest struct {
	KeyName string `json:"key_name" binding:"required,max=100"`
	Value   string `json:"value" binding:"required,max=500"`
}

// Key names are immutable after creation, so updates carry only the value.
type UpdateConfigurationRequest struct {
	Value string `json:"value" binding:"required,max=500"`
}

type ConfigurationVM struct {
	ID      uint   `json:"id"`
	KeyName string `json:"key_name"`
	Value   string `json:"value"`
}

// --- Interface ---

// ConfigurationService manages the flat key-value settings table and
// resolves percentage values for the WAT calculation.
type ConfigurationService interface {
	GetAll(ctx context.Context) ([]ConfigurationVM, error)
	GetByID(ctx context.Context, id uint) (*ConfigurationVM, error)
	Create(ctx context.Context, req CreateConfigurationRequest, actor Actor) (*ConfigurationVM, error)
	Update(ctx context.Context, id uint, req UpdateConfigurationRequest, actor Actor) (*ConfigurationVM, error)
	Delete(ctx context.Context, id uint, actor Actor) error
	Query(ctx context.Context, req datatable.Request) (datatable.Response[ConfigurationVM], error)
	// GetPercent parses the named configuration value as a decimal
	// percentage. Missing or unparsable values resolve to zero.
	GetPercent(ctx context.Context, key string) decimal.Decimal
}

type configurationService struct {
	repo      repository.ConfigurationRepository
	auditRepo repository.AuditRepository
}

// NewConfigurationService returns a new instance of ConfigurationService
func NewConfigurationService(repo repository.ConfigurationRepository, auditRepo repository.AuditRepository) ConfigurationService {
	return &configurationService{repo: repo, auditRepo: auditRepo}
}

func configurationColumns() []datatable.Column[ConfigurationVM] {
	return []datatable.Column[ConfigurationVM]{
		{Name: "KeyName", Value: func(v ConfigurationVM) string { return v.KeyName }, Searchable: true},
		{Name: "Value", Value: func(v ConfigurationVM) string { return v.Value }, Searchable: true},
	}
}

func mapConfigurationToVM(cfg *model.Configuration) *ConfigurationVM {
	return &ConfigurationVM{
		ID:      cfg.ID,
		KeyName: cfg.KeyName,
		Value:   cfg.Value,
	}
}

func (s *configurationService) GetAll(ctx context.Context) ([]ConfigurationVM, error) {
	cfgs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	vms := make([]ConfigurationVM, 0, len(cfgs))
	for i := range cfgs {
		vms = append(vms, *mapConfigurationToVM(&cfgs[i]))
	}
	return vms, nil
}

func (s *configurationService) GetByID(ctx context.Context, id uint) (*ConfigurationVM, error) {
	cfg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundf("configuration not found")
	}
	return mapConfigurationToVM(cfg), nil
}

func (s *configurationService) Create(ctx context.Context, req CreateConfigurationRequest, actor Actor) (*ConfigurationVM, error) {
	if _, err := s.repo.GetByKey(ctx, req.KeyName); err == nil {
		return nil, conflictf("a configuration with key '%s' already exists", req.KeyName)
	}

	cfg := &model.Configuration{
		KeyName: req.KeyName,
		Value:   req.Value,
	}
	if err := s.repo.Create(ctx, cfg); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionCreateConfiguration, cfg.ID, cfg.KeyName, req)
	return mapConfigurationToVM(cfg), nil
}

func (s *configurationService) Update(ctx context.Context, id uint, req UpdateConfigurationRequest, actor Actor) (*ConfigurationVM, error) {
	cfg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("configuration not found")
		}
		return nil, err
	}

	cfg.Value = req.Value
	if err := s.repo.Update(ctx, cfg); err != nil {
		return nil, err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionUpdateConfiguration, cfg.ID, cfg.KeyName, req)
	return mapConfigurationToVM(cfg), nil
}

func (s *configurationService) Delete(ctx context.Context, id uint, actor Actor) error {
	cfg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return notFoundf("configuration not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionDeleteConfiguration, cfg.ID, cfg.KeyName, nil)
	return nil
}

func (s *configurationService) Query(ctx context.Context, req datatable.Request) (datatable.Response[ConfigurationVM], error) {
	cfgs, err := s.GetAll(ctx)
	if err != nil {
		return datatable.Response[ConfigurationVM]{}, err
	}
	return datatable.Apply(cfgs, req, configurationColumns()), nil
}

func (s *configurationService) GetPercent(ctx context.Context, key string) decimal.Decimal {
	cfg, err := s.repo.GetByKey(ctx, key)
	if err != nil {
		return decimal.Zero
	}

	percent, err := decimal.NewFromString(cfg.Value)
	if err != nil {
		return decimal.Zero
	}
	return percent
}
