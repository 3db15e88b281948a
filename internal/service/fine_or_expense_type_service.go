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

type FineOrExpenseTypeRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type FineOrExpenseTypeVM struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// --- Interface ---

type FineOrExpenseTypeService interface {
	GetAll(ctx context.Context) ([]FineOrExpenseTypeVM, error)
	GetByID(ctx context.Context, id uint) (*FineOrExpenseTypeVM, error)
	Create(ctx context.Context, req FineOrExpenseTypeRequest, actor Actor) (*FineOrExpenseTypeVM, error)
	Update(ctx context.Context, id uint, req FineOrExpenseTypeRequest, actor Actor) (*FineOrExpenseTypeVM, error)
	Delete(ctx context.Context, id uint, actor Actor) error
	Query(ctx context.Context, req datatable.Request) (datatable.Response[FineOrExpenseTypeVM], error)
}

type fineOrExpenseTypeService struct {
	repo      repository.FineOrExpenseTypeRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
}

// NewFineOrExpenseTypeService returns a new instance of FineOrExpenseTypeService
func NewFineOrExpenseTypeService(repo repository.FineOrExpenseTypeRepository, auditRepo repository.AuditRepository, txManager repository.TransactionManager) FineOrExpenseTypeService {
	return &fineOrExpenseTypeService{repo: repo, auditRepo: auditRepo, txManager: txManager}
}

func fineOrExpenseTypeColumns() []datatable.Column[FineOrExpenseTypeVM] {
	return []datatable.Column[FineOrExpenseTypeVM]{
		{Name: "Name", Value: func(v FineOrExpenseTypeVM) string { return v.Name }, Searchable: true},
	}
}

func mapFineOrExpenseTypeToVM(t *model.FineOrExpenseType) *FineOrExpenseTypeVM {
	return &FineOrExpenseTypeVM{ID: t.ID, Name: t.Name}
}

func (s *fineOrExpenseTypeService) GetAll(ctx context.Context) ([]FineOrExpenseTypeVM, error) {
	types, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	vms := make([]FineOrExpenseTypeVM, 0, len(types))
	for i := range types {
		vms = append(vms, *mapFineOrExpenseTypeToVM(&types[i]))
	}
	return vms, nil
}

func (s *fineOrExpenseTypeService) GetByID(ctx context.Context, id uint) (*FineOrExpenseTypeVM, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundf("fine/expense type not found")
	}
	return mapFineOrExpenseTypeToVM(t), nil
}

// Create inserts a new type after the case-insensitive duplicate-name
// check. Check and insert share a transaction so two concurrent creates
// cannot both pass the check.
func (s *fineOrExpenseTypeService) Create(ctx context.Context, req FineOrExpenseTypeRequest, actor Actor) (*FineOrExpenseTypeVM, error) {
	t := &model.FineOrExpenseType{Name: req.Name}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.repo.ExistsByName(txCtx, req.Name, 0)
		if err != nil {
			return err
		}
		if exists {
			return conflictf("a fine/expense type with name '%s' already exists", req.Name)
		}
		return s.repo.Create(txCtx, t)
	})
	if err != nil {
		return nil, err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionCreateFineOrExpenseType, t.ID, t.Name, req)
	return mapFineOrExpenseTypeToVM(t), nil
}

// Update renames a type; the duplicate check excludes the row itself so
// saving under an unchanged name succeeds.
func (s *fineOrExpenseTypeService) Update(ctx context.Context, id uint, req FineOrExpenseTypeRequest, actor Actor) (*FineOrExpenseTypeVM, error) {
	var t *model.FineOrExpenseType

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("fine/expense type not found")
			}
			return err
		}

		exists, err := s.repo.ExistsByName(txCtx, req.Name, id)
		if err != nil {
			return err
		}
		if exists {
			return conflictf("a fine/expense type with name '%s' already exists", req.Name)
		}

		existing.Name = req.Name
		t = existing
		return s.repo.Update(txCtx, existing)
	})
	if err != nil {
		return nil, err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionUpdateFineOrExpenseType, t.ID, t.Name, req)
	return mapFineOrExpenseTypeToVM(t), nil
}

func (s *fineOrExpenseTypeService) Delete(ctx context.Context, id uint, actor Actor) error {
	var name string

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		t, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("fine/expense type with ID %d not found", id)
			}
			return err
		}
		name = t.Name

		inUse, err := s.repo.HasFineOrExpenses(txCtx, id)
		if err != nil {
			return err
		}
		if inUse {
			return conflictf("cannot delete fine/expense type '%s' because fine/expense records reference it", t.Name)
		}

		return s.repo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	recordAudit(ctx, s.auditRepo, actor, model.ActionDeleteFineOrExpenseType, id, name, nil)
	return nil
}

func (s *fineOrExpenseTypeService) Query(ctx context.Context, req datatable.Request) (datatable.Response[FineOrExpenseTypeVM], error) {
	types, err := s.GetAll(ctx)
	if err != nil {
		return datatable.Response[FineOrExpenseTypeVM]{}, err
	}
	return datatable.Apply(types, req, fineOrExpenseTypeColumns()), nil
}
