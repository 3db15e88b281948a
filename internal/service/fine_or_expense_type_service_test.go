package service

import (
	"context"
	"strings"
	"testing"
)

func newTypeServiceForTest(t *testing.T) (*fakeFineTypeRepo, FineOrExpenseTypeService) {
	t.Helper()
	repo := newFakeFineTypeRepo()
	return repo, NewFineOrExpenseTypeService(repo, &fakeAuditRepo{}, fakeTxManager{})
}

func TestFineOrExpenseTypeService_DuplicateNames(t *testing.T) {
	t.Run("rejects duplicate name regardless of case", func(t *testing.T) {
		_, svc := newTypeServiceForTest(t)

		if _, err := svc.Create(context.Background(), FineOrExpenseTypeRequest{Name: "Traffic Fine"}, Actor{}); err != nil {
			t.Fatalf("Create: %v", err)
		}

		for _, name := range []string{"Traffic Fine", "traffic fine", "TRAFFIC FINE"} {
			_, err := svc.Create(context.Background(), FineOrExpenseTypeRequest{Name: name}, Actor{})
			if err == nil {
				t.Errorf("duplicate %q accepted", name)
			} else if !strings.Contains(err.Error(), "already exists") {
				t.Errorf("error = %q, want duplicate message", err)
			}
		}
	})

	t.Run("update may keep the row's own name", func(t *testing.T) {
		_, svc := newTypeServiceForTest(t)

		created, err := svc.Create(context.Background(), FineOrExpenseTypeRequest{Name: "Fuel"}, Actor{})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		// Re-saving under the same name (different case) must not trip
		// the duplicate guard against itself.
		if _, err := svc.Update(context.Background(), created.ID, FineOrExpenseTypeRequest{Name: "FUEL"}, Actor{}); err != nil {
			t.Errorf("Update to own name failed: %v", err)
		}
	})

	t.Run("update cannot steal another row's name", func(t *testing.T) {
		_, svc := newTypeServiceForTest(t)

		if _, err := svc.Create(context.Background(), FineOrExpenseTypeRequest{Name: "Fuel"}, Actor{}); err != nil {
			t.Fatalf("Create: %v", err)
		}
		other, err := svc.Create(context.Background(), FineOrExpenseTypeRequest{Name: "Repairs"}, Actor{})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		if _, err := svc.Update(context.Background(), other.ID, FineOrExpenseTypeRequest{Name: "fuel"}, Actor{}); err == nil {
			t.Error("update stole an existing name")
		}
	})
}

func TestFineOrExpenseTypeService_DeleteGuard(t *testing.T) {
	repo, svc := newTypeServiceForTest(t)

	created, err := svc.Create(context.Background(), FineOrExpenseTypeRequest{Name: "Traffic Fine"}, Actor{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	repo.inUse[created.ID] = true
	if err := svc.Delete(context.Background(), created.ID, Actor{}); err == nil {
		t.Fatal("delete succeeded while records reference the type")
	}

	repo.inUse[created.ID] = false
	if err := svc.Delete(context.Background(), created.ID, Actor{}); err != nil {
		t.Errorf("Delete: %v", err)
	}
}
