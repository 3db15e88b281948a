package service

import (
	"context"
	"strings"
	"testing"

	"ridersapp/internal/model"
)

func TestCountryService_Delete(t *testing.T) {
	newSvc := func() (*fakeCountryRepo, CountryService) {
		repo := newFakeCountryRepo()
		repo.countries[1] = &model.Country{ID: 1, Name: "Pakistan"}
		return repo, NewCountryService(repo, &fakeAuditRepo{}, fakeTxManager{})
	}

	t.Run("deletes an unreferenced country", func(t *testing.T) {
		repo, svc := newSvc()
		if err := svc.Delete(context.Background(), 1, Actor{}); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if len(repo.deleted) != 1 || repo.deleted[0] != 1 {
			t.Errorf("deleted = %v, want [1]", repo.deleted)
		}
	})

	t.Run("refuses when cities reference the country", func(t *testing.T) {
		repo, svc := newSvc()
		repo.cities[1] = true

		err := svc.Delete(context.Background(), 1, Actor{})
		if err == nil {
			t.Fatal("expected guard error")
		}
		if !strings.Contains(err.Error(), "related cities") {
			t.Errorf("error = %q, want mention of related cities", err)
		}
		if len(repo.deleted) != 0 {
			t.Errorf("country was deleted despite guard")
		}
	})

	t.Run("refuses when employees reference the country", func(t *testing.T) {
		repo, svc := newSvc()
		repo.employees[1] = true

		err := svc.Delete(context.Background(), 1, Actor{})
		if err == nil {
			t.Fatal("expected guard error")
		}
		if !strings.Contains(err.Error(), "related employees") {
			t.Errorf("error = %q, want mention of related employees", err)
		}
	})

	t.Run("missing country is an error", func(t *testing.T) {
		_, svc := newSvc()
		if err := svc.Delete(context.Background(), 99, Actor{}); err == nil {
			t.Fatal("expected not-found error")
		}
	})
}

func TestCountryService_AuditTrail(t *testing.T) {
	repo := newFakeCountryRepo()
	audit := &fakeAuditRepo{}
	svc := NewCountryService(repo, audit, fakeTxManager{})

	vm, err := svc.Create(context.Background(), CountryRequest{Name: "Pakistan"}, Actor{Username: "admin"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if vm.Name != "Pakistan" {
		t.Errorf("Name = %q", vm.Name)
	}

	if len(audit.entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(audit.entries))
	}
	if audit.entries[0].Action != model.ActionCreateCountry {
		t.Errorf("Action = %q, want %q", audit.entries[0].Action, model.ActionCreateCountry)
	}
}
