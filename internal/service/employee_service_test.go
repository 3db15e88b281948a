package service

import (
	"context"
	"strings"
	"testing"

	"ridersapp/internal/model"
)

func newEmployeeServiceForTest(t *testing.T) (*fakeEmployeeRepo, EmployeeService) {
	t.Helper()

	countryRepo := newFakeCountryRepo()
	countryRepo.countries[1] = &model.Country{ID: 1, Name: "Pakistan"}

	cityRepo := newFakeCityRepo()
	cityRepo.cities[1] = &model.City{ID: 1, CityName: "Lahore", CountryID: 1}
	cityRepo.cities[2] = &model.City{ID: 2, CityName: "Dubai", CountryID: 7}

	empRepo := newFakeEmployeeRepo()
	return empRepo, NewEmployeeService(empRepo, countryRepo, cityRepo, &fakeAuditRepo{}, fakeTxManager{})
}

func TestEmployeeService_Create(t *testing.T) {
	t.Run("creates with a valid location pair", func(t *testing.T) {
		_, svc := newEmployeeServiceForTest(t)

		vm, err := svc.Create(context.Background(), EmployeeRequest{
			Name:      "Ahmed",
			CountryID: 1,
			CityID:    1,
			Salary:    "25000.00",
		}, Actor{})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if vm.Name != "Ahmed" {
			t.Errorf("Name = %q", vm.Name)
		}
	})

	t.Run("rejects a city from a different country", func(t *testing.T) {
		_, svc := newEmployeeServiceForTest(t)

		_, err := svc.Create(context.Background(), EmployeeRequest{
			Name:      "Ahmed",
			CountryID: 1,
			CityID:    2,
		}, Actor{})
		if err == nil {
			t.Fatal("mismatched country/city pair accepted")
		}
		if !strings.Contains(err.Error(), "does not belong") {
			t.Errorf("error = %q", err)
		}
	})

	t.Run("rejects unknown country or city", func(t *testing.T) {
		_, svc := newEmployeeServiceForTest(t)

		if _, err := svc.Create(context.Background(), EmployeeRequest{Name: "A", CountryID: 9, CityID: 1}, Actor{}); err == nil {
			t.Error("unknown country accepted")
		}
		if _, err := svc.Create(context.Background(), EmployeeRequest{Name: "A", CountryID: 1, CityID: 9}, Actor{}); err == nil {
			t.Error("unknown city accepted")
		}
	})

	t.Run("rejects unparsable salary", func(t *testing.T) {
		_, svc := newEmployeeServiceForTest(t)

		_, err := svc.Create(context.Background(), EmployeeRequest{
			Name:      "Ahmed",
			CountryID: 1,
			CityID:    1,
			Salary:    "lots",
		}, Actor{})
		if err == nil {
			t.Error("unparsable salary accepted")
		}
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	t.Run("cascades daily rides then deletes", func(t *testing.T) {
		empRepo, svc := newEmployeeServiceForTest(t)
		empRepo.employees[5] = &model.Employee{ID: 5, Name: "Ahmed"}

		if err := svc.Delete(context.Background(), 5, Actor{}); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if len(empRepo.ridesDeleted) != 1 || empRepo.ridesDeleted[0] != 5 {
			t.Errorf("ridesDeleted = %v, want [5]", empRepo.ridesDeleted)
		}
		if len(empRepo.deleted) != 1 || empRepo.deleted[0] != 5 {
			t.Errorf("deleted = %v, want [5]", empRepo.deleted)
		}
	})

	t.Run("refuses while fine/expense records reference the employee", func(t *testing.T) {
		empRepo, svc := newEmployeeServiceForTest(t)
		empRepo.employees[5] = &model.Employee{ID: 5, Name: "Ahmed"}
		empRepo.fines[5] = true

		err := svc.Delete(context.Background(), 5, Actor{})
		if err == nil {
			t.Fatal("expected guard error")
		}
		if len(empRepo.ridesDeleted) != 0 || len(empRepo.deleted) != 0 {
			t.Error("guard did not stop the delete")
		}
	})
}
