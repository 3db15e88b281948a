package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"ridersapp/internal/model"
)

func newFineServiceForTest(t *testing.T) FineOrExpenseService {
	t.Helper()

	empRepo := newFakeEmployeeRepo()
	empRepo.employees[1] = &model.Employee{ID: 1, Name: "Ahmed"}

	typeRepo := newFakeFineTypeRepo()
	typeRepo.nextID = 1
	typeRepo.types[1] = &model.FineOrExpenseType{ID: 1, Name: "Traffic Fine"}

	return NewFineOrExpenseService(newFakeFineRepo(), empRepo, typeRepo, &fakeAuditRepo{})
}

func validFineRequest() FineOrExpenseRequest {
	return FineOrExpenseRequest{
		Amount:              "1500",
		EmployeeID:          1,
		FineOrExpenseTypeID: 1,
		Description:         "Signal violation near main chowk",
		EntryDate:           time.Now().Format("2006-01-02"),
	}
}

func TestFineOrExpenseService_Validation(t *testing.T) {
	t.Run("accepts a valid record", func(t *testing.T) {
		svc := newFineServiceForTest(t)
		if _, err := svc.Create(context.Background(), validFineRequest(), Actor{}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	})

	t.Run("amount bounds are inclusive", func(t *testing.T) {
		svc := newFineServiceForTest(t)

		for _, amount := range []string{"200", "20000", "200.00", "19999.99"} {
			req := validFineRequest()
			req.Amount = amount
			if _, err := svc.Create(context.Background(), req, Actor{}); err != nil {
				t.Errorf("amount %s rejected: %v", amount, err)
			}
		}

		for _, amount := range []string{"199.99", "20000.01", "0", "-500"} {
			req := validFineRequest()
			req.Amount = amount
			if _, err := svc.Create(context.Background(), req, Actor{}); err == nil {
				t.Errorf("amount %s accepted, want rejection", amount)
			}
		}
	})

	t.Run("description length is checked after trimming", func(t *testing.T) {
		svc := newFineServiceForTest(t)

		req := validFineRequest()
		req.Description = "  ab  "
		if _, err := svc.Create(context.Background(), req, Actor{}); err == nil {
			t.Error("two-character description accepted")
		}

		req.Description = strings.Repeat("x", 501)
		if _, err := svc.Create(context.Background(), req, Actor{}); err == nil {
			t.Error("501-character description accepted")
		}

		req.Description = strings.Repeat("x", 500)
		if _, err := svc.Create(context.Background(), req, Actor{}); err != nil {
			t.Errorf("500-character description rejected: %v", err)
		}
	})

	t.Run("description limits count characters not bytes", func(t *testing.T) {
		svc := newFineServiceForTest(t)

		// 400 two-byte runes: 800 bytes, well within 500 characters.
		req := validFineRequest()
		req.Description = strings.Repeat("é", 400)
		if _, err := svc.Create(context.Background(), req, Actor{}); err != nil {
			t.Errorf("400-character non-ASCII description rejected: %v", err)
		}

		req.Description = strings.Repeat("é", 501)
		if _, err := svc.Create(context.Background(), req, Actor{}); err == nil {
			t.Error("501-character non-ASCII description accepted")
		}
	})

	t.Run("entry date must be within one year either way", func(t *testing.T) {
		svc := newFineServiceForTest(t)

		req := validFineRequest()
		req.EntryDate = time.Now().AddDate(-1, 0, -2).Format("2006-01-02")
		if _, err := svc.Create(context.Background(), req, Actor{}); err == nil {
			t.Error("date more than a year back accepted")
		}

		req.EntryDate = time.Now().AddDate(1, 0, 2).Format("2006-01-02")
		if _, err := svc.Create(context.Background(), req, Actor{}); err == nil {
			t.Error("date more than a year ahead accepted")
		}

		req.EntryDate = time.Now().AddDate(0, -6, 0).Format("2006-01-02")
		if _, err := svc.Create(context.Background(), req, Actor{}); err != nil {
			t.Errorf("six-month-old date rejected: %v", err)
		}
	})

	t.Run("unknown employee or type is rejected", func(t *testing.T) {
		svc := newFineServiceForTest(t)

		req := validFineRequest()
		req.EmployeeID = 42
		if _, err := svc.Create(context.Background(), req, Actor{}); err == nil {
			t.Error("unknown employee accepted")
		}

		req = validFineRequest()
		req.FineOrExpenseTypeID = 42
		if _, err := svc.Create(context.Background(), req, Actor{}); err == nil {
			t.Error("unknown type accepted")
		}
	})

	t.Run("reports all violations in one error", func(t *testing.T) {
		svc := newFineServiceForTest(t)

		req := FineOrExpenseRequest{
			Amount:              "50",
			EmployeeID:          42,
			FineOrExpenseTypeID: 1,
			Description:         "ab",
			EntryDate:           time.Now().Format("2006-01-02"),
		}
		_, err := svc.Create(context.Background(), req, Actor{})
		if err == nil {
			t.Fatal("expected validation error")
		}
		msg := err.Error()
		for _, want := range []string{"at least Rs 200", "employee", "at least 3 characters"} {
			if !strings.Contains(msg, want) {
				t.Errorf("error %q missing %q", msg, want)
			}
		}
	})
}
