package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"ridersapp/internal/model"
)

func TestComputeWAT(t *testing.T) {
	cases := []struct {
		name    string
		amount  string
		percent string
		want    string
	}{
		{"ten percent of hundred", "100.00", "10", "10"},
		{"rounds half up at two decimals", "55.55", "7.5", "4.17"},
		{"zero percent yields zero", "1000", "0", "0"},
		{"zero amount yields zero", "0", "10", "0"},
		{"fractional amount", "123.45", "2.5", "3.09"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)
			percent := decimal.RequireFromString(tc.percent)
			got := ComputeWAT(amount, percent)
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Errorf("ComputeWAT(%s, %s) = %s, want %s", tc.amount, tc.percent, got, tc.want)
			}
		})
	}
}

func newDailyRideServiceForTest(t *testing.T) (DailyRideService, *fakeDailyRideRepo, *fakeConfigRepo) {
	t.Helper()

	empRepo := newFakeEmployeeRepo()
	empRepo.employees[1] = &model.Employee{ID: 1, Name: "Ahmed"}

	rideRepo := newFakeDailyRideRepo()
	configRepo := newFakeConfigRepo()
	auditRepo := &fakeAuditRepo{}
	configSvc := NewConfigurationService(configRepo, auditRepo)

	return NewDailyRideService(rideRepo, empRepo, configSvc, auditRepo), rideRepo, configRepo
}

func TestDailyRideService_Create(t *testing.T) {
	today := time.Now().Format("2006-01-02")

	t.Run("computes WAT from configuration", func(t *testing.T) {
		svc, _, configRepo := newDailyRideServiceForTest(t)
		configRepo.Create(context.Background(), &model.Configuration{KeyName: model.ConfigKeyCashWAT, Value: "10"})
		configRepo.Create(context.Background(), &model.Configuration{KeyName: model.ConfigKeyCreditWAT, Value: "5"})

		vm, err := svc.Create(context.Background(), DailyRideRequest{
			EmployeeID:   1,
			EntryDate:    today,
			CashAmount:   "1000",
			CreditAmount: "500",
		}, Actor{})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		if !vm.CashWAT.Equal(decimal.NewFromInt(100)) {
			t.Errorf("CashWAT = %s, want 100", vm.CashWAT)
		}
		if !vm.CreditWAT.Equal(decimal.NewFromInt(25)) {
			t.Errorf("CreditWAT = %s, want 25", vm.CreditWAT)
		}
	})

	t.Run("missing configuration falls back to zero WAT", func(t *testing.T) {
		svc, _, _ := newDailyRideServiceForTest(t)

		vm, err := svc.Create(context.Background(), DailyRideRequest{
			EmployeeID: 1,
			EntryDate:  today,
			CashAmount: "1000",
		}, Actor{})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if !vm.CashWAT.IsZero() {
			t.Errorf("CashWAT = %s, want 0", vm.CashWAT)
		}
	})

	t.Run("unparsable configuration value counts as zero", func(t *testing.T) {
		svc, _, configRepo := newDailyRideServiceForTest(t)
		configRepo.Create(context.Background(), &model.Configuration{KeyName: model.ConfigKeyCashWAT, Value: "ten"})

		vm, err := svc.Create(context.Background(), DailyRideRequest{
			EmployeeID: 1,
			EntryDate:  today,
			CashAmount: "1000",
		}, Actor{})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if !vm.CashWAT.IsZero() {
			t.Errorf("CashWAT = %s, want 0", vm.CashWAT)
		}
	})

	t.Run("stamps actor name, defaulting to System", func(t *testing.T) {
		svc, rideRepo, _ := newDailyRideServiceForTest(t)

		vm, err := svc.Create(context.Background(), DailyRideRequest{EmployeeID: 1, EntryDate: today}, Actor{})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if rideRepo.rides[vm.ID].InsertedBy != "System" {
			t.Errorf("InsertedBy = %q, want System", rideRepo.rides[vm.ID].InsertedBy)
		}

		vm, err = svc.Create(context.Background(), DailyRideRequest{EmployeeID: 1, EntryDate: today}, Actor{Username: "sajid"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if rideRepo.rides[vm.ID].InsertedBy != "sajid" {
			t.Errorf("InsertedBy = %q, want sajid", rideRepo.rides[vm.ID].InsertedBy)
		}
	})

	t.Run("rejects unknown employee", func(t *testing.T) {
		svc, _, _ := newDailyRideServiceForTest(t)

		_, err := svc.Create(context.Background(), DailyRideRequest{EmployeeID: 99, EntryDate: today}, Actor{})
		if err == nil {
			t.Fatal("expected error for unknown employee")
		}
	})
}

func TestDailyRideService_UpdateRecomputesWAT(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	svc, rideRepo, configRepo := newDailyRideServiceForTest(t)
	configRepo.Create(context.Background(), &model.Configuration{KeyName: model.ConfigKeyCashWAT, Value: "10"})

	vm, err := svc.Create(context.Background(), DailyRideRequest{
		EmployeeID: 1,
		EntryDate:  today,
		CashAmount: "1000",
	}, Actor{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !vm.CashWAT.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("CashWAT = %s, want 100", vm.CashWAT)
	}

	// Change the configured percentage, then edit the ride: the stored
	// WAT must follow the new percentage, not the one at create time.
	cfg, _ := configRepo.GetByKey(context.Background(), model.ConfigKeyCashWAT)
	cfg.Value = "20"

	updated, err := svc.Update(context.Background(), vm.ID, DailyRideRequest{
		EmployeeID: 1,
		EntryDate:  today,
		CashAmount: "1000",
	}, Actor{Username: "sajid"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.CashWAT.Equal(decimal.NewFromInt(200)) {
		t.Errorf("CashWAT = %s, want 200", updated.CashWAT)
	}

	stored := rideRepo.rides[vm.ID]
	if stored.UpdatedBy != "sajid" {
		t.Errorf("UpdatedBy = %q, want sajid", stored.UpdatedBy)
	}
	if stored.UpdateDate == nil {
		t.Error("UpdateDate not set on edit")
	}
}
