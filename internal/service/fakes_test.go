package service

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"ridersapp/internal/model"
)

// In-memory repository fakes shared by the service tests.

type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakeAuditRepo struct {
	entries []model.AuditLog
}

func (f *fakeAuditRepo) Log(_ context.Context, entry *model.AuditLog) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditRepo) List(_ context.Context, _, _ int) ([]model.AuditLog, int64, error) {
	return f.entries, int64(len(f.entries)), nil
}

type fakeCountryRepo struct {
	countries map[uint]*model.Country
	cities    map[uint]bool // countryID -> has cities
	employees map[uint]bool // countryID -> has employees
	deleted   []uint
}

func newFakeCountryRepo() *fakeCountryRepo {
	return &fakeCountryRepo{
		countries: map[uint]*model.Country{},
		cities:    map[uint]bool{},
		employees: map[uint]bool{},
	}
}

func (f *fakeCountryRepo) Create(_ context.Context, c *model.Country) error {
	if c.ID == 0 {
		c.ID = uint(len(f.countries) + 1)
	}
	f.countries[c.ID] = c
	return nil
}

func (f *fakeCountryRepo) GetByID(_ context.Context, id uint) (*model.Country, error) {
	c, ok := f.countries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCountryRepo) GetAll(_ context.Context) ([]model.Country, error) {
	out := make([]model.Country, 0, len(f.countries))
	for _, c := range f.countries {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCountryRepo) Update(_ context.Context, c *model.Country) error {
	f.countries[c.ID] = c
	return nil
}

func (f *fakeCountryRepo) Delete(_ context.Context, id uint) error {
	delete(f.countries, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeCountryRepo) HasCities(_ context.Context, id uint) (bool, error) {
	return f.cities[id], nil
}

func (f *fakeCountryRepo) HasEmployees(_ context.Context, id uint) (bool, error) {
	return f.employees[id], nil
}

type fakeCityRepo struct {
	cities    map[uint]*model.City
	employees map[uint]bool // cityID -> has employees
	deleted   []uint
}

func newFakeCityRepo() *fakeCityRepo {
	return &fakeCityRepo{cities: map[uint]*model.City{}, employees: map[uint]bool{}}
}

func (f *fakeCityRepo) Create(_ context.Context, c *model.City) error {
	if c.ID == 0 {
		c.ID = uint(len(f.cities) + 1)
	}
	f.cities[c.ID] = c
	return nil
}

func (f *fakeCityRepo) GetByID(_ context.Context, id uint) (*model.City, error) {
	c, ok := f.cities[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCityRepo) GetAll(_ context.Context) ([]model.City, error) {
	out := make([]model.City, 0, len(f.cities))
	for _, c := range f.cities {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCityRepo) Update(_ context.Context, c *model.City) error {
	f.cities[c.ID] = c
	return nil
}

func (f *fakeCityRepo) Delete(_ context.Context, id uint) error {
	delete(f.cities, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeCityRepo) HasEmployees(_ context.Context, id uint) (bool, error) {
	return f.employees[id], nil
}

type fakeEmployeeRepo struct {
	employees    map[uint]*model.Employee
	fines        map[uint]bool // employeeID -> has fines
	ridesDeleted []uint
	deleted      []uint
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: map[uint]*model.Employee{},
		fines:     map[uint]bool{},
	}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	if e.ID == 0 {
		e.ID = uint(len(f.employees) + 1)
	}
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id uint) (*model.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetAll(_ context.Context) ([]model.Employee, error) {
	out := make([]model.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e *model.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id uint) error {
	delete(f.employees, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeEmployeeRepo) HasFineOrExpenses(_ context.Context, id uint) (bool, error) {
	return f.fines[id], nil
}

func (f *fakeEmployeeRepo) DeleteDailyRides(_ context.Context, employeeID uint) error {
	f.ridesDeleted = append(f.ridesDeleted, employeeID)
	return nil
}

type fakeFineTypeRepo struct {
	types  map[uint]*model.FineOrExpenseType
	inUse  map[uint]bool // typeID -> referenced by fines
	nextID uint
}

func newFakeFineTypeRepo() *fakeFineTypeRepo {
	return &fakeFineTypeRepo{types: map[uint]*model.FineOrExpenseType{}, inUse: map[uint]bool{}}
}

func (f *fakeFineTypeRepo) Create(_ context.Context, t *model.FineOrExpenseType) error {
	f.nextID++
	t.ID = f.nextID
	f.types[t.ID] = t
	return nil
}

func (f *fakeFineTypeRepo) GetByID(_ context.Context, id uint) (*model.FineOrExpenseType, error) {
	t, ok := f.types[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (f *fakeFineTypeRepo) GetAll(_ context.Context) ([]model.FineOrExpenseType, error) {
	out := make([]model.FineOrExpenseType, 0, len(f.types))
	for _, t := range f.types {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeFineTypeRepo) Update(_ context.Context, t *model.FineOrExpenseType) error {
	f.types[t.ID] = t
	return nil
}

func (f *fakeFineTypeRepo) Delete(_ context.Context, id uint) error {
	delete(f.types, id)
	return nil
}

func (f *fakeFineTypeRepo) ExistsByName(_ context.Context, name string, excludeID uint) (bool, error) {
	for _, t := range f.types {
		if t.ID == excludeID {
			continue
		}
		if equalFold(t.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFineTypeRepo) HasFineOrExpenses(_ context.Context, id uint) (bool, error) {
	return f.inUse[id], nil
}

type fakeFineRepo struct {
	fines  map[uint]*model.FineOrExpense
	nextID uint
}

func newFakeFineRepo() *fakeFineRepo {
	return &fakeFineRepo{fines: map[uint]*model.FineOrExpense{}}
}

func (f *fakeFineRepo) Create(_ context.Context, fine *model.FineOrExpense) error {
	f.nextID++
	fine.ID = f.nextID
	f.fines[fine.ID] = fine
	return nil
}

func (f *fakeFineRepo) GetByID(_ context.Context, id uint) (*model.FineOrExpense, error) {
	fine, ok := f.fines[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return fine, nil
}

func (f *fakeFineRepo) GetAll(_ context.Context) ([]model.FineOrExpense, error) {
	out := make([]model.FineOrExpense, 0, len(f.fines))
	for _, fine := range f.fines {
		out = append(out, *fine)
	}
	return out, nil
}

func (f *fakeFineRepo) Update(_ context.Context, fine *model.FineOrExpense) error {
	f.fines[fine.ID] = fine
	return nil
}

func (f *fakeFineRepo) Delete(_ context.Context, id uint) error {
	delete(f.fines, id)
	return nil
}

type fakeDailyRideRepo struct {
	rides  map[uint]*model.DailyRide
	nextID uint
}

func newFakeDailyRideRepo() *fakeDailyRideRepo {
	return &fakeDailyRideRepo{rides: map[uint]*model.DailyRide{}}
}

func (f *fakeDailyRideRepo) Create(_ context.Context, r *model.DailyRide) error {
	f.nextID++
	r.ID = f.nextID
	f.rides[r.ID] = r
	return nil
}

func (f *fakeDailyRideRepo) GetByID(_ context.Context, id uint) (*model.DailyRide, error) {
	r, ok := f.rides[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeDailyRideRepo) GetAll(_ context.Context) ([]model.DailyRide, error) {
	out := make([]model.DailyRide, 0, len(f.rides))
	for _, r := range f.rides {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeDailyRideRepo) Update(_ context.Context, r *model.DailyRide) error {
	f.rides[r.ID] = r
	return nil
}

func (f *fakeDailyRideRepo) Delete(_ context.Context, id uint) error {
	delete(f.rides, id)
	return nil
}

type fakeConfigRepo struct {
	configs map[uint]*model.Configuration
	nextID  uint
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{configs: map[uint]*model.Configuration{}}
}

func (f *fakeConfigRepo) Create(_ context.Context, cfg *model.Configuration) error {
	f.nextID++
	cfg.ID = f.nextID
	f.configs[cfg.ID] = cfg
	return nil
}

func (f *fakeConfigRepo) GetByID(_ context.Context, id uint) (*model.Configuration, error) {
	cfg, ok := f.configs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cfg, nil
}

func (f *fakeConfigRepo) GetByKey(_ context.Context, key string) (*model.Configuration, error) {
	for _, cfg := range f.configs {
		if equalFold(cfg.KeyName, key) {
			return cfg, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeConfigRepo) GetAll(_ context.Context) ([]model.Configuration, error) {
	out := make([]model.Configuration, 0, len(f.configs))
	for _, cfg := range f.configs {
		out = append(out, *cfg)
	}
	return out, nil
}

func (f *fakeConfigRepo) Update(_ context.Context, cfg *model.Configuration) error {
	f.configs[cfg.ID] = cfg
	return nil
}

func (f *fakeConfigRepo) Delete(_ context.Context, id uint) error {
	delete(f.configs, id)
	return nil
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}
