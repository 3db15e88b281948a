package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"ridersapp/internal/middleware"
	"ridersapp/internal/model"
	"ridersapp/internal/service"
	"ridersapp/pkg/response"
)

// In-memory repository fakes so the handler tests run the real service
// and its error classification end to end.

type fakeCountryRepo struct {
	countries    map[uint]*model.Country
	nextID       uint
	hasCities    map[uint]bool
	hasEmployees map[uint]bool
}

func newFakeCountryRepo() *fakeCountryRepo {
	return &fakeCountryRepo{
		countries:    map[uint]*model.Country{},
		nextID:       1,
		hasCities:    map[uint]bool{},
		hasEmployees: map[uint]bool{},
	}
}

func (f *fakeCountryRepo) Create(_ context.Context, country *model.Country) error {
	country.ID = f.nextID
	f.nextID++
	f.countries[country.ID] = country
	return nil
}

func (f *fakeCountryRepo) GetByID(_ context.Context, id uint) (*model.Country, error) {
	if c, ok := f.countries[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCountryRepo) GetAll(_ context.Context) ([]model.Country, error) {
	out := make([]model.Country, 0, len(f.countries))
	for _, c := range f.countries {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCountryRepo) Update(_ context.Context, country *model.Country) error {
	f.countries[country.ID] = country
	return nil
}

func (f *fakeCountryRepo) Delete(_ context.Context, id uint) error {
	delete(f.countries, id)
	return nil
}

func (f *fakeCountryRepo) HasCities(_ context.Context, id uint) (bool, error) {
	return f.hasCities[id], nil
}

func (f *fakeCountryRepo) HasEmployees(_ context.Context, id uint) (bool, error) {
	return f.hasEmployees[id], nil
}

type fakeAuditRepo struct{}

func (fakeAuditRepo) Log(_ context.Context, _ *model.AuditLog) error { return nil }

func (fakeAuditRepo) List(_ context.Context, _, _ int) ([]model.AuditLog, int64, error) {
	return nil, 0, nil
}

type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func newCountryRouter(repo *fakeCountryRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewCountryService(repo, fakeAuditRepo{}, fakeTxManager{})
	router := gin.New()
	NewCountryHandler(svc).RegisterRoutes(router.Group(""))
	return router
}

func bearerToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "9f1c2d3e-0000-0000-0000-000000000002",
		"role":     role,
		"username": "bilal",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(middleware.GetJWTSecret())
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	return body
}

func TestCountryHandler_StatusMapping(t *testing.T) {
	t.Setenv("JWT_SECRET", "country-handler-test-secret")
	admin := bearerToken(t, model.RoleAdmin)

	t.Run("missing country is a 404 error envelope", func(t *testing.T) {
		router := newCountryRouter(newFakeCountryRepo())

		rec := doJSON(t, router, http.MethodGet, "/api/countries/999", admin, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
		body := decodeEnvelope(t, rec)
		if body.Status != "error" || body.StatusCode != http.StatusNotFound || body.Error == "" {
			t.Errorf("envelope = %+v, want error/404 with message", body)
		}
	})

	t.Run("delete guard violation is a 409 error envelope", func(t *testing.T) {
		repo := newFakeCountryRepo()
		repo.countries[1] = &model.Country{ID: 1, Name: "Pakistan"}
		repo.hasCities[1] = true
		router := newCountryRouter(repo)

		rec := doJSON(t, router, http.MethodDelete, "/api/countries/1", admin, "")
		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409: %s", rec.Code, rec.Body.String())
		}
		body := decodeEnvelope(t, rec)
		if body.Status != "error" || !strings.Contains(body.Error, "related cities") {
			t.Errorf("envelope = %+v, want error naming the related cities", body)
		}
		if _, stillThere := repo.countries[1]; !stillThere {
			t.Error("country was deleted despite the guard")
		}
	})

	t.Run("delete of a missing country is a 404", func(t *testing.T) {
		rec := doJSON(t, newCountryRouter(newFakeCountryRepo()), http.MethodDelete, "/api/countries/42", admin, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("create wraps the row in a 201 success envelope", func(t *testing.T) {
		router := newCountryRouter(newFakeCountryRepo())

		rec := doJSON(t, router, http.MethodPost, "/api/countries", admin, `{"name":"Pakistan"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
		}
		body := decodeEnvelope(t, rec)
		if body.Status != "success" || body.StatusCode != http.StatusCreated || body.Data == nil {
			t.Errorf("envelope = %+v, want success/201 with data", body)
		}
	})

	t.Run("binding failure is a 400", func(t *testing.T) {
		rec := doJSON(t, newCountryRouter(newFakeCountryRepo()), http.MethodPost, "/api/countries", admin, `{"name":""}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestCountryHandler_RoleGate(t *testing.T) {
	t.Setenv("JWT_SECRET", "country-handler-test-secret")
	router := newCountryRouter(newFakeCountryRepo())

	t.Run("user role cannot reach the admin-only group", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/countries", bearerToken(t, model.RoleUser), "")
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("admin role lists countries in a success envelope", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/countries", bearerToken(t, model.RoleAdmin), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
		}
		body := decodeEnvelope(t, rec)
		if body.Status != "success" || body.StatusCode != http.StatusOK {
			t.Errorf("envelope = %+v, want success/200", body)
		}
	})

	t.Run("anonymous request is a 401", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/countries", "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}
