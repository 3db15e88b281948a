package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ridersapp/internal/middleware"
	"ridersapp/internal/model"
	"ridersapp/internal/repository"
)

type fakeUserRepo struct {
	repository.UserRepository

	refreshTokens []*model.RefreshToken
}

func (f *fakeUserRepo) StoreRefreshToken(_ context.Context, token *model.RefreshToken) error {
	f.refreshTokens = append(f.refreshTokens, token)
	return nil
}

func TestIssueTokens_SharedSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "token-roundtrip-secret")

	repo := &fakeUserRepo{}
	svc := NewUserService(repo).(*userService)

	user := &model.User{
		ID:       uuid.New(),
		Username: "bilal",
		Role:     model.RoleAdmin,
	}

	tokens, err := svc.issueTokens(context.Background(), user)
	if err != nil {
		t.Fatalf("issueTokens: %v", err)
	}
	if len(repo.refreshTokens) != 1 {
		t.Fatalf("stored %d refresh tokens, want 1", len(repo.refreshTokens))
	}

	// The access token must verify against the same secret the auth
	// middleware uses, otherwise every login would 401 immediately.
	parsed, err := jwt.Parse(tokens.Token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return middleware.GetJWTSecret(), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("access token does not verify with the middleware secret: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	if claims["sub"] != user.ID.String() {
		t.Errorf("sub = %v, want %s", claims["sub"], user.ID.String())
	}
	if claims["role"] != model.RoleAdmin {
		t.Errorf("role = %v, want %s", claims["role"], model.RoleAdmin)
	}
	if claims["username"] != "bilal" {
		t.Errorf("username = %v, want bilal", claims["username"])
	}
}
