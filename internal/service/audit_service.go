package service

import (
	"context"
	"encoding/json"
	"fmt"

	"ridersapp/internal/model"
	"ridersapp/internal/repository"

	"github.com/google/uuid"
)

// Actor identifies who performed a mutating operation. Zero value means
// no authenticated request context (migrations, seeding) and audit rows
// fall back to the "System" label.
type Actor struct {
	UserID   string
	Username string
}

// Name returns the display name used for InsertedBy/UpdatedBy fields.
func (a Actor) Name() string {
	if a.Username == "" {
		return "System"
	}
	return a.Username
}

// recordAudit writes a best-effort audit entry. Failures never abort
// the operation being audited.
func recordAudit(ctx context.Context, repo repository.AuditRepository, actor Actor, action string, entityID uint, entityName string, details interface{}) {
	detailsJSON, _ := json.Marshal(details)

	entry := model.AuditLog{
		Action:     action,
		EntityID:   fmt.Sprintf("%d", entityID),
		EntityName: entityName,
		Details:    string(detailsJSON),
	}

	if actor.UserID != "" {
		if parsed, err := uuid.Parse(actor.UserID); err == nil {
			entry.UserID = &parsed
		}
	}

	_ = repo.Log(ctx, &entry)
}

type AuditLogResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Action     string `json:"action"`
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	Details    string `json:"details"`
	CreatedAt  string `json:"created_at"`
}

type AuditService interface {
	GetAuditLogs(ctx context.Context, page, limit int) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	repo repository.AuditRepository
}

// NewAuditService creates a new AuditService instance
func NewAuditService(repo repository.AuditRepository) AuditService {
	return &auditService{repo: repo}
}

// GetAuditLogs retrieves strictly paginated records with Users pre-loaded joining details
func (s *auditService) GetAuditLogs(ctx context.Context, page, limit int) ([]AuditLogResponse, int64, error) {
	logs, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		username := "System"
		userID := ""
		if l.User != nil {
			username = l.User.Username
		}
		if l.UserID != nil {
			userID = l.UserID.String()
		}

		res = append(res, AuditLogResponse{
			ID:         l.ID.String(),
			UserID:     userID,
			Username:   username,
			Action:     l.Action,
			EntityID:   l.EntityID,
			EntityName: l.EntityName,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return res, total, nil
}
