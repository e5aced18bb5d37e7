package service

import (
	"context"
	"fmt"

	"procurement/internal/repository"
	"procurement/pkg/pagination"
)

type AuditLogResponse struct {
	ID         string `json:"id"`
	ActorID    string `json:"actor_id"`
	Action     string `json:"action"`
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	ProfileOf  string `json:"profile_of"`
	Details    string `json:"details"`
	CreatedAt  string `json:"created_at"`
}

type AuditService interface {
	GetAuditLogs(ctx context.Context, params pagination.Params) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	auditRepo repository.AuditRepository
}

// NewAuditService creates a new AuditService instance
func NewAuditService(auditRepo repository.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

func (s *auditService) GetAuditLogs(ctx context.Context, params pagination.Params) ([]AuditLogResponse, int64, error) {
	logs, total, err := s.auditRepo.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		actor := l.ActorID
		if actor == "" {
			actor = "System"
		}
		profileOf := ""
		if l.User != nil {
			profileOf = l.User.Name
		}

		res = append(res, AuditLogResponse{
			ID:         l.ID.String(),
			ActorID:    actor,
			Action:     l.Action,
			EntityID:   l.EntityID,
			EntityName: l.EntityName,
			ProfileOf:  profileOf,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return res, total, nil
}
