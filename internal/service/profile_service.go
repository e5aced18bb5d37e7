package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"procurement/internal/model"
	"procurement/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultSection     = "No Section"
	defaultDesignation = "No Designation"
)

// --- DTOs ---

// UpsertProfileRequest carries the profile fields; nil optional fields are left untouched on update.
// Role is only taken on create, or on update when the caller is an admin.
type UpsertProfileRequest struct {
	ClerkID      string  `json:"clerkId"`
	Email        string  `json:"email"`
	Name         *string `json:"name"`
	Role         *string `json:"role"`
	Department   *string `json:"department"`
	Section      *string `json:"section"`
	Title        *string `json:"title"`
	Designation  *string `json:"designation"`
	Saino        *string `json:"saino"`
	Alobsno      *string `json:"alobsno"`
	SignatureURL *string `json:"signatureUrl"`
}

type ProfileResponse struct {
	Section      string `json:"section"`
	Department   string `json:"department"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Title        string `json:"title"`
	Designation  string `json:"designation"`
	Saino        string `json:"saino"`
	Alobsno      string `json:"alobsno"`
	SignatureURL string `json:"signatureUrl"`
}

// ShellResponse is what the dashboard layout shows in its navbar
type ShellResponse struct {
	ClerkID     string `json:"clerkId"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	ImageURL    string `json:"imageUrl"`
	Section     string `json:"section"`
	Designation string `json:"designation"`
}

// ProfileListener is notified after a profile change has been committed
type ProfileListener interface {
	ProfileUpdated(user *model.User)
}

// --- Interface ---

type ProfileService interface {
	Upsert(ctx context.Context, actorID string, req UpsertProfileRequest) (*model.User, error)
	Get(ctx context.Context, identityID string) (*ProfileResponse, error)
	GetShell(ctx context.Context, identity model.Identity) (*ShellResponse, error)
}

type profileService struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
	listeners []ProfileListener
	log       *zap.Logger
}

func NewProfileService(
	userRepo repository.UserRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	log *zap.Logger,
	listeners ...ProfileListener,
) ProfileService {
	return &profileService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		txManager: txManager,
		listeners: listeners,
		log:       log,
	}
}

// --- Implementation ---

func (s *profileService) Upsert(ctx context.Context, actorID string, req UpsertProfileRequest) (*model.User, error) {
	req.ClerkID = strings.TrimSpace(req.ClerkID)
	req.Email = strings.TrimSpace(req.Email)
	if req.ClerkID == "" || req.Email == "" {
		return nil, fmt.Errorf("%w: missing required fields: clerkId and email", ErrValidation)
	}

	user := &model.User{
		ClerkID:      req.ClerkID,
		Email:        req.Email,
		Name:         deref(req.Name),
		Role:         deref(req.Role),
		Department:   deref(req.Department),
		Section:      deref(req.Section),
		Title:        deref(req.Title),
		Designation:  deref(req.Designation),
		Saino:        deref(req.Saino),
		Alobsno:      deref(req.Alobsno),
		SignatureURL: deref(req.SignatureURL),
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		action := model.ActionUpdateProfile
		existing, err := s.userRepo.GetByClerkID(txCtx, req.ClerkID)
		switch {
		case err == nil:
			if req.Role != nil && *req.Role != existing.Role {
				allowed, err := s.isAdmin(txCtx, actorID)
				if err != nil {
					return err
				}
				if !allowed {
					s.log.Warn("ignoring role change from non-admin caller",
						zap.String("clerk_id", req.ClerkID), zap.String("actor_id", actorID))
					req.Role = nil
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			action = model.ActionCreateProfile
		default:
			return err
		}

		if err := s.userRepo.Upsert(txCtx, user, profileUpdates(req)); err != nil {
			return err
		}

		details, err := json.Marshal(req)
		if err != nil {
			return fmt.Errorf("encode audit details: %w", err)
		}

		return s.auditRepo.Log(txCtx, &model.AuditLog{
			UserID:     &user.ID,
			ActorID:    actorID,
			Action:     action,
			EntityID:   user.ClerkID,
			EntityName: user.Name,
			Details:    string(details),
		})
	})
	if err != nil {
		s.log.Error("saving user profile failed", zap.String("clerk_id", req.ClerkID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	for _, l := range s.listeners {
		l.ProfileUpdated(user)
	}
	return user, nil
}

func (s *profileService) Get(ctx context.Context, identityID string) (*ProfileResponse, error) {
	if identityID == "" {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.GetByClerkID(ctx, identityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user profile", ErrNotFound)
		}
		s.log.Error("loading user profile failed", zap.String("clerk_id", identityID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return &ProfileResponse{
		Section:      user.Section,
		Department:   user.Department,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		Title:        user.Title,
		Designation:  user.Designation,
		Saino:        user.Saino,
		Alobsno:      user.Alobsno,
		SignatureURL: user.SignatureURL,
	}, nil
}

// GetShell merges token claims with the stored section and designation.
// A caller without a stored profile still gets a shell, with placeholder values.
func (s *profileService) GetShell(ctx context.Context, identity model.Identity) (*ShellResponse, error) {
	if identity.ID == "" {
		return nil, ErrUnauthenticated
	}

	shell := &ShellResponse{
		ClerkID:     identity.ID,
		FullName:    identity.FullName,
		Email:       identity.Email,
		ImageURL:    identity.ImageURL,
		Section:     defaultSection,
		Designation: defaultDesignation,
	}

	user, err := s.userRepo.GetByClerkID(ctx, identity.ID)
	switch {
	case err == nil:
		if user.Section != "" {
			shell.Section = user.Section
		}
		if user.Designation != "" {
			shell.Designation = user.Designation
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		s.log.Error("loading shell profile failed", zap.String("clerk_id", identity.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return shell, nil
}

// isAdmin reports whether the caller has a stored admin profile
func (s *profileService) isAdmin(ctx context.Context, actorID string) (bool, error) {
	if actorID == "" {
		return false, nil
	}
	actor, err := s.userRepo.GetByClerkID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return actor.Role == model.RoleAdmin, nil
}

// profileUpdates lists the columns overwritten when the profile already exists
func profileUpdates(req UpsertProfileRequest) map[string]interface{} {
	updates := map[string]interface{}{
		"email":      req.Email,
		"updated_at": time.Now(),
	}
	optional := map[string]*string{
		"name":          req.Name,
		"role":          req.Role,
		"department":    req.Department,
		"section":       req.Section,
		"title":         req.Title,
		"designation":   req.Designation,
		"saino":         req.Saino,
		"alobsno":       req.Alobsno,
		"signature_url": req.SignatureURL,
	}
	for column, value := range optional {
		if value != nil {
			updates[column] = *value
		}
	}
	return updates
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
