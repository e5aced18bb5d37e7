package repository

import (
	"context"

	"procurement/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines data access for profile records keyed by identity provider ID
type UserRepository interface {
	GetByClerkID(ctx context.Context, clerkID string) (*model.User, error)
	Upsert(ctx context.Context, user *model.User, updates map[string]interface{}) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByClerkID(ctx context.Context, clerkID string) (*model.User, error) {
	var user model.User
	if err := GetDB(ctx, r.db).First(&user, "clerk_id = ?", clerkID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert inserts user, or on a clerk_id conflict applies only the given column updates.
// user is refreshed with the stored row afterwards.
func (r *userRepository) Upsert(ctx context.Context, user *model.User, updates map[string]interface{}) error {
	db := GetDB(ctx, r.db)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "clerk_id"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(user).Error
	if err != nil {
		return err
	}

	var stored model.User
	if err := db.First(&stored, "clerk_id = ?", user.ClerkID).Error; err != nil {
		return err
	}
	*user = stored
	return nil
}
