package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile roles
const (
	RoleAdmin              = "admin"
	RoleOfficeHead         = "office_head"
	RoleAccountant         = "accountant"
	RoleProcurementOfficer = "procurement_officer"
)

// User is the local profile record of an identity managed by the external identity provider
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClerkID      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"clerkId"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	Role         string    `gorm:"type:varchar(50)" json:"role"`
	Department   string    `gorm:"type:varchar(255)" json:"department"`
	Section      string    `gorm:"type:varchar(255)" json:"section"`
	Title        string    `gorm:"type:varchar(255)" json:"title"`
	Designation  string    `gorm:"type:varchar(255)" json:"designation"`
	Saino        string    `gorm:"type:varchar(100)" json:"saino"`
	Alobsno      string    `gorm:"type:varchar(100)" json:"alobsno"`
	SignatureURL string    `gorm:"type:text" json:"signatureUrl"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
