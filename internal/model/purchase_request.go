package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Purchase request status values
const (
	PRStatusPending  = "PENDING"
	PRStatusApproved = "APPROVED"
	PRStatusRejected = "REJECTED"
)

// PurchaseRequest is a requisition raised by an office; read-only for this service
type PurchaseRequest struct {
	ID              uuid.UUID             `gorm:"type:uuid;primaryKey" json:"id"`
	PRNo            string                `gorm:"type:varchar(50);index" json:"prNo"`
	Department      string                `gorm:"type:varchar(255)" json:"department"`
	Section         string                `gorm:"type:varchar(255)" json:"section"`
	Purpose         string                `gorm:"type:text" json:"purpose"`
	ProcurementMode string                `gorm:"type:varchar(50);index" json:"procurementMode"` // Shopping, Small Value, Competitive Bidding
	Date            time.Time             `gorm:"index" json:"date"`
	OverallTotal    decimal.Decimal       `gorm:"type:decimal(18,2);not null;default:0" json:"overallTotal"`
	Status          string                `gorm:"type:varchar(30);not null;default:'PENDING'" json:"status"`
	CreatedByID     uuid.UUID             `gorm:"type:uuid;not null;index" json:"createdById"`
	CreatedBy       User                  `gorm:"foreignKey:CreatedByID" json:"-"`
	Items           []PurchaseRequestItem `gorm:"foreignKey:PurchaseRequestID;constraint:OnDelete:CASCADE;" json:"-"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

func (p *PurchaseRequest) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PurchaseRequestItem is a single line of a purchase request
type PurchaseRequestItem struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PurchaseRequestID uuid.UUID       `gorm:"type:uuid;not null;index" json:"purchaseRequestId"`
	ItemNo            int             `gorm:"not null" json:"itemNo"`
	Unit              string          `gorm:"type:varchar(50)" json:"unit"`
	Description       string          `gorm:"type:text" json:"description"`
	Quantity          int             `gorm:"not null;default:0" json:"quantity"`
	UnitCost          decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"unitCost"`
	TotalCost         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"totalCost"`
}

func (i *PurchaseRequestItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
