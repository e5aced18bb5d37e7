package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Quotation is an office-issued request for quotation tied to a purchase request
type Quotation struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PurchaseRequestID *uuid.UUID `gorm:"type:uuid;index" json:"purchaseRequestId"`
	QuotationNo       string     `gorm:"type:varchar(50)" json:"quotationNo"`
	Date              time.Time  `json:"date"`
	CreatedAt         time.Time  `json:"createdAt"`
}

func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// SupplierQuotation is a supplier's answer to a Quotation
type SupplierQuotation struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	QuotationID  *uuid.UUID      `gorm:"type:uuid;index" json:"quotationId"`
	SupplierName string          `gorm:"type:varchar(255)" json:"supplierName"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(18,2);default:0" json:"totalAmount"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func (s *SupplierQuotation) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
