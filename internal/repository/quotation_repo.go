package repository

import (
	"context"
	"fmt"

	"procurement/internal/model"

	"gorm.io/gorm"
)

type QuotationRepository interface {
	CountOfficeQuotations(ctx context.Context) (int64, error)
	CountSupplierQuotations(ctx context.Context) (int64, error)
}

type quotationRepository struct {
	db *gorm.DB
}

func NewQuotationRepository(db *gorm.DB) QuotationRepository {
	return &quotationRepository{db: db}
}

func (r *quotationRepository) CountOfficeQuotations(ctx context.Context) (int64, error) {
	var n int64
	if err := GetDB(ctx, r.db).Model(&model.Quotation{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count quotations: %w", err)
	}
	return n, nil
}

func (r *quotationRepository) CountSupplierQuotations(ctx context.Context) (int64, error) {
	var n int64
	if err := GetDB(ctx, r.db).Model(&model.SupplierQuotation{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count supplier quotations: %w", err)
	}
	return n, nil
}
