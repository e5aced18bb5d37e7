package repository

import (
	"context"
	"fmt"

	"procurement/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseRequestRepository interface {
	SumOverallTotal(ctx context.Context) (decimal.Decimal, error)
	Count(ctx context.Context) (int64, error)
	SpendingByModeAndDate(ctx context.Context) ([]model.SpendingGroupRow, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*model.PurchaseRequest, error)
}

type purchaseRequestRepository struct {
	db *gorm.DB
}

func NewPurchaseRequestRepository(db *gorm.DB) PurchaseRequestRepository {
	return &purchaseRequestRepository{db: db}
}

func (r *purchaseRequestRepository) SumOverallTotal(ctx context.Context) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	if err := GetDB(ctx, r.db).Model(&model.PurchaseRequest{}).
		Select("COALESCE(SUM(overall_total), 0) AS total").
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum purchase request totals: %w", err)
	}
	return result.Total, nil
}

func (r *purchaseRequestRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := GetDB(ctx, r.db).Model(&model.PurchaseRequest{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count purchase requests: %w", err)
	}
	return n, nil
}

// SpendingByModeAndDate sums overall totals grouped by (procurement_mode, date)
func (r *purchaseRequestRepository) SpendingByModeAndDate(ctx context.Context) ([]model.SpendingGroupRow, error) {
	var rows []model.SpendingGroupRow
	if err := GetDB(ctx, r.db).Model(&model.PurchaseRequest{}).
		Select("procurement_mode, date, SUM(overall_total) AS overall_total").
		Group("procurement_mode, date").
		Order("date, procurement_mode").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to group spending by procurement mode: %w", err)
	}
	return rows, nil
}

func (r *purchaseRequestRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*model.PurchaseRequest, error) {
	var pr model.PurchaseRequest
	err := GetDB(ctx, r.db).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("item_no ASC") }).
		Preload("CreatedBy").
		First(&pr, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pr, nil
}
