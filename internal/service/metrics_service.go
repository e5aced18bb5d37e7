package service

import (
	"context"
	"fmt"

	"procurement/internal/model"
	"procurement/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type MetricsService interface {
	GetOfficerMetrics(ctx context.Context) (*model.OfficerMetrics, error)
	GetMonthlySpending(ctx context.Context) ([]model.SpendingDataPoint, error)
}

type metricsService struct {
	prRepo        repository.PurchaseRequestRepository
	quotationRepo repository.QuotationRepository
	log           *zap.Logger
}

func NewMetricsService(prRepo repository.PurchaseRequestRepository, quotationRepo repository.QuotationRepository, log *zap.Logger) MetricsService {
	return &metricsService{prRepo: prRepo, quotationRepo: quotationRepo, log: log}
}

// GetOfficerMetrics runs the dashboard queries concurrently. Either all of them succeed or
// the call fails with ErrPersistence and no partial result.
func (s *metricsService) GetOfficerMetrics(ctx context.Context) (*model.OfficerMetrics, error) {
	var (
		totalSpend     decimal.Decimal
		prCount        int64
		quotationCount int64
		supplierCount  int64
		groups         []model.SpendingGroupRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalSpend, err = s.prRepo.SumOverallTotal(gctx)
		return err
	})
	g.Go(func() (err error) {
		prCount, err = s.prRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		quotationCount, err = s.quotationRepo.CountOfficeQuotations(gctx)
		return err
	})
	g.Go(func() (err error) {
		supplierCount, err = s.quotationRepo.CountSupplierQuotations(gctx)
		return err
	})
	g.Go(func() (err error) {
		groups, err = s.prRepo.SpendingByModeAndDate(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("officer metrics query failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	spending := make([]model.SpendingGroup, 0, len(groups))
	for _, row := range toSpendingRows(groups) {
		if row.Mode == model.ModeUnknown {
			s.log.Warn("unrecognized procurement mode", zap.String("procurement_mode", row.Label), zap.Time("date", row.Date))
		}
		spending = append(spending, model.SpendingGroup{
			ProcurementMode: row.Label,
			Date:            row.Date,
			Sum:             model.SpendingSum{OverallTotal: model.NewAmount(row.Sum)},
		})
	}

	return &model.OfficerMetrics{
		TotalSpend:              model.NewAmount(totalSpend),
		PurchaseRequestCount:    prCount,
		OfficeQuotationsCount:   quotationCount,
		SupplierQuotationsCount: supplierCount,
		SpendingData:            spending,
	}, nil
}

// GetMonthlySpending returns the grouped spending already reshaped into monthly points
func (s *metricsService) GetMonthlySpending(ctx context.Context) ([]model.SpendingDataPoint, error) {
	groups, err := s.prRepo.SpendingByModeAndDate(ctx)
	if err != nil {
		s.log.Error("monthly spending query failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return ReshapeSpending(toSpendingRows(groups)), nil
}
