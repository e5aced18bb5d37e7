package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"procurement/internal/model"
	"procurement/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// --- DTOs ---

type RequisitionItemResponse struct {
	ID          string       `json:"id"`
	ItemNo      int          `json:"itemNo"`
	Unit        string       `json:"unit"`
	Description string       `json:"description"`
	Quantity    int          `json:"quantity"`
	UnitCost    model.Amount `json:"unitCost"`
	TotalCost   model.Amount `json:"totalCost"`
}

// CreatorSummary is the subset of the creator's profile printed on a requisition
type CreatorSummary struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Saino       string `json:"saino"`
	Alobsno     string `json:"alobsno"`
}

type RequisitionResponse struct {
	ID              string                    `json:"id"`
	PRNo            string                    `json:"prNo"`
	Department      string                    `json:"department"`
	Section         string                    `json:"section"`
	Purpose         string                    `json:"purpose"`
	ProcurementMode string                    `json:"procurementMode"`
	Date            time.Time                 `json:"date"`
	OverallTotal    model.Amount              `json:"overallTotal"`
	Status          string                    `json:"status"`
	CreatedByID     string                    `json:"createdById"`
	CreatedAt       time.Time                 `json:"createdAt"`
	UpdatedAt       time.Time                 `json:"updatedAt"`
	Items           []RequisitionItemResponse `json:"items"`
	CreatedBy       CreatorSummary            `json:"createdBy"`
}

// --- Interface ---

type RequisitionService interface {
	Get(ctx context.Context, id string) (*RequisitionResponse, error)
}

type requisitionService struct {
	prRepo repository.PurchaseRequestRepository
	log    *zap.Logger
}

func NewRequisitionService(prRepo repository.PurchaseRequestRepository, log *zap.Logger) RequisitionService {
	return &requisitionService{prRepo: prRepo, log: log}
}

// --- Implementation ---

func (s *requisitionService) Get(ctx context.Context, id string) (*RequisitionResponse, error) {
	prID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: purchase request %q", ErrNotFound, id)
	}

	pr, err := s.prRepo.GetWithItems(ctx, prID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: purchase request %q", ErrNotFound, id)
		}
		s.log.Error("loading requisition failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return mapRequisition(pr), nil
}

func mapRequisition(pr *model.PurchaseRequest) *RequisitionResponse {
	items := make([]RequisitionItemResponse, 0, len(pr.Items))
	for _, it := range pr.Items {
		items = append(items, RequisitionItemResponse{
			ID:          it.ID.String(),
			ItemNo:      it.ItemNo,
			Unit:        it.Unit,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitCost:    model.NewAmount(it.UnitCost),
			TotalCost:   model.NewAmount(it.TotalCost),
		})
	}

	return &RequisitionResponse{
		ID:              pr.ID.String(),
		PRNo:            pr.PRNo,
		Department:      pr.Department,
		Section:         pr.Section,
		Purpose:         pr.Purpose,
		ProcurementMode: pr.ProcurementMode,
		Date:            pr.Date,
		OverallTotal:    model.NewAmount(pr.OverallTotal),
		Status:          pr.Status,
		CreatedByID:     pr.CreatedByID.String(),
		CreatedAt:       pr.CreatedAt,
		UpdatedAt:       pr.UpdatedAt,
		Items:           items,
		CreatedBy: CreatorSummary{
			Name:        pr.CreatedBy.Name,
			Designation: pr.CreatedBy.Designation,
			Saino:       pr.CreatedBy.Saino,
			Alobsno:     pr.CreatedBy.Alobsno,
		},
	}
}
