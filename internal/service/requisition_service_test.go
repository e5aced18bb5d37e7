package service

import (
	"context"
	"testing"
	"time"

	"procurement/internal/repository"
	"procurement/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequisitionGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	svc := NewRequisitionService(repository.NewPurchaseRequestRepository(db), zap.NewNop())

	creator := fx.User("user_officer", "Ana Officer")
	pr := fx.PurchaseRequest(creator.ID, "Shopping", testutil.Day(2024, time.April, 8), "1350")
	fx.Item(pr.ID, 2, "Printer ink", 3, "150")
	fx.Item(pr.ID, 1, "Bond paper", 10, "90")

	got, err := svc.Get(context.Background(), pr.ID.String())
	require.NoError(t, err)

	assert.Equal(t, pr.ID.String(), got.ID)
	assert.Equal(t, "Shopping", got.ProcurementMode)
	assert.Equal(t, "1350.00", got.OverallTotal.StringFixed(2))
	require.Len(t, got.Items, 2)
	assert.Equal(t, 1, got.Items[0].ItemNo)
	assert.Equal(t, "Bond paper", got.Items[0].Description)
	assert.Equal(t, "900.00", got.Items[0].TotalCost.StringFixed(2))
	assert.Equal(t, 2, got.Items[1].ItemNo)
	assert.Equal(t, CreatorSummary{
		Name:        "Ana Officer",
		Designation: "Procurement Officer",
		Saino:       "SAI-001",
		Alobsno:     "ALOBS-001",
	}, got.CreatedBy)
}

func TestRequisitionGet_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewRequisitionService(repository.NewPurchaseRequestRepository(db), zap.NewNop())

	_, err := svc.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)
}
