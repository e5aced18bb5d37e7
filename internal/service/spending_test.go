package service

import (
	"encoding/json"
	"testing"
	"time"

	"procurement/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(label string, date string, sum string) model.SpendingRow {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return model.SpendingRow{
		Mode:  model.ParseProcurementMode(label),
		Label: label,
		Date:  d,
		Sum:   decimal.RequireFromString(sum),
	}
}

func amount(s string) model.Amount {
	return model.NewAmount(decimal.RequireFromString(s))
}

func TestReshapeSpending_SingleMonthTwoModes(t *testing.T) {
	points := ReshapeSpending([]model.SpendingRow{
		row("Shopping", "2024-01-15", "1000"),
		row("Small Value", "2024-01-20", "500"),
	})

	require.Len(t, points, 1)
	assert.Equal(t, "Jan", points[0].Month)
	assert.True(t, points[0].Shopping.Equal(decimal.NewFromInt(1000)))
	assert.True(t, points[0].SmallValue.Equal(decimal.NewFromInt(500)))
	assert.True(t, points[0].CompetitiveBidding.IsZero())

	b, err := json.Marshal(points)
	require.NoError(t, err)
	assert.Equal(t, `[{"month":"Jan","shopping":1000.00,"smallValue":500.00,"competitiveBidding":0.00}]`, string(b))
}

func TestReshapeSpending_EmptyInput(t *testing.T) {
	points := ReshapeSpending(nil)
	assert.NotNil(t, points)
	assert.Empty(t, points)

	b, err := json.Marshal(points)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestReshapeSpending_UnknownModeLeavesRecordUntouched(t *testing.T) {
	points := ReshapeSpending([]model.SpendingRow{
		row("Shopping", "2024-03-02", "250.10"),
		row("Other", "2024-03-05", "100"),
	})

	require.Len(t, points, 1)
	assert.Equal(t, amount("250.10"), points[0].Shopping)
	assert.True(t, points[0].SmallValue.IsZero())
	assert.True(t, points[0].CompetitiveBidding.IsZero())
}

func TestReshapeSpending_UnknownModeStillOpensMonth(t *testing.T) {
	points := ReshapeSpending([]model.SpendingRow{row("Negotiated", "2024-05-01", "100")})

	require.Len(t, points, 1)
	assert.Equal(t, "May", points[0].Month)
	assert.True(t, points[0].Shopping.IsZero())
	assert.True(t, points[0].SmallValue.IsZero())
	assert.True(t, points[0].CompetitiveBidding.IsZero())
}

func TestReshapeSpending_MonthCountMatchesDistinctMonths(t *testing.T) {
	rows := []model.SpendingRow{
		row("Shopping", "2024-01-03", "1"),
		row("Small Value", "2024-02-03", "2"),
		row("Competitive Bidding", "2024-02-04", "3"),
		row("Shopping", "2024-04-10", "4"),
		row("Other", "2024-06-10", "5"),
		row("Shopping", "2024-01-28", "6"),
	}

	distinct := map[string]bool{}
	for _, r := range rows {
		distinct[r.Date.Month().String()[:3]] = true
	}

	points := ReshapeSpending(rows)
	assert.Len(t, points, len(distinct))
}

func TestReshapeSpending_FirstSeenOrder(t *testing.T) {
	points := ReshapeSpending([]model.SpendingRow{
		row("Shopping", "2024-07-01", "1"),
		row("Shopping", "2024-02-01", "1"),
		row("Small Value", "2024-07-09", "1"),
		row("Shopping", "2024-11-01", "1"),
	})

	months := make([]string, 0, len(points))
	for _, p := range points {
		months = append(months, p.Month)
	}
	assert.Equal(t, []string{"Jul", "Feb", "Nov"}, months)
}

func TestReshapeSpending_CaseInsensitiveModes(t *testing.T) {
	points := ReshapeSpending([]model.SpendingRow{
		row("SHOPPING", "2024-09-01", "10"),
		row("small value", "2024-09-02", "20"),
		row("Competitive bidding", "2024-09-03", "30"),
	})

	require.Len(t, points, 1)
	assert.Equal(t, amount("10"), points[0].Shopping)
	assert.Equal(t, amount("20"), points[0].SmallValue)
	assert.Equal(t, amount("30"), points[0].CompetitiveBidding)
}

func TestReshapeSpending_RoundsHalfAwayFromZero(t *testing.T) {
	points := ReshapeSpending([]model.SpendingRow{
		row("Shopping", "2024-01-01", "100.005"),
		row("Small Value", "2024-01-01", "100.004"),
		row("Competitive Bidding", "2024-01-01", "0.125"),
	})

	require.Len(t, points, 1)
	assert.Equal(t, "100.01", points[0].Shopping.StringFixed(2))
	assert.Equal(t, "100.00", points[0].SmallValue.StringFixed(2))
	assert.Equal(t, "0.13", points[0].CompetitiveBidding.StringFixed(2))
}

// Repeated (month, mode) pairs overwrite instead of summing. Kept as-is until the
// dashboard owners decide whether a month should accumulate its daily groups.
func TestReshapeSpending_RepeatedMonthModeOverwrites(t *testing.T) {
	points := ReshapeSpending([]model.SpendingRow{
		row("Shopping", "2024-01-05", "1000"),
		row("Shopping", "2024-01-25", "300"),
		row("Shopping", "2025-01-10", "42"),
	})

	require.Len(t, points, 1)
	assert.Equal(t, amount("42"), points[0].Shopping, "last row for Jan/Shopping wins, across years too")
}

func TestReshapeSpending_UsesUTCMonth(t *testing.T) {
	manila := time.FixedZone("PHT", 8*60*60)
	points := ReshapeSpending([]model.SpendingRow{{
		Mode: model.ModeShopping,
		Date: time.Date(2024, time.February, 1, 3, 0, 0, 0, manila), // still Jan 31 in UTC
		Sum:  decimal.NewFromInt(1),
	}})

	require.Len(t, points, 1)
	assert.Equal(t, "Jan", points[0].Month)
}
