package service

import (
	"time"

	"procurement/internal/model"

	"github.com/shopspring/decimal"
)

// ReshapeSpending folds grouped (mode, date) rows into one record per short month name,
// in the order months are first seen. Rows with an unknown mode are skipped.
//
// A month slot is set, not summed: when two rows share a month and mode (different days
// of the same month, or the same month of different years) the later row wins.
func ReshapeSpending(rows []model.SpendingRow) []model.SpendingDataPoint {
	points := make([]model.SpendingDataPoint, 0, len(rows))
	index := make(map[string]int)

	for _, row := range rows {
		month := monthLabel(row.Date)
		i, ok := index[month]
		if !ok {
			i = len(points)
			index[month] = i
			points = append(points, model.SpendingDataPoint{
				Month:              month,
				Shopping:           model.NewAmount(decimal.Zero),
				SmallValue:         model.NewAmount(decimal.Zero),
				CompetitiveBidding: model.NewAmount(decimal.Zero),
			})
		}

		amount := model.NewAmount(row.Sum)
		switch row.Mode {
		case model.ModeShopping:
			points[i].Shopping = amount
		case model.ModeSmallValue:
			points[i].SmallValue = amount
		case model.ModeCompetitiveBidding:
			points[i].CompetitiveBidding = amount
		}
	}

	return points
}

func monthLabel(t time.Time) string {
	return t.UTC().Month().String()[:3]
}

// toSpendingRows resolves each grouped row's mode label at the storage boundary
func toSpendingRows(groups []model.SpendingGroupRow) []model.SpendingRow {
	rows := make([]model.SpendingRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, model.SpendingRow{
			Mode:  model.ParseProcurementMode(g.ProcurementMode),
			Label: g.ProcurementMode,
			Date:  g.Date,
			Sum:   g.OverallTotal,
		})
	}
	return rows
}
