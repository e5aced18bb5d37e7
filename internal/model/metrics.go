package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpendingGroupRow is one (procurement_mode, date) group as scanned from the database
type SpendingGroupRow struct {
	ProcurementMode string          `gorm:"column:procurement_mode"`
	Date            time.Time       `gorm:"column:date"`
	OverallTotal    decimal.Decimal `gorm:"column:overall_total"`
}

// SpendingRow is a grouped row with its mode label resolved
type SpendingRow struct {
	Mode  ProcurementMode
	Label string
	Date  time.Time
	Sum   decimal.Decimal
}

// SpendingGroup is the wire form of a grouped row
type SpendingGroup struct {
	ProcurementMode string      `json:"procurementMode"`
	Date            time.Time   `json:"date"`
	Sum             SpendingSum `json:"_sum"`
}

type SpendingSum struct {
	OverallTotal Amount `json:"overallTotal"`
}

// OfficerMetrics is the key-metrics payload of the officer and accountant dashboards
type OfficerMetrics struct {
	TotalSpend              Amount          `json:"totalSpend"`
	PurchaseRequestCount    int64           `json:"purchaseRequestCount"`
	OfficeQuotationsCount   int64           `json:"officeQuotationsCount"`
	SupplierQuotationsCount int64           `json:"supplierQuotationsCount"`
	SpendingData            []SpendingGroup `json:"spendingData"`
}

// SpendingDataPoint is one month of spending split by procurement mode
type SpendingDataPoint struct {
	Month              string `json:"month"`
	Shopping           Amount `json:"shopping"`
	SmallValue         Amount `json:"smallValue"`
	CompetitiveBidding Amount `json:"competitiveBidding"`
}
