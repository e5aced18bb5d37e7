// Package testutil provides an in-memory database and fixtures for package tests.
package testutil

import (
	"testing"
	"time"

	"procurement/internal/database"
	"procurement/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a private in-memory SQLite database with the schema migrated.
// A single connection keeps every query on the same in-memory database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Fixtures seeds rows into a test database, failing the test on any error
type Fixtures struct {
	t  *testing.T
	db *gorm.DB
}

func NewFixtures(t *testing.T, db *gorm.DB) *Fixtures {
	return &Fixtures{t: t, db: db}
}

func (f *Fixtures) create(v interface{}) {
	f.t.Helper()
	if err := f.db.Create(v).Error; err != nil {
		f.t.Fatalf("seed %T: %v", v, err)
	}
}

// User inserts a procurement officer profile for clerkID
func (f *Fixtures) User(clerkID, name string) model.User {
	f.t.Helper()
	u := model.User{
		ClerkID:     clerkID,
		Name:        name,
		Email:       clerkID + "@example.gov",
		Role:        "procurement_officer",
		Section:     "Supply",
		Designation: "Procurement Officer",
		Saino:       "SAI-001",
		Alobsno:     "ALOBS-001",
	}
	f.create(&u)
	return u
}

// UserWithRole inserts a profile with the given role
func (f *Fixtures) UserWithRole(clerkID, role string) model.User {
	f.t.Helper()
	u := model.User{ClerkID: clerkID, Name: clerkID, Email: clerkID + "@example.gov", Role: role}
	f.create(&u)
	return u
}

// PurchaseRequest inserts a purchase request owned by creator
func (f *Fixtures) PurchaseRequest(creator uuid.UUID, mode string, date time.Time, total string) model.PurchaseRequest {
	f.t.Helper()
	pr := model.PurchaseRequest{
		PRNo:            "PR-" + date.Format("20060102"),
		Department:      "General Services",
		Section:         "Supply",
		Purpose:         "Office supplies",
		ProcurementMode: mode,
		Date:            date,
		OverallTotal:    decimal.RequireFromString(total),
		Status:          model.PRStatusPending,
		CreatedByID:     creator,
	}
	f.create(&pr)
	return pr
}

// Item inserts a line item for a purchase request
func (f *Fixtures) Item(prID uuid.UUID, itemNo int, description string, qty int, unitCost string) model.PurchaseRequestItem {
	f.t.Helper()
	cost := decimal.RequireFromString(unitCost)
	it := model.PurchaseRequestItem{
		PurchaseRequestID: prID,
		ItemNo:            itemNo,
		Unit:              "pc",
		Description:       description,
		Quantity:          qty,
		UnitCost:          cost,
		TotalCost:         cost.Mul(decimal.NewFromInt(int64(qty))),
	}
	f.create(&it)
	return it
}

// Quotations inserts n office quotations
func (f *Fixtures) Quotations(n int) {
	f.t.Helper()
	for i := 0; i < n; i++ {
		f.create(&model.Quotation{QuotationNo: "RFQ", Date: time.Now()})
	}
}

// SupplierQuotations inserts n supplier quotations
func (f *Fixtures) SupplierQuotations(n int) {
	f.t.Helper()
	for i := 0; i < n; i++ {
		f.create(&model.SupplierQuotation{SupplierName: "Acme Trading", TotalAmount: decimal.NewFromInt(100)})
	}
}

// Day returns midnight UTC of the given date
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
