package store_test

import (
	"database/sql"
	"math"
	"testing"

	"ricemill-app/config"
	"ricemill-app/models"
	"ricemill-app/store"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// One shared in-memory database, not one per pooled connection.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := config.CreateTables(db); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	return db
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestKgPerQuintalDefaultAndRoundTrip(t *testing.T) {
	db := newTestDB(t)

	if got := store.KgPerQuintal(db); got != 100 {
		t.Fatalf("unset ratio: got %d, want default 100", got)
	}

	if err := store.SetKgPerQuintal(db, 90); err != nil {
		t.Fatalf("SetKgPerQuintal(90): %v", err)
	}
	if got := store.KgPerQuintal(db); got != 90 {
		t.Fatalf("after set: got %d, want 90", got)
	}

	if err := store.SetKgPerQuintal(db, 0); err == nil {
		t.Fatal("SetKgPerQuintal(0): expected range error")
	}
	if err := store.SetKgPerQuintal(db, 201); err == nil {
		t.Fatal("SetKgPerQuintal(201): expected range error")
	}

	// A corrupt stored value falls back to the default instead of failing.
	if _, err := db.Exec(`UPDATE config SET value = 'garbage' WHERE key = 'kg_per_qtl'`); err != nil {
		t.Fatalf("corrupt value: %v", err)
	}
	if got := store.KgPerQuintal(db); got != 100 {
		t.Fatalf("corrupt ratio: got %d, want default 100", got)
	}
}

func TestAddPurchaseDerivesCanonicalAndCost(t *testing.T) {
	db := newTestDB(t)

	p := models.Purchase{Date: "2025-01-01", PaddyID: "PAD-1121", QtyQtl: 100, RateQtl: 2000}
	if err := store.AddPurchase(db, &p, 100); err != nil {
		t.Fatalf("AddPurchase: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("AddPurchase did not assign an id")
	}
	if !almostEqual(p.FinalQtl, 100) || !almostEqual(p.Cost, 200000) {
		t.Fatalf("derived fields: final=%v cost=%v, want 100 / 200000", p.FinalQtl, p.Cost)
	}

	kg := models.Purchase{Date: "2025-01-02", PaddyID: "PAD-1121", QtyKg: 250, RateQtl: 2000}
	if err := store.AddPurchase(db, &kg, 100); err != nil {
		t.Fatalf("AddPurchase (kg): %v", err)
	}
	if !almostEqual(kg.FinalQtl, 2.5) || !almostEqual(kg.Cost, 5000) {
		t.Fatalf("kg entry: final=%v cost=%v, want 2.5 / 5000", kg.FinalQtl, kg.Cost)
	}
}

func TestRatioChangeDoesNotRewriteStoredRows(t *testing.T) {
	db := newTestDB(t)

	p := models.Purchase{Date: "2025-01-01", PaddyID: "PAD-1121", QtyKg: 250, RateQtl: 1000}
	if err := store.AddPurchase(db, &p, 100); err != nil {
		t.Fatalf("AddPurchase: %v", err)
	}

	if err := store.SetKgPerQuintal(db, 50); err != nil {
		t.Fatalf("SetKgPerQuintal: %v", err)
	}

	stored, err := store.ListPurchases(db, "", "")
	if err != nil {
		t.Fatalf("ListPurchases: %v", err)
	}
	if len(stored) != 1 || !almostEqual(stored[0].FinalQtl, 2.5) {
		t.Fatalf("stored canonical quantity changed after ratio update: %+v", stored)
	}

	// Only rows entered after the change see the new ratio.
	next := models.Purchase{Date: "2025-01-02", PaddyID: "PAD-1121", QtyKg: 250, RateQtl: 1000}
	if err := store.AddPurchase(db, &next, store.KgPerQuintal(db)); err != nil {
		t.Fatalf("AddPurchase (new ratio): %v", err)
	}
	if !almostEqual(next.FinalQtl, 5) {
		t.Fatalf("new entry: final=%v, want 5", next.FinalQtl)
	}
}

func TestUpdatePurchaseRecomputesCost(t *testing.T) {
	db := newTestDB(t)

	p := models.Purchase{Date: "2025-01-01", PaddyID: "PAD-1121", QtyQtl: 10, RateQtl: 2000}
	if err := store.AddPurchase(db, &p, 100); err != nil {
		t.Fatalf("AddPurchase: %v", err)
	}

	if err := store.UpdatePurchase(db, p.ID, 12, 2100, "recount"); err != nil {
		t.Fatalf("UpdatePurchase: %v", err)
	}

	stored, err := store.ListPurchases(db, "", "")
	if err != nil {
		t.Fatalf("ListPurchases: %v", err)
	}
	got := stored[0]
	if !almostEqual(got.FinalQtl, 12) || !almostEqual(got.RateQtl, 2100) || !almostEqual(got.Cost, 25200) {
		t.Fatalf("after edit: final=%v rate=%v cost=%v, want 12 / 2100 / 25200", got.FinalQtl, got.RateQtl, got.Cost)
	}
	if got.Notes != "recount" {
		t.Fatalf("after edit: notes=%q, want %q", got.Notes, "recount")
	}
}

func TestAddSaleGradeOnlyForRice(t *testing.T) {
	db := newTestDB(t)

	rice := models.Sale{Date: "2025-01-03", Product: models.ProductRice, GradeID: "GRD-WAND", QtyQtl: 30, RateQtl: 3000}
	if err := store.AddSale(db, &rice, 100); err != nil {
		t.Fatalf("AddSale (rice): %v", err)
	}
	if !almostEqual(rice.Revenue, 90000) {
		t.Fatalf("rice revenue: got %v, want 90000", rice.Revenue)
	}

	// A grade sneaking in on a husk sale is dropped, not stored.
	husk := models.Sale{Date: "2025-01-03", Product: models.ProductHusk, GradeID: "GRD-WAND", QtyQtl: 5, RateQtl: 200}
	if err := store.AddSale(db, &husk, 100); err != nil {
		t.Fatalf("AddSale (husk): %v", err)
	}
	if husk.GradeID != "" {
		t.Fatalf("husk sale kept grade %q", husk.GradeID)
	}

	bad := models.Sale{Date: "2025-01-03", Product: "Bran", QtyQtl: 1, RateQtl: 100}
	if err := store.AddSale(db, &bad, 100); err == nil {
		t.Fatal("AddSale with unknown product: expected error")
	}

	stored, err := store.ListSales(db, "", "", "")
	if err != nil {
		t.Fatalf("ListSales: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("stored sales: got %d, want 2", len(stored))
	}
	for _, s := range stored {
		if s.Product == models.ProductHusk && s.GradeID != "" {
			t.Fatalf("husk sale stored with grade %q", s.GradeID)
		}
		if s.Product == models.ProductRice && s.GradeID != "GRD-WAND" {
			t.Fatalf("rice sale lost its grade: %+v", s)
		}
	}
}

func TestListSalesFilters(t *testing.T) {
	db := newTestDB(t)

	seed := []models.Sale{
		{Date: "2025-01-01", Product: models.ProductRice, GradeID: "GRD-WAND", QtyQtl: 10, RateQtl: 3000},
		{Date: "2025-01-02", Product: models.ProductHusk, QtyQtl: 4, RateQtl: 200},
		{Date: "2025-02-01", Product: models.ProductRice, GradeID: "GRD-DUB", QtyQtl: 6, RateQtl: 2800},
	}
	for i := range seed {
		if err := store.AddSale(db, &seed[i], 100); err != nil {
			t.Fatalf("AddSale: %v", err)
		}
	}

	rice, err := store.ListSales(db, "", "", models.ProductRice)
	if err != nil {
		t.Fatalf("ListSales (product): %v", err)
	}
	if len(rice) != 2 {
		t.Fatalf("rice filter: got %d rows, want 2", len(rice))
	}

	january, err := store.ListSales(db, "2025-01-01", "2025-01-31", "")
	if err != nil {
		t.Fatalf("ListSales (range): %v", err)
	}
	if len(january) != 2 {
		t.Fatalf("january filter: got %d rows, want 2", len(january))
	}

	both, err := store.ListSales(db, "2025-01-01", "2025-01-31", models.ProductRice)
	if err != nil {
		t.Fatalf("ListSales (range+product): %v", err)
	}
	if len(both) != 1 || both[0].GradeID != "GRD-WAND" {
		t.Fatalf("combined filter: got %+v", both)
	}
}

func TestMillingInputRoundTrip(t *testing.T) {
	db := newTestDB(t)

	mi := models.MillingInput{Date: "2025-01-05", PaddyID: "PAD-1121", UsedKg: 500, HuskQtl: 0.8, PolishQtl: 0.2, Expense: 1500}
	if err := store.AddMillingInput(db, &mi, 100); err != nil {
		t.Fatalf("AddMillingInput: %v", err)
	}
	if !almostEqual(mi.FinalUsedQtl, 5) {
		t.Fatalf("canonical used: got %v, want 5", mi.FinalUsedQtl)
	}

	if err := store.UpdateMillingInput(db, mi.ID, 6, 1.0, 0.3, 1600, "reweighed"); err != nil {
		t.Fatalf("UpdateMillingInput: %v", err)
	}

	stored, err := store.ListMillingInputs(db, "", "")
	if err != nil {
		t.Fatalf("ListMillingInputs: %v", err)
	}
	got := stored[0]
	if !almostEqual(got.FinalUsedQtl, 6) || !almostEqual(got.HuskQtl, 1.0) || !almostEqual(got.Expense, 1600) {
		t.Fatalf("after edit: %+v", got)
	}

	if err := store.DeleteMillingInput(db, mi.ID); err != nil {
		t.Fatalf("DeleteMillingInput: %v", err)
	}
	stored, err = store.ListMillingInputs(db, "", "")
	if err != nil {
		t.Fatalf("ListMillingInputs after delete: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("row survived delete: %+v", stored)
	}
}
