package export_test

import (
	"database/sql"
	"reflect"
	"testing"

	"ricemill-app/config"
	"ricemill-app/export"
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
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := config.CreateTables(db); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	return db
}

func TestWorkbookHasOneSheetPerTable(t *testing.T) {
	db := newTestDB(t)

	if err := store.AddPaddyType(db, &models.PaddyType{ID: "PAD-1121", Name: "1121"}); err != nil {
		t.Fatalf("AddPaddyType: %v", err)
	}
	p := models.Purchase{Date: "2025-01-01", PaddyID: "PAD-1121", QtyQtl: 100, RateQtl: 2000}
	if err := store.AddPurchase(db, &p, 100); err != nil {
		t.Fatalf("AddPurchase: %v", err)
	}

	f, err := export.Workbook(db)
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); !reflect.DeepEqual(got, export.Tables) {
		t.Fatalf("sheets: got %v, want %v", got, export.Tables)
	}

	// Header row carries the column names.
	if got, err := f.GetCellValue("purchases", "A1"); err != nil || got != "id" {
		t.Fatalf("purchases!A1: got %q (err %v), want \"id\"", got, err)
	}
	if got, err := f.GetCellValue("purchases", "B1"); err != nil || got != "dt" {
		t.Fatalf("purchases!B1: got %q (err %v), want \"dt\"", got, err)
	}

	// Data row carries the stored values.
	if got, err := f.GetCellValue("purchases", "B2"); err != nil || got != "2025-01-01" {
		t.Fatalf("purchases!B2: got %q (err %v), want \"2025-01-01\"", got, err)
	}
	if got, err := f.GetCellValue("paddy_types", "A2"); err != nil || got != "PAD-1121" {
		t.Fatalf("paddy_types!A2: got %q (err %v), want \"PAD-1121\"", got, err)
	}
}

func TestWorkbookEmptyDatabase(t *testing.T) {
	db := newTestDB(t)

	f, err := export.Workbook(db)
	if err != nil {
		t.Fatalf("Workbook on empty database: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList(); len(got) != len(export.Tables) {
		t.Fatalf("sheets: got %v", got)
	}
	if got, err := f.GetCellValue("sales", "A1"); err != nil || got != "id" {
		t.Fatalf("sales!A1: got %q (err %v), want \"id\"", got, err)
	}
}
