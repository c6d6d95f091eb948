package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

var DB *sql.DB

// InitDB opens the SQLite database at path, creates missing tables and
// seeds the default masters and settings.
func InitDB(path string) error {
	var err error
	DB, err = sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := CreateTables(DB); err != nil {
		return err
	}
	return seedDefaults(DB)
}

// CreateTables creates the schema if it does not exist. All statements
// run inside one transaction so a half-created schema never persists.
func CreateTables(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS config (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS paddy_types (
			paddy_id TEXT PRIMARY KEY,
			paddy_name TEXT UNIQUE
		);`,
		`CREATE TABLE IF NOT EXISTS rice_grades (
			grade_id TEXT PRIMARY KEY,
			grade_name TEXT UNIQUE,
			default_price_qtl REAL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS purchases (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dt TEXT,
			paddy_id TEXT,
			qty_qtl REAL,
			qty_kg REAL,
			final_qtl REAL,          -- canonical quantity, computed at entry
			rate_qtl REAL,
			cost REAL,               -- final_qtl * rate_qtl
			notes TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS milling_input (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dt TEXT,
			paddy_id TEXT,
			used_qtl REAL,
			used_kg REAL,
			final_used_qtl REAL,
			husk_qtl REAL,
			polish_qtl REAL,
			expense REAL,
			notes TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS milling_output (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dt TEXT,
			paddy_id TEXT,
			grade_id TEXT,
			out_qtl REAL,
			out_kg REAL,
			final_out_qtl REAL,
			notes TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS sales (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dt TEXT,
			product TEXT,
			grade_id TEXT,           -- NULL unless product = 'Rice'
			qty_qtl REAL,
			qty_kg REAL,
			final_qtl REAL,
			rate_qtl REAL,
			revenue REAL,            -- final_qtl * rate_qtl
			notes TEXT
		);`,
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("create tables: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// seedDefaults inserts the conversion ratio and the mill's standard
// masters. INSERT OR IGNORE keeps restarts harmless.
func seedDefaults(db *sql.DB) error {
	seeds := []string{
		`INSERT OR IGNORE INTO config(key, value) VALUES('kg_per_qtl', '100');`,
		`INSERT OR IGNORE INTO paddy_types(paddy_id, paddy_name) VALUES
			('PAD-1121','1121'),('PAD-1509','1509'),('PAD-PR14','PR-14');`,
		`INSERT OR IGNORE INTO rice_grades(grade_id, grade_name, default_price_qtl) VALUES
			('GRD-WAND','Wand',0),('GRD-S2ND','Super 2nd Wand',0),('GRD-2ND','2nd Wand',0),
			('GRD-TIBAR','Tibar',0),('GRD-SDUB','Super Dubar',0),('GRD-DUB','Dubar',0),
			('GRD-MDUB','Mini Dubar',0),('GRD-SMOG','Super Mogara',0),('GRD-MOG','Mogara',0),
			('GRD-MMOG','Mini Mogara',0);`,
	}
	for _, stmt := range seeds {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("seed defaults: %w", err)
		}
	}
	return nil
}
