// Package store holds the typed read/write operations over the
// transaction tables, the master tables and the settings scalar.
// Derived fields (canonical quintal quantities, cost, revenue) are
// computed here and nowhere else.
package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"ricemill-app/units"
)

const kgPerQtlKey = "kg_per_qtl"

// KgPerQuintal returns the stored conversion ratio. A missing or
// unreadable value falls back to the default instead of failing.
func KgPerQuintal(db *sql.DB) int {
	var raw string
	err := db.QueryRow(`SELECT value FROM config WHERE key = ?`, kgPerQtlKey).Scan(&raw)
	if err != nil {
		return units.DefaultKgPerQuintal
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return units.DefaultKgPerQuintal
	}
	v := int(f)
	if !units.ValidRatio(v) {
		return units.DefaultKgPerQuintal
	}
	return v
}

// SetKgPerQuintal stores the conversion ratio. Previously recorded
// canonical quantities are left untouched; the new ratio only applies
// to rows entered afterwards.
func SetKgPerQuintal(db *sql.DB, v int) error {
	if !units.ValidRatio(v) {
		return fmt.Errorf("kg per quintal must be between %d and %d", units.MinKgPerQuintal, units.MaxKgPerQuintal)
	}
	_, err := db.Exec(`INSERT OR REPLACE INTO config(key, value) VALUES(?, ?)`, kgPerQtlKey, strconv.Itoa(v))
	return err
}
