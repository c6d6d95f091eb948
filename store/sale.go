package store

import (
	"database/sql"
	"fmt"

	"ricemill-app/models"
	"ricemill-app/units"
)

// AddSale normalizes the quantity, derives the revenue and inserts the
// row. The grade reference is stored only for Rice; for Husk and
// Polish it is forced to NULL whatever the caller sent.
func AddSale(db *sql.DB, s *models.Sale, kgPerQtl int) error {
	if !models.ValidProduct(s.Product) {
		return fmt.Errorf("unknown product %q", s.Product)
	}
	if s.Product != models.ProductRice {
		s.GradeID = ""
	}
	s.FinalQtl = units.ToQuintal(s.QtyQtl, s.QtyKg, kgPerQtl)
	s.Revenue = s.FinalQtl * s.RateQtl

	var gradeID any
	if s.GradeID != "" {
		gradeID = s.GradeID
	}

	res, err := db.Exec(`
		INSERT INTO sales(dt, product, grade_id, qty_qtl, qty_kg, final_qtl, rate_qtl, revenue, notes)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Date, s.Product, gradeID, s.QtyQtl, s.QtyKg, s.FinalQtl, s.RateQtl, s.Revenue, s.Notes)
	if err != nil {
		return err
	}
	s.ID, err = res.LastInsertId()
	return err
}

// UpdateSale replaces the stored quantity, rate and notes, and
// recomputes the revenue. Product and grade are fixed at entry.
func UpdateSale(db *sql.DB, id int64, finalQtl, rateQtl float64, notes string) error {
	_, err := db.Exec(`
		UPDATE sales SET final_qtl = ?, rate_qtl = ?, revenue = ?, notes = ? WHERE id = ?`,
		finalQtl, rateQtl, finalQtl*rateQtl, notes, id)
	return err
}

func DeleteSale(db *sql.DB, id int64) error {
	_, err := db.Exec(`DELETE FROM sales WHERE id = ?`, id)
	return err
}

// ListSales returns sales newest-first, optionally restricted to a
// date range and/or a single product.
func ListSales(db *sql.DB, from, to, product string) ([]models.Sale, error) {
	query := `SELECT id, dt, product, grade_id, qty_qtl, qty_kg, final_qtl, rate_qtl, revenue, notes FROM sales`
	where, args := dateRange(from, to)
	if product != "" {
		if where == "" {
			where = " WHERE product = ?"
		} else {
			where += " AND product = ?"
		}
		args = append(args, product)
	}
	rows, err := db.Query(query+where+` ORDER BY id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		var s models.Sale
		var gradeID sql.NullString
		if err := rows.Scan(&s.ID, &s.Date, &s.Product, &gradeID, &s.QtyQtl, &s.QtyKg,
			&s.FinalQtl, &s.RateQtl, &s.Revenue, &s.Notes); err != nil {
			return nil, err
		}
		s.GradeID = gradeID.String
		sales = append(sales, s)
	}
	return sales, rows.Err()
}
