package store

import (
	"database/sql"

	"ricemill-app/models"
	"ricemill-app/units"
)

// AddPurchase normalizes the entered quantity with the given ratio,
// derives the cost and inserts the row. The canonical quantity is
// fixed here and never recomputed for this row.
func AddPurchase(db *sql.DB, p *models.Purchase, kgPerQtl int) error {
	p.FinalQtl = units.ToQuintal(p.QtyQtl, p.QtyKg, kgPerQtl)
	p.Cost = p.FinalQtl * p.RateQtl

	res, err := db.Exec(`
		INSERT INTO purchases(dt, paddy_id, qty_qtl, qty_kg, final_qtl, rate_qtl, cost, notes)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Date, p.PaddyID, p.QtyQtl, p.QtyKg, p.FinalQtl, p.RateQtl, p.Cost, p.Notes)
	if err != nil {
		return err
	}
	p.ID, err = res.LastInsertId()
	return err
}

// UpdatePurchase replaces the stored quantity, rate and notes, and
// recomputes the cost from them. Edits are made in quintals; after an
// edit the canonical quantity is the only stored quantity.
func UpdatePurchase(db *sql.DB, id int64, finalQtl, rateQtl float64, notes string) error {
	_, err := db.Exec(`
		UPDATE purchases SET final_qtl = ?, rate_qtl = ?, cost = ?, notes = ? WHERE id = ?`,
		finalQtl, rateQtl, finalQtl*rateQtl, notes, id)
	return err
}

func DeletePurchase(db *sql.DB, id int64) error {
	_, err := db.Exec(`DELETE FROM purchases WHERE id = ?`, id)
	return err
}

// ListPurchases returns purchases newest-first, optionally restricted
// to an inclusive date range.
func ListPurchases(db *sql.DB, from, to string) ([]models.Purchase, error) {
	query := `SELECT id, dt, paddy_id, qty_qtl, qty_kg, final_qtl, rate_qtl, cost, notes FROM purchases`
	where, args := dateRange(from, to)
	rows, err := db.Query(query+where+` ORDER BY id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	purchases := []models.Purchase{}
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(&p.ID, &p.Date, &p.PaddyID, &p.QtyQtl, &p.QtyKg,
			&p.FinalQtl, &p.RateQtl, &p.Cost, &p.Notes); err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

// dateRange builds the optional WHERE clause shared by the list
// queries. Dates compare as ISO strings, the same way they are stored.
func dateRange(from, to string) (string, []any) {
	var conds []string
	var args []any
	if from != "" {
		conds = append(conds, "dt >= ?")
		args = append(args, from)
	}
	if to != "" {
		conds = append(conds, "dt <= ?")
		args = append(args, to)
	}
	if len(conds) == 0 {
		return "", nil
	}
	where := " WHERE " + conds[0]
	if len(conds) == 2 {
		where += " AND " + conds[1]
	}
	return where, args
}
