package ledger

import (
	"database/sql"
	"sort"

	"ricemill-app/models"
)

// PaddyStock nets purchased paddy against milling usage per paddy
// type. Closing stock may go negative; that is left visible as a
// data-entry diagnostic rather than clamped or rejected.
func PaddyStock(db *sql.DB) ([]models.PaddyStockRow, error) {
	in, err := sumByKey(db, `SELECT paddy_id, COALESCE(SUM(final_qtl), 0) FROM purchases GROUP BY paddy_id`)
	if err != nil {
		return nil, err
	}
	used, err := sumByKey(db, `SELECT paddy_id, COALESCE(SUM(final_used_qtl), 0) FROM milling_input GROUP BY paddy_id`)
	if err != nil {
		return nil, err
	}
	names, err := nameIndex(db, `SELECT paddy_id, paddy_name FROM paddy_types`)
	if err != nil {
		return nil, err
	}

	keys := keyUnion(in, used)
	stock := make([]models.PaddyStockRow, 0, len(keys))
	for _, id := range keys {
		stock = append(stock, models.PaddyStockRow{
			PaddyID:    id,
			PaddyName:  names[id],
			InQtl:      in[id],
			UsedQtl:    used[id],
			ClosingQtl: in[id] - used[id],
		})
	}
	sort.SliceStable(stock, func(i, j int) bool {
		return nameLess(stock[i].PaddyName, stock[j].PaddyName, stock[i].PaddyID, stock[j].PaddyID)
	})
	return stock, nil
}

// GradeStock nets milled rice against rice sales per grade. Only sales
// with product = Rice count against grade stock.
func GradeStock(db *sql.DB) ([]models.GradeStockRow, error) {
	out, err := sumByKey(db, `SELECT grade_id, COALESCE(SUM(final_out_qtl), 0) FROM milling_output GROUP BY grade_id`)
	if err != nil {
		return nil, err
	}
	sold, err := sumByKey(db, `SELECT grade_id, COALESCE(SUM(final_qtl), 0) FROM sales WHERE product = 'Rice' GROUP BY grade_id`)
	if err != nil {
		return nil, err
	}
	names, err := nameIndex(db, `SELECT grade_id, grade_name FROM rice_grades`)
	if err != nil {
		return nil, err
	}

	keys := keyUnion(out, sold)
	stock := make([]models.GradeStockRow, 0, len(keys))
	for _, id := range keys {
		stock = append(stock, models.GradeStockRow{
			GradeID:    id,
			GradeName:  names[id],
			OutQtl:     out[id],
			SoldQtl:    sold[id],
			ClosingQtl: out[id] - sold[id],
		})
	}
	sort.SliceStable(stock, func(i, j int) bool {
		return nameLess(stock[i].GradeName, stock[j].GradeName, stock[i].GradeID, stock[j].GradeID)
	})
	return stock, nil
}

// nameLess orders rows by display name with blank names (deleted
// masters) last, falling back to the id for a stable order.
func nameLess(nameA, nameB, idA, idB string) bool {
	if (nameA == "") != (nameB == "") {
		return nameB == ""
	}
	if nameA != nameB {
		return nameA < nameB
	}
	return idA < idB
}
