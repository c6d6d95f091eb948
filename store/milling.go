package store

import (
	"database/sql"

	"ricemill-app/models"
	"ricemill-app/units"
)

// AddMillingInput normalizes the used quantity and inserts the row.
// Husk and polish are entered in quintals directly and stored as-is.
func AddMillingInput(db *sql.DB, mi *models.MillingInput, kgPerQtl int) error {
	mi.FinalUsedQtl = units.ToQuintal(mi.UsedQtl, mi.UsedKg, kgPerQtl)

	res, err := db.Exec(`
		INSERT INTO milling_input(dt, paddy_id, used_qtl, used_kg, final_used_qtl, husk_qtl, polish_qtl, expense, notes)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		mi.Date, mi.PaddyID, mi.UsedQtl, mi.UsedKg, mi.FinalUsedQtl,
		mi.HuskQtl, mi.PolishQtl, mi.Expense, mi.Notes)
	if err != nil {
		return err
	}
	mi.ID, err = res.LastInsertId()
	return err
}

func UpdateMillingInput(db *sql.DB, id int64, usedQtl, huskQtl, polishQtl, expense float64, notes string) error {
	_, err := db.Exec(`
		UPDATE milling_input SET final_used_qtl = ?, husk_qtl = ?, polish_qtl = ?, expense = ?, notes = ?
		WHERE id = ?`,
		usedQtl, huskQtl, polishQtl, expense, notes, id)
	return err
}

func DeleteMillingInput(db *sql.DB, id int64) error {
	_, err := db.Exec(`DELETE FROM milling_input WHERE id = ?`, id)
	return err
}

func ListMillingInputs(db *sql.DB, from, to string) ([]models.MillingInput, error) {
	query := `SELECT id, dt, paddy_id, used_qtl, used_kg, final_used_qtl, husk_qtl, polish_qtl, expense, notes
		FROM milling_input`
	where, args := dateRange(from, to)
	rows, err := db.Query(query+where+` ORDER BY id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inputs := []models.MillingInput{}
	for rows.Next() {
		var mi models.MillingInput
		if err := rows.Scan(&mi.ID, &mi.Date, &mi.PaddyID, &mi.UsedQtl, &mi.UsedKg,
			&mi.FinalUsedQtl, &mi.HuskQtl, &mi.PolishQtl, &mi.Expense, &mi.Notes); err != nil {
			return nil, err
		}
		inputs = append(inputs, mi)
	}
	return inputs, rows.Err()
}

// AddMillingOutput normalizes the produced quantity and inserts the
// row. Any paddy type may produce any grade.
func AddMillingOutput(db *sql.DB, mo *models.MillingOutput, kgPerQtl int) error {
	mo.FinalOutQtl = units.ToQuintal(mo.OutQtl, mo.OutKg, kgPerQtl)

	res, err := db.Exec(`
		INSERT INTO milling_output(dt, paddy_id, grade_id, out_qtl, out_kg, final_out_qtl, notes)
		VALUES(?, ?, ?, ?, ?, ?, ?)`,
		mo.Date, mo.PaddyID, mo.GradeID, mo.OutQtl, mo.OutKg, mo.FinalOutQtl, mo.Notes)
	if err != nil {
		return err
	}
	mo.ID, err = res.LastInsertId()
	return err
}

func UpdateMillingOutput(db *sql.DB, id int64, outQtl float64, notes string) error {
	_, err := db.Exec(`UPDATE milling_output SET final_out_qtl = ?, notes = ? WHERE id = ?`, outQtl, notes, id)
	return err
}

func DeleteMillingOutput(db *sql.DB, id int64) error {
	_, err := db.Exec(`DELETE FROM milling_output WHERE id = ?`, id)
	return err
}

func ListMillingOutputs(db *sql.DB, from, to string) ([]models.MillingOutput, error) {
	query := `SELECT id, dt, paddy_id, grade_id, out_qtl, out_kg, final_out_qtl, notes FROM milling_output`
	where, args := dateRange(from, to)
	rows, err := db.Query(query+where+` ORDER BY id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	outputs := []models.MillingOutput{}
	for rows.Next() {
		var mo models.MillingOutput
		var gradeID sql.NullString
		if err := rows.Scan(&mo.ID, &mo.Date, &mo.PaddyID, &gradeID,
			&mo.OutQtl, &mo.OutKg, &mo.FinalOutQtl, &mo.Notes); err != nil {
			return nil, err
		}
		mo.GradeID = gradeID.String
		outputs = append(outputs, mo)
	}
	return outputs, rows.Err()
}
