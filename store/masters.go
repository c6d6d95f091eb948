package store

import (
	"database/sql"
	"fmt"

	"ricemill-app/models"
)

// Master table operations. Deletes do not cascade: transaction rows
// keep their reference and the ledger renders a blank name for it.

func ListPaddyTypes(db *sql.DB) ([]models.PaddyType, error) {
	rows, err := db.Query(`SELECT paddy_id, paddy_name FROM paddy_types ORDER BY paddy_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []models.PaddyType{}
	for rows.Next() {
		var pt models.PaddyType
		if err := rows.Scan(&pt.ID, &pt.Name); err != nil {
			return nil, err
		}
		types = append(types, pt)
	}
	return types, rows.Err()
}

func AddPaddyType(db *sql.DB, pt *models.PaddyType) error {
	_, err := db.Exec(`INSERT INTO paddy_types(paddy_id, paddy_name) VALUES(?, ?)`, pt.ID, pt.Name)
	return err
}

func RenamePaddyType(db *sql.DB, id, name string) error {
	_, err := db.Exec(`UPDATE paddy_types SET paddy_name = ? WHERE paddy_id = ?`, name, id)
	return err
}

func DeletePaddyType(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM paddy_types WHERE paddy_id = ?`, id)
	return err
}

func ListRiceGrades(db *sql.DB) ([]models.RiceGrade, error) {
	rows, err := db.Query(`SELECT grade_id, grade_name, default_price_qtl FROM rice_grades ORDER BY grade_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grades := []models.RiceGrade{}
	for rows.Next() {
		var g models.RiceGrade
		if err := rows.Scan(&g.ID, &g.Name, &g.DefaultPriceQtl); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

func AddRiceGrade(db *sql.DB, g *models.RiceGrade) error {
	if g.DefaultPriceQtl < 0 {
		return fmt.Errorf("default price must not be negative")
	}
	_, err := db.Exec(`INSERT INTO rice_grades(grade_id, grade_name, default_price_qtl) VALUES(?, ?, ?)`,
		g.ID, g.Name, g.DefaultPriceQtl)
	return err
}

// UpdateRiceGradePrice changes the entry default for future sales.
// Existing sales keep the rate they were recorded with.
func UpdateRiceGradePrice(db *sql.DB, id string, price float64) error {
	if price < 0 {
		return fmt.Errorf("default price must not be negative")
	}
	_, err := db.Exec(`UPDATE rice_grades SET default_price_qtl = ? WHERE grade_id = ?`, price, id)
	return err
}

func DeleteRiceGrade(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM rice_grades WHERE grade_id = ?`, id)
	return err
}
