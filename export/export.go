// Package export serializes the whole database into an xlsx workbook,
// one sheet per table, for offline backup and accountant handoff.
package export

import (
	"database/sql"

	"github.com/xuri/excelize/v2"
)

// Tables lists the exported tables in sheet order.
var Tables = []string{
	"paddy_types", "rice_grades", "purchases", "milling_input", "milling_output", "sales",
}

// Workbook dumps every table into its own sheet, with the column names
// as the header row. The caller owns closing the returned file.
func Workbook(db *sql.DB) (*excelize.File, error) {
	f := excelize.NewFile()
	for i, table := range Tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", table); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(table); err != nil {
				return nil, err
			}
		}
		if err := writeSheet(f, db, table); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeSheet(f *excelize.File, db *sql.DB, table string) error {
	rows, err := db.Query(`SELECT * FROM ` + table)
	if err != nil {
		return err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(table, cell, col); err != nil {
			return err
		}
	}

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	rowNo := 2
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		for i, v := range values {
			if v == nil {
				continue
			}
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			cell, err := excelize.CoordinatesToCellName(i+1, rowNo)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(table, cell, v); err != nil {
				return err
			}
		}
		rowNo++
	}
	return rows.Err()
}
