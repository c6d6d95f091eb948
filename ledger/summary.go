package ledger

import (
	"database/sql"

	"ricemill-app/models"
)

// One row per distinct date across all four transaction tables. Dates
// are grouped exactly as stored (opaque ISO strings); empty and NULL
// dates are dropped. Rice-sold counts Rice only, revenue counts every
// product.
const dailySummaryQuery = `
	SELECT s.dt,
	       COALESCE((SELECT SUM(final_qtl) FROM purchases p WHERE p.dt = s.dt), 0),
	       COALESCE((SELECT SUM(final_used_qtl) FROM milling_input mi WHERE mi.dt = s.dt), 0),
	       COALESCE((SELECT SUM(final_out_qtl) FROM milling_output mo WHERE mo.dt = s.dt), 0),
	       COALESCE((SELECT SUM(final_qtl) FROM sales sa WHERE sa.dt = s.dt AND sa.product = 'Rice'), 0),
	       COALESCE((SELECT SUM(revenue) FROM sales sa WHERE sa.dt = s.dt), 0)
	FROM (
		SELECT dt FROM purchases
		UNION SELECT dt FROM milling_input
		UNION SELECT dt FROM milling_output
		UNION SELECT dt FROM sales
	) s
	WHERE s.dt IS NOT NULL AND s.dt <> ''
	ORDER BY s.dt DESC`

// DailySummary aggregates every transaction table into one row per
// date, newest first. Dates never get synthesized: a date appears only
// when at least one table has a row for it.
func DailySummary(db *sql.DB) ([]models.DailySummaryRow, error) {
	rows, err := db.Query(dailySummaryQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := []models.DailySummaryRow{}
	for rows.Next() {
		var r models.DailySummaryRow
		if err := rows.Scan(&r.Date, &r.PaddyInQtl, &r.PaddyUsedQtl,
			&r.RiceOutQtl, &r.RiceSoldQtl, &r.SalesRevenue); err != nil {
			return nil, err
		}
		summary = append(summary, r)
	}
	return summary, rows.Err()
}

// Dashboard returns the mill-wide money totals.
func Dashboard(db *sql.DB) (*models.DashboardSummary, error) {
	var d models.DashboardSummary
	err := db.QueryRow(`
		SELECT (SELECT COALESCE(SUM(revenue), 0) FROM sales),
		       (SELECT COALESCE(SUM(cost), 0) FROM purchases),
		       (SELECT COALESCE(SUM(expense), 0) FROM milling_input)`).
		Scan(&d.SalesRevenue, &d.PurchaseCost, &d.MillingExpense)
	if err != nil {
		return nil, err
	}
	d.GrossProfit = d.SalesRevenue - d.PurchaseCost - d.MillingExpense
	return &d, nil
}
