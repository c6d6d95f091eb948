package models

// Report rows returned by the ledger package. Display names resolve
// through the master tables and come back blank when the master row
// has been deleted; the raw id is kept alongside so nothing is lost.

type PaddyStockRow struct {
	PaddyID    string  `json:"paddy_id"`
	PaddyName  string  `json:"paddy_name"`
	InQtl      float64 `json:"in_qtl"`
	UsedQtl    float64 `json:"used_qtl"`
	ClosingQtl float64 `json:"closing_qtl"`
}

type GradeStockRow struct {
	GradeID    string  `json:"grade_id"`
	GradeName  string  `json:"grade_name"`
	OutQtl     float64 `json:"out_qtl"`
	SoldQtl    float64 `json:"sold_qtl"`
	ClosingQtl float64 `json:"closing_qtl"`
}

// YieldPct is nil when no paddy was used for the key; JSON renders it
// as null rather than a made-up number.

type PaddyYieldRow struct {
	PaddyID   string   `json:"paddy_id"`
	PaddyName string   `json:"paddy_name"`
	UsedQtl   float64  `json:"used_qtl"`
	OutQtl    float64  `json:"out_qtl"`
	YieldPct  *float64 `json:"yield_pct"`
}

type DailyYieldRow struct {
	Date     string   `json:"date"`
	UsedQtl  float64  `json:"used_qtl"`
	OutQtl   float64  `json:"out_qtl"`
	YieldPct *float64 `json:"yield_pct"`
}

type DailySummaryRow struct {
	Date         string  `json:"date"`
	PaddyInQtl   float64 `json:"paddy_in_qtl"`
	PaddyUsedQtl float64 `json:"paddy_used_qtl"`
	RiceOutQtl   float64 `json:"rice_out_qtl"`
	RiceSoldQtl  float64 `json:"rice_sold_qtl"`
	SalesRevenue float64 `json:"sales_revenue"`
}
