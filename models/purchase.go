package models

// Purchase records paddy bought into stock. FinalQtl is the canonical
// quantity in quintals, fixed when the row is entered; Cost is always
// FinalQtl * RateQtl.
type Purchase struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	PaddyID  string  `json:"paddy_id"`
	QtyQtl   float64 `json:"qty_qtl"`
	QtyKg    float64 `json:"qty_kg"`
	FinalQtl float64 `json:"final_qtl"`
	RateQtl  float64 `json:"rate_qtl"`
	Cost     float64 `json:"cost"`
	Notes    string  `json:"notes"`
}
