package models

// RiceGrade is a master record for a rice cut. The default price only
// pre-fills new sale entries; existing sales keep the rate they were
// recorded with.
type RiceGrade struct {
	ID              string  `json:"grade_id"`
	Name            string  `json:"grade_name"`
	DefaultPriceQtl float64 `json:"default_price_qtl"`
}
