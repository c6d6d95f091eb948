package models

const (
	ProductRice   = "Rice"
	ProductHusk   = "Husk"
	ProductPolish = "Polish"
)

// Sale records product sold out of stock. GradeID is set when and only
// when Product is Rice; Revenue is always FinalQtl * RateQtl.
type Sale struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	Product  string  `json:"product"`
	GradeID  string  `json:"grade_id,omitempty"`
	QtyQtl   float64 `json:"qty_qtl"`
	QtyKg    float64 `json:"qty_kg"`
	FinalQtl float64 `json:"final_qtl"`
	RateQtl  float64 `json:"rate_qtl"`
	Revenue  float64 `json:"revenue"`
	Notes    string  `json:"notes"`
}

// ValidProduct reports whether p is one of the sellable products.
func ValidProduct(p string) bool {
	switch p {
	case ProductRice, ProductHusk, ProductPolish:
		return true
	}
	return false
}
