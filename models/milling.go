package models

// MillingInput records paddy fed into the mill. Husk and polish are
// weighed in quintals directly and are not part of the kg conversion.
type MillingInput struct {
	ID           int64   `json:"id"`
	Date         string  `json:"date"`
	PaddyID      string  `json:"paddy_id"`
	UsedQtl      float64 `json:"used_qtl"`
	UsedKg       float64 `json:"used_kg"`
	FinalUsedQtl float64 `json:"final_used_qtl"`
	HuskQtl      float64 `json:"husk_qtl"`
	PolishQtl    float64 `json:"polish_qtl"`
	Expense      float64 `json:"expense"`
	Notes        string  `json:"notes"`
}

// MillingOutput records rice produced from a paddy type into a grade.
type MillingOutput struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	PaddyID     string  `json:"paddy_id"`
	GradeID     string  `json:"grade_id"`
	OutQtl      float64 `json:"out_qtl"`
	OutKg       float64 `json:"out_kg"`
	FinalOutQtl float64 `json:"final_out_qtl"`
	Notes       string  `json:"notes"`
}
