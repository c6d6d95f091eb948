package controllers

import (
	"net/http"

	"ricemill-app/config"
	"ricemill-app/models"
	"ricemill-app/store"

	"github.com/gin-gonic/gin"
)

// CreateMillingInput handles recording paddy fed into the mill along
// with its husk/polish byproducts and the milling expense.
func CreateMillingInput(c *gin.Context) {
	var mi models.MillingInput
	if err := c.ShouldBindJSON(&mi); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDate(mi.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	if mi.PaddyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paddy_id is required"})
		return
	}
	if mi.UsedQtl <= 0 && mi.UsedKg <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Used quantity must be greater than 0"})
		return
	}
	if mi.HuskQtl < 0 || mi.PolishQtl < 0 || mi.Expense < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Husk, polish and expense must not be negative"})
		return
	}

	if err := store.AddMillingInput(config.DB, &mi, store.KgPerQuintal(config.DB)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, mi)
}

// ListMillingInputs retrieves milling inputs, optionally within a date
// range.
func ListMillingInputs(c *gin.Context) {
	from, to, ok := queryDateRange(c)
	if !ok {
		return
	}
	inputs, err := store.ListMillingInputs(config.DB, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inputs)
}

// UpdateMillingInput replaces the used quantity, byproducts, expense
// and notes of a milling-input row.
func UpdateMillingInput(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		UsedQtl   float64 `json:"final_used_qtl"`
		HuskQtl   float64 `json:"husk_qtl"`
		PolishQtl float64 `json:"polish_qtl"`
		Expense   float64 `json:"expense"`
		Notes     string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UsedQtl <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Used quantity must be greater than 0"})
		return
	}
	if req.HuskQtl < 0 || req.PolishQtl < 0 || req.Expense < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Husk, polish and expense must not be negative"})
		return
	}

	if err := store.UpdateMillingInput(config.DB, id, req.UsedQtl, req.HuskQtl, req.PolishQtl, req.Expense, req.Notes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Milling input updated successfully"})
}

// DeleteMillingInput removes a milling-input row by id.
func DeleteMillingInput(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := store.DeleteMillingInput(config.DB, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Milling input deleted successfully"})
}

// CreateMillingOutput handles recording rice produced into a grade.
// Any paddy type may produce any grade.
func CreateMillingOutput(c *gin.Context) {
	var mo models.MillingOutput
	if err := c.ShouldBindJSON(&mo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDate(mo.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	if mo.PaddyID == "" || mo.GradeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paddy_id and grade_id are required"})
		return
	}
	if mo.OutQtl <= 0 && mo.OutKg <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Output quantity must be greater than 0"})
		return
	}

	if err := store.AddMillingOutput(config.DB, &mo, store.KgPerQuintal(config.DB)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, mo)
}

// ListMillingOutputs retrieves milling outputs, optionally within a
// date range.
func ListMillingOutputs(c *gin.Context) {
	from, to, ok := queryDateRange(c)
	if !ok {
		return
	}
	outputs, err := store.ListMillingOutputs(config.DB, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, outputs)
}

// UpdateMillingOutput replaces the output quantity and notes.
func UpdateMillingOutput(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		OutQtl float64 `json:"final_out_qtl"`
		Notes  string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.OutQtl <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Output quantity must be greater than 0"})
		return
	}

	if err := store.UpdateMillingOutput(config.DB, id, req.OutQtl, req.Notes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Milling output updated successfully"})
}

// DeleteMillingOutput removes a milling-output row by id.
func DeleteMillingOutput(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := store.DeleteMillingOutput(config.DB, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Milling output deleted successfully"})
}
