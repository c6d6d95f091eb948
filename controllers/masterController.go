package controllers

import (
	"net/http"

	"ricemill-app/config"
	"ricemill-app/models"
	"ricemill-app/store"

	"github.com/gin-gonic/gin"
)

// CreatePaddyType handles adding a new paddy variety master.
func CreatePaddyType(c *gin.Context) {
	var pt models.PaddyType
	if err := c.ShouldBindJSON(&pt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if pt.ID == "" || pt.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paddy_id and paddy_name are required"})
		return
	}

	if err := store.AddPaddyType(config.DB, &pt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, pt)
}

// ListPaddyTypes retrieves all paddy varieties, name-ordered.
func ListPaddyTypes(c *gin.Context) {
	types, err := store.ListPaddyTypes(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, types)
}

// RenamePaddyType changes the display name; the id, and with it every
// historical reference, stays as it is.
func RenamePaddyType(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Name string `json:"paddy_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paddy_name is required"})
		return
	}

	if err := store.RenamePaddyType(config.DB, id, req.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Paddy type updated successfully"})
}

// DeletePaddyType removes the master row. Transactions referencing it
// are kept and show up with a blank name in reports.
func DeletePaddyType(c *gin.Context) {
	if err := store.DeletePaddyType(config.DB, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Paddy type deleted successfully"})
}

// CreateRiceGrade handles adding a new rice grade master.
func CreateRiceGrade(c *gin.Context) {
	var g models.RiceGrade
	if err := c.ShouldBindJSON(&g); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if g.ID == "" || g.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grade_id and grade_name are required"})
		return
	}

	if err := store.AddRiceGrade(config.DB, &g); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, g)
}

// ListRiceGrades retrieves all rice grades, name-ordered.
func ListRiceGrades(c *gin.Context) {
	grades, err := store.ListRiceGrades(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, grades)
}

// UpdateRiceGradePrice sets the entry default for future sales.
func UpdateRiceGradePrice(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		DefaultPriceQtl float64 `json:"default_price_qtl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.DefaultPriceQtl < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "default_price_qtl must not be negative"})
		return
	}

	if err := store.UpdateRiceGradePrice(config.DB, id, req.DefaultPriceQtl); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Grade price updated successfully"})
}

// DeleteRiceGrade removes the master row without cascading.
func DeleteRiceGrade(c *gin.Context) {
	if err := store.DeleteRiceGrade(config.DB, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rice grade deleted successfully"})
}
