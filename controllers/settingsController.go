package controllers

import (
	"net/http"

	"ricemill-app/config"
	"ricemill-app/store"
	"ricemill-app/units"

	"github.com/gin-gonic/gin"
)

// GetKgPerQuintal returns the active conversion ratio.
func GetKgPerQuintal(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"kg_per_qtl": store.KgPerQuintal(config.DB)})
}

// UpdateKgPerQuintal stores a new conversion ratio. Rows already
// entered keep their canonical quantities; only future entries use the
// new ratio.
func UpdateKgPerQuintal(c *gin.Context) {
	var req struct {
		KgPerQtl int `json:"kg_per_qtl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if !units.ValidRatio(req.KgPerQtl) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kg_per_qtl must be between 1 and 200"})
		return
	}

	if err := store.SetKgPerQuintal(config.DB, req.KgPerQtl); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversion saved", "kg_per_qtl": req.KgPerQtl})
}
