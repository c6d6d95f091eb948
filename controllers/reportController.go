package controllers

import (
	"net/http"

	"ricemill-app/config"
	"ricemill-app/ledger"

	"github.com/gin-gonic/gin"
)

// GetPaddyStock returns the paddy stock ledger: inflow, usage and
// closing balance per paddy type.
func GetPaddyStock(c *gin.Context) {
	stock, err := ledger.PaddyStock(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stock)
}

// GetGradeStock returns the rice grade stock ledger: milled output,
// sold quantity and closing balance per grade.
func GetGradeStock(c *gin.Context) {
	stock, err := ledger.GradeStock(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stock)
}

// GetYieldByPaddy returns overall milling yield per paddy type.
func GetYieldByPaddy(c *gin.Context) {
	report, err := ledger.YieldByPaddy(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetYieldByDate returns milling yield per calendar day, newest first.
func GetYieldByDate(c *gin.Context) {
	report, err := ledger.YieldByDate(config.DB, Logger)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetDailySummary returns one aggregated row per transaction date.
func GetDailySummary(c *gin.Context) {
	summary, err := ledger.DailySummary(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetDashboard returns the mill-wide money totals.
func GetDashboard(c *gin.Context) {
	dashboard, err := ledger.Dashboard(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
