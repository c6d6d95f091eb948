package controllers

import (
	"net/http"

	"ricemill-app/config"
	"ricemill-app/export"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExportWorkbook streams the whole database as an xlsx workbook, one
// sheet per table.
func ExportWorkbook(c *gin.Context) {
	f, err := export.Workbook(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=ricemill_data.xlsx")
	if err := f.Write(c.Writer); err != nil {
		Logger.Error("failed writing workbook response", zap.Error(err))
	}
}
