package routes

import (
	"ricemill-app/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// Master routes
		api.POST("/paddy-types", controllers.CreatePaddyType)
		api.GET("/paddy-types", controllers.ListPaddyTypes)
		api.PUT("/paddy-types/:id", controllers.RenamePaddyType)
		api.DELETE("/paddy-types/:id", controllers.DeletePaddyType)

		api.POST("/rice-grades", controllers.CreateRiceGrade)
		api.GET("/rice-grades", controllers.ListRiceGrades)
		api.PUT("/rice-grades/:id/price", controllers.UpdateRiceGradePrice)
		api.DELETE("/rice-grades/:id", controllers.DeleteRiceGrade)

		// Transaction routes
		api.POST("/purchases", controllers.CreatePurchase)
		api.GET("/purchases", controllers.ListPurchases)
		api.PUT("/purchases/:id", controllers.UpdatePurchase)
		api.DELETE("/purchases/:id", controllers.DeletePurchase)

		api.POST("/milling-inputs", controllers.CreateMillingInput)
		api.GET("/milling-inputs", controllers.ListMillingInputs)
		api.PUT("/milling-inputs/:id", controllers.UpdateMillingInput)
		api.DELETE("/milling-inputs/:id", controllers.DeleteMillingInput)

		api.POST("/milling-outputs", controllers.CreateMillingOutput)
		api.GET("/milling-outputs", controllers.ListMillingOutputs)
		api.PUT("/milling-outputs/:id", controllers.UpdateMillingOutput)
		api.DELETE("/milling-outputs/:id", controllers.DeleteMillingOutput)

		api.POST("/sales", controllers.CreateSale)
		api.GET("/sales", controllers.ListSales)
		api.PUT("/sales/:id", controllers.UpdateSale)
		api.DELETE("/sales/:id", controllers.DeleteSale)

		// Settings routes
		api.GET("/settings/kg-per-quintal", controllers.GetKgPerQuintal)
		api.PUT("/settings/kg-per-quintal", controllers.UpdateKgPerQuintal)

		// Report routes
		api.GET("/reports/paddy-stock", controllers.GetPaddyStock)
		api.GET("/reports/grade-stock", controllers.GetGradeStock)
		api.GET("/reports/yield-by-paddy", controllers.GetYieldByPaddy)
		api.GET("/reports/yield-by-date", controllers.GetYieldByDate)
		api.GET("/reports/daily-summary", controllers.GetDailySummary)
		api.GET("/reports/dashboard", controllers.GetDashboard)

		// Export
		api.GET("/export", controllers.ExportWorkbook)
	}
}
