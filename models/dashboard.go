// models/dashboard.go
package models

type DashboardSummary struct {
	SalesRevenue   float64 `json:"sales_revenue"`
	PurchaseCost   float64 `json:"purchase_cost"`
	MillingExpense float64 `json:"milling_expense"`
	GrossProfit    float64 `json:"gross_profit"`
}
