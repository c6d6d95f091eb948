package controllers

import (
	"net/http"
	"strconv"
	"time"

	"ricemill-app/config"
	"ricemill-app/models"
	"ricemill-app/store"

	"github.com/gin-gonic/gin"
)

// Input validation lives here, in front of the store: positive
// quantities and rates, known product values, well-formed dates. The
// store below assumes clean numeric input.

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// parseID reads the :id route parameter, answering 400 itself when it
// is not numeric.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

// queryDateRange reads the optional from/to filters, answering 400
// itself when either is malformed.
func queryDateRange(c *gin.Context) (string, string, bool) {
	from, to := c.Query("from"), c.Query("to")
	if from != "" && !validDate(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date. Use YYYY-MM-DD"})
		return "", "", false
	}
	if to != "" && !validDate(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date. Use YYYY-MM-DD"})
		return "", "", false
	}
	return from, to, true
}

// editRequest is the tuple every in-place edit replaces: canonical
// quantity, rate and notes. The derived value is recomputed from it.
type editRequest struct {
	FinalQtl float64 `json:"final_qtl"`
	RateQtl  float64 `json:"rate_qtl"`
	Notes    string  `json:"notes"`
}

// CreatePurchase handles recording a new paddy purchase.
func CreatePurchase(c *gin.Context) {
	var p models.Purchase
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDate(p.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	if p.PaddyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paddy_id is required"})
		return
	}
	if p.QtyQtl <= 0 && p.QtyKg <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be greater than 0"})
		return
	}
	if p.RateQtl <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rate must be greater than 0"})
		return
	}

	if err := store.AddPurchase(config.DB, &p, store.KgPerQuintal(config.DB)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListPurchases retrieves purchases, optionally within a date range.
func ListPurchases(c *gin.Context) {
	from, to, ok := queryDateRange(c)
	if !ok {
		return
	}
	purchases, err := store.ListPurchases(config.DB, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, purchases)
}

// UpdatePurchase replaces quantity, rate and notes and recomputes the
// cost.
func UpdatePurchase(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req editRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.FinalQtl <= 0 || req.RateQtl <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity and rate must be greater than 0"})
		return
	}

	if err := store.UpdatePurchase(config.DB, id, req.FinalQtl, req.RateQtl, req.Notes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase updated successfully"})
}

// DeletePurchase removes a purchase by id.
func DeletePurchase(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := store.DeletePurchase(config.DB, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase deleted successfully"})
}

// CreateSale handles recording a sale of rice, husk or polish. A rice
// sale must name the grade it draws down; other products carry none.
func CreateSale(c *gin.Context) {
	var s models.Sale
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validDate(s.Date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}
	if !models.ValidProduct(s.Product) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product must be Rice, Husk or Polish"})
		return
	}
	if s.Product == models.ProductRice && s.GradeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grade_id is required for Rice sales"})
		return
	}
	if s.QtyQtl <= 0 && s.QtyKg <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be greater than 0"})
		return
	}
	if s.RateQtl <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rate must be greater than 0"})
		return
	}

	if err := store.AddSale(config.DB, &s, store.KgPerQuintal(config.DB)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, s)
}

// ListSales retrieves sales, optionally within a date range and/or for
// one product.
func ListSales(c *gin.Context) {
	from, to, ok := queryDateRange(c)
	if !ok {
		return
	}
	product := c.Query("product")
	if product != "" && !models.ValidProduct(product) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product must be Rice, Husk or Polish"})
		return
	}

	sales, err := store.ListSales(config.DB, from, to, product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sales)
}

// UpdateSale replaces quantity, rate and notes and recomputes the
// revenue. Product and grade stay as entered.
func UpdateSale(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req editRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.FinalQtl <= 0 || req.RateQtl <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity and rate must be greater than 0"})
		return
	}

	if err := store.UpdateSale(config.DB, id, req.FinalQtl, req.RateQtl, req.Notes); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale updated successfully"})
}

// DeleteSale removes a sale by id.
func DeleteSale(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := store.DeleteSale(config.DB, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
}
