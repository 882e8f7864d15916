package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/krasbyt/appliance-service-api/config"
	"github.com/krasbyt/appliance-service-api/models"
)

// GenerateReportRequest is the JSON body of the report endpoint.
type GenerateReportRequest struct {
	Type     string `json:"type" binding:"required"`
	DateFrom string `json:"date_from" binding:"required"`
	DateTo   string `json:"date_to" binding:"required"`
}

// Reports handles GET /reports - the report builder view model with the
// current month preselected
func Reports(c *gin.Context) {
	db := config.GetDB()

	var employees []models.Employee
	if err := db.Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to retrieve employees",
			},
		})
		return
	}

	now := time.Now()
	firstDay := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastDay := firstDay.AddDate(0, 1, -1)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"employees":         employees,
			"default_date_from": firstDay.Format("2006-01-02"),
			"default_date_to":   lastDay.Format("2006-01-02"),
		},
		"flash": takeFlash(c),
	})
}

// GenerateReport handles POST /api/generate_report. The financial report
// is a fixed illustrative payload; real aggregation is not built yet.
func GenerateReport(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "type, date_from and date_to are required"})
		return
	}

	if _, err := time.Parse("2006-01-02", req.DateFrom); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "date_from must be YYYY-MM-DD"})
		return
	}
	if _, err := time.Parse("2006-01-02", req.DateTo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "date_to must be YYYY-MM-DD"})
		return
	}

	if req.Type != "financial" {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    gin.H{"message": "Report is under development"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total_revenue": 288900,
			"total_profit":  86670,
			"total_orders":  144,
			"categories": []gin.H{
				{"name": "Appliance sales", "count": 15, "amount": 187500, "percentage": 65},
				{"name": "Repair services", "count": 42, "amount": 84000, "percentage": 29},
				{"name": "Spare parts", "count": 87, "amount": 17400, "percentage": 6},
			},
		},
	})
}
