package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krasbyt/appliance-service-api/config"
	"github.com/krasbyt/appliance-service-api/models"
)

// Dashboard handles GET /dashboard - aggregate counts plus the five
// most recent orders
func Dashboard(c *gin.Context) {
	db := config.GetDB()

	var totalOrders, activeOrders, totalClients, lowStockParts int64
	if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		dashboardError(c)
		return
	}
	if err := db.Model(&models.Order{}).
		Where("status_id <> ?", models.StatusCompleted).
		Count(&activeOrders).Error; err != nil {
		dashboardError(c)
		return
	}
	if err := db.Model(&models.Client{}).Count(&totalClients).Error; err != nil {
		dashboardError(c)
		return
	}
	if err := db.Model(&models.SparePart{}).
		Where("quantity <= min_stock").
		Count(&lowStockParts).Error; err != nil {
		dashboardError(c)
		return
	}

	var recentOrders []models.Order
	if err := db.Order("created_at desc").
		Limit(5).
		Preload("Client").
		Preload("Status").
		Find(&recentOrders).Error; err != nil {
		dashboardError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total_orders":    totalOrders,
			"active_orders":   activeOrders,
			"total_clients":   totalClients,
			"low_stock_parts": lowStockParts,
			"recent_orders":   recentOrders,
		},
		"flash": takeFlash(c),
	})
}

func dashboardError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "DATABASE_ERROR",
			"message": "Failed to build dashboard summary",
		},
	})
}
