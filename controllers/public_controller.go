package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krasbyt/appliance-service-api/config"
	"github.com/krasbyt/appliance-service-api/models"
)

// BuyRequestForm is the public buyback intake form.
type BuyRequestForm struct {
	Name        string `form:"name" binding:"required"`
	Phone       string `form:"phone" binding:"required"`
	Model       string `form:"model" binding:"required"`
	Condition   string `form:"condition"`
	Description string `form:"description"`
}

// CheckStatusForm is the public order-status lookup. The phone number
// acts as a weak shared secret tied to the owning client.
type CheckStatusForm struct {
	OrderID string `form:"order_id" binding:"required"`
	Phone   string `form:"phone" binding:"required"`
}

// Index handles GET / - public landing view model
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"flash":   takeFlash(c),
	})
}

// BuyRequestPage handles GET /buy_request
func BuyRequestPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"flash":   takeFlash(c),
	})
}

// SubmitBuyRequest handles POST /buy_request - creates the client and
// its order together, or neither
func SubmitBuyRequest(c *gin.Context) {
	var req BuyRequestForm
	if err := c.ShouldBind(&req); err != nil {
		setFlash(c, "Name, phone and model are required")
		c.Redirect(http.StatusFound, "/buy_request")
		return
	}

	db := config.GetDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		client := models.Client{
			Name:  req.Name,
			Phone: req.Phone,
		}
		if err := tx.Create(&client).Error; err != nil {
			return err
		}

		order := models.Order{
			ClientID:    client.ID,
			Model:       req.Model,
			Condition:   req.Condition,
			Description: req.Description,
			StatusID:    models.StatusNew,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		setFlash(c, "Failed to submit request, please try again")
		c.Redirect(http.StatusFound, "/buy_request")
		return
	}

	setFlash(c, "Request submitted successfully! We will contact you shortly.")
	c.Redirect(http.StatusFound, "/")
}

// RepairStatusPage handles GET /repair_status
func RepairStatusPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"flash":   takeFlash(c),
	})
}

// CheckStatus handles POST /api/check_status - succeeds only when the
// order exists and the supplied phone matches the owning client exactly
func CheckStatus(c *gin.Context) {
	var req CheckStatusForm
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "order_id and phone are required"})
		return
	}

	orderID, err := parseRequiredID(req.OrderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}

	db := config.GetDB()
	var order models.Order
	if err := db.Preload("Client").Preload("Status").First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}

	if order.Client.Phone != req.Phone {
		// Same answer as an unknown id; do not reveal that the order exists.
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"status":      order.Status.Name,
			"model":       order.Model,
			"description": order.Description,
		},
	})
}
