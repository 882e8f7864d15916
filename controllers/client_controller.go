package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krasbyt/appliance-service-api/config"
	"github.com/krasbyt/appliance-service-api/models"
)

// ClientRequest is the shared add/edit client form. ClientID is only
// present on edits.
type ClientRequest struct {
	ClientID string `form:"client_id"`
	Name     string `form:"name" binding:"required"`
	Phone    string `form:"phone" binding:"required"`
	Email    string `form:"email"`
	Address  string `form:"address"`
}

// ListClients handles GET /clients - the client directory view model
func ListClients(c *gin.Context) {
	db := config.GetDB()

	var clients []models.Client
	if err := db.Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to retrieve clients",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"clients": clients},
		"flash":   takeFlash(c),
	})
}

// AddClient handles POST /add_client
func AddClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBind(&req); err != nil {
		setFlash(c, "Name and phone are required")
		c.Redirect(http.StatusFound, "/clients")
		return
	}

	client := models.Client{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}

	db := config.GetDB()
	if err := db.Create(&client).Error; err != nil {
		setFlash(c, "Failed to add client")
		c.Redirect(http.StatusFound, "/clients")
		return
	}

	setFlash(c, "Client added successfully")
	c.Redirect(http.StatusFound, "/clients")
}

// EditClient handles POST /edit_client - full overwrite of the editable
// profile fields
func EditClient(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBind(&req); err != nil {
		setFlash(c, "Name and phone are required")
		c.Redirect(http.StatusFound, "/clients")
		return
	}

	clientID, err := parseRequiredID(req.ClientID)
	if err != nil {
		setFlash(c, "Failed to update client")
		c.Redirect(http.StatusFound, "/clients")
		return
	}

	db := config.GetDB()
	var client models.Client
	if err := db.First(&client, clientID).Error; err != nil {
		setFlash(c, "Client not found")
		c.Redirect(http.StatusFound, "/clients")
		return
	}

	client.Name = req.Name
	client.Phone = req.Phone
	client.Email = req.Email
	client.Address = req.Address

	if err := db.Save(&client).Error; err != nil {
		setFlash(c, "Failed to update client")
		c.Redirect(http.StatusFound, "/clients")
		return
	}

	setFlash(c, "Client updated successfully")
	c.Redirect(http.StatusFound, "/clients")
}

// DeleteClient handles DELETE /delete_client/:id - removes the client
// and every order it owns, all-or-nothing
func DeleteClient(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid client id"})
		return
	}

	db := config.GetDB()
	var client models.Client
	if err := db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to retrieve client"})
		return
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", client.ID).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		return tx.Delete(&client).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete client"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ClientDetails handles GET /api/client_details/:id - profile plus
// per-client order history and lifetime totals
func ClientDetails(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid client id"})
		return
	}

	db := config.GetDB()
	var client models.Client
	if err := db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Client not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to retrieve client"})
		return
	}

	var orders []models.Order
	if err := db.Where("client_id = ?", client.ID).
		Order("created_at asc").
		Preload("Status").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to retrieve orders"})
		return
	}

	ordersData := make([]gin.H, 0, len(orders))
	totalAmount := 0.0
	for i := range orders {
		order := &orders[i]

		statusClass := "warning"
		if order.StatusID == models.StatusCompleted {
			statusClass = "success"
		}

		ordersData = append(ordersData, gin.H{
			"id":           order.ID,
			"date":         order.CreatedAt.Format(dateLayout),
			"service":      order.Model,
			"amount":       order.Amount(),
			"status":       order.Status.Name,
			"status_class": statusClass,
		})
		totalAmount += order.Amount()
	}

	avgOrder := 0.0
	if len(orders) > 0 {
		avgOrder = totalAmount / float64(len(orders))
	}

	var lastOrder interface{}
	if len(orders) > 0 {
		lastOrder = orders[len(orders)-1].CreatedAt.Format(dateLayout)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"client": gin.H{
			"name":         client.Name,
			"phone":        client.Phone,
			"email":        client.Email,
			"address":      client.Address,
			"created_at":   client.CreatedAt.Format(dateLayout),
			"orders_count": len(orders),
			"total_amount": totalAmount,
			"avg_order":    avgOrder,
			"last_order":   lastOrder,
		},
		"orders": ordersData,
	})
}
