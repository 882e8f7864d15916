package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krasbyt/appliance-service-api/config"
	"github.com/krasbyt/appliance-service-api/models"
	"github.com/krasbyt/appliance-service-api/services"
)

// AddOrderRequest is the new-order form. Numeric fields arrive as form
// strings and are coerced; blank or zero prices are stored as NULL.
type AddOrderRequest struct {
	ClientID      string `form:"client_id" binding:"required"`
	Model         string `form:"model" binding:"required"`
	Description   string `form:"description"`
	StatusID      string `form:"status_id" binding:"required"`
	EmployeeID    string `form:"employee_id"`
	PurchasePrice string `form:"purchase_price"`
	RepairCosts   string `form:"repair_costs"`
	SalePrice     string `form:"sale_price"`
}

// ListOrders handles GET /orders - all orders, most recent first, plus
// the reference lists the order form needs
func ListOrders(c *gin.Context) {
	db := config.GetDB()

	var orders []models.Order
	if err := db.Order("created_at desc").
		Preload("Client").
		Preload("Status").
		Preload("Employee").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to retrieve orders",
			},
		})
		return
	}

	var statuses []models.OrderStatus
	var employees []models.Employee
	var clients []models.Client
	db.Find(&statuses)
	db.Find(&employees)
	db.Find(&clients)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"orders":    orders,
			"statuses":  statuses,
			"employees": employees,
			"clients":   clients,
		},
		"flash": takeFlash(c),
	})
}

// AddOrder handles POST /add_order
func AddOrder(c *gin.Context) {
	var req AddOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		setFlash(c, "Client, model and status are required")
		c.Redirect(http.StatusFound, "/orders")
		return
	}

	clientID, err := parseRequiredID(req.ClientID)
	if err != nil {
		setFlash(c, "Failed to create order")
		c.Redirect(http.StatusFound, "/orders")
		return
	}
	statusID, err := parseRequiredID(req.StatusID)
	if err != nil {
		setFlash(c, "Failed to create order")
		c.Redirect(http.StatusFound, "/orders")
		return
	}
	employeeID, err := parseOptionalID(req.EmployeeID)
	if err != nil {
		setFlash(c, "Failed to create order")
		c.Redirect(http.StatusFound, "/orders")
		return
	}

	purchasePrice, err1 := parseOptionalPrice(req.PurchasePrice)
	repairCosts, err2 := parseOptionalPrice(req.RepairCosts)
	salePrice, err3 := parseOptionalPrice(req.SalePrice)
	if err1 != nil || err2 != nil || err3 != nil {
		setFlash(c, "Failed to create order")
		c.Redirect(http.StatusFound, "/orders")
		return
	}

	db := config.GetDB()

	// Referenced rows must exist; the store does not enforce FKs on
	// every backend.
	if err := db.First(&models.Client{}, clientID).Error; err != nil {
		setFlash(c, "Client not found")
		c.Redirect(http.StatusFound, "/orders")
		return
	}
	if err := db.First(&models.OrderStatus{}, statusID).Error; err != nil {
		setFlash(c, "Order status not found")
		c.Redirect(http.StatusFound, "/orders")
		return
	}
	if employeeID != nil {
		if err := db.First(&models.Employee{}, *employeeID).Error; err != nil {
			setFlash(c, "Employee not found")
			c.Redirect(http.StatusFound, "/orders")
			return
		}
	}

	order := models.Order{
		ClientID:      clientID,
		Model:         req.Model,
		Description:   req.Description,
		StatusID:      statusID,
		EmployeeID:    employeeID,
		PurchasePrice: purchasePrice,
		RepairCosts:   repairCosts,
		SalePrice:     salePrice,
	}

	if err := db.Create(&order).Error; err != nil {
		setFlash(c, "Failed to create order")
		c.Redirect(http.StatusFound, "/orders")
		return
	}

	setFlash(c, "Order created successfully")
	c.Redirect(http.StatusFound, "/orders")
}

// DeleteOrder handles DELETE /delete_order/:id
func DeleteOrder(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order id"})
		return
	}

	db := config.GetDB()
	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to retrieve order"})
		return
	}

	if err := db.Delete(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// OrderDetails handles GET /api/order_details/:id - the full order card
// including the computed profit and, when present, a presigned photo URL
func OrderDetails(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order id"})
		return
	}

	db := config.GetDB()
	var order models.Order
	if err := db.Preload("Client").
		Preload("Status").
		Preload("Employee").
		First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to retrieve order"})
		return
	}

	var master interface{}
	if order.Employee != nil {
		master = order.Employee.Name
	}

	var photoURL interface{}
	if order.PhotoS3Key != nil {
		if imageService := services.GetImageService(); imageService != nil {
			url, err := imageService.GetImageURL(*order.PhotoS3Key)
			if err != nil {
				log.Printf("failed to generate photo URL for order %d: %v", order.ID, err)
			} else if url != "" {
				photoURL = url
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"order": gin.H{
			"id":             order.ID,
			"client_name":    order.Client.Name,
			"client_phone":   order.Client.Phone,
			"client_email":   order.Client.Email,
			"client_address": order.Client.Address,
			"model":          order.Model,
			"description":    order.Description,
			"status":         order.Status.Name,
			"status_class":   models.StatusBadgeClass(order.StatusID),
			"master":         master,
			"created_date":   order.CreatedAt.Format(dateLayout),
			"purchase_price": order.PurchasePrice,
			"repair_costs":   order.RepairCosts,
			"sale_price":     order.SalePrice,
			"profit":         order.Profit(),
			"photo_url":      photoURL,
		},
	})
}
