package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/krasbyt/appliance-service-api/config"
	"github.com/krasbyt/appliance-service-api/models"
)

// SparePartRequest is the shared add/edit spare part form. PartID is
// only present on edits.
type SparePartRequest struct {
	PartID      string  `form:"part_id"`
	Name        string  `form:"name" binding:"required"`
	Article     string  `form:"article" binding:"required"`
	Quantity    int     `form:"quantity"`
	MinStock    int     `form:"min_stock"`
	CostPrice   float64 `form:"cost_price"`
	RetailPrice float64 `form:"retail_price"`
}

// Warehouse handles GET /warehouse - inventory with low-stock flags
func Warehouse(c *gin.Context) {
	db := config.GetDB()

	var parts []models.SparePart
	if err := db.Find(&parts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to retrieve spare parts",
			},
		})
		return
	}

	partsData := make([]gin.H, 0, len(parts))
	for i := range parts {
		part := &parts[i]
		partsData = append(partsData, gin.H{
			"id":           part.ID,
			"name":         part.Name,
			"article":      part.Article,
			"quantity":     part.Quantity,
			"min_stock":    part.MinStock,
			"cost_price":   part.CostPrice,
			"retail_price": part.RetailPrice,
			"low_stock":    part.LowStock(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"spare_parts": partsData},
		"flash":   takeFlash(c),
	})
}

// AddSparePart handles POST /add_spare_part
func AddSparePart(c *gin.Context) {
	var req SparePartRequest
	if err := c.ShouldBind(&req); err != nil {
		setFlash(c, "Name and article are required")
		c.Redirect(http.StatusFound, "/warehouse")
		return
	}

	db := config.GetDB()

	var existing models.SparePart
	if err := db.Where("article = ?", req.Article).First(&existing).Error; err == nil {
		setFlash(c, "A spare part with this article already exists")
		c.Redirect(http.StatusFound, "/warehouse")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		setFlash(c, "Failed to add spare part")
		c.Redirect(http.StatusFound, "/warehouse")
		return
	}

	part := models.SparePart{
		Name:        req.Name,
		Article:     req.Article,
		Quantity:    req.Quantity,
		MinStock:    req.MinStock,
		CostPrice:   req.CostPrice,
		RetailPrice: req.RetailPrice,
	}

	if err := db.Create(&part).Error; err != nil {
		setFlash(c, "Failed to add spare part")
		c.Redirect(http.StatusFound, "/warehouse")
		return
	}

	setFlash(c, "Spare part added successfully")
	c.Redirect(http.StatusFound, "/warehouse")
}

// EditSparePart handles POST /edit_spare_part - full overwrite
func EditSparePart(c *gin.Context) {
	var req SparePartRequest
	if err := c.ShouldBind(&req); err != nil {
		setFlash(c, "Name and article are required")
		c.Redirect(http.StatusFound, "/warehouse")
		return
	}

	partID, err := parseRequiredID(req.PartID)
	if err != nil {
		setFlash(c, "Failed to update spare part")
		c.Redirect(http.StatusFound, "/warehouse")
		return
	}

	db := config.GetDB()
	var part models.SparePart
	if err := db.First(&part, partID).Error; err != nil {
		setFlash(c, "Spare part not found")
		c.Redirect(http.StatusFound, "/warehouse")
		return
	}

	var existing models.SparePart
	if err := db.Where("article = ? AND id != ?", req.Article, partID).First(&existing).Error; err == nil {
		setFlash(c, "A spare part with this article already exists")
		c.Redirect(http.StatusFound, "/warehouse")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		setFlash(c, "Failed to update spare part")
		c.Redirect(http.StatusFound, "/warehouse")
		return
	}

	part.Name = req.Name
	part.Article = req.Article
	part.Quantity = req.Quantity
	part.MinStock = req.MinStock
	part.CostPrice = req.CostPrice
	part.RetailPrice = req.RetailPrice

	if err := db.Save(&part).Error; err != nil {
		setFlash(c, "Failed to update spare part")
		c.Redirect(http.StatusFound, "/warehouse")
		return
	}

	setFlash(c, "Spare part updated successfully")
	c.Redirect(http.StatusFound, "/warehouse")
}

// DeleteSparePart handles DELETE /delete_spare_part/:id
func DeleteSparePart(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid spare part id"})
		return
	}

	db := config.GetDB()
	var part models.SparePart
	if err := db.First(&part, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Spare part not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to retrieve spare part"})
		return
	}

	if err := db.Delete(&part).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete spare part"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
