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
	"github.com/krasbyt/appliance-service-api/utils"
)

// UploadOrderPhoto handles POST /api/order_photo/:id - attaches an
// appliance photo to an order. Replacing a photo deletes the old object
// best-effort.
func UploadOrderPhoto(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order id"})
		return
	}

	imageService := services.GetImageService()
	if imageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PHOTO_UPLOADS_DISABLED",
				"message": "Photo storage is not configured",
			},
		})
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

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "A photo file is required",
			},
		})
		return
	}

	s3Key, err := imageService.UploadImage(fileHeader)
	if err != nil {
		var uploadErr *utils.FileUploadError
		if errors.As(err, &uploadErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    uploadErr.Code,
					"message": uploadErr.Message,
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": "Failed to store photo",
			},
		})
		return
	}

	oldKey := order.PhotoS3Key
	order.PhotoS3Key = &s3Key
	if err := db.Save(&order).Error; err != nil {
		// Keep storage consistent with the database.
		if delErr := imageService.DeleteImage(s3Key); delErr != nil {
			log.Printf("failed to clean up photo %s after save error: %v", s3Key, delErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update order"})
		return
	}

	if oldKey != nil && *oldKey != s3Key {
		if err := imageService.DeleteImage(*oldKey); err != nil {
			log.Printf("failed to delete replaced photo %s: %v", *oldKey, err)
		}
	}

	photoURL, err := imageService.GetImageURL(s3Key)
	if err != nil {
		log.Printf("failed to generate photo URL for order %d: %v", order.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"order_id":     order.ID,
			"photo_s3_key": s3Key,
			"photo_url":    photoURL,
		},
	})
}
