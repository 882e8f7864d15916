package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/krasbyt/appliance-service-api/controllers"
	"github.com/krasbyt/appliance-service-api/middleware"
)

// SetupRouter builds the full route table: the public surface, the
// session-gated management views and mutations, and the JSON API.
func SetupRouter() *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = false
	router.Use(cors.New(corsConfig))

	// Public surface
	router.GET("/", controllers.Index)
	router.GET("/login", controllers.LoginPage)
	router.POST("/login", controllers.Login)
	router.GET("/buy_request", controllers.BuyRequestPage)
	router.POST("/buy_request", controllers.SubmitBuyRequest)
	router.GET("/repair_status", controllers.RepairStatusPage)
	router.POST("/api/check_status",
		middleware.RateLimit(rate.Every(time.Second), 5),
		controllers.CheckStatus,
	)

	// Everything below requires an authenticated principal
	auth := router.Group("", middleware.RequireAuth())
	{
		auth.GET("/logout", controllers.Logout)

		auth.GET("/dashboard", controllers.Dashboard)

		auth.GET("/orders", controllers.ListOrders)
		auth.POST("/add_order", controllers.AddOrder)
		auth.DELETE("/delete_order/:id", controllers.DeleteOrder)
		auth.GET("/api/order_details/:id", controllers.OrderDetails)
		auth.POST("/api/order_photo/:id", controllers.UploadOrderPhoto)

		auth.GET("/clients", controllers.ListClients)
		auth.POST("/add_client", controllers.AddClient)
		auth.POST("/edit_client", controllers.EditClient)
		auth.DELETE("/delete_client/:id", controllers.DeleteClient)
		auth.GET("/api/client_details/:id", controllers.ClientDetails)

		auth.GET("/warehouse", controllers.Warehouse)
		auth.POST("/add_spare_part", controllers.AddSparePart)
		auth.POST("/edit_spare_part", controllers.EditSparePart)
		auth.DELETE("/delete_spare_part/:id", controllers.DeleteSparePart)

		auth.GET("/reports", controllers.Reports)
		auth.POST("/api/generate_report", controllers.GenerateReport)
	}

	return router
}
