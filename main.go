package main

import (
	"log"

	"github.com/krasbyt/appliance-service-api/config"
	"github.com/krasbyt/appliance-service-api/services"
)

func main() {
	log.Println("Starting appliance service API...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := config.ConnectDatabase(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	db := config.GetDB()
	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := config.Seed(db, cfg); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	log.Println("Database migration completed successfully")

	if cfg.PhotoUploadsEnabled() {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
		services.InitImageService(s3Service)
		log.Println("Order photo uploads enabled")
	} else {
		log.Println("AWS_S3_BUCKET not set, order photo uploads disabled")
	}

	router := SetupRouter()

	log.Printf("Server is running on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
