package main

import (
	"log"
	"os"

	"koi/config"

	"koi/jobs"
	"koi/routes"
	"koi/services"
	"koi/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	// if err := config.DB.AutoMigrate(&models.User{}, &models.Farm{}, &models.Fish{}, &models.FishPack{}, &models.Trip{}, &models.TripDestination{}, &models.Booking{}, &models.FishOrder{}, &models.FishOrderDetail{}, &models.FishPackOrderDetail{}); err != nil {
	// 	panic("Failed to migrate tables: " + err.Error())
	// }
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	sweeper := services.NewQuoteSweeper(services.QuoteSweeperOptions{
		DB:     config.DB,
		Logger: logger.NewDefaultLogger(logger.InfoLevel).WithTag("quote-sweep"),
	})
	jobs.SetQuoteExpirer(sweeper)

	migrateTables()

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RDB, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
