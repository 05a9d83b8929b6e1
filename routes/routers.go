package routes

import (
	"context"
	"fmt"
	"net/http"

	"koi/config"
	"koi/constants"
	"koi/controllers"
	middlewares "koi/middleware"
	"koi/services"
	"koi/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/redis/go-redis/v9"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	notifier := notification.NewMelodyService(m)

	paymentBaseURL := config.GetEnv("PAYMENT_BASE_URL")
	if paymentBaseURL == "" {
		paymentBaseURL = "https://payment.koispirit.com"
	}
	payment := services.NewPaymentService(http.DefaultClient, paymentBaseURL)
	facade := services.NewBookingFacade(db, payment, notifier)

	bookingController := controllers.NewBookingController(facade, redisCli)
	fishOrderController := controllers.NewFishOrderController(facade, redisCli)
	paymentController := controllers.NewPaymentController(facade)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/register", controllers.RegisterUser)
	v1.GET("/profile", controllers.GetProfile)

	v1.GET("/users", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.GetUsers)
	v1.GET("/users/:id", controllers.GetUserByID)
	v1.PUT("/users", middlewares.AuthMiddleware(constants.RoleCustomer, constants.RoleSalesStaff, constants.RoleConsultingStaff, constants.RoleDeliveryStaff, constants.RoleManager, constants.RoleAdmin), controllers.UpdateUser)
	v1.PUT("/userStatus", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.ChangeUserStatus)

	v1.GET("/farm", controllers.GetAllFarms)
	v1.GET("/farm/search", controllers.SearchFarms)
	v1.GET("/farm/:id", controllers.GetFarmDetail)
	v1.POST("/farm", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.CreateFarm)
	v1.PUT("/farmUpdate", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.UpdateFarm)
	v1.DELETE("/farm/:id", middlewares.AuthMiddleware(constants.RoleAdmin), controllers.DeleteFarm)

	v1.GET("/fish/farm/:farmId", controllers.GetFishByFarm)
	v1.GET("/fish/:id", controllers.GetFishDetail)
	v1.POST("/fish", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.CreateFish)
	v1.PUT("/fishUpdate", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.UpdateFish)
	v1.DELETE("/fish/:id", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.DeleteFish)
	v1.GET("/fishpack/farm/:farmId", controllers.GetFishPacksByFarm)
	v1.POST("/fishpack", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), controllers.CreateFishPack)

	v1.GET("/booking", middlewares.AuthMiddleware(constants.RoleSalesStaff, constants.RoleConsultingStaff, constants.RoleDeliveryStaff, constants.RoleManager, constants.RoleAdmin), bookingController.GetBookings)
	v1.POST("/booking", middlewares.AuthMiddleware(), bookingController.CreateBooking)
	v1.GET("/booking/customer/:customerId", bookingController.GetBookingsByCustomer)
	v1.GET("/booking/:id", bookingController.GetBookingDetail)
	v1.PUT("/booking/update/:id", bookingController.UpdateBookingStatus)
	v1.POST("/booking/:id/action", bookingController.BookingAction)
	v1.POST("/booking/quote", middlewares.AuthMiddleware(constants.RoleSalesStaff, constants.RoleManager), bookingController.CreateQuote)
	v1.PUT("/booking/quote/approve/:id", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), bookingController.ApproveQuote)
	v1.PUT("/booking/assign", middlewares.AuthMiddleware(constants.RoleManager, constants.RoleAdmin), bookingController.AssignStaff)

	v1.GET("/trip/:id", controllers.GetTripDetail)
	v1.PUT("/tripUpdate", middlewares.AuthMiddleware(constants.RoleSalesStaff, constants.RoleManager), controllers.UpdateTrip)

	v1.GET("/fish-order/customer/:customerId", fishOrderController.GetFishOrdersByCustomer)
	v1.GET("/fish-order/:id", fishOrderController.GetFishOrderDetail)
	v1.POST("/fish-order", middlewares.AuthMiddleware(constants.RoleConsultingStaff, constants.RoleManager), fishOrderController.CreateFishOrder)
	v1.PUT("/fish-order/:id/:farmId/update", fishOrderController.UpdateFishOrder)
	v1.POST("/fish-order/:id/action", fishOrderController.FishOrderAction)

	v1.POST("/:id/payment/api/create-trippayment", paymentController.CreateTripPayment)
	v1.GET("/:id/payment/success", paymentController.PaymentSuccess)
	v1.POST("/:id/api/refund", paymentController.RefundOrder)

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})

	//ws
	v1.GET("/test-broadcast", func(c *gin.Context) {
		message := []byte("Thông báo từ backend: Tin nhắn mới!")
		fmt.Println("Broadcasting message:", string(message))
		m.Broadcast(message)
		c.String(200, "Broadcast message sent!")
	})

}
