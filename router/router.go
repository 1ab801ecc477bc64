package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/hotel-booking-app/controllers"
	"github.com/yeremiapane/hotel-booking-app/middlewares"
	"github.com/yeremiapane/hotel-booking-app/repositories"
	"github.com/yeremiapane/hotel-booking-app/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Repositori + service
	roomRepo := repositories.NewRoomRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	bookingService := services.NewBookingService(roomRepo, bookingRepo)

	// Controller
	userCtrl := controllers.NewUserController(db)
	roomCtrl := controllers.NewRoomController(roomRepo)
	bookingCtrl := controllers.NewBookingController(bookingService)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/api")
	auth.Use(middlewares.AuthMiddleware(db))

	auth.GET("/profile", userCtrl.GetProfile)

	// BOOKINGS
	auth.GET("/bookings", bookingCtrl.GetAllBookings)
	auth.POST("/bookings", bookingCtrl.CreateBooking)
	auth.GET("/bookings/:booking_id", bookingCtrl.GetBookingByID)
	auth.PUT("/bookings/:booking_id", bookingCtrl.UpdateBooking)
	auth.PATCH("/bookings/:booking_id", bookingCtrl.UpdateBooking)
	auth.DELETE("/bookings/:booking_id", bookingCtrl.DeleteBooking)

	// ROOMS
	auth.GET("/rooms", roomCtrl.GetAllRooms)
	auth.POST("/rooms", roomCtrl.CreateRoom)
	auth.GET("/rooms/:room_id", roomCtrl.GetRoomByID)
	auth.PATCH("/rooms/:room_id", roomCtrl.UpdateRoom)
	auth.DELETE("/rooms/:room_id", roomCtrl.DeleteRoom)

	return r
}
