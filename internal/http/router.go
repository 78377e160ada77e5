package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginlogger.SetLogger())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		ExposeHeaders:   []string{"Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := router.Group("/api/v1/auth")
	{
		public.POST("/register", handler.register)
		public.POST("/login", handler.login)
	}

	protected := router.Group("/api/v1")
	protected.Use(authMiddleware)
	{
		protected.PUT("/profile", handler.updateProfile)

		// parent
		protected.POST("/students", handler.addStudent)
		protected.GET("/students", handler.listStudents)
		protected.GET("/routes/available", handler.availableRoutes)
		protected.POST("/bookings", handler.createBooking)
		protected.GET("/bookings/my", handler.parentBookings)
		protected.POST("/bookings/:id/cancel", handler.cancelBooking)

		// driver
		protected.GET("/driver/schedule", handler.driverSchedule)
		protected.GET("/driver/trips/:id", handler.driverTrip)
		protected.PUT("/trips/:id/status", handler.updateTripStatus)
		protected.PUT("/trips/:id/location", handler.updateLocation)
		protected.POST("/trips/:id/incidents", handler.reportIncident)
		protected.GET("/driver/incidents", handler.driverIncidents)
		protected.PUT("/bookings/:id/passenger", handler.updatePassengerStatus)

		// admin
		protected.POST("/routes", handler.createRoute)
		protected.GET("/routes", handler.listRoutes)
		protected.POST("/trips", handler.createTrip)
		protected.PUT("/trips/:id/assign", handler.assignDriver)
		protected.GET("/fleet/status", handler.fleetStatus)
		protected.GET("/bookings", handler.listBookings)
		protected.PUT("/bookings/:id/status", handler.updateBookingStatus)
		protected.POST("/vehicles", handler.createVehicle)
		protected.GET("/vehicles", handler.listVehicles)
		protected.PUT("/vehicles/:id/status", handler.updateVehicleStatus)
		protected.GET("/drivers", handler.listDrivers)
		protected.GET("/live-map", handler.liveMapData)
	}

	return router
}
