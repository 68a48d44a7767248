package routes

import (
	"net/http"
	"time"

	"vaxportal/handlers"
	"vaxportal/middleware"
	"vaxportal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/login", hb.LoginHandler)
	r.POST("/api/register", hb.RegisterHandler)

	authed := r.Group("/api/users")
	authed.Use(middleware.JWTAuthMiddleware())
	authed.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
}

// RegisterCatalogRoutes registers the public catalog and news endpoints
// plus the staff publishing routes.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/vaccines-all", hb.ListVaccinesHandler)
	r.GET("/api/news-getall", hb.ListNewsHandler)
	r.GET("/api/news/getById", hb.GetNewsByIDHandler)

	staff := r.Group("/api")
	staff.Use(middleware.JWTAuthMiddleware(), middleware.StaffOnlyMiddleware())
	staff.POST("/news", hb.PublishNewsHandler)
	staff.POST("/storage/news-cover", hb.UploadNewsCoverHandler)
}

// RegisterBookingRoutes registers the child profiles, cart and booking
// wizard endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	authed := r.Group("/api")
	authed.Use(middleware.JWTAuthMiddleware())
	{
		authed.GET("/children", hb.ListChildrenHandler)
		authed.POST("/children", hb.AddChildHandler)

		authed.GET("/cart", hb.GetCartHandler)
		authed.POST("/cart/items", hb.AddCartItemHandler)
		authed.DELETE("/cart/items/:itemID", hb.RemoveCartItemHandler)

		authed.POST("/bookings/session", hb.InitiateSessionHandler)
		authed.GET("/bookings/session/:sessionID", hb.GetSessionHandler)
		authed.PUT("/bookings/session/:sessionID", hb.UpdateSessionHandler)
		authed.POST("/bookings/session/:sessionID/next", hb.NextStepHandler)
		authed.POST("/bookings/session/:sessionID/back", hb.PrevStepHandler)
		authed.POST("/bookings/session/:sessionID/checkout", hb.CheckoutHandler)
		authed.DELETE("/bookings/session/:sessionID", hb.CancelSessionHandler)

		authed.GET("/payment/return", hb.PaymentReturnHandler)
	}
}

// RegisterAppointmentRoutes registers the appointment history endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	authed := r.Group("/api/appointments")
	authed.Use(middleware.JWTAuthMiddleware())
	{
		authed.GET("/user/:id", hb.ListAppointmentsHandler)
		authed.GET("/:id", hb.GetAppointmentHandler)
		authed.PUT("/:id/cancel", hb.CancelAppointmentHandler)
		authed.PUT("/:id", hb.EditAppointmentHandler)
	}
}

// RegisterNotificationRoutes registers the per-user feed endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	authed := r.Group("/api")
	authed.Use(middleware.JWTAuthMiddleware())
	authed.GET("/notifications-getByUserId/:id", hb.ListNotificationsHandler)
	authed.PUT("/notifications/mark-all-read/:id", hb.MarkAllReadHandler)
}

// RegisterFeedbackRoutes registers user feedback submission and the staff
// back-office views.
func RegisterFeedbackRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	authed := r.Group("/api")
	authed.Use(middleware.JWTAuthMiddleware())
	authed.POST("/feedback", hb.SubmitFeedbackHandler)

	staff := r.Group("/api")
	staff.Use(middleware.JWTAuthMiddleware(), middleware.StaffOnlyMiddleware())
	staff.GET("/feedback-all", hb.ListFeedbackHandler)
	staff.POST("/feedback/:id/respond", hb.RespondFeedbackHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())
	r.Use(utils.ErrorHandler())

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterFeedbackRoutes(r, hb)
	RegisterHealthRoute(r)
}
