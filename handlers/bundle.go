package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every handler function the router wires up.
type HandlerBundle struct {
	// Auth endpoints
	LoginHandler          gin.HandlerFunc
	RegisterHandler       gin.HandlerFunc
	UpdateFCMTokenHandler gin.HandlerFunc

	// Catalog endpoints
	ListVaccinesHandler gin.HandlerFunc
	ListNewsHandler     gin.HandlerFunc
	GetNewsByIDHandler  gin.HandlerFunc
	PublishNewsHandler  gin.HandlerFunc

	// Child profile endpoints
	ListChildrenHandler gin.HandlerFunc
	AddChildHandler     gin.HandlerFunc

	// Cart endpoints
	GetCartHandler        gin.HandlerFunc
	AddCartItemHandler    gin.HandlerFunc
	RemoveCartItemHandler gin.HandlerFunc

	// Booking wizard endpoints
	InitiateSessionHandler gin.HandlerFunc
	GetSessionHandler      gin.HandlerFunc
	UpdateSessionHandler   gin.HandlerFunc
	NextStepHandler        gin.HandlerFunc
	PrevStepHandler        gin.HandlerFunc
	CheckoutHandler        gin.HandlerFunc
	CancelSessionHandler   gin.HandlerFunc

	// Payment endpoints
	PaymentReturnHandler gin.HandlerFunc

	// Appointment endpoints
	ListAppointmentsHandler  gin.HandlerFunc
	GetAppointmentHandler    gin.HandlerFunc
	CancelAppointmentHandler gin.HandlerFunc
	EditAppointmentHandler   gin.HandlerFunc

	// Notification endpoints
	ListNotificationsHandler gin.HandlerFunc
	MarkAllReadHandler       gin.HandlerFunc

	// Feedback endpoints
	SubmitFeedbackHandler  gin.HandlerFunc
	ListFeedbackHandler    gin.HandlerFunc
	RespondFeedbackHandler gin.HandlerFunc

	// Storage endpoints
	UploadNewsCoverHandler gin.HandlerFunc
}
