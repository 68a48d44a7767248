package handlers

import (
	"errors"
	"net/http"

	"vaxportal/models"
	"vaxportal/services/booking"
	"vaxportal/services/cart"
	"vaxportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking wizard endpoints.
type BookingHandler struct {
	Service booking.BookingSessionService
	CartSvc cart.CartService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingSessionService, cartSvc cart.CartService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, CartSvc: cartSvc, Logger: logger}
}

// InitiateSession starts a fresh wizard on step 1.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	session, err := h.Service.InitiateSession(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("Failed to initiate booking session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to start booking", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetSession returns the session plus the resolved child view and the
// current cart, which is what the review and success screens render.
func (h *BookingHandler) GetSession(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	session, err := h.Service.GetSession(c.Request.Context(), userID, c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}

	resp := gin.H{"session": session}
	if child, err := h.Service.ResolveChild(c.Request.Context(), userID, session.Child); err == nil {
		resp["effectiveChild"] = child
	}
	if userCart, err := h.CartSvc.Get(c.Request.Context(), userID); err == nil {
		resp["cart"] = userCart
		resp["cartTotal"] = userCart.Total()
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSession applies partial form/child/terms changes.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req struct {
		Form        *models.BookingFormData `json:"form"`
		Child       *models.ChildSelection  `json:"child"`
		AcceptTerms *bool                   `json:"acceptTerms"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	session, err := h.Service.UpdateSession(c.Request.Context(), userID, c.Param("sessionID"), booking.SessionUpdate{
		Form:        req.Form,
		Child:       req.Child,
		AcceptTerms: req.AcceptTerms,
	})
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// NextStep advances step 1 -> step 2 behind the validation and terms
// guards. A terms rejection tells the client to present the dialog.
func (h *BookingHandler) NextStep(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	session, err := h.Service.Advance(c.Request.Context(), userID, c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// PrevStep moves step 2 -> step 1, keeping all entered data.
func (h *BookingHandler) PrevStep(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	session, err := h.Service.Back(c.Request.Context(), userID, c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Checkout finalizes the booking.
func (h *BookingHandler) Checkout(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	appt, err := h.Service.Checkout(c.Request.Context(), userID, c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"appointment": appt,
		"total":       appt.TotalPrice(),
	})
}

// CancelSession abandons the wizard.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	if err := h.Service.CancelSession(c.Request.Context(), userID, c.Param("sessionID")); err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// respondSessionError maps service errors onto the inline error contract:
// validation problems carry per-field messages, a terms rejection carries
// the dialog marker, everything else is a dismissible message.
func (h *BookingHandler) respondSessionError(c *gin.Context, err error) {
	var verr *booking.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	case errors.Is(err, booking.ErrTermsNotAccepted):
		c.JSON(http.StatusConflict, gin.H{
			"error":               err.Error(),
			"termsDialogRequired": true,
		})
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking session not found or expired", "")
	case errors.Is(err, booking.ErrSessionOwner):
		utils.JSONError(c, http.StatusForbidden, "Booking session belongs to a different user", "")
	case errors.Is(err, booking.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "Invalid wizard transition", "")
	case errors.Is(err, booking.ErrEmptyCart):
		utils.JSONError(c, http.StatusBadRequest, "Cart is empty", "")
	default:
		h.Logger.Error("Booking request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Booking request failed", err.Error())
	}
}
