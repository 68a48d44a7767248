package handlers

import (
	"net/http"

	"vaxportal/models"
	"vaxportal/services/cart"
	"vaxportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler serves the vaccine cart endpoints.
type CartHandler struct {
	Service cart.CartService
}

func NewCartHandler(svc cart.CartService) *CartHandler {
	return &CartHandler{Service: svc}
}

func cartResponse(c *gin.Context, status int, userCart *models.Cart) {
	c.JSON(status, gin.H{
		"items": userCart.Items,
		"total": userCart.Total(),
		"count": userCart.Count(),
	})
}

// GetCart returns the caller's cart with aggregates.
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	userCart, err := h.Service.Get(c.Request.Context(), userID)
	if err != nil {
		getLogger(c).Error("Failed to load cart", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load cart", "")
		return
	}
	cartResponse(c, http.StatusOK, userCart)
}

// AddCartItem adds one vaccine line to the cart.
func (h *CartHandler) AddCartItem(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req struct {
		ID    string `json:"id" binding:"required"`
		Name  string `json:"name" binding:"required"`
		Doses int    `json:"doses" binding:"required,min=1"`
		Price int64  `json:"price" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid cart item", err.Error())
		return
	}

	userCart, err := h.Service.AddItem(c.Request.Context(), userID, models.CartItem{
		ID:    req.ID,
		Name:  req.Name,
		Doses: req.Doses,
		Price: req.Price,
	})
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not add item", err.Error())
		return
	}
	cartResponse(c, http.StatusOK, userCart)
}

// RemoveCartItem removes one vaccine line from the cart.
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	userCart, err := h.Service.RemoveItem(c.Request.Context(), userID, c.Param("itemID"))
	if err != nil {
		getLogger(c).Error("Failed to remove cart item", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to remove item", "")
		return
	}
	cartResponse(c, http.StatusOK, userCart)
}
