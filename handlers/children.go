package handlers

import (
	"net/http"

	"vaxportal/models"
	"vaxportal/services/user"
	"vaxportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChildHandler serves the parent's child profiles used by the booking
// wizard's child picker.
type ChildHandler struct {
	Service user.UserService
}

func NewChildHandler(svc user.UserService) *ChildHandler {
	return &ChildHandler{Service: svc}
}

// ListChildren returns the caller's child profiles.
func (h *ChildHandler) ListChildren(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	children, err := h.Service.ListChildren(userID)
	if err != nil {
		getLogger(c).Error("Failed to list children", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list children", "")
		return
	}
	c.JSON(http.StatusOK, children)
}

// AddChild creates a child profile for the caller.
func (h *ChildHandler) AddChild(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req struct {
		Name        string `json:"name" binding:"required"`
		DateOfBirth string `json:"dateOfBirth" binding:"required"`
		Gender      string `json:"gender" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid child profile", err.Error())
		return
	}

	child, err := h.Service.AddChild(userID, models.ChildProfile{
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
	})
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not add child", err.Error())
		return
	}
	c.JSON(http.StatusCreated, child)
}
