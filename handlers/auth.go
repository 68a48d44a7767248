package handlers

import (
	"errors"
	"net/http"

	"vaxportal/services/user"
	"vaxportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves login, registration and device-token updates.
type AuthHandler struct {
	Service user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// LoginHandler authenticates a user and issues a bearer token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email      string `json:"email" binding:"required,email"`
		Password   string `json:"password" binding:"required"`
		RememberMe bool   `json:"rememberMe"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login request", err.Error())
		return
	}

	account, token, err := h.Service.Authenticate(req.Email, req.Password, req.RememberMe)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
			return
		}
		getLogger(c).Error("Login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"user":       account,
		"rememberMe": req.RememberMe,
	})
}

// RegisterHandler creates a new parent account.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Phone    string `json:"phone"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration request", err.Error())
		return
	}

	account, err := h.Service.Register(user.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		getLogger(c).Error("Registration failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Registration failed", err.Error())
		return
	}

	c.JSON(http.StatusCreated, account)
}

// UpdateFCMTokenHandler stores the caller's push token.
func (h *AuthHandler) UpdateFCMTokenHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := h.Service.UpdateFCMToken(userID, req.Token); err != nil {
		getLogger(c).Error("Failed to update FCM token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update token", "")
		return
	}
	c.Status(http.StatusNoContent)
}
