package handlers

import (
	"net/http"
	"strconv"

	"vaxportal/services/feedback"
	"vaxportal/services/user"
	"vaxportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FeedbackHandler serves user reviews and the staff back-office replies.
type FeedbackHandler struct {
	Service feedback.FeedbackService
	Users   user.UserService
}

func NewFeedbackHandler(svc feedback.FeedbackService, users user.UserService) *FeedbackHandler {
	return &FeedbackHandler{Service: svc, Users: users}
}

// Submit records a review from the authenticated user.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req struct {
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid feedback", err.Error())
		return
	}

	userName := ""
	if u, err := h.Users.GetUserByID(userID); err == nil {
		userName = u.Name
	}

	fb, err := h.Service.Submit(c.Request.Context(), userID, userName, req.Rating, req.Comment)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not submit feedback", err.Error())
		return
	}
	c.JSON(http.StatusCreated, fb)
}

// ListAll returns one page of all feedback for the staff view.
func (h *FeedbackHandler) ListAll(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	all, err := h.Service.List(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list feedback", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list feedback", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"feedback":  utils.Paginate(all, page, utils.DefaultPageSize),
		"page":      page,
		"pageCount": utils.PageCount(len(all), utils.DefaultPageSize),
		"total":     len(all),
	})
}

// Respond stores the staff reply on one feedback record.
func (h *FeedbackHandler) Respond(c *gin.Context) {
	responderID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req struct {
		Response string `json:"response" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid response", err.Error())
		return
	}

	fb, err := h.Service.Respond(c.Request.Context(), c.Param("id"), responderID, req.Response)
	if err != nil {
		getLogger(c).Error("Failed to respond to feedback", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Could not respond to feedback", err.Error())
		return
	}
	c.JSON(http.StatusOK, fb)
}
