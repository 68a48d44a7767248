package handlers

import (
	"net/http"
	"strconv"

	"vaxportal/services/notification"
	"vaxportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler serves the per-user notification feed.
type NotificationHandler struct {
	Service notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: svc}
}

// feedUser resolves the :id path parameter and rejects access to another
// user's feed.
func feedUser(c *gin.Context) (string, bool) {
	userID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return "", false
	}
	if c.Param("id") != userID {
		utils.JSONError(c, http.StatusForbidden, "Cannot access another user's notifications", "")
		return "", false
	}
	return userID, true
}

// ListByUser returns one page of the user's feed, newest first.
func (h *NotificationHandler) ListByUser(c *gin.Context) {
	userID, ok := feedUser(c)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	all, err := h.Service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		getLogger(c).Error("Failed to list notifications", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list notifications", "")
		return
	}

	unread := 0
	for _, n := range all {
		if !n.Read {
			unread++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": utils.Paginate(all, page, utils.DefaultPageSize),
		"page":          page,
		"pageCount":     utils.PageCount(len(all), utils.DefaultPageSize),
		"total":         len(all),
		"unread":        unread,
	})
}

// MarkAllRead acknowledges the user's entire feed.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := feedUser(c)
	if !ok {
		return
	}

	updated, err := h.Service.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		getLogger(c).Error("Failed to mark notifications read", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to mark notifications read", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
