package handlers

import (
	"net/http"
	"time"

	"vaxportal/models"
	"vaxportal/services/catalog"
	"vaxportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the public vaccine catalog and news pages plus the
// staff news publishing endpoint.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// ListVaccines returns the active vaccine catalog.
func (h *CatalogHandler) ListVaccines(c *gin.Context) {
	vaccines, err := h.Service.Vaccines(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list vaccines", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list vaccines", "")
		return
	}
	c.JSON(http.StatusOK, vaccines)
}

// ListNews returns every article, newest first.
func (h *CatalogHandler) ListNews(c *gin.Context) {
	articles, err := h.Service.NewsList(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list news", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list news", "")
		return
	}
	c.JSON(http.StatusOK, articles)
}

// GetNewsByID returns one article by its id query parameter.
func (h *CatalogHandler) GetNewsByID(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing id parameter", "")
		return
	}

	article, err := h.Service.NewsByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Article not found", "")
		return
	}
	c.JSON(http.StatusOK, article)
}

// PublishNews creates an article from the staff back-office.
func (h *CatalogHandler) PublishNews(c *gin.Context) {
	authorID, ok := authedUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req struct {
		Title        string `json:"title" binding:"required"`
		Summary      string `json:"summary"`
		Content      string `json:"content" binding:"required"`
		CoverImageID string `json:"coverImageId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid article", err.Error())
		return
	}

	article, err := h.Service.PublishNews(c.Request.Context(), models.News{
		Title:        req.Title,
		Summary:      req.Summary,
		Content:      req.Content,
		CoverImageID: req.CoverImageID,
		AuthorID:     authorID,
		PublishedAt:  time.Now(),
	})
	if err != nil {
		getLogger(c).Error("Failed to publish news", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Could not publish article", err.Error())
		return
	}
	c.JSON(http.StatusCreated, article)
}
