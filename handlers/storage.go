package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"vaxportal/services/storage"
	"vaxportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const newsCoverFolder = "news-covers"

// StorageHandler handles staff media uploads for news covers.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// UploadNewsCoverHandler stores a news cover image and returns its public
// ID plus a resolvable URL.
func (h *StorageHandler) UploadNewsCoverHandler(c *gin.Context) {
	if h.StorageSvc == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "Media storage not configured", "")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "File not provided", err.Error())
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		getLogger(c).Error("Failed to save uploaded file", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save file", "")
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, newsCoverFolder)
	if err != nil {
		getLogger(c).Error("Failed to upload news cover", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upload file", "")
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c.Request.Context(), publicID)
	if err != nil {
		getLogger(c).Error("Failed to resolve cover URL", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to construct download URL", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"coverImageId": publicID,
		"downloadURL":  downloadURL,
	})
}
