package handlers

import (
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"DF-DSGNR/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssetsHandler struct {
	gcsClient *storage.GCSClient
}

func NewAssetsHandler(gcsClient *storage.GCSClient) *AssetsHandler {
	return &AssetsHandler{
		gcsClient: gcsClient,
	}
}

func (h *AssetsHandler) UploadLogo(c *gin.Context) {
	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are supported"})
		return
	}

	assetID := uuid.New().String()
	objectName := storage.GenerateLogoObjectName(assetID, header.Filename)

	result, err := h.gcsClient.UploadFile(c.Request.Context(), file, objectName, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload logo"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AssetsHandler) DownloadLogo(c *gin.Context) {
	objectName, ok := logoObjectQuery(c)
	if !ok {
		return
	}

	reader, err := h.gcsClient.ReadFile(c.Request.Context(), objectName)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Logo not found"})
		return
	}
	defer reader.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("inline; filename=%s", path.Base(objectName)),
	}
	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", reader, extraHeaders)
}

func (h *AssetsHandler) GetLogoURL(c *gin.Context) {
	objectName, ok := logoObjectQuery(c)
	if !ok {
		return
	}

	url, err := h.gcsClient.GetSignedURL(objectName, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign logo URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *AssetsHandler) DeleteLogo(c *gin.Context) {
	objectName, ok := logoObjectQuery(c)
	if !ok {
		return
	}

	if err := h.gcsClient.DeleteFile(c.Request.Context(), objectName); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Logo not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logo deleted successfully"})
}

// logoObjectQuery reads the object query parameter and confines it to the
// logo prefix so bucket paths outside logos/ stay unreachable.
func logoObjectQuery(c *gin.Context) (string, bool) {
	objectName := c.Query("object")
	if objectName == "" || !strings.HasPrefix(objectName, "logos/") || strings.Contains(objectName, "..") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid logo object name"})
		return "", false
	}
	return objectName, true
}
