package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkful/forkful-backend/internal/middleware"
	"github.com/forkful/forkful-backend/internal/service"
)

// maxImageSize caps recipe image uploads at 10 MB.
const maxImageSize = 10 << 20

// ImageHandler serves recipe image uploads. The returned URL is what clients
// submit as a recipe's image_url.
type ImageHandler struct {
	imageService service.IImageService
	authService  middleware.TokenValidator
}

// NewImageHandler creates a new ImageHandler. imageService may be nil when S3
// is not configured; uploads then answer 503.
func NewImageHandler(imageService service.IImageService, authService middleware.TokenValidator) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		authService:  authService,
	}
}

// RegisterRoutes mounts the upload endpoint.
func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/uploads", middleware.AuthMiddleware(h.authService), h.Upload)
}

// Upload handles POST /uploads with a multipart "image" field.
func (h *ImageHandler) Upload(c *gin.Context) {
	if h.imageService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "image uploads are not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "image exceeds the 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		respondError(c, err)
		return
	}

	url, err := h.imageService.Upload(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"image_url": url})
}
