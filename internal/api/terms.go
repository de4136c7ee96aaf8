package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/forkful/forkful-backend/internal/service"
	"github.com/forkful/forkful-backend/internal/types"
)

// TermHandler serves CRUD for one taxonomy resource. It is mounted twice,
// at /cuisines and /tags. These endpoints are unauthenticated, mirroring the
// recipe read paths.
type TermHandler struct {
	termService service.ITermService
}

// NewTermHandler creates a new TermHandler.
func NewTermHandler(termService service.ITermService) *TermHandler {
	return &TermHandler{termService: termService}
}

// RegisterRoutes mounts the CRUD endpoints under path.
func (h *TermHandler) RegisterRoutes(router *gin.RouterGroup, path string) {
	terms := router.Group(path)
	{
		terms.GET("", h.List)
		terms.GET("/:id", h.Get)
		terms.POST("", h.Create)
		terms.PUT("/:id", h.Update)
		terms.DELETE("/:id", h.Delete)
	}
}

func (h *TermHandler) List(c *gin.Context) {
	terms, err := h.termService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, terms)
}

func (h *TermHandler) Get(c *gin.Context) {
	term, err := h.termService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, term)
}

func (h *TermHandler) Create(c *gin.Context) {
	var req types.TermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	term, err := h.termService.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, term)
}

func (h *TermHandler) Update(c *gin.Context) {
	var req types.TermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	term, err := h.termService.Update(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, term)
}

func (h *TermHandler) Delete(c *gin.Context) {
	if err := h.termService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
