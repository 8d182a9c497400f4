package app

import (
	"net/http"

	"github.com/rumdien113/tiktok-api/internal/service"
	"github.com/rumdien113/tiktok-api/internal/util"

	"github.com/gin-gonic/gin"
)

type ShareHandler struct {
	shareService service.ShareService
}

func NewShareHandler(shareService service.ShareService) *ShareHandler {
	return &ShareHandler{shareService: shareService}
}

// CreateShare handles recording a share of a post
// POST /api/shares
func (h *ShareHandler) CreateShare(c *gin.Context) {
	var req service.CreateShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	share, err := h.shareService.CreateShare(req)
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, share)
}

// GetShare handles getting a share by ID
// GET /api/shares/:id
func (h *ShareHandler) GetShare(c *gin.Context) {
	share, err := h.shareService.GetShareByID(c.Param("id"))
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, share)
}

// GetShares handles listing all shares
// GET /api/shares
func (h *ShareHandler) GetShares(c *gin.Context) {
	shares, err := h.shareService.GetShares()
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, shares)
}

// GetSharesByPost handles listing a post's shares
// GET /api/shares/post/:postId
func (h *ShareHandler) GetSharesByPost(c *gin.Context) {
	shares, err := h.shareService.GetSharesByPost(c.Param("postId"))
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, shares)
}

// DeleteShare handles share deletion
// DELETE /api/shares/:id
func (h *ShareHandler) DeleteShare(c *gin.Context) {
	if err := h.shareService.DeleteShare(c.Param("id")); err != nil {
		util.FromError(c, err)
		return
	}

	util.Message(c, http.StatusOK, "Share deleted")
}
