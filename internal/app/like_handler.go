package app

import (
	"net/http"

	"github.com/rumdien113/tiktok-api/internal/service"
	"github.com/rumdien113/tiktok-api/internal/util"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeService service.LikeService
}

func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// CreateLike handles liking a post or comment
// POST /api/likes
func (h *LikeHandler) CreateLike(c *gin.Context) {
	var req service.CreateLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	like, created, err := h.likeService.CreateLike(req)
	if err != nil {
		util.FromError(c, err)
		return
	}
	if !created {
		util.Error(c, http.StatusConflict, "constraint_violation", "already liked")
		return
	}

	c.JSON(http.StatusCreated, like)
}

// DeleteLike handles removing a like
// DELETE /api/likes
func (h *LikeHandler) DeleteLike(c *gin.Context) {
	var req service.DeleteLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	if err := h.likeService.DeleteLike(req); err != nil {
		util.FromError(c, err)
		return
	}

	util.Message(c, http.StatusOK, "Like removed")
}

// GetLikesByTarget handles listing the likes of a post or comment
// GET /api/likes/:targetType/:targetId
func (h *LikeHandler) GetLikesByTarget(c *gin.Context) {
	likes, err := h.likeService.GetLikesByTarget(c.Param("targetType"), c.Param("targetId"))
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}

// CountLikes handles counting the likes of a post or comment
// GET /api/likes/count/:targetType/:targetId
func (h *LikeHandler) CountLikes(c *gin.Context) {
	count, err := h.likeService.CountLikes(c.Param("targetType"), c.Param("targetId"))
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
