package app

import (
	"net/http"

	"github.com/rumdien113/tiktok-api/internal/service"
	"github.com/rumdien113/tiktok-api/internal/util"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followService service.FollowService
}

func NewFollowHandler(followService service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// CreateFollow handles one user following another
// POST /api/follows
func (h *FollowHandler) CreateFollow(c *gin.Context) {
	var req service.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	follow, created, err := h.followService.CreateFollow(req)
	if err != nil {
		util.FromError(c, err)
		return
	}
	if !created {
		util.Error(c, http.StatusConflict, "constraint_violation", "already following")
		return
	}

	c.JSON(http.StatusCreated, follow)
}

// DeleteFollow handles unfollowing
// DELETE /api/follows
func (h *FollowHandler) DeleteFollow(c *gin.Context) {
	var req service.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	if err := h.followService.DeleteFollow(req); err != nil {
		util.FromError(c, err)
		return
	}

	util.Message(c, http.StatusOK, "Unfollowed")
}

// GetFollowers handles listing the followers of a user
// GET /api/follows/followers/:userId
func (h *FollowHandler) GetFollowers(c *gin.Context) {
	follows, err := h.followService.GetFollowers(c.Param("userId"))
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, follows)
}

// GetFollowing handles listing who a user follows
// GET /api/follows/following/:userId
func (h *FollowHandler) GetFollowing(c *gin.Context) {
	follows, err := h.followService.GetFollowing(c.Param("userId"))
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, follows)
}
