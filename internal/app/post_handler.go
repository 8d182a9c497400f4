package app

import (
	"net/http"

	"github.com/rumdien113/tiktok-api/internal/service"
	"github.com/rumdien113/tiktok-api/internal/util"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePost handles post creation
// POST /api/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req service.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	post, err := h.postService.CreatePost(req)
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost handles getting a post by ID
// GET /api/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPostByID(c.Param("id"))
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// GetPosts handles listing all posts
// GET /api/posts
func (h *PostHandler) GetPosts(c *gin.Context) {
	posts, err := h.postService.GetPosts()
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPostsByUser handles listing a user's posts
// GET /api/posts/user/:userId
func (h *PostHandler) GetPostsByUser(c *gin.Context) {
	posts, err := h.postService.GetPostsByUserID(c.Param("userId"))
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// UpdatePost handles a partial post update
// PUT /api/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req service.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	post, err := h.postService.UpdatePost(c.Param("id"), req)
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost handles post deletion
// DELETE /api/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postService.DeletePost(c.Param("id")); err != nil {
		util.FromError(c, err)
		return
	}

	util.Message(c, http.StatusOK, "Post deleted")
}
