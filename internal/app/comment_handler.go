package app

import (
	"net/http"

	"github.com/rumdien113/tiktok-api/internal/service"
	"github.com/rumdien113/tiktok-api/internal/util"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateComment handles comment creation
// POST /api/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req service.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	comment, err := h.commentService.CreateComment(req)
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// GetComment handles getting a comment by ID
// GET /api/comments/:id
func (h *CommentHandler) GetComment(c *gin.Context) {
	comment, err := h.commentService.GetCommentByID(c.Param("id"))
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// GetComments handles listing all comments
// GET /api/comments
func (h *CommentHandler) GetComments(c *gin.Context) {
	comments, err := h.commentService.GetComments()
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// GetCommentsByPost handles listing a post's comments
// GET /api/comments/post/:postId
func (h *CommentHandler) GetCommentsByPost(c *gin.Context) {
	comments, err := h.commentService.GetCommentsByPost(c.Param("postId"))
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}

// GetReplies handles listing the direct replies of a comment
// GET /api/comments/:id/replies
func (h *CommentHandler) GetReplies(c *gin.Context) {
	replies, err := h.commentService.GetReplies(c.Param("id"))
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, replies)
}

// UpdateComment handles a comment content update
// PUT /api/comments/:id
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req service.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	comment, err := h.commentService.UpdateComment(c.Param("id"), req)
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// DeleteComment handles comment deletion
// DELETE /api/comments/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentService.DeleteComment(c.Param("id")); err != nil {
		util.FromError(c, err)
		return
	}

	util.Message(c, http.StatusOK, "Comment deleted")
}
