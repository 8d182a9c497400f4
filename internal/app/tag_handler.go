package app

import (
	"net/http"

	"github.com/rumdien113/tiktok-api/internal/service"
	"github.com/rumdien113/tiktok-api/internal/util"

	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	tagService service.TagService
}

func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// CreateTag handles tag creation
// POST /api/tags
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req service.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	tag, err := h.tagService.CreateTag(req)
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// GetTag handles getting a tag by ID
// GET /api/tags/:id
func (h *TagHandler) GetTag(c *gin.Context) {
	tag, err := h.tagService.GetTagByID(c.Param("id"))
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}

// GetTags handles listing all tags
// GET /api/tags
func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.GetTags()
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

// UpdateTag handles renaming a tag
// PUT /api/tags/:id
func (h *TagHandler) UpdateTag(c *gin.Context) {
	var req service.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	tag, err := h.tagService.UpdateTag(c.Param("id"), req)
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}

// DeleteTag handles tag deletion
// DELETE /api/tags/:id
func (h *TagHandler) DeleteTag(c *gin.Context) {
	if err := h.tagService.DeleteTag(c.Param("id")); err != nil {
		util.FromError(c, err)
		return
	}

	util.Message(c, http.StatusOK, "Tag deleted")
}

// AddTagToPost handles attaching a tag to a post
// POST /api/post-tags
func (h *TagHandler) AddTagToPost(c *gin.Context) {
	var req service.PostTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	postTag, created, err := h.tagService.AddTagToPost(req)
	if err != nil {
		util.FromError(c, err)
		return
	}
	if !created {
		util.Error(c, http.StatusConflict, "constraint_violation", "tag already attached to post")
		return
	}

	c.JSON(http.StatusCreated, postTag)
}

// RemoveTagFromPost handles detaching a tag from a post
// DELETE /api/post-tags
func (h *TagHandler) RemoveTagFromPost(c *gin.Context) {
	var req service.PostTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	if err := h.tagService.RemoveTagFromPost(req); err != nil {
		util.FromError(c, err)
		return
	}

	util.Message(c, http.StatusOK, "Tag removed from post")
}

// GetTagsOfPost handles listing the tags attached to a post
// GET /api/post-tags/post/:postId
func (h *TagHandler) GetTagsOfPost(c *gin.Context) {
	postTags, err := h.tagService.GetTagsOfPost(c.Param("postId"))
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, postTags)
}

// GetPostsByTag handles listing the posts carrying a tag
// GET /api/post-tags/tag/:tagId
func (h *TagHandler) GetPostsByTag(c *gin.Context) {
	postTags, err := h.tagService.GetPostsByTag(c.Param("tagId"))
	if err != nil {
		util.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, postTags)
}
