package handler

import (
	"net/http"

	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/common/httpx"
	moduledto "social-spectrum-server/internal/modules/post/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetSavedPosts(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	posts, err := h.postService.SavedFeed(c.Request.Context(), callerID)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handler) SavePost(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	var req moduledto.SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, common.NewValidationError("Expected postId to be specified in the POST request body"))
		return
	}

	if err := h.postService.SavePost(c.Request.Context(), callerID, req.PostID.Uint()); err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Post bookmarked successfully"})
}

func (h *Handler) UnsavePost(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	postID, err := httpx.ParseID(c.Param("postId"), "Invalid post id")
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	if err := h.postService.UnsavePost(c.Request.Context(), callerID, postID); err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post deleted from bookmarks successfully"})
}
