package handler

import (
	"net/http"

	"social-spectrum-server/internal/common/httpx"
	moduledto "social-spectrum-server/internal/modules/post/dto"

	"github.com/gin-gonic/gin"
)

// GetPosts serves the home feed, or one user's posts when specificUserId is set.
func (h *Handler) GetPosts(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	if raw := c.Query("specificUserId"); raw != "" {
		h.userFeed(c, callerID, raw)
		return
	}

	posts, err := h.postService.HomeFeed(c.Request.Context(), callerID)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handler) GetUserPosts(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	h.userFeed(c, callerID, c.Param("userId"))
}

func (h *Handler) userFeed(c *gin.Context, callerID uint, rawUserID string) {
	authorID, err := httpx.ParseID(rawUserID, "Invalid user ID")
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	posts, err := h.postService.UserFeed(c.Request.Context(), callerID, authorID)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// AddPost accepts multipart textContent and an optional image file.
func (h *Handler) AddPost(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	req := moduledto.AddPostRequest{TextContent: c.PostForm("textContent")}
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if _, err := h.postService.AddPost(c.Request.Context(), callerID, req); err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Post added successfully"})
}

func (h *Handler) DeletePost(c *gin.Context) {
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

	if err := h.postService.DeletePost(c.Request.Context(), callerID, postID); err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post deleted successfully"})
}
