package handler

import (
	"net/http"

	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/common/httpx"
	moduledto "social-spectrum-server/internal/modules/comment/dto"

	"github.com/gin-gonic/gin"
)

// GetComments is public.
func (h *Handler) GetComments(c *gin.Context) {
	postID, err := httpx.ParseID(c.Query("postId"), "")
	if err != nil {
		httpx.Fail(c, common.NewNotFoundError("Probably post does not exist"))
		return
	}

	comments, err := h.commentService.LatestComments(c.Request.Context(), postID)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *Handler) AddComment(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	var req moduledto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, common.NewValidationError("Comment text and post id are required"))
		return
	}

	if _, err := h.commentService.AddComment(c.Request.Context(), callerID, req); err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Comment added successfully"})
}

func (h *Handler) DeleteComment(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	commentID, err := httpx.ParseID(c.Param("commentId"), "No comment id provided")
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), callerID, commentID); err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Comment deleted successfully"})
}
