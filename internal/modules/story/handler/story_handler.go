package handler

import (
	"net/http"

	"social-spectrum-server/internal/common/httpx"
	moduledto "social-spectrum-server/internal/modules/story/dto"

	"github.com/gin-gonic/gin"
)

// GetStories lists the caller's and followed users' stories, or only the
// stories of ?userId when given.
func (h *Handler) GetStories(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	if raw := c.Query("userId"); raw != "" {
		userID, err := httpx.ParseID(raw, "Invalid user ID")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		stories, err := h.storyService.UserStories(c.Request.Context(), userID)
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		c.JSON(http.StatusOK, stories)
		return
	}

	stories, err := h.storyService.VisibleStories(c.Request.Context(), callerID)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stories)
}

func (h *Handler) AddStory(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	var req moduledto.AddStoryRequest
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	if _, err := h.storyService.AddStory(c.Request.Context(), callerID, req); err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Story added successfully"})
}

func (h *Handler) DeleteStory(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	storyID, err := httpx.ParseID(c.Param("storyId"), "Invalid story id")
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	if err := h.storyService.DeleteStory(c.Request.Context(), callerID, storyID); err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Story deleted successfully"})
}
