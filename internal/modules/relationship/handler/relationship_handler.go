package handler

import (
	"fmt"
	"net/http"

	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/common/httpx"
	moduledto "social-spectrum-server/internal/modules/relationship/dto"

	"github.com/gin-gonic/gin"
)

// GetFollowers is public.
func (h *Handler) GetFollowers(c *gin.Context) {
	userID, err := httpx.ParseID(c.Query("userId"), "")
	if err != nil {
		httpx.Fail(c, common.NewNotFoundError("Invalid user id"))
		return
	}

	followers, err := h.relationshipService.Followers(c.Request.Context(), userID)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, followers)
}

func (h *Handler) GetFollowedUsers(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	users, err := h.relationshipService.FollowedUsers(c.Request.Context(), callerID)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) Follow(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	var req moduledto.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, common.NewValidationError("User id is missing in body"))
		return
	}

	followedID := req.UserIDToFollow.Uint()
	if err := h.relationshipService.Follow(c.Request.Context(), callerID, followedID); err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, fmt.Sprintf("User %d followed", followedID))
}

func (h *Handler) Unfollow(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	followedID, err := httpx.ParseID(c.Query("userIdToUnfollow"), "Missing user ID to unfollow")
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	if err := h.relationshipService.Unfollow(c.Request.Context(), callerID, followedID); err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, fmt.Sprintf("User %d unfollowed", followedID))
}
