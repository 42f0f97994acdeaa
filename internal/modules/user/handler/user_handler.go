package handler

import (
	"mime/multipart"
	"net/http"

	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/common/httpx"
	moduledto "social-spectrum-server/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

// GetUser returns the user as a one-element array.
func (h *Handler) GetUser(c *gin.Context) {
	userID, err := httpx.ParseID(c.Param("userId"), "Invalid user ID")
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, []interface{}{user})
}

// UpdateProfile accepts multipart fields and optional profilePicture/bgPicture files.
func (h *Handler) UpdateProfile(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	req := moduledto.UpdateProfileRequest{
		Name:           c.PostForm("name"),
		Username:       c.PostForm("username"),
		Email:          c.PostForm("email"),
		Country:        optionalField(c, "country"),
		StatusText:     optionalField(c, "statusText"),
		Languages:      optionalField(c, "languages"),
		ProfilePicture: formFile(c, "profilePicture[]", "profilePicture"),
		BgPicture:      formFile(c, "bgPicture[]", "bgPicture"),
	}

	if err := h.userService.UpdateProfile(c.Request.Context(), callerID, req); err != nil {
		httpx.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) CheckPassword(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	var req moduledto.PasswordCheckRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.userService.CheckPassword(c.Request.Context(), callerID, req.Password); err != nil {
		httpx.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) UpdatePassword(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	var req moduledto.PasswordUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, common.NewValidationError("Some fields are missing or not valid"))
		return
	}

	if err := h.userService.UpdatePassword(c.Request.Context(), callerID, req); err != nil {
		httpx.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed!"})
}

func (h *Handler) UpdateVisibility(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	userID, err := httpx.ParseID(c.Param("userId"), "Invalid user ID")
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	var req moduledto.VisibilityRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.userService.UpdateVisibility(c.Request.Context(), callerID, userID, req.Visibility); err != nil {
		httpx.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// DeleteAccount clears the session cookie when callers delete themselves.
func (h *Handler) DeleteAccount(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	userID, err := httpx.ParseID(c.Param("userId"), "User not found")
	if err != nil {
		httpx.Fail(c, common.NewNotFoundError("User not found"))
		return
	}

	if err := h.userService.DeleteAccount(c.Request.Context(), callerID, userID); err != nil {
		httpx.Fail(c, err)
		return
	}

	if userID == callerID {
		h.cookies.Clear(c)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account deleted successfully"})
}

func (h *Handler) SuggestedUsers(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	users, err := h.userService.SuggestedUsers(c.Request.Context(), callerID)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) OnlineFriends(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	users, err := h.userService.OnlineFriends(c.Request.Context(), callerID)
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// optionalField returns nil when the form field is absent.
func optionalField(c *gin.Context, key string) *string {
	value, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	return &value
}

// formFile returns the first file sent under any of keys.
func formFile(c *gin.Context, keys ...string) *multipart.FileHeader {
	for _, key := range keys {
		if file, err := c.FormFile(key); err == nil {
			return file
		}
	}
	return nil
}
