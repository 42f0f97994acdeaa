package handler

import (
	"net/http"

	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/common/httpx"
	moduledto "social-spectrum-server/internal/modules/auth/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req moduledto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, common.NewValidationError("Missing some fields"))
		return
	}

	id, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "User created successfully",
		"createdUserId": id,
	})
}

// Login sets the session cookie and also returns the token in the body.
func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, common.NewValidationError("Please enter a valid email and password"))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	h.cookies.Set(c, result.Token)
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"token":  result.Token,
		"data":   result.User,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	h.cookies.Clear(c)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
