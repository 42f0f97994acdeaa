package handler

import (
	"fmt"
	"net/http"

	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/common/httpx"
	moduledto "social-spectrum-server/internal/modules/like/dto"
	likeservice "social-spectrum-server/internal/modules/like/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	likeService *likeservice.Service
}

func New(likeService *likeservice.Service) *Handler {
	return &Handler{likeService: likeService}
}

func (h *Handler) Like(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	var req moduledto.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Fail(c, common.NewValidationError("Post id is missing in body"))
		return
	}

	if err := h.likeService.Like(c.Request.Context(), callerID, req.PostID.Uint()); err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, fmt.Sprintf("Post %d liked successfully", req.PostID.Uint()))
}

func (h *Handler) Unlike(c *gin.Context) {
	callerID, err := httpx.RequireUserID(c)
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	postID, err := httpx.ParseID(c.Param("postId"), "Post id is missing as params")
	if err != nil {
		httpx.Fail(c, err)
		return
	}

	if err := h.likeService.Unlike(c.Request.Context(), callerID, postID); err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, fmt.Sprintf("Removed like from post %d", postID))
}
