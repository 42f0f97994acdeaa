package handler

import (
	"net/http"

	"social-spectrum-server/internal/common/httpx"
	searchservice "social-spectrum-server/internal/modules/search/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	searchService *searchservice.Service
}

func New(searchService *searchservice.Service) *Handler {
	return &Handler{searchService: searchService}
}

func (h *Handler) Search(c *gin.Context) {
	result, err := h.searchService.Search(c.Request.Context(), c.Query("searchString"))
	if err != nil {
		httpx.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
