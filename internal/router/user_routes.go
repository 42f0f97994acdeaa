package router

import (
	userhandler "social-spectrum-server/internal/modules/user/handler"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(userGroup *gin.RouterGroup, h *userhandler.Handler) {
	userGroup.GET("/suggested", h.SuggestedUsers)
	userGroup.GET("/online", h.OnlineFriends)
	userGroup.GET("/:userId", h.GetUser)
	userGroup.PATCH("", h.UpdateProfile)
	userGroup.PATCH("/password-update", h.UpdatePassword)
	userGroup.PATCH("/:userId/status", h.UpdateVisibility)
	userGroup.POST("/password-check", h.CheckPassword)
	userGroup.DELETE("/:userId", h.DeleteAccount)
}
