package router

import (
	"net/http"

	"social-spectrum-server/internal/modules"

	"github.com/gin-gonic/gin"
)

// registerPublicRoutes mounts the reads that need no session.
func registerPublicRoutes(api *gin.RouterGroup, m *modules.AppModules) {
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	api.GET("/comments", m.Comment.Handler.GetComments)
	api.GET("/relationships", m.Relationship.Handler.GetFollowers)
}
