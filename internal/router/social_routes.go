package router

import (
	"social-spectrum-server/internal/modules"

	"github.com/gin-gonic/gin"
)

// registerSocialRoutes mounts posts, comments, likes, relationships, stories
// and search on a group that already requires a session.
func registerSocialRoutes(authed *gin.RouterGroup, m *modules.AppModules) {
	posts := authed.Group("/posts")
	posts.GET("", m.Post.Handler.GetPosts)
	posts.POST("", m.Post.Handler.AddPost)
	posts.GET("/saved", m.Post.Handler.GetSavedPosts)
	posts.POST("/saved", m.Post.Handler.SavePost)
	posts.DELETE("/saved/:postId", m.Post.Handler.UnsavePost)
	posts.GET("/:userId", m.Post.Handler.GetUserPosts)
	posts.DELETE("/:postId", m.Post.Handler.DeletePost)

	authed.POST("/comments", m.Comment.Handler.AddComment)
	authed.DELETE("/comments/:commentId", m.Comment.Handler.DeleteComment)

	authed.POST("/likes", m.Like.Handler.Like)
	authed.DELETE("/likes/:postId", m.Like.Handler.Unlike)

	authed.GET("/relationships/followed-users", m.Relationship.Handler.GetFollowedUsers)
	authed.POST("/relationships", m.Relationship.Handler.Follow)
	authed.DELETE("/relationships", m.Relationship.Handler.Unfollow)

	stories := authed.Group("/stories")
	stories.GET("", m.Story.Handler.GetStories)
	stories.POST("", m.Story.Handler.AddStory)
	stories.DELETE("/:storyId", m.Story.Handler.DeleteStory)

	authed.GET("/search", m.Search.Handler.Search)
}
