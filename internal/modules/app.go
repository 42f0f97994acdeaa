package modules

import (
	"social-spectrum-server/internal/common/httpx"
	"social-spectrum-server/internal/modules/auth"
	"social-spectrum-server/internal/modules/comment"
	commentrepo "social-spectrum-server/internal/modules/comment/repo"
	"social-spectrum-server/internal/modules/like"
	likerepo "social-spectrum-server/internal/modules/like/repo"
	"social-spectrum-server/internal/modules/post"
	postrepo "social-spectrum-server/internal/modules/post/repo"
	"social-spectrum-server/internal/modules/relationship"
	relationshiprepo "social-spectrum-server/internal/modules/relationship/repo"
	"social-spectrum-server/internal/modules/search"
	searchrepo "social-spectrum-server/internal/modules/search/repo"
	"social-spectrum-server/internal/modules/story"
	storyrepo "social-spectrum-server/internal/modules/story/repo"
	"social-spectrum-server/internal/modules/user"
	userrepo "social-spectrum-server/internal/modules/user/repo"
	platformservice "social-spectrum-server/internal/platform/service"
	"social-spectrum-server/internal/security"
)

type AppModules struct {
	Auth         *auth.Module
	User         *user.Module
	Post         *post.Module
	Comment      *comment.Module
	Like         *like.Module
	Relationship *relationship.Module
	Story        *story.Module
	Search       *search.Module
}

// Stores groups the repositories the modules are built from.
type Stores struct {
	Users         userrepo.UserStore
	Posts         postrepo.PostStore
	SavedPosts    postrepo.SavedPostStore
	Comments      commentrepo.CommentStore
	Likes         likerepo.LikeStore
	Relationships relationshiprepo.RelationshipStore
	Stories       storyrepo.StoryStore
	Search        searchrepo.SearchStore
}

func New(
	appService *platformservice.AppService,
	stores Stores,
	tokens *security.TokenService,
	cookies *httpx.SessionCookie,
) *AppModules {
	userService := user.NewService(appService, stores.Users)

	return &AppModules{
		Auth:         auth.New(appService, userService, tokens, cookies),
		User:         user.New(userService, cookies),
		Post:         post.New(appService, stores.Posts, stores.SavedPosts),
		Comment:      comment.New(appService, stores.Comments),
		Like:         like.New(appService, stores.Likes),
		Relationship: relationship.New(appService, stores.Relationships),
		Story:        story.New(appService, stores.Stories),
		Search:       search.New(appService, stores.Search),
	}
}
