package story

import (
	"social-spectrum-server/internal/modules/story/handler"
	"social-spectrum-server/internal/modules/story/repo"
	"social-spectrum-server/internal/modules/story/service"
	platformservice "social-spectrum-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, storyStore repo.StoryStore) *Module {
	moduleService := service.New(appService, storyStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
