package post

import (
	"social-spectrum-server/internal/modules/post/handler"
	"social-spectrum-server/internal/modules/post/repo"
	"social-spectrum-server/internal/modules/post/service"
	platformservice "social-spectrum-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, postStore repo.PostStore, savedStore repo.SavedPostStore) *Module {
	moduleService := service.New(appService, postStore, savedStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
