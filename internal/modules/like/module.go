package like

import (
	"social-spectrum-server/internal/modules/like/handler"
	"social-spectrum-server/internal/modules/like/repo"
	"social-spectrum-server/internal/modules/like/service"
	platformservice "social-spectrum-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, likeStore repo.LikeStore) *Module {
	moduleService := service.New(appService, likeStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
