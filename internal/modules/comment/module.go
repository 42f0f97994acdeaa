package comment

import (
	"social-spectrum-server/internal/modules/comment/handler"
	"social-spectrum-server/internal/modules/comment/repo"
	"social-spectrum-server/internal/modules/comment/service"
	platformservice "social-spectrum-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, commentStore repo.CommentStore) *Module {
	moduleService := service.New(appService, commentStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
