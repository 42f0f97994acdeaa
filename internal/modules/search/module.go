package search

import (
	"social-spectrum-server/internal/modules/search/handler"
	"social-spectrum-server/internal/modules/search/repo"
	"social-spectrum-server/internal/modules/search/service"
	platformservice "social-spectrum-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, searchStore repo.SearchStore) *Module {
	moduleService := service.New(appService, searchStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
