package relationship

import (
	"social-spectrum-server/internal/modules/relationship/handler"
	"social-spectrum-server/internal/modules/relationship/repo"
	"social-spectrum-server/internal/modules/relationship/service"
	platformservice "social-spectrum-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, relationshipStore repo.RelationshipStore) *Module {
	moduleService := service.New(appService, relationshipStore)
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
