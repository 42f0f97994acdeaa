package user

import (
	"social-spectrum-server/internal/common/httpx"
	"social-spectrum-server/internal/modules/user/handler"
	"social-spectrum-server/internal/modules/user/repo"
	"social-spectrum-server/internal/modules/user/service"
	platformservice "social-spectrum-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func NewService(appService *platformservice.AppService, userStore repo.UserStore) *service.Service {
	return service.New(appService, userStore)
}

func New(moduleService *service.Service, cookies *httpx.SessionCookie) *Module {
	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService, cookies),
	}
}
