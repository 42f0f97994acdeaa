package auth

import (
	"social-spectrum-server/internal/common/httpx"
	"social-spectrum-server/internal/modules/auth/handler"
	"social-spectrum-server/internal/modules/auth/service"
	platformservice "social-spectrum-server/internal/platform/service"
	"social-spectrum-server/internal/security"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, userService service.UserService, tokens *security.TokenService, cookies *httpx.SessionCookie) *Module {
	moduleService := service.New(appService, userService, tokens)
	moduleHandler := handler.New(moduleService, cookies)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
