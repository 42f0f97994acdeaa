package di

import (
	"social-spectrum-server/internal/common/httpx"
	"social-spectrum-server/internal/config"
	userrepo "social-spectrum-server/internal/modules/user/repo"
	"social-spectrum-server/internal/platform/service"
	"social-spectrum-server/internal/router"
)

type Application struct {
	Router  *router.Router
	Service *service.AppService
}

func NewApplication(r *router.Router, s *service.AppService) *Application {
	return &Application{
		Router:  r,
		Service: s,
	}
}

// ProvideSessionCookie marks the cookie Secure in release mode.
func ProvideSessionCookie(cfg *config.Config) *httpx.SessionCookie {
	return httpx.NewSessionCookie(cfg.IsProduction(), cfg.Cookie.ExpiresDays)
}

// ProvideAdminLookup resolves the admin account through the user store.
func ProvideAdminLookup(users userrepo.UserStore) service.AdminLookup {
	return users
}
