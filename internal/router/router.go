package router

import (
	"net/http"
	"strings"

	"social-spectrum-server/internal/common/httpx"
	"social-spectrum-server/internal/middleware"
	"social-spectrum-server/internal/modules"
	"social-spectrum-server/internal/platform/service"
	"social-spectrum-server/internal/security"
	"social-spectrum-server/internal/storage"

	"github.com/gin-gonic/gin"
)

const staticCacheControl = "public, max-age=31536000, immutable"

// uploadRoutes accept multipart bodies up to limits.upload_mb.
var uploadRoutes = []string{
	"PATCH /api/users",
	"POST /api/posts",
	"POST /api/stories",
}

type Router struct {
	modules *modules.AppModules
	service *service.AppService
	tokens  *security.TokenService
	cookies *httpx.SessionCookie
}

func NewRouter(appModules *modules.AppModules, appService *service.AppService, tokens *security.TokenService, cookies *httpx.SessionCookie) *Router {
	return &Router{
		modules: appModules,
		service: appService,
		tokens:  tokens,
		cookies: cookies,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	cfg := rt.service.Config()

	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Server.FrontendOrigin))
	r.Use(middleware.SecurityHeaders(cfg.Server.FrontendOrigin))
	r.Use(httpx.NewErrorTranslator(cfg.IsProduction(), rt.cookies).Middleware())

	// Images written by the local driver are served from disk.
	if local, ok := rt.service.Blobs().(*storage.LocalStore); ok && local.URLPrefix() != "/" {
		r.Group(local.URLPrefix(), middleware.StaticCacheMiddleware(staticCacheControl)).
			StaticFS("", gin.Dir(local.Root(), false))
	}

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(cfg.Limits.RequestsPerHour))
	api.Use(middleware.BodyLimitMiddleware(cfg, uploadRoutes...))

	authGuard := middleware.AuthGuard(rt.tokens, rt.cookies)

	registerPublicRoutes(api, rt.modules)
	registerAuthRoutes(api, rt.modules.Auth.Handler)
	registerUserRoutes(api.Group("/users", authGuard), rt.modules.User.Handler)
	registerSocialRoutes(api.Group("", authGuard), rt.modules)

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"message": "API not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	})
}
