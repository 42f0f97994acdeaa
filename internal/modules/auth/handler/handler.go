package handler

import (
	"social-spectrum-server/internal/common/httpx"
	authservice "social-spectrum-server/internal/modules/auth/service"
)

type Handler struct {
	authService *authservice.Service
	cookies     *httpx.SessionCookie
}

func New(authService *authservice.Service, cookies *httpx.SessionCookie) *Handler {
	return &Handler{authService: authService, cookies: cookies}
}
