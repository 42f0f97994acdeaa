package handler

import (
	"social-spectrum-server/internal/common/httpx"
	userservice "social-spectrum-server/internal/modules/user/service"
)

type Handler struct {
	userService *userservice.Service
	cookies     *httpx.SessionCookie
}

func New(userService *userservice.Service, cookies *httpx.SessionCookie) *Handler {
	return &Handler{
		userService: userService,
		cookies:     cookies,
	}
}
