package handler

import postservice "social-spectrum-server/internal/modules/post/service"

type Handler struct {
	postService *postservice.Service
}

func New(postService *postservice.Service) *Handler {
	return &Handler{postService: postService}
}
