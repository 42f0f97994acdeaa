package handler

import commentservice "social-spectrum-server/internal/modules/comment/service"

type Handler struct {
	commentService *commentservice.Service
}

func New(commentService *commentservice.Service) *Handler {
	return &Handler{commentService: commentService}
}
