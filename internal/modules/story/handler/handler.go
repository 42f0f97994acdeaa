package handler

import storyservice "social-spectrum-server/internal/modules/story/service"

type Handler struct {
	storyService *storyservice.Service
}

func New(storyService *storyservice.Service) *Handler {
	return &Handler{storyService: storyService}
}
