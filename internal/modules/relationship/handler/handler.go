package handler

import relationshipservice "social-spectrum-server/internal/modules/relationship/service"

type Handler struct {
	relationshipService *relationshipservice.Service
}

func New(relationshipService *relationshipservice.Service) *Handler {
	return &Handler{relationshipService: relationshipService}
}
