package handlers

import (
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/validator"
)

// AppHandlers holds every HTTP handler in the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	ProfileHandler     *ProfileHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, sc.Auth),
		JobHandler:         NewJobHandler(base, sc.Job),
		ApplicationHandler: NewApplicationHandler(base, sc.Application),
		ProfileHandler:     NewProfileHandler(base, sc.Profile),
	}
}
