package handlers

import (
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth        *AuthHandler
	Employer    *EmployerHandler
	Job         *JobHandler
	Application *ApplicationHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:        NewAuthHandler(base, sc.Auth, sc.Profile),
		Employer:    NewEmployerHandler(base, sc.Auth, sc.Profile, sc.Job, sc.Application),
		Job:         NewJobHandler(base, sc.Job),
		Application: NewApplicationHandler(base, sc.Application),
	}
}
