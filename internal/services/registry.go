package services

import (
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/storage"

	"gorm.io/gorm"
)

// ServiceContainer wires every service with its repositories. Built once at
// startup and handed to the handlers.
type ServiceContainer struct {
	Auth        AuthService
	Job         JobService
	Application ApplicationService
	Profile     ProfileService
}

func NewServiceContainer(db *gorm.DB, store storage.Storage, mailer email.Mailer) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	return &ServiceContainer{
		Auth:        NewAuthService(userRepo, profileRepo),
		Job:         NewJobService(jobRepo, applicationRepo),
		Application: NewApplicationService(applicationRepo, jobRepo, profileRepo, store, mailer),
		Profile:     NewProfileService(userRepo, profileRepo, store),
	}
}
