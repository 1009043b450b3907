package services

import (
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/repositories"

	"gorm.io/gorm"
)

// ServiceContainer wires every service over a shared set of repositories.
type ServiceContainer struct {
	Auth        *AuthService
	Job         *JobService
	Application *ApplicationService
	Profile     *ProfileService
}

func NewServiceContainer(db *gorm.DB, emailSender email.Sender) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	return &ServiceContainer{
		Auth:        NewAuthService(userRepo),
		Job:         NewJobService(jobRepo, profileRepo),
		Application: NewApplicationService(applicationRepo, jobRepo, userRepo, profileRepo, emailSender),
		Profile:     NewProfileService(profileRepo),
	}
}
