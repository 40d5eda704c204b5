package services

import (
	"github.com/campushq/studentportal/internal/app/repositories"
	"github.com/campushq/studentportal/internal/pkg/auth"
	"github.com/campushq/studentportal/internal/pkg/filestorage"
)

// Services bundles all service instances for dependency injection.
type Services struct {
	Auth      *AuthService
	Portal    *PortalService
	Dashboard *DashboardService
	Profile   *ProfileService
}

// NewServices wires all services onto the repositories and shared
// infrastructure.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage filestorage.Storage) *Services {
	return &Services{
		Auth: NewAuthService(repos.Users, jwtService),
		Portal: NewPortalService(
			repos.Pages,
			repos.Enrollments,
			repos.Grades,
			repos.Transactions,
			repos.Library,
			repos.Events,
			repos.FAQs,
			repos.Profiles,
		),
		Dashboard: NewDashboardService(
			repos.Users,
			repos.Courses,
			repos.Enrollments,
			repos.Transactions,
			repos.Grades,
		),
		Profile: NewProfileService(repos.Profiles, storage),
	}
}
