package services

import "github.com/AgroHub-Uni-RV/Ypetec/models"

// Actor is the authenticated identity behind a command, extracted from the
// token by the auth middleware.
type Actor struct {
	ID   uint64
	Role models.UserRole
}

// Access policy: pure predicates evaluated before any lifecycle command runs.

func IsAdmin(actor Actor) bool {
	return actor.Role == models.RoleAdmin
}

func IsStudent(actor Actor) bool {
	return actor.Role == models.RoleStudent
}

// OwnsProject is strict ownership: admins do not bypass it. Owner-only
// commands (submit, disengage, mentorship) stay with the owner.
func OwnsProject(actor Actor, project *models.Project) bool {
	return project != nil && project.OwnerID == actor.ID
}

// OwnerOrAdmin gates read access to resources scoped to a project.
func OwnerOrAdmin(actor Actor, project *models.Project) bool {
	return IsAdmin(actor) || OwnsProject(actor, project)
}
