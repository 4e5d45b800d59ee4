package model

// Application roles.
const (
	RoleAppAdmin   = "app-admin"
	RoleAppManager = "app-manager"
	RoleAppUser    = "app-user"
)

// Project roles.
const (
	RoleProjectManager = "project-manager"
	RoleProjectMember  = "project-member"
	RoleProjectViewer  = "project-viewer"
)

// Scope is the actor behind a request. A zero UserID means the request was
// made with the application API token and has no session user.
type Scope struct {
	UserID   int64
	Username string
	Role     string
}

// IsUser reports whether the request carries an authenticated user.
func (s Scope) IsUser() bool {
	return s.UserID > 0
}

// IsAppAdmin reports whether the user is an application administrator.
func (s Scope) IsAppAdmin() bool {
	return s.IsUser() && s.Role == RoleAppAdmin
}
