package model

const (
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERATOR"
	RoleViewer   = "VIEWER"
)

// Scope carries the workspace/tenant identity of the caller through every
// usecase and repository call.
type Scope struct {
	WorkspaceID string `json:"workspace_id"`
	UserID      string `json:"user_id"`
	Role        string `json:"role"` // ADMIN, OPERATOR, or VIEWER
}

// IsAdmin checks if the scope has admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// CanDecide reports whether the caller may approve or reject candidates.
func (s Scope) CanDecide() bool {
	return s.Role == RoleAdmin || s.Role == RoleOperator
}
