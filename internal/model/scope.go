package model

// Scope identifies the authenticated caller. UserID is the tenant every stored
// snapshot belongs to.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

const (
	RoleSystem = "system"
)

// SystemScope is used by background workers.
func SystemScope(ownerID string) Scope {
	return Scope{UserID: ownerID, Username: RoleSystem, Role: RoleSystem}
}
