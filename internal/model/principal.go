package model

import "github.com/google/uuid"

// Principal is the authenticated caller, resolved once per request by
// the auth middleware and passed into every service operation.
type Principal struct {
	UserID uuid.UUID
	Role   UserRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == UserRoleAdmin
}

func (p Principal) IsDriver() bool {
	return p.Role == UserRoleDriver
}

func (p Principal) IsParent() bool {
	return p.Role == UserRoleParent
}
