package domain

import "time"

// Role is the authorization level of a user. The system ships with exactly
// two roles: super admins may delete records, normal admins may not.
type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleNormalAdmin Role = "normal_admin"
)

// User represents an operator account.
type User struct {
	UserID       string  `json:"userID"` // Primary key (UUID)
	Username     string  `json:"username"`
	Name         string  `json:"name"`
	Email        *string `json:"email,omitempty"` // Set when the account is linked to a Google identity
	Role         Role    `json:"role"`
	PasswordHash string  `json:"-"`

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// Principal identifies the authenticated caller of a service operation.
// It is built from verified token claims and passed explicitly so that
// permission checks stay pure functions of their inputs.
type Principal struct {
	UserID   string
	Username string
	Name     string
	Role     Role
}

// CanDelete reports whether the principal may delete records.
func (p Principal) CanDelete() bool {
	return p.Role == RoleSuperAdmin
}
