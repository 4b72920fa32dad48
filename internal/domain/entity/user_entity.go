package entity

import (
	"time"
)

// Role is the authorization role assigned to a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// UserStatus is the account state. Inactive users cannot log in;
// accounts are never hard-deleted.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// User is the aggregate root for the users domain.
// Password holds the bcrypt hash and must never appear in API responses;
// see the application layer's UserResponse for the outward projection.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Phone     string
	Role      Role
	Status    UserStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsActive() bool {
	return u.Status == UserActive
}
