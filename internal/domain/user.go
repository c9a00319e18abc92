package domain

import (
	"encoding/json"
	"time"
)

// Role groups users by privilege. Lower level means more privileged.
// Permissions is an opaque JSON document; nothing in this service interprets it.
type Role struct {
	ID          int64
	Name        string
	Level       int
	Permissions json.RawMessage
	CreatedAt   time.Time
}

// User is an account of the application.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	RealName     string
	RoleID       *int64
	Department   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName returns the real name when set, otherwise the username.
func (u User) DisplayName() string {
	if u.RealName != "" {
		return u.RealName
	}
	return u.Username
}

// Identity is the current account joined with its role.
type Identity struct {
	User User
	Role *Role
}
