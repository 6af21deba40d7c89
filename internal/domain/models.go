package domain

import (
	"fmt"
	"strings"
	"time"
)

// UserRole is the access level stored on a user account and embedded in tokens.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// ParseUserRole normalizes and validates a role string.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown user role %q", s)
	}
}

type User struct {
	ID         int64
	Email      string
	Password   string
	Nickname   string
	Role       UserRole
	CreatedAt  time.Time
	ModifiedAt time.Time
}

type Todo struct {
	ID         int64
	Title      string
	Contents   string
	Weather    string
	UserID     int64
	CreatedAt  time.Time
	ModifiedAt time.Time
}

type Comment struct {
	ID         int64
	Contents   string
	UserID     int64
	TodoID     int64
	CreatedAt  time.Time
	ModifiedAt time.Time
}

type Manager struct {
	ID        int64
	UserID    int64
	TodoID    int64
	CreatedAt time.Time
}
