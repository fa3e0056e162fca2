// Package models defines the user and role types shared by the server and
// the client. The client persists the same User shape it receives over the
// wire, so both sides marshal through the JSON tags declared here.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of user roles known to the system. Unknown role
// strings are rejected at the model boundary (see ParseRole), not at
// authorization-check time.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
)

// ParseRole converts s into a Role, rejecting values outside the closed set.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(s)); r {
	case RoleAdmin, RoleUser, RoleModerator:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// User is an account in the admin panel. Email is unique case-insensitively;
// uniqueness is enforced at creation time by the user repository.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserUpdate carries the optional profile fields of an update request.
// Nil fields are left unchanged.
type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}
