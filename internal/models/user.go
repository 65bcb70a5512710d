// Package models provides the core data model for the goAdminPanel service.
package models

import "time"

// Role is the closed set of roles a user can hold.
type Role string

// Valid roles. No dynamic roles are created at runtime.
const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleViewer  Role = "Viewer"
)

// Roles lists all valid roles in presentation order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleViewer}
}

// IsValid reports whether r is a member of the role enumeration.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleViewer:
		return true
	}
	return false
}

// Status is the closed set of account statuses.
type Status string

// Valid statuses.
const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// IsValid reports whether s is a member of the status enumeration.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// User represents a single managed user record.
// ID is unique and stable for the record's lifetime; DateJoined is stamped at
// creation and never changes afterwards.
type User struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Status     Status    `json:"status"`
	DateJoined time.Time `json:"dateJoined"`
}

// UserPatch is a partial update of a user record. Nil fields are left
// untouched by an update; ID and DateJoined are not patchable.
type UserPatch struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Role   *Role   `json:"role,omitempty"`
	Status *Status `json:"status,omitempty"`
}

// Apply merges the patch into u, field by field.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
}

// NewUser carries the caller-supplied fields for user creation. All fields
// are required; the store assigns the ID and join date.
type NewUser struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Status Status `json:"status"`
}
