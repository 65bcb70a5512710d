// Package types provides shared request/response types for the goAdminPanel service.
package types

import (
	"fmt"

	"github.com/chybatronik/goAdminPanel/internal/models"
)

// Pagination and sorting defaults for list queries.
const (
	DefaultPage      = 1
	DefaultPageSize  = 10
	DefaultSortBy    = SortByName
	DefaultSortOrder = SortAsc
)

// Sortable user fields. Every field is compared as a case-insensitive string.
const (
	SortByName       = "name"
	SortByEmail      = "email"
	SortByRole       = "role"
	SortByStatus     = "status"
	SortByDateJoined = "dateJoined"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListUsersParams represents parameters for the list operation.
// Empty Role/Status means "no filter"; Search matches name or email.
type ListUsersParams struct {
	Search    string
	Role      string
	Status    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// UserPage is the result of a list operation: one page of records plus the
// total number of matches before pagination was applied.
type UserPage struct {
	Users []models.User `json:"users"`
	Total int           `json:"total"`
}

// TotalPages returns the page count for the given page size.
func (p UserPage) TotalPages(pageSize int) int {
	if pageSize < 1 {
		return 0
	}
	return (p.Total + pageSize - 1) / pageSize
}

// Normalize fills in defaults for zero-valued parameters.
func (p ListUsersParams) Normalize() ListUsersParams {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	if p.SortBy == "" {
		p.SortBy = DefaultSortBy
	}
	if p.SortOrder == "" {
		p.SortOrder = DefaultSortOrder
	}
	return p
}

// Validate checks list parameters against the sortable-field whitelist and
// range constraints. Call Normalize first; zero values fail validation.
func (p ListUsersParams) Validate() error {
	if p.Page < 1 {
		return fmt.Errorf("invalid page: %d (must be >= 1)", p.Page)
	}

	if p.PageSize < 1 {
		return fmt.Errorf("invalid page size: %d (must be >= 1)", p.PageSize)
	}

	validSortFields := map[string]bool{
		SortByName:       true,
		SortByEmail:      true,
		SortByRole:       true,
		SortByStatus:     true,
		SortByDateJoined: true,
	}

	if !validSortFields[p.SortBy] {
		return fmt.Errorf("invalid sort field: %s (must be one of: name, email, role, status, dateJoined)", p.SortBy)
	}

	if p.SortOrder != SortAsc && p.SortOrder != SortDesc {
		return fmt.Errorf("invalid sort order: %s (must be 'asc' or 'desc')", p.SortOrder)
	}

	if p.Role != "" && !models.Role(p.Role).IsValid() {
		return fmt.Errorf("invalid role filter: %s", p.Role)
	}

	if p.Status != "" && !models.Status(p.Status).IsValid() {
		return fmt.Errorf("invalid status filter: %s", p.Status)
	}

	return nil
}
