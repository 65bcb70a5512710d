package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersParams_NormalizeDefaults(t *testing.T) {
	params := ListUsersParams{}.Normalize()

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.PageSize)
	assert.Equal(t, "name", params.SortBy)
	assert.Equal(t, "asc", params.SortOrder)
	assert.Empty(t, params.Search)
	assert.Empty(t, params.Role)
	assert.Empty(t, params.Status)
}

func TestListUsersParams_NormalizeKeepsExplicitValues(t *testing.T) {
	params := ListUsersParams{
		Search:    "jane",
		Page:      3,
		PageSize:  25,
		SortBy:    SortByEmail,
		SortOrder: SortDesc,
	}.Normalize()

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 25, params.PageSize)
	assert.Equal(t, "email", params.SortBy)
	assert.Equal(t, "desc", params.SortOrder)
	assert.Equal(t, "jane", params.Search)
}

func TestListUsersParams_Validate(t *testing.T) {
	valid := ListUsersParams{}.Normalize()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*ListUsersParams)
	}{
		{"zero page", func(p *ListUsersParams) { p.Page = 0 }},
		{"negative page", func(p *ListUsersParams) { p.Page = -1 }},
		{"zero page size", func(p *ListUsersParams) { p.PageSize = 0 }},
		{"unknown sort field", func(p *ListUsersParams) { p.SortBy = "password" }},
		{"unknown sort order", func(p *ListUsersParams) { p.SortOrder = "sideways" }},
		{"unknown role filter", func(p *ListUsersParams) { p.Role = "Superuser" }},
		{"unknown status filter", func(p *ListUsersParams) { p.Status = "Archived" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := valid
			tt.mutate(&params)
			assert.Error(t, params.Validate())
		})
	}
}

func TestListUsersParams_ValidateAllSortFields(t *testing.T) {
	for _, field := range []string{SortByName, SortByEmail, SortByRole, SortByStatus, SortByDateJoined} {
		params := ListUsersParams{SortBy: field}.Normalize()
		assert.NoError(t, params.Validate(), "sort field %s", field)
	}
}

func TestUserPage_TotalPages(t *testing.T) {
	assert.Equal(t, 5, UserPage{Total: 50}.TotalPages(10))
	assert.Equal(t, 6, UserPage{Total: 51}.TotalPages(10))
	assert.Equal(t, 0, UserPage{Total: 0}.TotalPages(10))
	assert.Equal(t, 0, UserPage{Total: 50}.TotalPages(0))
}
