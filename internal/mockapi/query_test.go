package mockapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chybatronik/goAdminPanel/internal/models"
	"github.com/chybatronik/goAdminPanel/internal/types"
)

// testStore returns a deterministic store: no latency, no failures.
func testStore(t *testing.T, seedCount int) *Store {
	t.Helper()
	return NewStore(Config{SeedUsers: seedCount, Seed: 1})
}

func listParams(mutate func(*types.ListUsersParams)) types.ListUsersParams {
	params := types.ListUsersParams{}.Normalize()
	if mutate != nil {
		mutate(&params)
	}
	return params
}

func TestList_TotalCountsMatchesBeforePagination(t *testing.T) {
	store := testStore(t, 50)

	page, err := store.List(context.Background(), listParams(nil))
	require.NoError(t, err)

	assert.Equal(t, 50, page.Total)
	assert.Len(t, page.Users, 10)
}

func TestList_SearchMatchesNameOrEmailCaseInsensitive(t *testing.T) {
	store := testStore(t, 50)

	// "user 3" matches names User 3 and User 30..39 (substring, folded case)
	page, err := store.List(context.Background(), listParams(func(p *types.ListUsersParams) {
		p.Search = "USER 3"
		p.PageSize = 50
	}))
	require.NoError(t, err)
	assert.Equal(t, 11, page.Total)
	for _, u := range page.Users {
		assert.Contains(t, u.Name, "User 3")
	}

	// email-only match: the search term appears in emails, not in names
	page, err = store.List(context.Background(), listParams(func(p *types.ListUsersParams) {
		p.Search = "user3@example"
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "User 3", page.Users[0].Name)
}

func TestList_RoleAndStatusFiltersNarrow(t *testing.T) {
	store := testStore(t, 12)

	// seed assigns roles round-robin over 3 roles and statuses over 2
	page, err := store.List(context.Background(), listParams(func(p *types.ListUsersParams) {
		p.Role = string(models.RoleAdmin)
		p.PageSize = 50
	}))
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	for _, u := range page.Users {
		assert.Equal(t, models.RoleAdmin, u.Role)
	}

	page, err = store.List(context.Background(), listParams(func(p *types.ListUsersParams) {
		p.Role = string(models.RoleAdmin)
		p.Status = string(models.StatusActive)
		p.PageSize = 50
	}))
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	for _, u := range page.Users {
		assert.Equal(t, models.RoleAdmin, u.Role)
		assert.Equal(t, models.StatusActive, u.Status)
	}
}

func TestList_SortAscendingThenDescendingReverses(t *testing.T) {
	store := NewStore(Config{Seed: 1})
	seedNamed(t, store, "Jane", "Bob", "John")

	asc, err := store.List(context.Background(), listParams(func(p *types.ListUsersParams) {
		p.SortBy = types.SortByName
	}))
	require.NoError(t, err)
	require.Len(t, asc.Users, 3)
	assert.Equal(t, []string{"Bob", "Jane", "John"}, names(asc.Users))

	desc, err := store.List(context.Background(), listParams(func(p *types.ListUsersParams) {
		p.SortBy = types.SortByName
		p.SortOrder = types.SortDesc
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"John", "Jane", "Bob"}, names(desc.Users))
}

func TestList_SortIsCaseInsensitive(t *testing.T) {
	store := NewStore(Config{Seed: 1})
	seedNamed(t, store, "alpha", "BRAVO", "Charlie")

	page, err := store.List(context.Background(), listParams(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "BRAVO", "Charlie"}, names(page.Users))
}

func TestList_SortByDateJoined(t *testing.T) {
	store := testStore(t, 5)

	page, err := store.List(context.Background(), listParams(func(p *types.ListUsersParams) {
		p.SortBy = types.SortByDateJoined
	}))
	require.NoError(t, err)

	for i := 1; i < len(page.Users); i++ {
		prev, cur := page.Users[i-1].DateJoined, page.Users[i].DateJoined
		assert.False(t, cur.Before(prev), "expected non-decreasing join dates")
	}
}

func TestList_PaginationWindows(t *testing.T) {
	store := testStore(t, 25)

	// middle page is full
	page, err := store.List(context.Background(), listParams(func(p *types.ListUsersParams) {
		p.Page = 2
	}))
	require.NoError(t, err)
	assert.Len(t, page.Users, 10)
	assert.Equal(t, 25, page.Total)

	// last page is a partial slice
	page, err = store.List(context.Background(), listParams(func(p *types.ListUsersParams) {
		p.Page = 3
	}))
	require.NoError(t, err)
	assert.Len(t, page.Users, 5)

	// out-of-range pages are empty, never an error
	page, err = store.List(context.Background(), listParams(func(p *types.ListUsersParams) {
		p.Page = 4
	}))
	require.NoError(t, err)
	assert.Empty(t, page.Users)
	assert.Equal(t, 25, page.Total)
}

func TestList_PaginationSliceMatchesFilteredOrder(t *testing.T) {
	store := testStore(t, 30)

	full, err := store.List(context.Background(), listParams(func(p *types.ListUsersParams) {
		p.PageSize = 30
		p.SortBy = types.SortByEmail
	}))
	require.NoError(t, err)
	require.Len(t, full.Users, 30)

	window, err := store.List(context.Background(), listParams(func(p *types.ListUsersParams) {
		p.Page = 3
		p.PageSize = 7
		p.SortBy = types.SortByEmail
	}))
	require.NoError(t, err)

	assert.Equal(t, full.Users[14:21], window.Users)
}

func TestList_InvalidParamsRejected(t *testing.T) {
	store := testStore(t, 5)

	_, err := store.List(context.Background(), listParams(func(p *types.ListUsersParams) {
		p.SortBy = "password"
	}))
	assert.Error(t, err)
}

func seedNamed(t *testing.T, store *Store, userNames ...string) {
	t.Helper()
	for _, name := range userNames {
		_, err := store.Create(context.Background(), models.NewUser{
			Name:   name,
			Email:  fold(name) + "@example.com",
			Role:   models.RoleViewer,
			Status: models.StatusActive,
		})
		require.NoError(t, err)
	}
}

func names(users []models.User) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = u.Name
	}
	return out
}
