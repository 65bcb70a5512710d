package mockapi

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/chybatronik/goAdminPanel/internal/models"
	"github.com/chybatronik/goAdminPanel/internal/types"
)

// fold performs Unicode case folding so that search and sort treat
// "ADMIN" and "admin" as equal. A cases.Caser is stateful, so each call
// gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// runQuery executes the fixed query pipeline over a snapshot of the
// collection: search, role filter, status filter, sort, pagination slice.
// Each stage narrows the previous stage's output; the order is part of the
// contract and not reorderable.
func runQuery(users []models.User, params types.ListUsersParams) types.UserPage {
	users = applySearch(users, params.Search)
	users = applyRoleFilter(users, params.Role)
	users = applyStatusFilter(users, params.Status)
	applySort(users, params.SortBy, params.SortOrder)

	total := len(users)
	return types.UserPage{
		Users: paginate(users, params.Page, params.PageSize),
		Total: total,
	}
}

// applySearch keeps records whose name or email contains the search term,
// case-insensitively. An empty term keeps everything.
func applySearch(users []models.User, search string) []models.User {
	if search == "" {
		return users
	}

	term := fold(search)
	filtered := users[:0]
	for _, u := range users {
		if strings.Contains(fold(u.Name), term) ||
			strings.Contains(fold(u.Email), term) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// applyRoleFilter keeps records with exactly the given role. Empty means no filter.
func applyRoleFilter(users []models.User, role string) []models.User {
	if role == "" {
		return users
	}

	filtered := users[:0]
	for _, u := range users {
		if u.Role == models.Role(role) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// applyStatusFilter keeps records with exactly the given status. Empty means no filter.
func applyStatusFilter(users []models.User, status string) []models.User {
	if status == "" {
		return users
	}

	filtered := users[:0]
	for _, u := range users {
		if u.Status == models.Status(status) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// applySort orders records by a case-insensitive string comparison on the
// chosen field. The sort is stable so equal keys keep a deterministic order.
func applySort(users []models.User, sortBy, sortOrder string) {
	desc := sortOrder == types.SortDesc

	sort.SliceStable(users, func(i, j int) bool {
		a := fold(sortKey(users[i], sortBy))
		b := fold(sortKey(users[j], sortBy))
		if desc {
			return a > b
		}
		return a < b
	})
}

// sortKey extracts the sortable string value for a field. Unknown fields
// cannot reach here; the params whitelist rejects them up front.
func sortKey(u models.User, field string) string {
	switch field {
	case types.SortByEmail:
		return u.Email
	case types.SortByRole:
		return string(u.Role)
	case types.SortByStatus:
		return string(u.Status)
	case types.SortByDateJoined:
		// RFC 3339 sorts lexicographically in time order
		return u.DateJoined.UTC().Format("2006-01-02T15:04:05.000000000Z")
	default:
		return u.Name
	}
}

// paginate slices the window [(page-1)*pageSize, page*pageSize). Pages past
// the end produce an empty slice.
func paginate(users []models.User, page, pageSize int) []models.User {
	start := (page - 1) * pageSize
	if start >= len(users) {
		return []models.User{}
	}

	end := start + pageSize
	if end > len(users) {
		end = len(users)
	}

	out := make([]models.User, end-start)
	copy(out, users[start:end])
	return out
}
