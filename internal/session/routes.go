package session

import "github.com/chybatronik/goAdminPanel/internal/models"

// Route describes a navigable view and its access requirements. An empty
// Roles list means any authenticated user may enter.
type Route struct {
	Path         string
	RequiresAuth bool
	Roles        []models.Role
}

// routeTable mirrors the panel's navigation structure.
var routeTable = []Route{
	{Path: "/login"},
	{Path: "/users", RequiresAuth: true},
	{Path: "/users/:id", RequiresAuth: true},
	{Path: "/admin", RequiresAuth: true, Roles: []models.Role{models.RoleAdmin}},
}

// Routes returns the navigation table.
func Routes() []Route {
	routes := make([]Route, len(routeTable))
	copy(routes, routeTable)
	return routes
}

// CanAccess reports whether the current session may enter the given route
// path. Unknown paths are treated as public.
func (a *AuthStore) CanAccess(path string) bool {
	var route *Route
	for i := range routeTable {
		if routeTable[i].Path == path {
			route = &routeTable[i]
			break
		}
	}
	if route == nil || !route.RequiresAuth {
		return true
	}

	if !a.IsAuthenticated() {
		return false
	}

	if len(route.Roles) == 0 {
		return true
	}

	user, ok := a.CurrentUser()
	if !ok {
		return false
	}
	for _, role := range route.Roles {
		if user.Role == role {
			return true
		}
	}
	return false
}
