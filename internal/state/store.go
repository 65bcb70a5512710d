// Package state implements the application state for the admin panel: the
// cached page of user records, the active query parameters and the actions
// that bridge UI intent to the record API. Remote failures never escape an
// action; they are converted to a single user-facing message on the state.
package state

import (
	"context"
	"sync"

	"github.com/chybatronik/goAdminPanel/internal/logging"
	"github.com/chybatronik/goAdminPanel/internal/models"
	"github.com/chybatronik/goAdminPanel/internal/types"
)

// RecordAPI is the record-store surface consumed by the state layer.
// Implemented by mockapi.Store; tests substitute fakes.
type RecordAPI interface {
	List(ctx context.Context, params types.ListUsersParams) (types.UserPage, error)
	GetByID(ctx context.Context, id int) (models.User, error)
	Create(ctx context.Context, fields models.NewUser) (models.User, error)
	Update(ctx context.Context, id int, patch models.UserPatch) (models.User, error)
	Delete(ctx context.Context, id int) error
	Roles(ctx context.Context) ([]string, error)
}

// User-facing error messages. One message is retained at a time; the last
// failure wins.
const (
	MsgLoadUsersFailed  = "Failed to load users"
	MsgLoadRolesFailed  = "Failed to load roles"
	MsgFetchUserFailed  = "Failed to fetch user details"
	MsgAddUserFailed    = "Failed to add user"
	MsgUpdateUserFailed = "Failed to update user"
	MsgDeleteUserFailed = "Failed to delete user"
)

// Snapshot is an immutable view of the store state, delivered to listeners
// after every state change.
type Snapshot struct {
	Users          []models.User
	TotalUsers     int
	Roles          []string
	Loading        bool
	Error          string
	SearchQuery    string
	SelectedRole   string
	SelectedStatus string
	SortBy         string
	SortOrder      string
	CurrentPage    int
	PageSize       int
	TotalPages     int
}

// Listener receives state snapshots. Listeners run outside the store lock
// and must not call back into the store synchronously.
type Listener func(Snapshot)

// Options configures a UserStore's initial query parameters.
type Options struct {
	PageSize  int
	SortBy    string
	SortOrder string
	Logger    *logging.Logger
}

// UserStore caches the current page of records and orchestrates record-API
// calls. The cache is a derived view: the record store stays authoritative,
// and the cache is reconciled against its responses.
type UserStore struct {
	mu  sync.Mutex
	api RecordAPI
	log *logging.Logger

	users      []models.User
	totalUsers int
	roles      []string
	loading    bool
	errMsg     string

	searchQuery    string
	selectedRole   string
	selectedStatus string
	sortBy         string
	sortOrder      string
	currentPage    int
	pageSize       int

	// loadSeq stamps each load; responses carrying a stale stamp are
	// dropped so a slow response cannot overwrite a newer one.
	loadSeq uint64

	listeners map[int]Listener
	nextSub   int
}

// NewUserStore creates a user store over the given record API.
func NewUserStore(api RecordAPI, opts Options) *UserStore {
	if opts.PageSize < 1 {
		opts.PageSize = types.DefaultPageSize
	}
	if opts.SortBy == "" {
		opts.SortBy = types.DefaultSortBy
	}
	if opts.SortOrder == "" {
		opts.SortOrder = types.DefaultSortOrder
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewStructuredLogger("error", "json", "goAdminPanel", "dev")
	}

	return &UserStore{
		api:         api,
		log:         logger.WithComponent("state"),
		sortBy:      opts.SortBy,
		sortOrder:   opts.SortOrder,
		currentPage: types.DefaultPage,
		pageSize:    opts.PageSize,
		listeners:   map[int]Listener{},
	}
}

// Subscribe registers a listener and returns its unsubscribe function.
func (s *UserStore) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Snapshot returns the current state.
func (s *UserStore) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// LoadUsers fetches the current page with the active query parameters.
// On failure the prior cache is left untouched and the error message is set;
// the loading flag always clears for the latest load.
func (s *UserStore) LoadUsers(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.loadSeq++
	seq := s.loadSeq
	params := types.ListUsersParams{
		Search:    s.searchQuery,
		Role:      s.selectedRole,
		Status:    s.selectedStatus,
		Page:      s.currentPage,
		PageSize:  s.pageSize,
		SortBy:    s.sortBy,
		SortOrder: s.sortOrder,
	}
	s.publishLocked()

	page, err := s.api.List(ctx, params)

	s.mu.Lock()
	if seq != s.loadSeq {
		// a newer load owns the state now
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.errMsg = MsgLoadUsersFailed
		s.loading = false
		s.log.ActionError("loadUsers", err)
		s.publishLocked()
		return
	}

	s.users = page.Users
	s.totalUsers = page.Total
	s.loading = false
	s.log.Action("loadUsers", logging.FieldPage, params.Page, logging.FieldTotal, page.Total)
	s.publishLocked()
}

// LoadRoles fetches the available roles.
func (s *UserStore) LoadRoles(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.publishLocked()

	roles, err := s.api.Roles(ctx)

	s.mu.Lock()
	if err != nil {
		s.errMsg = MsgLoadRolesFailed
		s.log.ActionError("loadRoles", err)
	} else {
		s.roles = roles
	}
	s.loading = false
	s.publishLocked()
}

// FetchUserByID fetches a single record. The result is returned to the
// caller, not cached; a failure only sets the error message.
func (s *UserStore) FetchUserByID(ctx context.Context, id int) (models.User, bool) {
	s.mu.Lock()
	s.loading = true
	s.publishLocked()

	user, err := s.api.GetByID(ctx, id)

	s.mu.Lock()
	defer s.publishLocked()
	s.loading = false
	if err != nil {
		s.errMsg = MsgFetchUserFailed
		s.log.ActionError("fetchUserByID", err)
		return models.User{}, false
	}
	return user, true
}

// AddUser creates a record remotely first and, on success, inserts the
// returned record at the front of the cache. Creation is not optimistic:
// the id and join date only exist once the record store answers.
func (s *UserStore) AddUser(ctx context.Context, fields models.NewUser) {
	s.mu.Lock()
	s.loading = true
	s.publishLocked()

	created, err := s.api.Create(ctx, fields)

	s.mu.Lock()
	defer s.publishLocked()
	s.loading = false
	if err != nil {
		s.errMsg = MsgAddUserFailed
		s.log.ActionError("addUser", err)
		return
	}

	s.users = append([]models.User{created}, s.users...)
	s.totalUsers++
	s.log.WithUserID(created.ID).Action("addUser")
}

// EditUser applies the patch to the cached record immediately, then confirms
// remotely. On failure the pre-edit snapshot is restored at its original
// position; on success the server-returned record is merged into the cache.
// A record absent from the cache is a no-op: no remote call is made.
func (s *UserStore) EditUser(ctx context.Context, id int, patch models.UserPatch) {
	s.mu.Lock()
	index := s.indexOfLocked(id)
	if index < 0 {
		s.mu.Unlock()
		return
	}

	backup := s.users[index]
	patch.Apply(&s.users[index])
	s.publishLocked()

	updated, err := s.api.Update(ctx, id, patch)

	s.mu.Lock()
	defer s.publishLocked()
	if err != nil {
		s.restoreLocked(id, index, backup)
		s.errMsg = MsgUpdateUserFailed
		s.log.ActionError("editUser", err)
		return
	}

	// server response is authoritative; reconcile the optimistic value
	if i := s.indexOfLocked(id); i >= 0 {
		s.users[i] = updated
	}
	s.log.WithUserID(id).Action("editUser")
}

// RemoveUser removes the cached record immediately, then confirms remotely.
// On failure the record is reinserted at its original index. A record absent
// from the cache is a no-op.
func (s *UserStore) RemoveUser(ctx context.Context, id int) {
	s.mu.Lock()
	index := s.indexOfLocked(id)
	if index < 0 {
		s.mu.Unlock()
		return
	}

	backup := s.users[index]
	s.users = append(s.users[:index], s.users[index+1:]...)
	s.totalUsers--
	s.publishLocked()

	err := s.api.Delete(ctx, id)

	s.mu.Lock()
	defer s.publishLocked()
	if err != nil {
		s.insertLocked(index, backup)
		s.totalUsers++
		s.errMsg = MsgDeleteUserFailed
		s.log.ActionError("removeUser", err)
		return
	}
	s.log.WithUserID(id).Action("removeUser")
}

// UpdateSorting toggles the direction when field is already the sort key,
// otherwise adopts the field ascending. Either way the page reloads.
func (s *UserStore) UpdateSorting(ctx context.Context, field string) {
	s.mu.Lock()
	if s.sortBy == field {
		if s.sortOrder == types.SortAsc {
			s.sortOrder = types.SortDesc
		} else {
			s.sortOrder = types.SortAsc
		}
	} else {
		s.sortBy = field
		s.sortOrder = types.SortAsc
	}
	s.publishLocked()

	s.LoadUsers(ctx)
}

// SetPage moves to the target page and reloads. Pages outside
// [1, totalPages] are ignored.
func (s *UserStore) SetPage(ctx context.Context, page int) {
	s.mu.Lock()
	if page < 1 || page > s.totalPagesLocked() {
		s.mu.Unlock()
		return
	}
	s.currentPage = page
	s.publishLocked()

	s.LoadUsers(ctx)
}

// SetSearch updates the search term, resets to the first page and reloads.
func (s *UserStore) SetSearch(ctx context.Context, query string) {
	s.mu.Lock()
	s.searchQuery = query
	s.currentPage = types.DefaultPage
	s.publishLocked()

	s.LoadUsers(ctx)
}

// SetRoleFilter updates the role filter, resets to the first page and reloads.
func (s *UserStore) SetRoleFilter(ctx context.Context, role string) {
	s.mu.Lock()
	s.selectedRole = role
	s.currentPage = types.DefaultPage
	s.publishLocked()

	s.LoadUsers(ctx)
}

// SetStatusFilter updates the status filter, resets to the first page and reloads.
func (s *UserStore) SetStatusFilter(ctx context.Context, status string) {
	s.mu.Lock()
	s.selectedStatus = status
	s.currentPage = types.DefaultPage
	s.publishLocked()

	s.LoadUsers(ctx)
}

// indexOfLocked returns the cache position of id, or -1.
func (s *UserStore) indexOfLocked(id int) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// restoreLocked puts backup at the position currently holding id, falling
// back to its original index if the record vanished from the cache.
func (s *UserStore) restoreLocked(id, originalIndex int, backup models.User) {
	if i := s.indexOfLocked(id); i >= 0 {
		s.users[i] = backup
		return
	}
	s.insertLocked(originalIndex, backup)
}

// insertLocked inserts user at index, clamping to the cache bounds.
func (s *UserStore) insertLocked(index int, user models.User) {
	if index < 0 {
		index = 0
	}
	if index > len(s.users) {
		index = len(s.users)
	}
	s.users = append(s.users[:index], append([]models.User{user}, s.users[index:]...)...)
}

func (s *UserStore) totalPagesLocked() int {
	return (s.totalUsers + s.pageSize - 1) / s.pageSize
}

func (s *UserStore) snapshotLocked() Snapshot {
	users := make([]models.User, len(s.users))
	copy(users, s.users)
	roles := make([]string, len(s.roles))
	copy(roles, s.roles)

	return Snapshot{
		Users:          users,
		TotalUsers:     s.totalUsers,
		Roles:          roles,
		Loading:        s.loading,
		Error:          s.errMsg,
		SearchQuery:    s.searchQuery,
		SelectedRole:   s.selectedRole,
		SelectedStatus: s.selectedStatus,
		SortBy:         s.sortBy,
		SortOrder:      s.sortOrder,
		CurrentPage:    s.currentPage,
		PageSize:       s.pageSize,
		TotalPages:     s.totalPagesLocked(),
	}
}

// publishLocked snapshots the state, releases the lock and fans the snapshot
// out to all listeners. Must be called with the lock held; the lock is
// released when it returns.
func (s *UserStore) publishLocked() {
	snap := s.snapshotLocked()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}
