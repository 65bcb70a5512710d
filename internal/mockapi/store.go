// Package mockapi implements the in-memory record store backing the admin
// panel. There is no server behind it: every operation mutates a local
// collection after simulating network latency, and rolls an independent
// chance of a transient failure so callers must handle errors on every call.
package mockapi

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/chybatronik/goAdminPanel/internal/logging"
	"github.com/chybatronik/goAdminPanel/internal/models"
	"github.com/chybatronik/goAdminPanel/internal/types"
	"github.com/chybatronik/goAdminPanel/internal/validation"
	apierrors "github.com/chybatronik/goAdminPanel/pkg/errors"
)

// Simulation defaults, matching a realistic flaky backend.
const (
	DefaultLatencyMin  = 300 * time.Millisecond
	DefaultLatencyMax  = 800 * time.Millisecond
	DefaultFailureRate = 0.1
	DefaultSeedUsers   = 50
)

// Config controls the store's simulation behavior. The zero value gives a
// deterministic store: no latency, no failures, no seed records.
type Config struct {
	LatencyMin  time.Duration
	LatencyMax  time.Duration
	FailureRate float64 // probability [0,1] of a transient failure per call
	SeedUsers   int
	Seed        int64            // rand seed; 0 means time-based
	Now         func() time.Time // clock override for tests
	Logger      *logging.Logger
}

// Store holds the canonical user collection. It owns the data exclusively;
// consumers receive copies and must never treat their caches as authoritative.
type Store struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int

	rngMu sync.Mutex
	rng   *rand.Rand

	latencyMin  time.Duration
	latencyMax  time.Duration
	failureRate float64
	seedCount   int
	now         func() time.Time
	logger      *logging.Logger
}

// NewStore creates a store seeded with cfg.SeedUsers generated records.
func NewStore(cfg Config) *Store {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStructuredLogger("error", "json", "goAdminPanel", "dev")
	}

	s := &Store{
		rng:         rand.New(rand.NewSource(seed)),
		latencyMin:  cfg.LatencyMin,
		latencyMax:  cfg.LatencyMax,
		failureRate: cfg.FailureRate,
		seedCount:   cfg.SeedUsers,
		now:         now,
		logger:      logger.WithComponent("mockapi"),
	}
	s.Reset()
	return s
}

// Reset restores the store to its freshly seeded state. Intended for tests
// and demo restarts; not part of the record API surface.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = seedUsers(s.seedCount)
	s.nextID = len(s.users) + 1
}

// List answers a query against the collection. The pipeline order is fixed:
// text search, role filter, status filter, sort, pagination slice. The
// returned total is the number of matches before pagination so callers can
// compute page counts. Out-of-range pages yield an empty page, not an error.
func (s *Store) List(ctx context.Context, params types.ListUsersParams) (types.UserPage, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return types.UserPage{}, err
	}
	if s.shouldFail() {
		return types.UserPage{}, apierrors.NewTransientError("fetch users")
	}

	params = params.Normalize()
	if err := params.Validate(); err != nil {
		return types.UserPage{}, apierrors.NewValidationError(err.Error())
	}

	s.mu.RLock()
	snapshot := make([]models.User, len(s.users))
	copy(snapshot, s.users)
	s.mu.RUnlock()

	page := runQuery(snapshot, params)

	s.logger.API("list users",
		logging.FieldPage, params.Page,
		logging.FieldTotal, page.Total,
	)
	return page, nil
}

// GetByID returns the record with the given id.
func (s *Store) GetByID(ctx context.Context, id int) (models.User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return models.User{}, err
	}
	if s.shouldFail() {
		return models.User{}, apierrors.NewTransientError("fetch user")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.users[i], nil
	}
	return models.User{}, apierrors.NewUserNotFoundError(id)
}

// Create validates the supplied fields, assigns a fresh id from a monotonic
// counter, stamps the join date and appends the record.
func (s *Store) Create(ctx context.Context, fields models.NewUser) (models.User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return models.User{}, err
	}
	if s.shouldFail() {
		return models.User{}, apierrors.NewTransientError("create user")
	}

	if err := validateNewUser(&fields); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:         s.nextID,
		Name:       fields.Name,
		Email:      fields.Email,
		Role:       fields.Role,
		Status:     fields.Status,
		DateJoined: s.now(),
	}
	s.nextID++
	s.users = append(s.users, user)

	s.logger.WithUserID(user.ID).API("user created")
	return user, nil
}

// Update merges the given fields into the existing record in place. Merged
// fields are not revalidated; Create is the validation gate.
func (s *Store) Update(ctx context.Context, id int, patch models.UserPatch) (models.User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return models.User{}, err
	}
	if s.shouldFail() {
		return models.User{}, apierrors.NewTransientError("update user")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.User{}, apierrors.NewUserNotFoundError(id)
	}

	patch.Apply(&s.users[i])

	s.logger.WithUserID(id).API("user updated")
	return s.users[i], nil
}

// Delete removes the record with the given id.
func (s *Store) Delete(ctx context.Context, id int) error {
	if err := s.simulateLatency(ctx); err != nil {
		return err
	}
	if s.shouldFail() {
		return apierrors.NewTransientError("delete user")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return apierrors.NewUserNotFoundError(id)
	}

	s.users = append(s.users[:i], s.users[i+1:]...)

	s.logger.WithUserID(id).API("user deleted")
	return nil
}

// Roles returns the available roles. Latency is simulated but, like the
// original backend, this call never rolls a failure.
func (s *Store) Roles(ctx context.Context) ([]string, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	roles := models.Roles()
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out, nil
}

// Len reports the current collection size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// indexOf returns the position of id in the collection, or -1.
// Callers must hold s.mu.
func (s *Store) indexOf(id int) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// simulateLatency suspends the caller for a uniformly random delay in
// [latencyMin, latencyMax]. A cancelled context is the only escape hatch.
func (s *Store) simulateLatency(ctx context.Context) error {
	delay := s.latencyMin
	if jitter := s.latencyMax - s.latencyMin; jitter > 0 {
		s.rngMu.Lock()
		delay += time.Duration(s.rng.Int63n(int64(jitter) + 1))
		s.rngMu.Unlock()
	}

	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shouldFail rolls the simulated transient failure, independent of input.
func (s *Store) shouldFail() bool {
	if s.failureRate <= 0 {
		return false
	}
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Float64() < s.failureRate
}

// validateNewUser checks the create-time required fields.
func validateNewUser(fields *models.NewUser) error {
	if fields.Name == "" {
		return apierrors.NewFieldRequiredError("name")
	}
	if fields.Email == "" {
		return apierrors.NewFieldRequiredError("email")
	}
	if fields.Role == "" {
		return apierrors.NewFieldRequiredError("role")
	}
	if fields.Status == "" {
		return apierrors.NewFieldRequiredError("status")
	}

	name, err := validation.SanitizeField(fields.Name)
	if err != nil {
		return apierrors.NewValidationError("Invalid user name")
	}
	if name == "" {
		return apierrors.NewFieldRequiredError("name")
	}
	fields.Name = name

	email, err := validation.ValidateEmail(fields.Email)
	if err != nil {
		return apierrors.NewValidationError("Invalid email address")
	}
	fields.Email = email

	if !fields.Role.IsValid() {
		return apierrors.NewValidationError("Unknown role: " + string(fields.Role))
	}
	if !fields.Status.IsValid() {
		return apierrors.NewValidationError("Unknown status: " + string(fields.Status))
	}

	return nil
}
