// Package session implements the auth session state: a fixed credential
// list, bearer token issuance, session persistence and expiry, and
// role-gated route access. This is client-side gating only, not an
// authorization boundary.
package session

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/chybatronik/goAdminPanel/internal/logging"
	"github.com/chybatronik/goAdminPanel/internal/models"
)

// ErrInvalidCredentials indicates a failed login attempt.
var ErrInvalidCredentials = errors.New("invalid credentials")

// DefaultTTL is the session lifetime used when none is configured.
const DefaultTTL = 30 * time.Minute

type credential struct {
	id           int
	name         string
	email        string
	role         models.Role
	passwordHash string
}

// demoCredentials is the fixed login list. All demo accounts use the
// password "password"; only a bcrypt hash is kept in memory. MinCost keeps
// startup fast, these are demo accounts guarding nothing real.
var demoCredentials = buildDemoCredentials()

func buildDemoCredentials() []credential {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	return []credential{
		{id: 1, name: "Admin User", email: "admin@example.com", role: models.RoleAdmin, passwordHash: string(hash)},
		{id: 2, name: "Manager User", email: "manager@example.com", role: models.RoleManager, passwordHash: string(hash)},
		{id: 3, name: "Viewer User", email: "viewer@example.com", role: models.RoleViewer, passwordHash: string(hash)},
	}
}

// Config configures an AuthStore.
type Config struct {
	Secret  string
	TTL     time.Duration
	Storage Storage
	Now     func() time.Time // clock override for tests
	Logger  *logging.Logger
}

// AuthStore holds the authenticated identity, its bearer token and expiry.
type AuthStore struct {
	mu     sync.Mutex
	secret []byte
	ttl    time.Duration

	user   *models.User
	token  string
	expiry time.Time

	timer    *time.Timer
	onExpire []func()

	storage Storage
	now     func() time.Time
	log     *logging.Logger
}

// NewAuthStore creates an auth store. A previously persisted session is not
// restored automatically; call Restore during startup.
func NewAuthStore(cfg Config) *AuthStore {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	storage := cfg.Storage
	if storage == nil {
		storage = NewMemoryStorage()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStructuredLogger("error", "json", "goAdminPanel", "dev")
	}

	return &AuthStore{
		secret:  []byte(cfg.Secret),
		ttl:     ttl,
		storage: storage,
		now:     now,
		log:     logger.WithComponent("session"),
	}
}

// OnExpire registers a callback invoked when the session expires on its own.
// Explicit Logout does not fire expiry callbacks.
func (a *AuthStore) OnExpire(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onExpire = append(a.onExpire, fn)
}

// Login validates credentials against the fixed list and, on success,
// issues a bearer token, persists the session and starts the expiry timer.
func (a *AuthStore) Login(email, password string) error {
	var match *credential
	for i := range demoCredentials {
		if demoCredentials[i].email == email {
			match = &demoCredentials[i]
			break
		}
	}
	if match == nil {
		// burn a comparison anyway so missing and wrong-password
		// attempts take similar time
		_ = bcrypt.CompareHashAndPassword([]byte(demoCredentials[0].passwordHash), []byte(password))
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(match.passwordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	expiry := now.Add(a.ttl)

	user := models.User{
		ID:         match.id,
		Name:       match.name,
		Email:      match.email,
		Role:       match.role,
		Status:     models.StatusActive,
		DateJoined: now,
	}

	token, err := issueToken(a.secret, user, now, expiry)
	if err != nil {
		return err
	}

	a.user = &user
	a.token = token
	a.expiry = expiry
	a.startTimerLocked()

	if err := a.storage.Save(PersistedSession{User: user, Token: token, Expiry: expiry}); err != nil {
		a.log.WithError(err).Warn("could not persist session")
	}

	a.log.WithUserID(user.ID).Info("login", "role", string(user.Role))
	return nil
}

// Logout clears the session, stops the expiry timer and removes the
// persisted state.
func (a *AuthStore) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.clearLocked()
	a.log.Info("logout")
}

// Restore loads a persisted session. Expired or tampered tokens clear the
// stored state instead of restoring it.
func (a *AuthStore) Restore() error {
	persisted, ok, err := a.storage.Load()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	claims, err := parseToken(a.secret, persisted.Token)
	if err != nil {
		a.log.WithError(err).Warn("discarding persisted session")
		return a.storage.Clear()
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	user := persisted.User
	user.Role = claims.Role // token is authoritative for the role

	a.user = &user
	a.token = persisted.Token
	a.expiry = claims.ExpiresAt.Time
	a.startTimerLocked()

	a.log.WithUserID(user.ID).Info("session restored", "role", string(user.Role))
	return nil
}

// IsAuthenticated reports whether a live session exists.
func (a *AuthStore) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user != nil && a.token != "" && a.now().Before(a.expiry)
}

// CurrentUser returns the authenticated identity, if any.
func (a *AuthStore) CurrentUser() (models.User, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return models.User{}, false
	}
	return *a.user, true
}

// Token returns the current bearer token, if any.
func (a *AuthStore) Token() (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token, a.token != ""
}

// Role predicates for template/view gating.

// IsAdmin reports whether the session belongs to an Admin.
func (a *AuthStore) IsAdmin() bool { return a.hasRole(models.RoleAdmin) }

// IsManager reports whether the session belongs to a Manager.
func (a *AuthStore) IsManager() bool { return a.hasRole(models.RoleManager) }

// IsViewer reports whether the session belongs to a Viewer.
func (a *AuthStore) IsViewer() bool { return a.hasRole(models.RoleViewer) }

func (a *AuthStore) hasRole(role models.Role) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user != nil && a.user.Role == role
}

// startTimerLocked arms the one-shot expiry timer for the current session.
func (a *AuthStore) startTimerLocked() {
	if a.timer != nil {
		a.timer.Stop()
	}

	remaining := a.expiry.Sub(a.now())
	if remaining <= 0 {
		a.expireLocked()
		return
	}

	a.timer = time.AfterFunc(remaining, a.expire)
}

// expire is the timer callback: clears the session and fires callbacks.
func (a *AuthStore) expire() {
	a.mu.Lock()
	callbacks := make([]func(), len(a.onExpire))
	copy(callbacks, a.onExpire)
	a.clearLocked()
	a.mu.Unlock()

	a.log.Info("session expired")
	for _, fn := range callbacks {
		fn()
	}
}

// expireLocked handles a session that is already past its expiry at arm time.
func (a *AuthStore) expireLocked() {
	callbacks := make([]func(), len(a.onExpire))
	copy(callbacks, a.onExpire)
	a.clearLocked()

	for _, fn := range callbacks {
		go fn()
	}
}

// clearLocked wipes session state and persisted storage.
func (a *AuthStore) clearLocked() {
	a.user = nil
	a.token = ""
	a.expiry = time.Time{}

	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}

	if err := a.storage.Clear(); err != nil {
		a.log.WithError(err).Warn("could not clear persisted session")
	}
}
