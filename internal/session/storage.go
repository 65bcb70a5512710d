package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/chybatronik/goAdminPanel/internal/models"
)

// PersistedSession is the session state written to local storage so a
// restart can restore the signed-in identity.
type PersistedSession struct {
	User   models.User `json:"user"`
	Token  string      `json:"token"`
	Expiry time.Time   `json:"sessionExpiry"`
}

// Storage persists session state across process restarts.
type Storage interface {
	Save(session PersistedSession) error
	Load() (PersistedSession, bool, error)
	Clear() error
}

// FileStorage stores the session as a JSON file, the closest local
// equivalent of browser storage.
type FileStorage struct {
	path string
}

// NewFileStorage creates a file-backed session storage at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Save writes the session state to the backing file.
func (fs *FileStorage) Save(session PersistedSession) error {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}

	if err := os.WriteFile(fs.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session state: %w", err)
	}
	return nil
}

// Load reads the persisted session state. The second return value is false
// when no session has been saved.
func (fs *FileStorage) Load() (PersistedSession, bool, error) {
	data, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		return PersistedSession{}, false, nil
	}
	if err != nil {
		return PersistedSession{}, false, fmt.Errorf("failed to read session state: %w", err)
	}

	var session PersistedSession
	if err := json.Unmarshal(data, &session); err != nil {
		return PersistedSession{}, false, fmt.Errorf("failed to decode session state: %w", err)
	}
	return session, true, nil
}

// Clear removes the persisted session state.
func (fs *FileStorage) Clear() error {
	if err := os.Remove(fs.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear session state: %w", err)
	}
	return nil
}

// MemoryStorage keeps session state in memory, for tests.
type MemoryStorage struct {
	session PersistedSession
	present bool
}

// NewMemoryStorage creates an empty in-memory session storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Save stores the session in memory.
func (ms *MemoryStorage) Save(session PersistedSession) error {
	ms.session = session
	ms.present = true
	return nil
}

// Load returns the stored session, if any.
func (ms *MemoryStorage) Load() (PersistedSession, bool, error) {
	return ms.session, ms.present, nil
}

// Clear drops the stored session.
func (ms *MemoryStorage) Clear() error {
	ms.session = PersistedSession{}
	ms.present = false
	return nil
}
