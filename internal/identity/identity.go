// Package identity persists the signed-in profile handed over by the external
// identity provider. The core only ever sees an opaque user id plus display
// fields; credentials and tokens never reach this layer.
package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zalando/go-keyring"

	"github.com/joeldevian/myday-rutinas/internal/constants"
	"github.com/joeldevian/myday-rutinas/internal/logger"
)

const keyringEntry = "profile"

// ErrNotSignedIn is returned when no profile is stored.
var ErrNotSignedIn = errors.New("no user signed in, run 'myday login' first")

// Profile is the identity snapshot the rest of the app keys its storage by.
type Profile struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Manager stores the profile in the OS keyring, falling back to a JSON file
// under the config dir on headless systems without a keyring.
type Manager struct {
	configDir string
}

func NewManager(configDir string) *Manager {
	return &Manager{configDir: configDir}
}

func (m *Manager) fallbackPath() string {
	return filepath.Join(m.configDir, "profile.json")
}

// Save persists the profile.
func (m *Manager) Save(p Profile) error {
	if p.UserID == "" {
		return fmt.Errorf("user id cannot be empty")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}

	if err := keyring.Set(constants.AppName, keyringEntry, string(data)); err != nil {
		logger.Warn("keyring unavailable, storing profile on disk", "error", err)
		if err := os.MkdirAll(m.configDir, 0o700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := os.WriteFile(m.fallbackPath(), data, 0o600); err != nil {
			return fmt.Errorf("failed to store profile: %w", err)
		}
	}
	return nil
}

// Current returns the stored profile, or ErrNotSignedIn.
func (m *Manager) Current() (Profile, error) {
	raw, err := keyring.Get(constants.AppName, keyringEntry)
	if err != nil {
		data, ferr := os.ReadFile(m.fallbackPath())
		if ferr != nil {
			return Profile{}, ErrNotSignedIn
		}
		raw = string(data)
	}

	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Profile{}, fmt.Errorf("stored profile is corrupt: %w", err)
	}
	if p.UserID == "" {
		return Profile{}, ErrNotSignedIn
	}
	return p, nil
}

// Clear signs the user out, removing the profile from both locations.
func (m *Manager) Clear() error {
	kerr := keyring.Delete(constants.AppName, keyringEntry)
	if kerr != nil && kerr != keyring.ErrNotFound {
		logger.Warn("failed to remove profile from keyring", "error", kerr)
	}
	ferr := os.Remove(m.fallbackPath())
	if ferr != nil && !os.IsNotExist(ferr) {
		return fmt.Errorf("failed to remove profile: %w", ferr)
	}
	return nil
}
