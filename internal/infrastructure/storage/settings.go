package storage

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/younwookim/wudong/internal/domain/entity"
)

const (
	settingsObject   = "settings"
	settingsProperty = "preferences"
)

// Preferences are the menu choices remembered between runs
type Preferences struct {
	Orientation  string `yaml:"orientation"`
	Difficulty   string `yaml:"difficulty"`
	Role         string `yaml:"role"`
	SoundEnabled bool   `yaml:"soundEnabled"`
}

// DefaultPreferences returns the first-launch choices
func DefaultPreferences() Preferences {
	return Preferences{
		Orientation:  entity.Vertical.String(),
		Difficulty:   "easy",
		Role:         string(entity.RoleSpaceship),
		SoundEnabled: true,
	}
}

// OrientationValue parses the stored orientation
func (p Preferences) OrientationValue() entity.Orientation {
	return entity.ParseOrientation(p.Orientation)
}

// RoleValue parses the stored role
func (p Preferences) RoleValue() entity.Role {
	return entity.ParseRole(p.Role)
}

// SettingsStore loads and saves Preferences
type SettingsStore struct {
	manager *gdata.Manager // nil = in-memory only
	prefs   Preferences
}

// NewSettingsStore creates a store and loads saved preferences, falling
// back to the defaults when none are saved or they cannot be read.
func NewSettingsStore(manager *gdata.Manager) *SettingsStore {
	s := &SettingsStore{
		manager: manager,
		prefs:   DefaultPreferences(),
	}
	if err := s.Load(); err != nil {
		log.Printf("[Settings] Warning: %v (using defaults)", err)
	}
	return s
}

// Load reads the saved preferences. Fields missing from the saved
// document keep their default values.
func (s *SettingsStore) Load() error {
	s.prefs = DefaultPreferences()
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	prefs := DefaultPreferences()
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	s.prefs = prefs
	return nil
}

// Save writes the current preferences
func (s *SettingsStore) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// Preferences returns the current preferences
func (s *SettingsStore) Preferences() Preferences {
	return s.prefs
}

// Update replaces the preferences and saves them
func (s *SettingsStore) Update(p Preferences) error {
	s.prefs = p
	return s.Save()
}
