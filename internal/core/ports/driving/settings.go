package driving

import "github.com/verslag-digest/digest/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting by key, validating the value.
	Set(key, value string) error

	// Keys returns the supported setting keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ConfigPath is where settings are persisted.
	ConfigPath() string
}
