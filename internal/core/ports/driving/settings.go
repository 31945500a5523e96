package driving

import "github.com/custodia-labs/docquery/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, with defaults filled in.
	Get() (*domain.AppSettings, error)

	// Set updates a single setting by key.
	Set(key, value string) error

	// Keys lists the settable keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
