package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
	"github.com/custodia-labs/docquery/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyQAProvider       = "qa.provider"
	KeyQAModel          = "qa.model"
	KeyQABaseURL        = "qa.base_url"
	KeyQAAPIKey         = "qa.api_key"
	KeyQARateLimit      = "qa.rate_limit"
	KeyQATimeoutSeconds = "qa.timeout_seconds"
	KeyStorageDataDir   = "storage.data_dir"
)

// Overlay adjusts settings read from the config store, e.g. from the environment.
type Overlay func(settings *domain.AppSettings) error

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	overlays    []Overlay
}

// NewSettingsService creates a new settings service. Overlays run in order
// on every Get, after stored values and defaults are resolved.
func NewSettingsService(configStore driven.ConfigStore, overlays ...Overlay) *SettingsService {
	return &SettingsService{configStore: configStore, overlays: overlays}
}

// Get retrieves current application settings with defaults filled in.
// An unset model falls back to the provider's default model.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	provider := s.getProvider(defaults.QA.Provider)
	model := s.configStore.GetString(KeyQAModel)
	if model == "" {
		model = domain.DefaultQAModels()[provider]
	}

	settings := &domain.AppSettings{
		QA: domain.QASettings{
			Provider:       provider,
			Model:          model,
			BaseURL:        s.configStore.GetString(KeyQABaseURL),
			APIKey:         s.configStore.GetString(KeyQAAPIKey),
			RateLimit:      s.getFloat(KeyQARateLimit, defaults.QA.RateLimit),
			TimeoutSeconds: s.getInt(KeyQATimeoutSeconds, defaults.QA.TimeoutSeconds),
		},
		Storage: domain.StorageSettings{
			DataDir: s.configStore.GetString(KeyStorageDataDir),
		},
	}

	for _, overlay := range s.overlays {
		if err := overlay(settings); err != nil {
			return nil, fmt.Errorf("applying settings overlay: %w", err)
		}
	}

	return settings, nil
}

// Set validates and stores a single setting. An empty value removes the key.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)
	if !s.isKnownKey(key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if value == "" {
		return s.configStore.Unset(key)
	}

	switch key {
	case KeyQAProvider:
		provider := domain.QAProvider(strings.ToLower(value))
		if !provider.IsValid() {
			return fmt.Errorf("%w: invalid QA provider %q", domain.ErrInvalidInput, value)
		}
		return s.configStore.Set(key, provider.String())

	case KeyQARateLimit:
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil || rate < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, rate)

	case KeyQATimeoutSeconds:
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds <= 0 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, seconds)

	default:
		return s.configStore.Set(key, value)
	}
}

// Keys lists the settable keys.
func (s *SettingsService) Keys() []string {
	return []string{
		KeyQAProvider,
		KeyQAModel,
		KeyQABaseURL,
		KeyQAAPIKey,
		KeyQARateLimit,
		KeyQATimeoutSeconds,
		KeyStorageDataDir,
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) isKnownKey(key string) bool {
	for _, k := range s.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getProvider(defaultVal domain.QAProvider) domain.QAProvider {
	val := s.configStore.GetString(KeyQAProvider)
	if val == "" {
		return defaultVal
	}
	provider := domain.QAProvider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}
