// Package env overlays settings from environment variables.
// A .env file in the working directory is loaded first when present;
// variables already set in the environment take precedence over it.
package env

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

// Overrides holds settings read from the environment.
// Nil fields were not set and leave the current value alone.
type Overrides struct {
	QAProvider       *string  `env:"DOCQUERY_QA_PROVIDER"`
	QAModel          *string  `env:"DOCQUERY_QA_MODEL"`
	QABaseURL        *string  `env:"DOCQUERY_QA_BASE_URL"`
	QAAPIKey         *string  `env:"DOCQUERY_QA_API_KEY"`
	QARateLimit      *float64 `env:"DOCQUERY_QA_RATE_LIMIT"`
	QATimeoutSeconds *int     `env:"DOCQUERY_QA_TIMEOUT_SECONDS"`
	DataDir          *string  `env:"DOCQUERY_DATA_DIR"`
}

// LoadDotEnv loads variables from the given .env files. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// Parse reads overrides from the process environment.
func Parse() (*Overrides, error) {
	var o Overrides
	if err := env.Parse(&o); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &o, nil
}

// Apply writes every set override into settings.
// Switching provider also switches a default model to the new provider's default.
func (o *Overrides) Apply(settings *domain.AppSettings) {
	if o.QAProvider != nil {
		provider := domain.QAProvider(*o.QAProvider)
		defaults := domain.DefaultQAModels()
		if settings.QA.Model == defaults[settings.QA.Provider] {
			settings.QA.Model = defaults[provider]
		}
		settings.QA.Provider = provider
	}
	if o.QAModel != nil {
		settings.QA.Model = *o.QAModel
	}
	if o.QABaseURL != nil {
		settings.QA.BaseURL = *o.QABaseURL
	}
	if o.QAAPIKey != nil {
		settings.QA.APIKey = *o.QAAPIKey
	}
	if o.QARateLimit != nil {
		settings.QA.RateLimit = *o.QARateLimit
	}
	if o.QATimeoutSeconds != nil {
		settings.QA.TimeoutSeconds = *o.QATimeoutSeconds
	}
	if o.DataDir != nil {
		settings.Storage.DataDir = *o.DataDir
	}
}

// Overlay loads .env, parses the environment and applies it to settings.
func Overlay(settings *domain.AppSettings) error {
	if err := LoadDotEnv(); err != nil {
		return err
	}
	o, err := Parse()
	if err != nil {
		return err
	}
	o.Apply(settings)
	return nil
}
