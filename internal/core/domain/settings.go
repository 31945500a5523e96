package domain

const unknownDescription = "Unknown"

// QAProvider identifies a question-answering backend.
type QAProvider string

// Available QA providers.
const (
	// QAProviderHuggingFace is a Hugging Face style question-answering inference endpoint.
	QAProviderHuggingFace QAProvider = "huggingface"

	// QAProviderOpenAI is an OpenAI-compatible chat completion API.
	QAProviderOpenAI QAProvider = "openai"
)

// IsValid returns true if the QA provider is recognised.
func (p QAProvider) IsValid() bool {
	switch p {
	case QAProviderHuggingFace, QAProviderOpenAI:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p QAProvider) RequiresAPIKey() bool {
	return p == QAProviderOpenAI
}

// String returns the string representation.
func (p QAProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p QAProvider) Description() string {
	switch p {
	case QAProviderHuggingFace:
		return "Hugging Face question-answering endpoint"
	case QAProviderOpenAI:
		return "OpenAI (extractive prompt)"
	default:
		return unknownDescription
	}
}

// QASettings holds question-answering provider configuration.
type QASettings struct {
	// Provider is the QA backend.
	Provider QAProvider

	// Model is the model name.
	Model string

	// BaseURL is the API endpoint. Empty uses the provider default.
	BaseURL string

	// APIKey is the API token, if the provider needs one.
	APIKey string

	// RateLimit is the maximum number of QA requests per second (0 = unlimited).
	RateLimit float64

	// TimeoutSeconds bounds a single QA request.
	TimeoutSeconds int
}

// IsConfigured returns true if the QA provider is set up.
func (q QASettings) IsConfigured() bool {
	if !q.Provider.IsValid() {
		return false
	}
	if q.Provider.RequiresAPIKey() && q.APIKey == "" {
		return false
	}
	return true
}

// StorageSettings holds history storage configuration.
type StorageSettings struct {
	// DataDir is the directory holding the history database.
	// Empty uses ~/.docquery/data.
	DataDir string
}

// AppSettings holds all application settings.
type AppSettings struct {
	QA      QASettings
	Storage StorageSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The default provider needs no API key for public models.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		QA: QASettings{
			Provider:       QAProviderHuggingFace,
			Model:          DefaultQAModels()[QAProviderHuggingFace],
			RateLimit:      2,
			TimeoutSeconds: 120,
		},
	}
}

// AllQAProviders returns every supported QA provider.
func AllQAProviders() []QAProvider {
	return []QAProvider{QAProviderHuggingFace, QAProviderOpenAI}
}

// DefaultQAModels returns the default model for each QA provider.
func DefaultQAModels() map[QAProvider]string {
	return map[QAProvider]string{
		QAProviderHuggingFace: "distilbert/distilbert-base-cased-distilled-squad",
		QAProviderOpenAI:      "gpt-4o-mini",
	}
}
