package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the question-answering provider and storage location.

Settings are stored in ~/.docquery/config.toml. Environment variables
(DOCQUERY_QA_PROVIDER, DOCQUERY_QA_API_KEY, DOCQUERY_DATA_DIR, ...) and a
.env file in the working directory override the stored values.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Set or clear a setting",
	Long: `Set a setting by key. Omit the value to clear the setting.

Keys:
  qa.provider         huggingface or openai
  qa.model            model name (default depends on provider)
  qa.base_url         API endpoint override
  qa.api_key          API token
  qa.rate_limit       maximum QA requests per second (0 = unlimited)
  qa.timeout_seconds  request timeout
  storage.data_dir    directory holding the history database`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsSet,
}

var settingsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the QA provider is reachable",
	RunE:  runSettingsCheck,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsCheckCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if err := requireServices("settings"); err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println(styles.Title.Render("Current Settings"))
	cmd.Println()

	cmd.Println("[QA]")
	cmd.Printf("  Provider: %s (%s)\n", settings.QA.Provider, settings.QA.Provider.Description())
	cmd.Printf("  Model: %s\n", settings.QA.Model)
	if settings.QA.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.QA.BaseURL)
	}
	if settings.QA.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.QA.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	if settings.QA.RateLimit > 0 {
		cmd.Printf("  Rate Limit: %g/s\n", settings.QA.RateLimit)
	} else {
		cmd.Printf("  Rate Limit: unlimited\n")
	}
	cmd.Printf("  Timeout: %ds\n", settings.QA.TimeoutSeconds)
	status := "configured"
	if !settings.QA.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Storage]")
	dataDir := settings.Storage.DataDir
	if dataDir == "" {
		dataDir = "~/.docquery/data (default)"
	}
	cmd.Printf("  Data Dir: %s\n", dataDir)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if err := requireServices("settings"); err != nil {
		return err
	}

	key := args[0]
	value := ""
	if len(args) == 2 {
		value = args[1]
	}

	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%w (valid keys: %v)", err, settingsService.Keys())
		}
		return fmt.Errorf("failed to save setting: %w", err)
	}

	if value == "" {
		cmd.Printf("Cleared %s\n", key)
		return nil
	}
	if key == "qa.api_key" {
		value = maskAPIKey(value)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsCheck(cmd *cobra.Command, _ []string) error {
	if err := requireServices("settings"); err != nil {
		return err
	}
	if validateQA == nil {
		return errors.New("QA validation not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if err := validateQA(settings.QA); err != nil {
		return err
	}

	cmd.Println(styles.Success.Render(fmt.Sprintf("%s is reachable (model %s)", settings.QA.Provider, settings.QA.Model)))
	return nil
}

// maskAPIKey masks an API key for display.
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
