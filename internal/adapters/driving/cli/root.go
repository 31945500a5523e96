// Package cli provides the docquery command-line interface.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driven"
	"github.com/custodia-labs/docquery/internal/core/ports/driving"
	"github.com/custodia-labs/docquery/internal/logger"
)

// version is set at build time.
var version = "dev"

var verbose bool

// Services wired in by main.
var (
	documentService driving.DocumentService
	askService      driving.AskService
	historyService  driving.HistoryService
	exportService   driving.ExportService
	settingsService driving.SettingsService
	fileWatcher     driven.FileWatcher

	// qaInitErr explains why no QA service could be created.
	qaInitErr error

	// validateQA pings the provider described by settings.
	validateQA func(domain.QASettings) error
)

var rootCmd = &cobra.Command{
	Use:   "docquery",
	Short: "Ask questions about your documents",
	Long: `docquery extracts the text of a PDF, DOCX or TXT document and answers
questions about it with an extractive question-answering model.

Every question and answer is recorded in a history keyed by the user's
10-digit phone number, which can be shown or exported as TXT or DOCX.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// VerboseRequested reports whether args turn on --verbose. main uses it to
// log while wiring services, before cobra has parsed any flags.
func VerboseRequested(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-v", "--verbose", "--verbose=true":
			return true
		}
	}
	return false
}

// Services holds the driving ports and helpers the commands use.
type Services struct {
	Document driving.DocumentService
	Ask      driving.AskService
	History  driving.HistoryService
	Export   driving.ExportService
	Settings driving.SettingsService
	Watcher  driven.FileWatcher

	// QAInitErr is reported when a command needs the QA service but none was created.
	QAInitErr error

	// ValidateQA checks connectivity for the settings check command.
	ValidateQA func(domain.QASettings) error
}

// SetServices installs the services used by all commands.
func SetServices(s Services) {
	documentService = s.Document
	askService = s.Ask
	historyService = s.History
	exportService = s.Export
	settingsService = s.Settings
	fileWatcher = s.Watcher
	qaInitErr = s.QAInitErr
	validateQA = s.ValidateQA
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// explainQAError prefers the reason the QA service is missing over the bare sentinel.
func explainQAError(err error) error {
	if errors.Is(err, domain.ErrQAUnavailable) && qaInitErr != nil {
		return qaInitErr
	}
	return err
}

// requireServices returns an error naming the first missing service.
func requireServices(names ...string) error {
	for _, name := range names {
		missing := false
		switch name {
		case "document":
			missing = documentService == nil
		case "ask":
			missing = askService == nil
		case "history":
			missing = historyService == nil
		case "export":
			missing = exportService == nil
		case "settings":
			missing = settingsService == nil
		}
		if missing {
			return errors.New(name + " service not configured")
		}
	}
	return nil
}
