// Command docquery answers questions about PDF, DOCX and TXT documents
// and keeps a per-phone-number history of every question and answer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/docquery/internal/adapters/driven/config/env"
	"github.com/custodia-labs/docquery/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docquery/internal/adapters/driven/qa"
	"github.com/custodia-labs/docquery/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/docquery/internal/adapters/driven/watch"
	"github.com/custodia-labs/docquery/internal/adapters/driving/cli"
	"github.com/custodia-labs/docquery/internal/core/services"
	"github.com/custodia-labs/docquery/internal/exporters"
	"github.com/custodia-labs/docquery/internal/extractors"
	"github.com/custodia-labs/docquery/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

// run wires the adapters into the services and executes the CLI.
// Cobra reports command errors itself; setup errors are printed here.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.SetVerbose(cli.VerboseRequested(os.Args[1:]))

	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: opening config:", err)
		return 1
	}

	settingsService := services.NewSettingsService(configStore, env.Overlay)
	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: loading settings:", err)
		return 1
	}

	store, err := sqlite.NewStore(settings.Storage.DataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: opening history store:", err)
		return 1
	}
	defer store.Close()
	history := store.HistoryStore()

	// Commands that never ask a question still work without a QA provider.
	qaService, qaErr := qa.NewService(settings.QA)
	if qaErr != nil {
		logger.Warn("QA service unavailable: %v", qaErr)
	} else {
		defer qaService.Close()
	}

	cli.SetServices(cli.Services{
		Document:   services.NewDocumentService(extractors.DefaultRegistry()),
		Ask:        services.NewAskService(qaService, history),
		History:    services.NewHistoryService(history),
		Export:     services.NewExportService(history, exporters.Default()...),
		Settings:   settingsService,
		Watcher:    watch.New(0),
		QAInitErr:  qaErr,
		ValidateQA: qa.Validate,
	})
	cli.SetVersion(version)

	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}
