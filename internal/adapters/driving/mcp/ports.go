package mcp

import (
	"github.com/custodia-labs/docquery/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Document loads and extracts documents.
	Document driving.DocumentService

	// Ask answers questions and records them.
	Ask driving.AskService

	// History reads recorded question/answer pairs.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	if p.Ask == nil {
		return ErrMissingAskService
	}
	if p.History == nil {
		return ErrMissingHistoryService
	}
	return nil
}
