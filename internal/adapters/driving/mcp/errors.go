// Package mcp provides an MCP (Model Context Protocol) server adapter for docquery.
// It lets AI assistants ask questions about local documents and read a user's history.
package mcp

import "errors"

// Errors returned when a required port is not provided.
var (
	ErrMissingDocumentService = errors.New("mcp: document service is required")
	ErrMissingAskService      = errors.New("mcp: ask service is required")
	ErrMissingHistoryService  = errors.New("mcp: history service is required")
)
