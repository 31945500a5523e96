package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for docquery resources.
	uriScheme = "docquery://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "history/{phone}",
		Name:        "user-history",
		Description: "Question and answer history of a user",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// handleHistoryResource returns a registered user's pairs as JSON.
func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	phone := extractPhone(req.Params.URI)
	if phone == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	exists, err := s.ports.History.Exists(ctx, phone)
	if errors.Is(err, domain.ErrValidation) || (err == nil && !exists) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("checking history: %w", err)
	}

	pairs, err := s.ports.History.History(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}
	if pairs == nil {
		pairs = []domain.QAPair{}
	}

	data, err := json.MarshalIndent(pairs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractPhone extracts the phone number from a URI like docquery://history/{phone}.
func extractPhone(uri string) string {
	const prefix = uriScheme + "history/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
