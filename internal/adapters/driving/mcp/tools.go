package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driving"
)

// AskInput is the input schema for the ask_document tool.
type AskInput struct {
	Path     string `json:"path" jsonschema:"path to a PDF, DOCX or TXT file"`
	Phone    string `json:"phone" jsonschema:"the user's 10-digit phone number"`
	Question string `json:"question" jsonschema:"the question to answer from the document"`
}

// AskOutput is the output schema for the ask_document tool.
type AskOutput struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Score      float64 `json:"score"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	DocumentID string  `json:"document_id" jsonschema:"identifies the extraction the answer came from"`
	NewAccount bool    `json:"new_account"`
}

// PhoneInput is the input schema for tools keyed by phone number.
type PhoneInput struct {
	Phone string `json:"phone" jsonschema:"the user's 10-digit phone number"`
}

// HistoryOutput is the output schema for the get_history tool.
type HistoryOutput struct {
	Phone string          `json:"phone"`
	Pairs []domain.QAPair `json:"pairs"`
	Count int             `json:"count"`
}

// ExistsOutput is the output schema for the history_exists tool.
type ExistsOutput struct {
	Phone  string `json:"phone"`
	Exists bool   `json:"exists"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_document",
		Description: "Answer a question from a document and record it in the user's history",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_history",
		Description: "Return a user's question and answer history in the order asked",
	}, s.handleGetHistory)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "history_exists",
		Description: "Check whether a phone number has a history record",
	}, s.handleHistoryExists)
}

// handleAsk loads the document and asks the question on behalf of the user.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	doc, err := s.ports.Document.Load(ctx, input.Path)
	if err != nil {
		return nil, AskOutput{}, err
	}

	result, err := s.ports.Ask.Ask(ctx, driving.AskRequest{
		Phone:    input.Phone,
		Question: input.Question,
		Document: doc,
	})
	if err != nil {
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{
		Question:   result.Question,
		Answer:     result.Answer.Text,
		Score:      result.Answer.Score,
		Start:      result.Answer.Start,
		End:        result.Answer.End,
		DocumentID: result.DocumentID,
		NewAccount: result.NewAccount,
	}, nil
}

// handleGetHistory returns the recorded pairs for a phone number.
func (s *Server) handleGetHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PhoneInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	pairs, err := s.ports.History.History(ctx, input.Phone)
	if err != nil {
		return nil, HistoryOutput{}, err
	}
	if pairs == nil {
		pairs = []domain.QAPair{}
	}

	return nil, HistoryOutput{
		Phone: input.Phone,
		Pairs: pairs,
		Count: len(pairs),
	}, nil
}

// handleHistoryExists reports whether a phone number is registered.
func (s *Server) handleHistoryExists(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PhoneInput,
) (*mcp.CallToolResult, ExistsOutput, error) {
	exists, err := s.ports.History.Exists(ctx, input.Phone)
	if err != nil {
		return nil, ExistsOutput{}, err
	}
	return nil, ExistsOutput{Phone: input.Phone, Exists: exists}, nil
}
