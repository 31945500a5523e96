// Package domain defines the core business entities for docquery.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - UserHistoryRecord: The persisted per-phone-number question/answer logs
//   - QAPair: A single reconstructed question and answer
//   - Document: Text extracted from an uploaded file
//   - Answer: An extracted span returned by a question-answering model
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
