// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - HistoryStore: Per-phone-number question/answer persistence
//   - Extractor: Turns an uploaded file into plain text
//   - ExtractorRegistry: Selects the extractor for a file type
//   - QAService: Extractive question answering over a context
//   - Exporter: Renders history and extracted text as files
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - FileWatcher: Notifies when a loaded document changes on disk
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, extractor, or exporter package
package driven
