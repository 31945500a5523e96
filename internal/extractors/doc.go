// Package extractors provides implementations of the Extractor interface
// for the supported document formats, and a Registry that selects one by
// file type tag. Each extractor returns the full document text with page
// and paragraph structure flattened.
package extractors
