// Package services implements the driving ports on top of the driven ones.
//
// DocumentService turns uploaded files into text, AskService answers a
// question and records it in the caller's history, HistoryService and
// ExportService read that history back, and SettingsService resolves the
// QA provider configuration.
package services
