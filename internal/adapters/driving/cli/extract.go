package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

var (
	extractOut    string
	extractFormat string
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract the text of a document",
	Long: `Extract the plain text of a PDF, DOCX or TXT document.

Without --out or --format the text is printed. Otherwise it is exported as
TXT or DOCX, to --out or to extracted_text.<format> in the current directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "write the export to this path")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "", "export format: txt or docx")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if err := requireServices("document", "export"); err != nil {
		return err
	}

	doc, err := loadDocument(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if extractOut == "" && extractFormat == "" {
		cmd.Println(doc.Text)
		return nil
	}

	format, err := resolveExportFormat(extractFormat, extractOut)
	if err != nil {
		return err
	}

	export, err := exportService.ExportText(doc, format)
	if err != nil {
		return fmt.Errorf("failed to export text: %w", err)
	}

	path, err := writeExport(export, extractOut)
	if err != nil {
		return err
	}
	cmd.Printf("Extracted text written to %s\n", path)
	return nil
}

// resolveExportFormat uses the explicit format, else the output extension, else txt.
func resolveExportFormat(format, out string) (domain.ExportFormat, error) {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(out), ".")
	}
	if format == "" {
		return domain.ExportFormatTXT, nil
	}
	return domain.ParseExportFormat(format)
}

// writeExport writes the export to out, or to its default file name.
func writeExport(export *domain.Export, out string) (string, error) {
	if out == "" {
		out = export.FileName
	}
	if err := os.WriteFile(out, export.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", out, err)
	}
	return out, nil
}

// loadDocument extracts path, listing the supported types when its format is not one of them.
func loadDocument(ctx context.Context, path string) (*domain.Document, error) {
	doc, err := documentService.Load(ctx, path)
	if errors.Is(err, domain.ErrUnsupportedFormat) {
		return nil, fmt.Errorf("failed to extract %s: %w (supported: %s)", path, err, supportedTypes())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to extract %s: %w", path, err)
	}
	return doc, nil
}

func supportedTypes() string {
	types := documentService.SupportedTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

// shortID abbreviates a document ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
