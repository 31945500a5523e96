package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docquery/internal/core/domain"
)

var (
	historyJSON   bool
	historyFormat string
	historyOut    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show and export question history",
	Long:  `Show, export or inspect the question and answer history of a phone number.`,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <phone>",
	Short: "Show the question and answer history",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyExportCmd = &cobra.Command{
	Use:   "export <phone>",
	Short: "Export the history as TXT or DOCX",
	Long: `Export the history of a phone number as TXT or DOCX.

The file is written to --out, or to chat_history_<phone>.<format> in the
current directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryExport,
}

var historyRawCmd = &cobra.Command{
	Use:   "raw <phone>",
	Short: "Print the stored history logs",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRaw,
}

func init() {
	historyShowCmd.Flags().BoolVar(&historyJSON, "json", false, "output history as JSON")
	historyExportCmd.Flags().StringVarP(&historyFormat, "format", "f", "",
		"export format: txt or docx (default from --out extension, else txt)")
	historyExportCmd.Flags().StringVarP(&historyOut, "out", "o", "", "write the export to this path")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyRawCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if err := requireServices("history"); err != nil {
		return err
	}
	phone := args[0]

	exists, err := historyService.Exists(cmd.Context(), phone)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("phone number %s %w in our records", phone, domain.ErrNotFound)
	}

	pairs, err := historyService.History(cmd.Context(), phone)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if historyJSON {
		if pairs == nil {
			pairs = []domain.QAPair{}
		}
		data, err := json.MarshalIndent(pairs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(styles.Title.Render("Chat History for " + phone))
	cmd.Println()

	if len(pairs) == 0 {
		cmd.Println(styles.Muted.Render("No questions asked yet."))
		return nil
	}

	for i, pair := range pairs {
		cmd.Printf("%s %s\n", styles.Question.Render(fmt.Sprintf("Question %d:", i+1)), pair.Question)
		cmd.Printf("%s %s\n", styles.Answer.Render(fmt.Sprintf("Answer %d:", i+1)), pair.Answer)
		cmd.Println()
	}
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	if err := requireServices("export"); err != nil {
		return err
	}

	format, err := resolveExportFormat(historyFormat, historyOut)
	if err != nil {
		return err
	}

	export, err := exportService.ExportHistory(cmd.Context(), args[0], format)
	if err != nil {
		return err
	}

	path, err := writeExport(export, historyOut)
	if err != nil {
		return err
	}
	cmd.Printf("History written to %s\n", path)
	return nil
}

func runHistoryRaw(cmd *cobra.Command, args []string) error {
	if err := requireServices("history"); err != nil {
		return err
	}

	record, err := historyService.Record(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	cmd.Printf("ID: %d\n", record.ID)
	cmd.Printf("Phone: %s\n", record.PhoneNumber)
	cmd.Printf("Query log: %q\n", record.QueryLog)
	cmd.Printf("Response log: %q\n", record.ResponseLog)
	return nil
}
