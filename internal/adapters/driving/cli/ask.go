package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driving"
	"github.com/custodia-labs/docquery/internal/logger"
)

// accountCreatedMessage is shown the first time a phone number asks a question.
const accountCreatedMessage = "Your account has been created successfully."

var (
	askPhone    string
	askQuestion string
)

var askCmd = &cobra.Command{
	Use:   "ask <file>",
	Short: "Ask a single question about a document",
	Long: `Extract a document, answer one question from its text and record the
question and answer in the history of the given phone number.

The first question from a new phone number creates its history.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askPhone, "phone", "", "10-digit phone number (required)")
	askCmd.Flags().StringVarP(&askQuestion, "question", "q", "", "question to ask (required)")
	_ = askCmd.MarkFlagRequired("phone")
	_ = askCmd.MarkFlagRequired("question")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := requireServices("document", "ask"); err != nil {
		return err
	}
	if err := domain.ValidatePhoneNumber(askPhone); err != nil {
		return err
	}

	doc, err := loadDocument(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	result, err := askService.Ask(cmd.Context(), driving.AskRequest{
		Phone:    askPhone,
		Question: askQuestion,
		Document: doc,
	})
	if err != nil {
		return explainQAError(err)
	}

	printAnswer(cmd, result)
	return nil
}

// printAnswer prints the account notice (first question only) and the answer.
func printAnswer(cmd *cobra.Command, result *driving.AskResult) {
	if result.NewAccount {
		cmd.Println(styles.Success.Render(accountCreatedMessage))
	}
	cmd.Printf("%s %s\n", styles.Answer.Render("Answer:"), result.Answer.Text)
	logger.Debug("score=%.4f start=%d end=%d", result.Answer.Score, result.Answer.Start, result.Answer.End)
}

// isUserError reports whether err is worth showing and continuing in a chat loop.
func isUserError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrValidation)
}
