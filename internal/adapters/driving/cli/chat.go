package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docquery/internal/core/domain"
	"github.com/custodia-labs/docquery/internal/core/ports/driving"
	"github.com/custodia-labs/docquery/internal/logger"
)

var (
	chatPhone string
	chatWatch bool
)

var chatCmd = &cobra.Command{
	Use:   "chat <file>",
	Short: "Ask questions about a document interactively",
	Long: `Load a document and answer questions read from standard input, one per
line, recording each in the history of the given phone number.

Type "exit" or "quit", or send EOF, to stop. With --watch the document is
extracted again whenever the file changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatPhone, "phone", "", "10-digit phone number (required)")
	chatCmd.Flags().BoolVarP(&chatWatch, "watch", "w", false, "reload the document when the file changes")
	_ = chatCmd.MarkFlagRequired("phone")
	rootCmd.AddCommand(chatCmd)
}

// chatSession holds the currently loaded document; the watcher swaps it.
type chatSession struct {
	mu  sync.RWMutex
	doc *domain.Document
}

func (s *chatSession) document() *domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

func (s *chatSession) replace(doc *domain.Document) {
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
}

func runChat(cmd *cobra.Command, args []string) error {
	if err := requireServices("document", "ask"); err != nil {
		return err
	}
	if err := domain.ValidatePhoneNumber(chatPhone); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	path := args[0]
	doc, err := loadDocument(ctx, path)
	if err != nil {
		return err
	}
	session := &chatSession{doc: doc}
	logger.Section("chat " + doc.Name)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loaded %s (%d characters, document %s). Ask a question, or type exit to quit.\n",
		doc.Name, len(doc.Text), shortID(doc.ID))

	if chatWatch {
		if err := watchDocument(ctx, out, path, session); err != nil {
			return err
		}
	}

	return chatLoop(ctx, cmd, session)
}

// watchDocument re-extracts path on change. A failed reload keeps the previous text.
func watchDocument(ctx context.Context, out io.Writer, path string, session *chatSession) error {
	if fileWatcher == nil {
		return fmt.Errorf("file watcher not configured")
	}

	return fileWatcher.Watch(ctx, path, func() {
		doc, err := documentService.Load(ctx, path)
		if err != nil {
			logger.Warn("reload of %s failed, keeping previous text: %v", path, err)
			return
		}
		session.replace(doc)
		msg := fmt.Sprintf("Reloaded %s (%d characters, document %s).", doc.Name, len(doc.Text), shortID(doc.ID))
		fmt.Fprintln(out, styles.Muted.Render(msg))
	}, func(err error) {
		logger.Warn("watching %s: %v", path, err)
	})
}

func chatLoop(ctx context.Context, cmd *cobra.Command, session *chatSession) error {
	in := cmd.InOrStdin()
	interactive := isTerminal(in)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		if interactive {
			cmd.Print(styles.Question.Render("Question: "))
		}
		if !scanner.Scan() {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(question) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		result, err := askService.Ask(ctx, driving.AskRequest{
			Phone:    chatPhone,
			Question: question,
			Document: session.document(),
		})
		if err != nil {
			if isUserError(err) {
				cmd.PrintErrln("Error:", err)
				continue
			}
			return explainQAError(err)
		}
		printAnswer(cmd, result)
	}

	return scanner.Err()
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
