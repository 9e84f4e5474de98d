package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/studialabs/studia/internal/app"
	"github.com/studialabs/studia/internal/content"
	"github.com/studialabs/studia/internal/llm"
	"github.com/studialabs/studia/internal/store"
)

var studyCmd = &cobra.Command{
	Use:   "study <file>",
	Short: "Analyze a document and study it interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, args[0])
	},
}

// runApp opens the store, loads the document, builds dependencies, and
// launches the TUI. An empty path starts in demo mode.
func runApp(cmd *cobra.Command, path string) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("open event repo: %w", err)
	}

	deps := app.Deps{
		EventRepo: eventRepo,
		SnapRepo:  st.SnapshotRepo(),
	}

	if path != "" {
		doc, err := content.Read(path)
		if err != nil {
			return err
		}
		deps.Document = doc
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "AI provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Only the demo assessment will be available.")
	} else {
		deps.Provider = provider
	}

	return app.Run(deps)
}
