package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/studialabs/studia/internal/analyze"
	"github.com/studialabs/studia/internal/concept"
	"github.com/studialabs/studia/internal/content"
	"github.com/studialabs/studia/internal/llm"
	"github.com/studialabs/studia/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a document and print its learning pathway",
	Long: "Runs the content analysis and concept extraction without the TUI,\n" +
		"printing the ordered pathway to stdout. Useful for checking what\n" +
		"Studia makes of a document before studying it.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		doc, err := content.Read(args[0])
		if err != nil {
			return err
		}

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

		provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
		if err != nil {
			return fmt.Errorf("AI provider not configured: %w", err)
		}

		analyzer := analyze.New(provider, analyze.DefaultConfig())
		analysis, err := analyzer.Analyze(ctx, doc.Text)
		if err != nil {
			return err
		}

		extractor := concept.NewExtractor(provider, concept.DefaultExtractConfig())
		concepts, err := extractor.Extract(ctx, analysis)
		if err != nil {
			return err
		}

		pathway := concept.BuildPathway(concepts)

		fmt.Printf("%s — %s (%s)\n", analysis.Subject, analysis.Topic, analysis.Difficulty)
		fmt.Println(analysis.Summary)
		fmt.Println()

		dist := concept.Distribution(concepts)
		fmt.Printf("Concepts: %d (%d Beginner, %d Intermediate, %d Advanced), total %s\n\n",
			len(concepts),
			dist[concept.Beginner], dist[concept.Intermediate], dist[concept.Advanced],
			pathway.TotalEstimatedTime)

		for _, e := range pathway.Entries {
			lock := " "
			if !e.IsUnlocked {
				lock = "*"
			}
			fmt.Printf("%2d.%s %s (%s, %s)\n", e.Order, lock, e.Concept.Name,
				e.Concept.Difficulty, e.Concept.EstimatedTime)
			if len(e.Dependencies) > 0 {
				fmt.Printf("      depends on: %s\n", strings.Join(e.Dependencies, ", "))
			}
		}
		fmt.Println("\n(* = locked until earlier concepts are mastered)")

		return nil
	},
}
