package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studialabs/studia/internal/llm"
	"github.com/studialabs/studia/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show usage statistics and estimated AI spend",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		repo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}

		answers, err := repo.AnswerTotals(ctx)
		if err != nil {
			return fmt.Errorf("load answer totals: %w", err)
		}
		llmTotals, err := repo.LLMTotals(ctx)
		if err != nil {
			return fmt.Errorf("load LLM totals: %w", err)
		}
		usage, err := repo.LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("load usage by model: %w", err)
		}

		fmt.Println("Study history")
		fmt.Printf("  Sessions:  %d\n", answers.Sessions)
		fmt.Printf("  Answers:   %d\n", answers.Answers)
		if answers.Answers > 0 {
			pct := 100 * float64(answers.Correct) / float64(answers.Answers)
			fmt.Printf("  Correct:   %d (%.0f%%)\n", answers.Correct, pct)
		} else {
			fmt.Printf("  Correct:   %d\n", answers.Correct)
		}

		fmt.Println()
		fmt.Println("AI usage")
		fmt.Printf("  Requests:  %d (%d failed)\n", llmTotals.Requests, llmTotals.Failures)
		fmt.Printf("  Tokens:    %d in, %d out\n", llmTotals.InputTokens, llmTotals.OutputTokens)

		if len(usage) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("By model")
		var total float64
		var unknown bool
		for _, u := range usage {
			line := fmt.Sprintf("  %-28s %4d req  %7d in  %7d out",
				u.Model, u.Requests, u.InputTokens, u.OutputTokens)
			if cost := llm.LookupCost(u.Model); cost != nil {
				spend := cost.Cost(u.InputTokens, u.OutputTokens)
				total += spend
				line += fmt.Sprintf("  $%.4f", spend)
			} else {
				unknown = true
			}
			fmt.Println(line)
		}
		fmt.Printf("\nEstimated spend: $%.4f", total)
		if unknown {
			fmt.Print(" (some models had no pricing data)")
		}
		fmt.Println()
		return nil
	},
}
