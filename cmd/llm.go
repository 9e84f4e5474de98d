package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studialabs/studia/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect AI provider configuration",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which provider and model would be used",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				fmt.Println("No AI provider configured.")
				fmt.Println()
				fmt.Println("Set STUDIA_LLM_PROVIDER plus the matching STUDIA_*_API_KEY,")
				fmt.Println("or export one of GEMINI_API_KEY, OPENAI_API_KEY,")
				fmt.Println("ANTHROPIC_API_KEY, OPENROUTER_API_KEY.")
				return nil
			}
			cfg = discovered
		}

		model := cfg.ModelForProvider()
		fmt.Printf("Provider: %s\n", cfg.Provider)
		fmt.Printf("Model:    %s\n", model)
		if cost := llm.LookupCost(model); cost != nil {
			fmt.Printf("Pricing:  $%.2f/M input, $%.2f/M output tokens\n",
				cost.InputPerMTok, cost.OutputPerMTok)
		} else {
			fmt.Println("Pricing:  unknown model, costs will not be estimated")
		}
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmStatusCmd)
}
