package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCost(t *testing.T) {
	cost := LookupCost("gpt-4o-mini")
	require.NotNil(t, cost)
	assert.Equal(t, 0.15, cost.InputPerMTok)
	assert.Equal(t, 0.6, cost.OutputPerMTok)

	assert.Nil(t, LookupCost("some-unknown-model"))
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 3, OutputPerMTok: 15}
	// 1M input + 1M output at $3/$15.
	assert.InDelta(t, 18.0, c.Cost(1_000_000, 1_000_000), 1e-9)
	assert.InDelta(t, 0.0, c.Cost(0, 0), 1e-9)
	assert.InDelta(t, 3.0+7.5, c.Cost(1_000_000, 500_000), 1e-9)
}

func TestModelForProvider(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "anthropic friendly name resolves",
			mutate: func(c *Config) { c.Provider = "anthropic"; c.Anthropic.Model = "claude-haiku" },
			want:   "claude-haiku-4-5-20251001",
		},
		{
			name:   "openai direct ID passes through",
			mutate: func(c *Config) { c.Provider = "openai"; c.OpenAI.Model = "gpt-4.1" },
			want:   "gpt-4.1",
		},
		{
			name:   "openrouter uses the model verbatim",
			mutate: func(c *Config) { c.Provider = "openrouter" },
			want:   "google/gemini-2.0-flash-exp",
		},
		{
			name:   "mock",
			mutate: func(c *Config) { c.Provider = "mock" },
			want:   "mock",
		},
		{
			name:   "unknown provider",
			mutate: func(c *Config) { c.Provider = "bogus" },
			want:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Equal(t, tt.want, cfg.ModelForProvider())
		})
	}
}
