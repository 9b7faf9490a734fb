package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerationResult_TokensPerSecond(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("reports the rate over the chunk window", func(t *testing.T) {
		result := &GenerationResult{
			CompletionTokens: 20,
			TokenTimestamps:  []time.Time{base, base.Add(2 * time.Second)},
		}

		tps, ok := result.TokensPerSecond()

		assert.True(t, ok)
		assert.InDelta(t, 10.0, tps, 0.001)
	})

	t.Run("a window under 50ms is reported as unknown", func(t *testing.T) {
		result := &GenerationResult{
			CompletionTokens: 20,
			TokenTimestamps:  []time.Time{base, base.Add(10 * time.Millisecond)},
		}

		_, ok := result.TokensPerSecond()

		assert.False(t, ok)
	})

	t.Run("zero completion tokens is unknown", func(t *testing.T) {
		result := &GenerationResult{
			TokenTimestamps: []time.Time{base, base.Add(time.Second)},
		}

		_, ok := result.TokensPerSecond()

		assert.False(t, ok)
	})

	t.Run("a single chunk is unknown", func(t *testing.T) {
		result := &GenerationResult{
			CompletionTokens: 5,
			TokenTimestamps:  []time.Time{base},
		}

		_, ok := result.TokensPerSecond()

		assert.False(t, ok)
	})
}

func TestGenerationStats_Add(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("token counts accumulate across fields", func(t *testing.T) {
		stats := GenerationStats{}

		stats.Add(&GenerationResult{PromptTokens: 10, CompletionTokens: 5})
		stats.Add(&GenerationResult{PromptTokens: 12, CompletionTokens: 7})

		assert.Equal(t, 22, stats.PromptTokens)
		assert.Equal(t, 12, stats.CompletionTokens)
	})

	t.Run("throughput stays unknown without a measurable window", func(t *testing.T) {
		stats := GenerationStats{}

		stats.Add(&GenerationResult{
			CompletionTokens: 3,
			TokenTimestamps:  []time.Time{base, base.Add(5 * time.Millisecond)},
		})

		assert.False(t, stats.HasThroughput)
	})

	t.Run("a measurable field sets the throughput flag", func(t *testing.T) {
		stats := GenerationStats{}

		stats.Add(&GenerationResult{
			CompletionTokens: 30,
			TokenTimestamps:  []time.Time{base, base.Add(3 * time.Second)},
		})

		assert.True(t, stats.HasThroughput)
		assert.InDelta(t, 10.0, stats.TokensPerSecond, 0.001)
	})

	t.Run("nil results are ignored", func(t *testing.T) {
		stats := GenerationStats{}

		stats.Add(nil)

		assert.Zero(t, stats.PromptTokens)
	})
}

func TestFallbackContent(t *testing.T) {
	assert.Equal(t, "<!-- Missing content for priority -->", FallbackContent("priority"))
}
