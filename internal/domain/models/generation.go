package models

import "time"

// GenerationRequest carries one prompt and its sampling parameters to the
// generation backend. It is immutable once constructed; build a new value
// per call.
type GenerationRequest struct {
	Prompt           string
	SystemPrompt     string
	MaxTokens        int
	Temperature      float64
	TopP             float64
	TopK             int
	PresencePenalty  float64
	FrequencyPenalty float64
	Stop             []string
}

// GenerationResult is the assembled output of a single streaming generation
// call, plus the timing observations needed for throughput telemetry.
type GenerationResult struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
	FirstTokenAt     time.Time
	TokenTimestamps  []time.Time
}

// minThroughputWindow is the smallest first-to-last chunk interval for which
// a tokens/second figure is considered meaningful. Below it the sampling
// noise dominates and the rate is reported as unknown.
const minThroughputWindow = 50 * time.Millisecond

// TokensPerSecond reports the observed generation throughput. The second
// return value is false when the rate is unknown: no completion tokens were
// counted, fewer than two text chunks arrived, or the observation window is
// under 50ms.
func (r *GenerationResult) TokensPerSecond() (float64, bool) {
	if r.CompletionTokens <= 0 || len(r.TokenTimestamps) < 2 {
		return 0, false
	}
	interval := r.TokenTimestamps[len(r.TokenTimestamps)-1].Sub(r.TokenTimestamps[0])
	if interval <= minThroughputWindow {
		return 0, false
	}
	return float64(r.CompletionTokens) / interval.Seconds(), true
}

// GenerationStats aggregates telemetry across one draft run for display.
type GenerationStats struct {
	PromptTokens     int
	CompletionTokens int
	FieldsResolved   int
	FieldsFallback   int
	Duration         time.Duration
	TokensPerSecond  float64
	HasThroughput    bool
}

// Add folds one field's generation result into the run totals.
func (s *GenerationStats) Add(r *GenerationResult) {
	if r == nil {
		return
	}
	s.PromptTokens += r.PromptTokens
	s.CompletionTokens += r.CompletionTokens
	if tps, ok := r.TokensPerSecond(); ok {
		// Last observed rate wins; fields run sequentially against the
		// same model instance so the rates are comparable.
		s.TokensPerSecond = tps
		s.HasThroughput = true
	}
}
