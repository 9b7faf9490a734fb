package ui

import (
	"fmt"

	"github.com/GRJX/template-drafter/internal/domain/models"
	"github.com/GRJX/template-drafter/internal/i18n"
	"github.com/fatih/color"
)

// PrintGenerationStats reports the token usage and throughput of one draft
// run. Throughput prints as n/a when the observation window was too short
// to be meaningful.
func PrintGenerationStats(stats models.GenerationStats, t *i18n.Translations) {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	_, _ = cyan.Print("📊 ")
	fmt.Printf("%s: ", t.GetMessage("ui.token_usage", 0, nil))
	fmt.Printf("%s %d | ", t.GetMessage("ui.prompt_tokens", 0, nil), stats.PromptTokens)
	fmt.Printf("%s %d | ", t.GetMessage("ui.completion_tokens", 0, nil), stats.CompletionTokens)
	fmt.Printf("%s %d/%d\n", t.GetMessage("ui.fields", 0, nil), stats.FieldsResolved, stats.FieldsResolved+stats.FieldsFallback)

	if stats.Duration > 0 {
		fmt.Printf("⏱️  %s: %dms\n", t.GetMessage("ui.duration", 0, nil), stats.Duration.Milliseconds())
	}

	_, _ = yellow.Print("⚡ ")
	fmt.Printf("%s: ", t.GetMessage("ui.throughput", 0, nil))
	if stats.HasThroughput {
		fmt.Printf("%.1f tokens/s\n", stats.TokensPerSecond)
	} else {
		fmt.Printf("%s\n", t.GetMessage("ui.throughput_unknown", 0, nil))
	}
}
