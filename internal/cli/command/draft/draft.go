package draft

import (
	"context"
	"fmt"
	"os"

	"github.com/GRJX/template-drafter/internal/config"
	"github.com/GRJX/template-drafter/internal/i18n"
	"github.com/GRJX/template-drafter/internal/prompt"
	"github.com/GRJX/template-drafter/internal/services"
	"github.com/GRJX/template-drafter/internal/ui"
	"github.com/urfave/cli/v3"
)

// DraftService is a minimal interface for testing purposes.
type DraftService interface {
	GenerateDraft(ctx context.Context, contextText, templateName string) (*services.DraftResult, error)
}

// Options carries the per-run choices from the CLI into service wiring.
type Options struct {
	Model    string
	Format   prompt.Format
	Progress func(field string)
}

// DraftProvider builds a draft service for one run.
type DraftProvider func(ctx context.Context, opts Options) (DraftService, error)

// DraftCommandFactory creates the generate command.
type DraftCommandFactory struct {
	provider DraftProvider
}

func NewDraftCommandFactory(provider DraftProvider) *DraftCommandFactory {
	return &DraftCommandFactory{provider: provider}
}

// CreateCommand creates the 'generate' command.
func (f *DraftCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"g"},
		Usage:     t.GetMessage("generate_command_usage", 0, nil),
		ArgsUsage: "<context>",
		Flags:     f.createFlags(t, cfg),
		Action:    f.createAction(t, cfg),
	}
}

func (f *DraftCommandFactory) createFlags(t *i18n.Translations, cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "template",
			Aliases: []string{"t"},
			Usage:   t.GetMessage("generate_flag_template", 0, nil),
			Value:   "story_template",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   t.GetMessage("generate_flag_format", 0, nil),
			Value:   cfg.OutputFormat,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   t.GetMessage("generate_flag_output", 0, nil),
		},
		&cli.StringFlag{
			Name:    "model",
			Aliases: []string{"m"},
			Usage:   t.GetMessage("generate_flag_model", 0, nil),
			Value:   cfg.Model,
		},
		&cli.BoolFlag{
			Name:  "stats",
			Usage: t.GetMessage("generate_flag_stats", 0, nil),
		},
	}
}

func (f *DraftCommandFactory) createAction(t *i18n.Translations, _ *config.Config) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		contextText := command.Args().First()
		if contextText == "" {
			ui.PrintError(os.Stdout, t.GetMessage("generate_error_no_context", 0, nil))
			return fmt.Errorf("%s", t.GetMessage("generate_error_no_context", 0, nil))
		}

		format, err := prompt.ParseFormat(command.String("format"))
		if err != nil {
			ui.HandleAppError(err, t)
			return err
		}

		ui.PrintSectionBanner(t.GetMessage("generate_banner", 0, nil))

		spinner := ui.NewSmartSpinner(t.GetMessage("generate_loading", 0, nil))
		spinner.Start()

		service, err := f.provider(ctx, Options{
			Model:  command.String("model"),
			Format: format,
			Progress: func(field string) {
				spinner.UpdateMessage(t.GetMessage("generate_field_progress", 0, map[string]interface{}{
					"Field": field,
				}))
			},
		})
		if err != nil {
			spinner.Stop()
			ui.HandleAppError(err, t)
			return err
		}

		result, err := service.GenerateDraft(ctx, contextText, command.String("template"))
		spinner.Stop()

		if err != nil {
			ui.HandleAppError(err, t)
			return err
		}

		if result.Stats.FieldsFallback > 0 {
			ui.PrintWarning(t.GetMessage("generate_fallback_warning", result.Stats.FieldsFallback, map[string]interface{}{
				"Count": result.Stats.FieldsFallback,
			}))
		}

		if outputPath := command.String("output"); outputPath != "" {
			if err := os.WriteFile(outputPath, []byte(result.Document), 0644); err != nil {
				ui.PrintError(os.Stdout, err.Error())
				return err
			}
			ui.PrintSuccess(os.Stdout, t.GetMessage("generate_written", 0, map[string]interface{}{
				"Path": outputPath,
			}))
		} else {
			fmt.Println()
			fmt.Println(result.Document)
		}

		ui.PrintDuration(t.GetMessage("generate_completed", 0, nil), result.Stats.Duration)

		if command.Bool("stats") {
			ui.PrintGenerationStats(result.Stats, t)
		}

		return nil
	}
}
