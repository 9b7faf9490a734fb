package templates

import (
	"context"
	"fmt"

	"github.com/GRJX/template-drafter/internal/config"
	"github.com/GRJX/template-drafter/internal/domain/models"
	"github.com/GRJX/template-drafter/internal/i18n"
	"github.com/GRJX/template-drafter/internal/ui"
	"github.com/urfave/cli/v3"
)

// TemplateManager is a minimal interface for testing purposes.
type TemplateManager interface {
	ListTemplates(ctx context.Context) ([]models.TemplateMetadata, error)
	InitializeTemplates(ctx context.Context, force bool) error
}

// TemplatesCommandFactory creates the template management command.
type TemplatesCommandFactory struct {
	manager TemplateManager
}

func NewTemplatesCommandFactory(manager TemplateManager) *TemplatesCommandFactory {
	return &TemplatesCommandFactory{manager: manager}
}

// CreateCommand creates the 'template' command with its subcommands.
func (f *TemplatesCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "template",
		Aliases: []string{"tpl"},
		Usage:   t.GetMessage("template_command_usage", 0, nil),
		Commands: []*cli.Command{
			f.newListCommand(t),
			f.newInitCommand(t),
		},
	}
}

func (f *TemplatesCommandFactory) newListCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   t.GetMessage("template_list_usage", 0, nil),
		Action: func(ctx context.Context, _ *cli.Command) error {
			list, err := f.manager.ListTemplates(ctx)
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			if len(list) == 0 {
				ui.PrintInfo(t.GetMessage("template_list_empty", 0, nil))
				return nil
			}

			for _, meta := range list {
				label := meta.Name
				if meta.About != "" {
					label = fmt.Sprintf("%s — %s", meta.Name, meta.About)
				}
				ui.PrintKeyValue(meta.FilePath, label)
			}
			return nil
		},
	}
}

func (f *TemplatesCommandFactory) newInitCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("template_init_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: t.GetMessage("template_init_flag_force", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			if err := f.manager.InitializeTemplates(ctx, command.Bool("force")); err != nil {
				ui.HandleAppError(err, t)
				return err
			}
			ui.PrintInfo(t.GetMessage("template_init_done", 0, nil))
			return nil
		},
	}
}
