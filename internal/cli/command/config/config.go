package config

import (
	"context"
	"fmt"
	"os"
	"strconv"

	cfg "github.com/GRJX/template-drafter/internal/config"
	"github.com/GRJX/template-drafter/internal/i18n"
	"github.com/GRJX/template-drafter/internal/ui"
	"github.com/urfave/cli/v3"
)

// ConfigCommandFactory creates the config command.
type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

// CreateCommand creates the 'config' command with its subcommands.
func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			f.newShowCommand(t, config),
			f.newSetCommand(t, config),
		},
	}
}

func (f *ConfigCommandFactory) newShowCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(_ context.Context, _ *cli.Command) error {
			ui.PrintKeyValue("model", config.Model)
			ui.PrintKeyValue("base-url", config.BaseURL)
			ui.PrintKeyValue("format", config.OutputFormat)
			ui.PrintKeyValue("language", config.Language)
			ui.PrintKeyValue("templates-dir", config.TemplatesDir)
			ui.PrintKeyValue("prompts-config", config.PromptsPath)
			ui.PrintKeyValue("max-tokens", strconv.Itoa(config.MaxTokens))
			ui.PrintKeyValue("temperature", strconv.FormatFloat(config.Temperature, 'f', -1, 64))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) newSetCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     t.GetMessage("config_set_usage", 0, nil),
		ArgsUsage: "<key> <value>",
		Action: func(_ context.Context, command *cli.Command) error {
			key := command.Args().Get(0)
			value := command.Args().Get(1)

			switch key {
			case "model":
				config.Model = value
			case "base-url":
				config.BaseURL = value
			case "format":
				config.OutputFormat = value
			case "language":
				config.Language = value
			case "templates-dir":
				config.TemplatesDir = value
			case "prompts-config":
				config.PromptsPath = value
			case "max-tokens":
				tokens, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("max-tokens must be an integer: %w", err)
				}
				config.MaxTokens = tokens
			default:
				msg := t.GetMessage("config_unknown_key", 0, map[string]interface{}{"Key": key})
				ui.PrintError(os.Stdout, msg)
				return fmt.Errorf("%s", msg)
			}

			if err := cfg.SaveConfig(config); err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("config_set_done", 0, nil))
			return nil
		},
	}
}
