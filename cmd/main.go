package main

import (
	"context"
	"fmt"
	"log"
	"os"

	cmdcfg "github.com/GRJX/template-drafter/internal/cli/command/config"
	"github.com/GRJX/template-drafter/internal/cli/command/draft"
	tplcmd "github.com/GRJX/template-drafter/internal/cli/command/templates"
	"github.com/GRJX/template-drafter/internal/cli/registry"
	cfg "github.com/GRJX/template-drafter/internal/config"
	"github.com/GRJX/template-drafter/internal/i18n"
	"github.com/GRJX/template-drafter/internal/infrastructure/ollama"
	"github.com/GRJX/template-drafter/internal/infrastructure/templates"
	"github.com/GRJX/template-drafter/internal/logger"
	"github.com/GRJX/template-drafter/internal/prompt"
	"github.com/GRJX/template-drafter/internal/services"
	"github.com/GRJX/template-drafter/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error starting the cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not resolve the user home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language)
	if err != nil {
		return nil, fmt.Errorf("error loading translations: %w", err)
	}

	if err := cfg.SaveConfig(cfgApp); err != nil {
		return nil, err
	}

	logger.Initialize(os.Getenv("DRAFTER_DEBUG") != "", false)

	store := templates.NewStore(cfgApp.TemplatesDir)

	draftProvider := func(_ context.Context, opts draft.Options) (draft.DraftService, error) {
		prompts, err := cfg.LoadPrompts(cfgApp.PromptsPath)
		if err != nil {
			return nil, err
		}

		client := ollama.NewClient(cfgApp.BaseURL, opts.Model,
			ollama.WithReasoningStripped(!cfgApp.KeepReasoning))

		return services.NewDraftService(store, client, prompts, prompt.NewBuilder(opts.Format),
			services.WithDraftConfig(cfgApp),
			services.WithFieldProgress(opts.Progress),
		), nil
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("generate", draft.NewDraftCommandFactory(draftProvider)); err != nil {
		return nil, err
	}

	if err := registerCommand.Register("template", tplcmd.NewTemplatesCommandFactory(store)); err != nil {
		return nil, err
	}

	if err := registerCommand.Register("config", cmdcfg.NewConfigCommandFactory()); err != nil {
		return nil, err
	}

	app := &cli.Command{
		Name:        "template-drafter",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Description: translations.GetMessage("app_description", 0, nil),
		Version:     version.FullVersion(),
		Commands:    registerCommand.CreateCommands(),
	}

	return app, nil
}
