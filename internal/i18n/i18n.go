package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

func NewTranslations(defaultLang string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	files, err := filepath.Glob("locales/active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Generate issue-tracker documents from templates using a local model"

	[app_description]
	other = "template-drafter fills the placeholder fields of an issue template with content generated by a locally hosted language model"

	[generate_command_usage]
	other = "Generate a document from a template and a context description"

	[generate_flag_template]
	other = "Template name to use (e.g. story_template, epic_template)"

	[generate_flag_format]
	other = "Output markup dialect: jira or adoc"

	[generate_flag_output]
	other = "Write the document to this file instead of stdout"

	[generate_flag_model]
	other = "Override the configured model for this run"

	[generate_flag_stats]
	other = "Print token usage and throughput after generation"

	[generate_error_no_context]
	other = "No context provided. Pass the issue context as the first argument"

	[generate_banner]
	other = "Drafting document"

	[generate_field_progress]
	other = "Generating {{.Field}}..."

	[generate_loading]
	other = "Loading template..."

	[generate_completed]
	other = "Generation completed"

	[generate_written]
	other = "Document written to {{.Path}}"

	[generate_fallback_warning]
	one = "{{.Count}} field fell back to a placeholder marker"
	other = "{{.Count}} fields fell back to placeholder markers"

	[template_command_usage]
	other = "Manage issue templates"

	[template_list_usage]
	other = "List the available templates"

	[template_list_empty]
	other = "No templates found. Seed the defaults with: template-drafter template init"

	[template_init_usage]
	other = "Seed the templates directory with the default story and epic templates"

	[template_init_flag_force]
	other = "Overwrite templates that already exist"

	[template_init_done]
	other = "Templates initialized"

	[config_command_usage]
	other = "Show or change the persisted configuration"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_usage]
	other = "Set a configuration value (model, base-url, format, language, templates-dir, prompts-config)"

	[config_set_done]
	other = "Configuration saved"

	[config_unknown_key]
	other = "Unknown configuration key: {{.Key}}"

	[factory_already_registered]
	other = "Command factory '{{.FactoryName}}' is already registered"

	[help_command_usage]
	other = "Show help"

	[ui.token_usage]
	other = "Token usage"

	[ui.prompt_tokens]
	other = "prompt"

	[ui.completion_tokens]
	other = "completion"

	[ui.fields]
	other = "fields"

	[ui.duration]
	other = "Duration"

	[ui.throughput]
	other = "Throughput"

	[ui.throughput_unknown]
	other = "n/a"

	[ui_error.try_suggestion]
	other = "💡 Try: "
	`
