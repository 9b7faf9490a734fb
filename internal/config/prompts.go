package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/GRJX/template-drafter/internal/domain/models"
	domainErrors "github.com/GRJX/template-drafter/internal/errors"
)

// defaultSystemPrompt is used when the prompts document declares none.
const defaultSystemPrompt = "You are a helpful AI assistant."

// Prompts is the parsed prompts configuration document: the system prompt
// plus one FieldSpec per configurable template field. Loaded once at
// startup, read-only afterwards, safe to share across runs.
type Prompts struct {
	SystemPrompt string
	Fields       map[string]models.FieldSpec
}

// Spec returns the field spec for a template field name.
func (p *Prompts) Spec(name string) (models.FieldSpec, bool) {
	spec, ok := p.Fields[name]
	return spec, ok
}

type promptsDocument struct {
	SystemPrompt    string                   `json:"system_prompt"`
	TemplatePrompts map[string]fieldSpecJSON `json:"template_prompts"`
}

type fieldSpecJSON struct {
	Type string `json:"type"`
	Args struct {
		WordLimit    int               `json:"word_limit"`
		BulletLimit  int               `json:"bullet_limit"`
		StepLimit    int               `json:"step_limit"`
		Options      []string          `json:"options"`
		TableLimit   int               `json:"table_limit"`
		TableTitle   string            `json:"table_title"`
		TableHeaders []string          `json:"table_headers"`
		Template     string            `json:"template"`
		Params       map[string]string `json:"params"`
	} `json:"args"`
	AdditionalInfo string `json:"additional_info"`
}

// LoadPrompts reads and parses the prompts configuration document. A
// missing file is fatal to startup; a spec with an unknown type is kept
// as-is so resolution can degrade that single field instead of the run.
func LoadPrompts(path string) (*Prompts, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, domainErrors.ErrConfigNotFound.WithContext("path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeConfiguration,
			fmt.Sprintf("failed to read prompts config: %s", path), err)
	}

	var doc promptsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeConfiguration,
			fmt.Sprintf("failed to parse prompts config: %s", path), err)
	}

	prompts := &Prompts{
		SystemPrompt: doc.SystemPrompt,
		Fields:       make(map[string]models.FieldSpec, len(doc.TemplatePrompts)),
	}
	if prompts.SystemPrompt == "" {
		prompts.SystemPrompt = defaultSystemPrompt
	}

	for name, raw := range doc.TemplatePrompts {
		prompts.Fields[name] = models.FieldSpec{
			Name:           name,
			Kind:           models.FieldKind(raw.Type),
			WordLimit:      raw.Args.WordLimit,
			BulletLimit:    raw.Args.BulletLimit,
			StepLimit:      raw.Args.StepLimit,
			Options:        raw.Args.Options,
			TableLimit:     raw.Args.TableLimit,
			TableTitle:     raw.Args.TableTitle,
			TableHeaders:   raw.Args.TableHeaders,
			RawTemplate:    raw.Args.Template,
			RawParams:      raw.Args.Params,
			AdditionalInfo: raw.AdditionalInfo,
		}
	}

	return prompts, nil
}
