package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GRJX/template-drafter/internal/domain/models"
	domainErrors "github.com/GRJX/template-drafter/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePrompts(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompts.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPrompts(t *testing.T) {
	t.Run("a missing file is a configuration error", func(t *testing.T) {
		_, err := LoadPrompts(filepath.Join(t.TempDir(), "absent.json"))

		require.Error(t, err)
		assert.ErrorIs(t, err, domainErrors.ErrConfigNotFound)
	})

	t.Run("invalid json is rejected", func(t *testing.T) {
		path := writePrompts(t, "{not json")

		_, err := LoadPrompts(path)

		require.Error(t, err)
		var appErr *domainErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainErrors.TypeConfiguration, appErr.Type)
	})

	t.Run("field specs are parsed with their typed arguments", func(t *testing.T) {
		path := writePrompts(t, `{
			"system_prompt": "You draft issue documents.",
			"template_prompts": {
				"title": {"type": "header", "args": {"word_limit": 10}},
				"priority": {
					"type": "selection",
					"args": {"options": ["High", "Medium", "Low"]},
					"additional_info": "Default to Medium when unsure."
				},
				"overview": {
					"type": "table",
					"args": {"table_limit": 2, "table_title": "Overview", "table_headers": ["Key", "Value"]}
				},
				"custom": {
					"type": "raw",
					"args": {"template": "Say {word} about {context}", "params": {"word": "something"}}
				}
			}
		}`)

		prompts, err := LoadPrompts(path)

		require.NoError(t, err)
		assert.Equal(t, "You draft issue documents.", prompts.SystemPrompt)

		title, ok := prompts.Spec("title")
		require.True(t, ok)
		assert.Equal(t, models.KindHeader, title.Kind)
		assert.Equal(t, 10, title.WordLimit)

		priority, ok := prompts.Spec("priority")
		require.True(t, ok)
		assert.Equal(t, []string{"High", "Medium", "Low"}, priority.Options)
		assert.Equal(t, "Default to Medium when unsure.", priority.AdditionalInfo)

		overview, ok := prompts.Spec("overview")
		require.True(t, ok)
		assert.Equal(t, 2, overview.TableLimit)
		assert.Equal(t, "Overview", overview.TableTitle)
		assert.Equal(t, []string{"Key", "Value"}, overview.TableHeaders)

		custom, ok := prompts.Spec("custom")
		require.True(t, ok)
		assert.Equal(t, models.KindRaw, custom.Kind)
		assert.Equal(t, map[string]string{"word": "something"}, custom.RawParams)
	})

	t.Run("a missing system prompt falls back to the default", func(t *testing.T) {
		path := writePrompts(t, `{"template_prompts": {}}`)

		prompts, err := LoadPrompts(path)

		require.NoError(t, err)
		assert.Equal(t, "You are a helpful AI assistant.", prompts.SystemPrompt)
	})

	t.Run("an unknown field type is kept for per-field degradation", func(t *testing.T) {
		path := writePrompts(t, `{"template_prompts": {"summary": {"type": "haiku"}}}`)

		prompts, err := LoadPrompts(path)

		require.NoError(t, err)
		spec, ok := prompts.Spec("summary")
		require.True(t, ok)
		assert.False(t, spec.Kind.IsKnown())
	})

	t.Run("an unconfigured field reports absence", func(t *testing.T) {
		path := writePrompts(t, `{"template_prompts": {}}`)

		prompts, err := LoadPrompts(path)

		require.NoError(t, err)
		_, ok := prompts.Spec("reporter")
		assert.False(t, ok)
	})
}
