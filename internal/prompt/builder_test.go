package prompt

import (
	"strings"
	"testing"

	"github.com/GRJX/template-drafter/internal/domain/models"
	domainErrors "github.com/GRJX/template-drafter/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	t.Run("empty string maps to the jira dialect", func(t *testing.T) {
		format, err := ParseFormat("")

		assert.NoError(t, err)
		assert.Equal(t, FormatJira, format)
	})

	t.Run("adoc is accepted", func(t *testing.T) {
		format, err := ParseFormat("adoc")

		assert.NoError(t, err)
		assert.Equal(t, FormatAsciiDoc, format)
	})

	t.Run("unknown dialect is rejected", func(t *testing.T) {
		_, err := ParseFormat("markdown")

		assert.Error(t, err)
		assert.ErrorIs(t, err, domainErrors.ErrUnknownFormat)
	})
}

func TestBuilder_DialectMarkers(t *testing.T) {
	t.Run("jira bullets use the star marker", func(t *testing.T) {
		prompt := NewBuilder(FormatJira).Bullets("login flow", 5, "")

		assert.Contains(t, prompt, "'* <bullet_item>'")
		assert.NotContains(t, prompt, "'- <bullet_item> +'")
	})

	t.Run("adoc bullets use the dash-plus marker", func(t *testing.T) {
		prompt := NewBuilder(FormatAsciiDoc).Bullets("login flow", 5, "")

		assert.Contains(t, prompt, "'- <bullet_item> +'")
	})

	t.Run("jira numbered steps use the hash marker", func(t *testing.T) {
		prompt := NewBuilder(FormatJira).Numbered("deploy steps", 5, "")

		assert.Contains(t, prompt, "'# <step_item>'")
	})

	t.Run("adoc numbered steps use the dot-plus marker", func(t *testing.T) {
		prompt := NewBuilder(FormatAsciiDoc).Numbered("deploy steps", 5, "")

		assert.Contains(t, prompt, "'. <step_item> +'")
	})

	t.Run("jira tables describe wiki header syntax", func(t *testing.T) {
		prompt := NewBuilder(FormatJira).Tables("risks", 1, "Risks", []string{"Risk", "Mitigation"}, "")

		assert.Contains(t, prompt, "||header1||header2||")
		assert.Contains(t, prompt, "[Risk Mitigation]")
	})

	t.Run("adoc tables describe delimited block syntax", func(t *testing.T) {
		prompt := NewBuilder(FormatAsciiDoc).Tables("risks", 1, "Risks", []string{"Risk", "Mitigation"}, "")

		assert.Contains(t, prompt, "===== Risks")
		assert.Contains(t, prompt, `[cols="1,9",options="header"]`)
		assert.Contains(t, prompt, "'a|'")
	})
}

func TestBuilder_Determinism(t *testing.T) {
	builder := NewBuilder(FormatJira)

	first := builder.Header("password reset via email", 7, "keep it formal")
	second := builder.Header("password reset via email", 7, "keep it formal")

	assert.Equal(t, first, second)
}

func TestBuilder_BuildForSpec(t *testing.T) {
	builder := NewBuilder(FormatJira)

	t.Run("header applies the default word limit", func(t *testing.T) {
		prompt, err := builder.BuildForSpec("a context", models.FieldSpec{
			Name: "title",
			Kind: models.KindHeader,
		})

		assert.NoError(t, err)
		assert.Contains(t, prompt, "Maximum 7 words")
		assert.Contains(t, prompt, "This is the context: a context")
	})

	t.Run("explicit limits win over defaults", func(t *testing.T) {
		prompt, err := builder.BuildForSpec("a context", models.FieldSpec{
			Name:      "summary",
			Kind:      models.KindSentence,
			WordLimit: 12,
		})

		assert.NoError(t, err)
		assert.Contains(t, prompt, "Maximum 12 words")
	})

	t.Run("selection lists every option verbatim", func(t *testing.T) {
		prompt, err := builder.BuildForSpec("a context", models.FieldSpec{
			Name:    "priority",
			Kind:    models.KindSelection,
			Options: []string{"High (fix now)", "Low"},
		})

		assert.NoError(t, err)
		assert.Contains(t, prompt, "'High (fix now)', 'Low'")
	})

	t.Run("selection with no options is a configuration error", func(t *testing.T) {
		_, err := builder.BuildForSpec("a context", models.FieldSpec{
			Name: "priority",
			Kind: models.KindSelection,
		})

		assert.Error(t, err)
		var appErr *domainErrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainErrors.TypeConfiguration, appErr.Type)
		assert.Contains(t, appErr.Message, "priority")
	})

	t.Run("unknown kind names the offending field", func(t *testing.T) {
		_, err := builder.BuildForSpec("a context", models.FieldSpec{
			Name: "summary",
			Kind: "haiku",
		})

		assert.Error(t, err)
		var appErr *domainErrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainErrors.TypeConfiguration, appErr.Type)
		assert.Contains(t, appErr.Message, "haiku")
		assert.Contains(t, appErr.Message, "summary")
	})

	t.Run("table without headers falls back to the default pair", func(t *testing.T) {
		prompt, err := builder.BuildForSpec("a context", models.FieldSpec{
			Name: "overview",
			Kind: models.KindTable,
		})

		assert.NoError(t, err)
		assert.Contains(t, prompt, "Header1 Header2")
	})
}

func TestRaw(t *testing.T) {
	t.Run("parameters are substituted before the context", func(t *testing.T) {
		prompt := Raw("Write {word_limit} words about {context}.", map[string]string{
			"word_limit": "12",
		}, "rate limiting")

		assert.Equal(t, "Write 12 words about rate limiting.", prompt)
		assert.False(t, strings.Contains(prompt, "{"))
	})

	t.Run("unknown placeholders are left intact", func(t *testing.T) {
		prompt := Raw("Mention {audience} here: {context}", nil, "caching")

		assert.Equal(t, "Mention {audience} here: caching", prompt)
	})
}
