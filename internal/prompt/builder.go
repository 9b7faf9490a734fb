package prompt

import (
	"fmt"
	"strings"

	"github.com/GRJX/template-drafter/internal/domain/models"
	domainErrors "github.com/GRJX/template-drafter/internal/errors"
)

// Canonical strategy defaults. Earlier revisions of the prompts drifted on
// these values; this set is the documented, authoritative one.
const (
	DefaultHeaderWordLimit   = 7
	DefaultSentenceWordLimit = 50
	DefaultBulletLimit       = 5
	DefaultStepLimit         = 5
	DefaultTableLimit        = 1
)

// defaultTableHeaders is used when a table spec declares no headers.
var defaultTableHeaders = []string{"Header1", "Header2"}

// Builder turns a generation intent plus its parameters into one
// deterministic instruction prompt. Every method is a pure function of its
// arguments and the builder's dialect; identical inputs yield identical
// prompts.
type Builder struct {
	format Format
}

func NewBuilder(format Format) *Builder {
	return &Builder{format: format}
}

// Format returns the markup dialect this builder targets.
func (b *Builder) Format() Format {
	return b.format
}

// BuildForSpec dispatches on the spec's kind and produces the instruction
// prompt for one field. Unknown kinds and invalid parameters return a
// configuration error naming the field; the caller degrades that field, not
// the run.
func (b *Builder) BuildForSpec(context string, spec models.FieldSpec) (string, error) {
	switch spec.Kind {
	case models.KindHeader:
		return b.Header(context, orDefault(spec.WordLimit, DefaultHeaderWordLimit), spec.AdditionalInfo), nil
	case models.KindSentence:
		return b.Sentence(context, orDefault(spec.WordLimit, DefaultSentenceWordLimit), spec.AdditionalInfo), nil
	case models.KindBullets:
		return b.Bullets(context, orDefault(spec.BulletLimit, DefaultBulletLimit), spec.AdditionalInfo), nil
	case models.KindNumbered:
		return b.Numbered(context, orDefault(spec.StepLimit, DefaultStepLimit), spec.AdditionalInfo), nil
	case models.KindSelection:
		if len(spec.Options) == 0 {
			return "", domainErrors.NewAppError(domainErrors.TypeConfiguration,
				fmt.Sprintf("selection field '%s' has an empty options list", spec.Name), nil)
		}
		return b.Selection(context, spec.Options, spec.AdditionalInfo), nil
	case models.KindTable:
		headers := spec.TableHeaders
		if len(headers) == 0 {
			headers = defaultTableHeaders
		}
		return b.Tables(context, orDefault(spec.TableLimit, DefaultTableLimit), spec.TableTitle, headers, spec.AdditionalInfo), nil
	case models.KindRaw:
		if spec.RawTemplate == "" {
			return "", domainErrors.NewAppError(domainErrors.TypeConfiguration,
				fmt.Sprintf("raw field '%s' has no prompt template", spec.Name), nil)
		}
		return Raw(spec.RawTemplate, spec.RawParams, context), nil
	default:
		return "", domainErrors.NewAppError(domainErrors.TypeConfiguration,
			fmt.Sprintf("unsupported generation type '%s' for field '%s'", spec.Kind, spec.Name), nil)
	}
}

// Header instructs a concise title of at most wordLimit words, returned bare.
func (b *Builder) Header(context string, wordLimit int, additionalInfo string) string {
	return fmt.Sprintf(`
		Create a brief, concise title.

		Additional information that overrules the rules if contradicting: %s

		Rules:
		- Maximum %d words.
		- Return without any additional text or punctuation.

		This is the context: %s
	`, additionalInfo, wordLimit, context)
}

// Sentence instructs one or more direct sentences, at most wordLimit words
// total, with no explanatory wrapper and no embedded newlines.
func (b *Builder) Sentence(context string, wordLimit int, additionalInfo string) string {
	return fmt.Sprintf(`
		Write clear and descriptive sentence(s) about the topic.

		Additional information that overrules the rules if contradicting: %s

		Rules:
		- The sentence should be functional and direct.
		- Maximum %d words.
		- Return without any explanation, additional text or newline characters.

		This is the context: %s
	`, additionalInfo, wordLimit, context)
}

// Bullets instructs at most bulletLimit items with the dialect's marker.
func (b *Builder) Bullets(context string, bulletLimit int, additionalInfo string) string {
	return fmt.Sprintf(`
		Create a list of bullet points.

		Additional information that overrules the rules if contradicting: %s

		Rules:
		- Maximum %d bullet points.
		- %s
		- Return without any explanation, additional text or special characters beyond the bullet format.

		This is the context: %s
	`, additionalInfo, bulletLimit, b.format.bulletRule(), context)
}

// Numbered instructs at most stepLimit sequential steps with the dialect's
// step marker instead of literal numbers.
func (b *Builder) Numbered(context string, stepLimit int, additionalInfo string) string {
	return fmt.Sprintf(`
		Create a list of sequential steps or items.

		Additional information that overrules the rules if contradicting: %s

		Rules:
		- Maximum %d numbered items.
		- Each step should be clear and actionable.
		- Don't use numbers to sequence steps, but this format: %s.
		- Return without any explanation, additional text or special characters beyond the number format.

		This is the context: %s
	`, additionalInfo, stepLimit, b.format.numberRule(), context)
}

// Selection instructs exactly one verbatim option from the list, with any
// parenthetical annotation in the option label dropped from the answer.
func (b *Builder) Selection(context string, options []string, additionalInfo string) string {
	quoted := make([]string, len(options))
	for i, option := range options {
		quoted[i] = fmt.Sprintf("'%s'", option)
	}

	return fmt.Sprintf(`
		Select ONE option from the provided list.

		Available options: %s

		Additional information that overrules the rules if contradicting: %s

		Rules:
		- Return ONLY the selected option.
		- Remove the information between brackets.
		- Return without any explanation or additional text.

		This is the context: %s
	`, strings.Join(quoted, ", "), additionalInfo, context)
}

// Tables instructs tableLimit tables with dialect-specific title, header and
// row syntax. An empty title means the title line is omitted by the model.
func (b *Builder) Tables(context string, tableLimit int, tableTitle string, tableHeaders []string, additionalInfo string) string {
	var titleRule, headerRule, rowRule string
	if b.format == FormatAsciiDoc {
		titleRule = fmt.Sprintf("Table title format: '===== {title}' (e.g., '===== %s'). If title is empty, omit this line. Include the attribute line '[cols=\"1,9\",options=\"header\"]' directly below the title and before the table start.", tableTitle)
		headerRule = fmt.Sprintf("Table headers: %v. Start table with '|===\\n'. Formatted the headers like: '|header1 |header2 |...'", tableHeaders)
		rowRule = "Table rows format: 'a|row1 |row2 |...'. Start each data row with 'a|'. End table with '|==='."
	} else {
		titleRule = fmt.Sprintf("Table title is short, action-based and in format: Title: %s. If title is empty, omit this line.", tableTitle)
		headerRule = fmt.Sprintf("Table headers are: %v in the format '||header1||header2||...||'.", tableHeaders)
		rowRule = "Table rows are in the format '|row1|row2|...|'."
	}

	return fmt.Sprintf(`
		Create one or more tables based on the context.

		Additional information that overrules the rules if contradicting: %s

		Rules:
		- Generate %d table(s).
		- %s
		- %s
		- %s
		- Return only the title and table output, no extra text, newlines or code blocks.

		This is the context: %s
	`, additionalInfo, tableLimit, titleRule, headerRule, rowRule, context)
}

// Raw substitutes a preformed prompt template. Named parameter placeholders
// like {word_limit} are replaced by literal string replacement before
// {context} is filled in; no instruction text is injected around the result.
func Raw(template string, params map[string]string, context string) string {
	prompt := template
	for name, value := range params {
		prompt = strings.ReplaceAll(prompt, "{"+name+"}", value)
	}
	return strings.ReplaceAll(prompt, "{context}", context)
}

func orDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
