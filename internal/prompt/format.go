package prompt

import (
	"fmt"

	domainErrors "github.com/GRJX/template-drafter/internal/errors"
)

// Format selects the markup dialect the generated content must follow.
type Format string

const (
	// FormatJira is the default wiki-style dialect: '* item' bullets,
	// '||h1||h2||' table headers.
	FormatJira Format = "jira"
	// FormatAsciiDoc is the AsciiDoc dialect: '- item +' bullets,
	// '|===' delimited tables.
	FormatAsciiDoc Format = "adoc"
)

// ParseFormat validates a user-supplied format name. The empty string maps
// to the default dialect.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", string(FormatJira):
		return FormatJira, nil
	case string(FormatAsciiDoc):
		return FormatAsciiDoc, nil
	default:
		return "", domainErrors.ErrUnknownFormat.WithError(fmt.Errorf("format %q", s))
	}
}

// bulletRule returns the bullet marker instruction for the dialect.
func (f Format) bulletRule() string {
	if f == FormatAsciiDoc {
		return "Bullet format: '- <bullet_item> +'."
	}
	return "Bullet format: '* <bullet_item>'."
}

// numberRule returns the sequential step marker instruction for the dialect.
func (f Format) numberRule() string {
	if f == FormatAsciiDoc {
		return "'. <step_item> +'"
	}
	return "'# <step_item>'"
}
