package models

// FieldKind identifies the generation strategy bound to a template field.
type FieldKind string

const (
	KindHeader    FieldKind = "header"
	KindSentence  FieldKind = "sentence"
	KindBullets   FieldKind = "bullets"
	KindNumbered  FieldKind = "numbered"
	KindSelection FieldKind = "selection"
	KindTable     FieldKind = "table"
	KindRaw       FieldKind = "raw"
)

// KnownKinds lists every supported field kind, in documentation order.
var KnownKinds = []FieldKind{
	KindHeader, KindSentence, KindBullets, KindNumbered,
	KindSelection, KindTable, KindRaw,
}

// IsKnown reports whether k names a supported generation strategy.
func (k FieldKind) IsKnown() bool {
	for _, known := range KnownKinds {
		if k == known {
			return true
		}
	}
	return false
}

// FieldSpec binds a template placeholder name to a generation strategy and
// its typed parameters. Specs are loaded once from the prompts configuration
// and are read-only afterwards; zero-valued limits mean "use the strategy
// default".
type FieldSpec struct {
	Name           string
	Kind           FieldKind
	WordLimit      int
	BulletLimit    int
	StepLimit      int
	Options        []string
	TableLimit     int
	TableTitle     string
	TableHeaders   []string
	RawTemplate    string
	RawParams      map[string]string
	AdditionalInfo string
}
