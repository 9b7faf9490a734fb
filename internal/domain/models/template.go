package models

// TemplateDocument is a loaded issue template: its raw text plus the distinct
// placeholder names found in it, in order of first appearance. Derived fresh
// per run, never mutated.
type TemplateDocument struct {
	Name    string
	About   string
	Content string
	Fields  []string
}

// IssueDraft maps field names to their generated (or fallback) text for one
// draft run. It is owned by the resolver for the duration of the run and
// handed to the renderer.
type IssueDraft map[string]string

// TemplateMetadata describes a stored template for listings.
type TemplateMetadata struct {
	Name     string
	About    string
	FilePath string
}

// FallbackContent is the deterministic marker rendered for a field that
// could not be generated. It keeps the document structure inspectable even
// under partial backend failure.
func FallbackContent(field string) string {
	return "<!-- Missing content for " + field + " -->"
}
