package templates

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/GRJX/template-drafter/internal/domain/models"
	"github.com/GRJX/template-drafter/internal/domain/ports"
	domainErrors "github.com/GRJX/template-drafter/internal/errors"
	"github.com/GRJX/template-drafter/internal/logger"
	"gopkg.in/yaml.v3"
)

var _ ports.TemplateStore = (*Store)(nil)

// placeholderPattern matches {{ field_name }} slots: double-brace delimited
// bare identifiers, whitespace around the name optional.
var placeholderPattern = regexp.MustCompile(`{{\s*(\w+)\s*}}`)

// templateExtensions is the lookup order for GetTemplateByName.
var templateExtensions = []string{".md", ".txt", ""}

// Store loads issue templates from a directory and renders resolved field
// values back into them.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// templateFrontmatter is the optional YAML header of a markdown template.
type templateFrontmatter struct {
	Name  string `yaml:"name"`
	About string `yaml:"about"`
}

// GetTemplateByName loads a template by name, trying the known extensions
// in order. Absence is fatal to the run that asked for it.
func (s *Store) GetTemplateByName(ctx context.Context, name string) (*models.TemplateDocument, error) {
	for _, ext := range templateExtensions {
		path := filepath.Join(s.dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return s.loadTemplate(ctx, name, path)
		}
	}

	logger.Warn(ctx, "template not found by name", "template", name, "dir", s.dir)
	return nil, domainErrors.ErrTemplateNotFound.WithContext("name", name).WithContext("dir", s.dir)
}

func (s *Store) loadTemplate(ctx context.Context, name, path string) (*models.TemplateDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeTemplate,
			fmt.Sprintf("failed to read template file: %s", path), err)
	}

	doc := parseTemplate(ctx, name, string(content))
	logger.Debug(ctx, "loaded template", "template", doc.Name, "path", path, "fields", len(doc.Fields))
	return doc, nil
}

// parseTemplate splits off YAML frontmatter when present and extracts the
// placeholder field names from the body.
func parseTemplate(ctx context.Context, name, content string) *models.TemplateDocument {
	doc := &models.TemplateDocument{Name: name}

	body := content
	if strings.HasPrefix(content, "---\n") {
		parts := strings.SplitN(content, "---\n", 3)
		if len(parts) >= 3 {
			var meta templateFrontmatter
			if err := yaml.Unmarshal([]byte(parts[1]), &meta); err != nil {
				logger.Warn(ctx, "failed to parse template frontmatter, using as plain text", "template", name, "error", err)
			} else {
				if meta.Name != "" {
					doc.Name = meta.Name
				}
				doc.About = meta.About
				body = parts[2]
			}
		}
	}

	doc.Content = body
	doc.Fields = ExtractFields(body)
	return doc
}

// ExtractFields returns the distinct placeholder names in content, in order
// of first appearance.
func ExtractFields(content string) []string {
	seen := make(map[string]bool)
	fields := make([]string, 0)

	for _, match := range placeholderPattern.FindAllStringSubmatch(content, -1) {
		name := match[1]
		if !seen[name] {
			seen[name] = true
			fields = append(fields, name)
		}
	}

	return fields
}

// Render substitutes resolved field values into the template's
// placeholders. A placeholder without a draft entry renders as the fallback
// marker so no slot is ever left unresolved.
func (s *Store) Render(template *models.TemplateDocument, draft models.IssueDraft) string {
	return placeholderPattern.ReplaceAllStringFunc(template.Content, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		if value, ok := draft[name]; ok {
			return value
		}
		return models.FallbackContent(name)
	})
}

// ListTemplates enumerates the templates in the store directory.
func (s *Store) ListTemplates(ctx context.Context) ([]models.TemplateMetadata, error) {
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		logger.Debug(ctx, "templates directory does not exist, returning empty list", "dir", s.dir)
		return []models.TemplateMetadata{}, nil
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeInternal, "failed to read templates directory", err)
	}

	list := make([]models.TemplateMetadata, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".md") && !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		doc, err := s.loadTemplate(ctx, name, filepath.Join(s.dir, entry.Name()))
		if err != nil {
			logger.Warn(ctx, "skipping invalid template", "path", entry.Name(), "error", err)
			continue
		}

		list = append(list, models.TemplateMetadata{
			Name:     doc.Name,
			About:    doc.About,
			FilePath: entry.Name(),
		})
	}

	logger.Debug(ctx, "listed templates", "count", len(list))
	return list, nil
}

// InitializeTemplates seeds the store directory with the default story and
// epic templates. Existing files are kept unless force is set.
func (s *Store) InitializeTemplates(ctx context.Context, force bool) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return domainErrors.NewAppError(domainErrors.TypeInternal, "failed to create templates directory", err)
	}

	defaults := map[string]string{
		"story_template.md": defaultStoryTemplate,
		"epic_template.md":  defaultEpicTemplate,
	}

	created := 0
	skipped := 0

	for filename, content := range defaults {
		path := filepath.Join(s.dir, filename)

		if _, err := os.Stat(path); err == nil && !force {
			logger.Debug(ctx, "template already exists, skipping", "path", path)
			skipped++
			continue
		}

		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return domainErrors.NewAppError(domainErrors.TypeInternal,
				fmt.Sprintf("failed to write template: %s", path), err)
		}
		logger.Info(ctx, "created template", "path", path)
		created++
	}

	logger.Info(ctx, "template initialization complete", "created", created, "skipped", skipped)
	if created == 0 && skipped > 0 {
		return domainErrors.NewAppError(domainErrors.TypeTemplate, "templates already exist", nil).
			WithSuggestion("Re-run with --force to overwrite the existing templates")
	}
	return nil
}

const defaultStoryTemplate = `---
name: User story
about: A single increment of user-visible functionality
---
h1. {{ title }}

h2. Description
{{ description }}

h2. Acceptance criteria
{{ acceptance_criteria }}

h2. Priority
{{ priority }}
`

const defaultEpicTemplate = `---
name: Epic
about: A larger body of work spanning multiple stories
---
h1. {{ title }}

h2. Goal
{{ description }}

h2. Scope
{{ scope }}

h2. Milestones
{{ milestones }}
`
