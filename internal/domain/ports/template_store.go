package ports

import (
	"context"

	"github.com/GRJX/template-drafter/internal/domain/models"
)

// TemplateStore loads issue templates by name from wherever they live on
// disk and renders resolved field values back into them.
type TemplateStore interface {
	GetTemplateByName(ctx context.Context, name string) (*models.TemplateDocument, error)
	ListTemplates(ctx context.Context) ([]models.TemplateMetadata, error)
	Render(template *models.TemplateDocument, draft models.IssueDraft) string
}
