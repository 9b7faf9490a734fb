package ports

import (
	"context"

	"github.com/GRJX/template-drafter/internal/domain/models"
)

// TextGenerator executes one blocking generation call against a model
// backend and returns the assembled text with its telemetry.
type TextGenerator interface {
	Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error)
}
