package services

import (
	"context"
	"strings"
	"time"

	"github.com/GRJX/template-drafter/internal/config"
	"github.com/GRJX/template-drafter/internal/domain/models"
	domainErrors "github.com/GRJX/template-drafter/internal/errors"
	"github.com/GRJX/template-drafter/internal/logger"
	"github.com/GRJX/template-drafter/internal/prompt"
)

// templateStore is the minimal store surface the draft service needs.
type templateStore interface {
	GetTemplateByName(ctx context.Context, name string) (*models.TemplateDocument, error)
	Render(template *models.TemplateDocument, draft models.IssueDraft) string
}

// textGenerator is the minimal generation surface, kept local for testing.
type textGenerator interface {
	Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error)
}

// DraftResult is one completed draft run: the rendered document plus the
// telemetry gathered along the way.
type DraftResult struct {
	Document string
	Draft    models.IssueDraft
	Stats    models.GenerationStats
}

// DraftService drives end-to-end generation for one document: extract the
// template's fields, resolve each one through the prompt builder and the
// generation backend, render the result. Fields are resolved strictly one
// at a time; the backend is a single local model instance and later fields
// may want earlier output as context.
type DraftService struct {
	store     templateStore
	generator textGenerator
	prompts   *config.Prompts
	builder   *prompt.Builder
	cfg       *config.Config
	onField   func(field string)
}

type DraftOption func(*DraftService)

// WithDraftConfig supplies the sampling parameters for generation requests.
func WithDraftConfig(cfg *config.Config) DraftOption {
	return func(s *DraftService) {
		s.cfg = cfg
	}
}

// WithFieldProgress registers a callback invoked as each field begins
// generating. Observational only; the UI uses it to update its spinner.
func WithFieldProgress(fn func(field string)) DraftOption {
	return func(s *DraftService) {
		s.onField = fn
	}
}

func NewDraftService(
	store templateStore,
	generator textGenerator,
	prompts *config.Prompts,
	builder *prompt.Builder,
	opts ...DraftOption,
) *DraftService {
	s := &DraftService{
		store:     store,
		generator: generator,
		prompts:   prompts,
		builder:   builder,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateDraft generates a complete document from a template. The template
// load is fatal; everything after degrades per field, so the rendered
// document always covers every placeholder.
func (s *DraftService) GenerateDraft(ctx context.Context, contextText, templateName string) (*DraftResult, error) {
	if strings.TrimSpace(contextText) == "" {
		return nil, domainErrors.ErrNoContext
	}

	template, err := s.store.GetTemplateByName(ctx, templateName)
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "extracted template fields", "template", templateName, "fields", len(template.Fields))

	start := time.Now()
	draft := make(models.IssueDraft, len(template.Fields))
	stats := models.GenerationStats{}

	for _, field := range template.Fields {
		logger.Info(ctx, "generating field content", "field", field)
		if s.onField != nil {
			s.onField(field)
		}

		text, result, err := s.resolveField(ctx, contextText, field)
		if err != nil {
			logger.Warn(ctx, "could not generate content for field", "field", field, "error", err)
			draft[field] = models.FallbackContent(field)
			stats.FieldsFallback++
			continue
		}

		draft[field] = text
		stats.FieldsResolved++
		stats.Add(result)
	}

	stats.Duration = time.Since(start)

	return &DraftResult{
		Document: s.store.Render(template, draft),
		Draft:    draft,
		Stats:    stats,
	}, nil
}

// resolveField generates the content for a single template field. Every
// failure path returns an error for the caller to degrade into the fallback
// marker.
func (s *DraftService) resolveField(ctx context.Context, contextText, field string) (string, *models.GenerationResult, error) {
	spec, ok := s.prompts.Spec(field)
	if !ok {
		return "", nil, domainErrors.NewAppError(domainErrors.TypeConfiguration,
			"unknown field in template_prompts: "+field, nil)
	}

	instruction, err := s.builder.BuildForSpec(contextText, spec)
	if err != nil {
		return "", nil, err
	}

	result, err := s.generator.Generate(ctx, s.newRequest(instruction))
	if err != nil {
		return "", nil, err
	}

	return strings.TrimSpace(result.Text), result, nil
}

// newRequest binds the configured sampling parameters to one instruction
// prompt. The request is immutable once built.
func (s *DraftService) newRequest(instruction string) models.GenerationRequest {
	req := models.GenerationRequest{
		Prompt:       instruction,
		SystemPrompt: s.prompts.SystemPrompt,
	}
	if s.cfg != nil {
		req.MaxTokens = s.cfg.MaxTokens
		req.Temperature = s.cfg.Temperature
		req.TopP = s.cfg.TopP
		req.TopK = s.cfg.TopK
		req.PresencePenalty = s.cfg.PresencePenalty
		req.FrequencyPenalty = s.cfg.FrequencyPenalty
	}
	return req
}
