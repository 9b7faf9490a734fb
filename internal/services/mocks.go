package services

import (
	"context"

	"github.com/GRJX/template-drafter/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type (
	MockTemplateStore struct {
		mock.Mock
	}

	MockTextGenerator struct {
		mock.Mock
	}
)

func (m *MockTemplateStore) GetTemplateByName(ctx context.Context, name string) (*models.TemplateDocument, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TemplateDocument), args.Error(1)
}

func (m *MockTemplateStore) Render(template *models.TemplateDocument, draft models.IssueDraft) string {
	args := m.Called(template, draft)
	return args.String(0)
}

func (m *MockTextGenerator) Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GenerationResult), args.Error(1)
}
