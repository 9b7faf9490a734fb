package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		contains []string
	}{
		{
			name:     "error without cause",
			err:      NewAppError(TypeTemplate, "Template not found", nil),
			contains: []string{"TEMPLATE", "Template not found"},
		},
		{
			name:     "error with cause",
			err:      ErrGeneration.WithError(errors.New("connection refused")),
			contains: []string{"GENERATION", "Text generation failed", "connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(errMsg, substr) {
					t.Errorf("Expected error message to contain %q, got: %s", substr, errMsg)
				}
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	baseErr := errors.New("base error")
	appErr := ErrStreamAborted.WithError(baseErr)

	if appErr.Unwrap() != baseErr {
		t.Errorf("Expected unwrapped error to be %v, got %v", baseErr, appErr.Unwrap())
	}

	if !errors.Is(appErr, baseErr) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}

func TestAppError_SentinelMatching(t *testing.T) {
	derived := ErrTemplateNotFound.WithContext("name", "story_template")

	if !errors.Is(derived, ErrTemplateNotFound) {
		t.Error("a derived copy should still match its sentinel")
	}

	if errors.Is(derived, ErrNoContext) {
		t.Error("sentinels with different messages must not match")
	}
}

func TestAppError_WithContext(t *testing.T) {
	base := NewAppError(TypeConfiguration, "bad config", nil).WithContext("path", "/tmp/a")
	derived := base.WithContext("key", "model")

	if base.Context["key"] != nil {
		t.Error("WithContext must not mutate the receiver")
	}
	if derived.Context["path"] != "/tmp/a" || derived.Context["key"] != "model" {
		t.Errorf("unexpected derived context: %v", derived.Context)
	}
}

func TestAppError_Suggestions(t *testing.T) {
	if ErrConfigNotFound.Suggestion == "" {
		t.Error("ErrConfigNotFound should carry a suggestion")
	}

	derived := ErrGeneration.WithError(errors.New("boom"))
	if derived.Suggestion != ErrGeneration.Suggestion {
		t.Error("WithError should preserve the suggestion")
	}
}
