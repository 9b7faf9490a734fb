package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeTemplate      ErrorType = "TEMPLATE"
	TypeGeneration    ErrorType = "GENERATION"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches two AppErrors by type and message, so a sentinel still matches
// after WithError or WithContext derived a copy from it.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Configuration errors
var (
	ErrConfigNotFound = NewAppError(TypeConfiguration, "Prompts configuration file not found", nil).
				WithSuggestion("Create a prompts config or point to one with: template-drafter config set prompts-config <path>")

	ErrNoContext = NewAppError(TypeConfiguration, "No context provided", nil).
			WithSuggestion("Pass the issue context as the first argument: template-drafter generate \"Add two-factor login\"")

	ErrUnknownFormat = NewAppError(TypeConfiguration, "Unknown output format", nil).
				WithSuggestion("Supported formats are 'jira' and 'adoc'")
)

// Template errors
var (
	ErrTemplateNotFound = NewAppError(TypeTemplate, "Template not found", nil).
				WithSuggestion("List available templates with: template-drafter template list")

	ErrNoTemplates = NewAppError(TypeTemplate, "No templates directory", nil).
			WithSuggestion("Seed the default templates with: template-drafter template init")
)

// Generation errors
var (
	ErrGeneration = NewAppError(TypeGeneration, "Text generation failed", nil).
			WithSuggestion("Check that the Ollama server is running: ollama serve")

	ErrStreamAborted = NewAppError(TypeGeneration, "Generation stream ended before completion", nil).
				WithSuggestion("The model may have been unloaded mid-stream, try again")
)
