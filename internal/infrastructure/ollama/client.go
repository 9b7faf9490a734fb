package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/GRJX/template-drafter/internal/domain/models"
	"github.com/GRJX/template-drafter/internal/domain/ports"
	domainErrors "github.com/GRJX/template-drafter/internal/errors"
	"github.com/GRJX/template-drafter/internal/infrastructure/httpclient"
	"github.com/GRJX/template-drafter/internal/logger"
)

var _ ports.TextGenerator = (*Client)(nil)

// whitespaceRun matches any run of whitespace, newlines included. Prompts
// are built from indented raw strings; the backend is line-oriented, so the
// indentation-driven newlines have to go before submission.
var whitespaceRun = regexp.MustCompile(`\s+`)

// reasoningAside matches a delimited "thinking" block some models emit
// before their actual answer. Matched case-insensitively, across lines.
var reasoningAside = regexp.MustCompile(`(?is)<think(?:ing)?>.*?</think(?:ing)?>`)

// blankLineRun collapses the holes left behind by a stripped aside.
var blankLineRun = regexp.MustCompile(`\n{3,}`)

// Client drives one generation call at a time against an Ollama server.
// Calls block until the backend signals completion; the transport owns any
// deadline.
type Client struct {
	baseURL        string
	model          string
	httpClient     httpclient.HTTPClient
	stripReasoning bool
	now            func() time.Time
}

type ClientOption func(*Client)

// WithHTTPClient swaps the transport, mainly for tests.
func WithHTTPClient(c httpclient.HTTPClient) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithReasoningStripped controls whether delimited thinking asides are
// removed from the assembled text. On by default.
func WithReasoningStripped(strip bool) ClientOption {
	return func(client *Client) {
		client.stripReasoning = strip
	}
}

// withClock overrides timestamp capture in tests.
func withClock(now func() time.Time) ClientOption {
	return func(client *Client) {
		client.now = now
	}
}

func NewClient(baseURL, model string, opts ...ClientOption) *Client {
	client := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		model:          model,
		httpClient:     &http.Client{},
		stripReasoning: true,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Model returns the model identifier requests are issued against.
func (c *Client) Model() string {
	return c.model
}

// generateRequest is the wire shape of POST /api/generate.
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	System  string          `json:"system,omitempty"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	NumPredict       int      `json:"num_predict,omitempty"`
	Temperature      float64  `json:"temperature,omitempty"`
	TopP             float64  `json:"top_p,omitempty"`
	TopK             int      `json:"top_k,omitempty"`
	PresencePenalty  float64  `json:"presence_penalty,omitempty"`
	FrequencyPenalty float64  `json:"frequency_penalty,omitempty"`
	Stop             []string `json:"stop,omitempty"`
}

// streamChunk is one newline-delimited JSON object of the response stream.
type streamChunk struct {
	Response        string `json:"response"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
	Done            bool   `json:"done"`
}

// Generate executes one streaming generation call and assembles the chunk
// stream into a GenerationResult.
func (c *Client) Generate(ctx context.Context, req models.GenerationRequest) (*models.GenerationResult, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: NormalizePrompt(req.Prompt),
		System: req.SystemPrompt,
		Stream: true,
		Options: generateOptions{
			NumPredict:       req.MaxTokens,
			Temperature:      req.Temperature,
			TopP:             req.TopP,
			TopK:             req.TopK,
			PresencePenalty:  req.PresencePenalty,
			FrequencyPenalty: req.FrequencyPenalty,
			Stop:             req.Stop,
		},
	})
	if err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeGeneration, "failed to encode generation request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, domainErrors.NewAppError(domainErrors.TypeGeneration, "failed to create generation request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domainErrors.ErrGeneration.WithError(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn(ctx, "failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, domainErrors.NewAppError(domainErrors.TypeGeneration,
			fmt.Sprintf("generation backend returned %s", resp.Status), nil).
			WithContext("body", strings.TrimSpace(string(detail)))
	}

	result, err := c.consumeStream(ctx, resp.Body)
	if err != nil {
		return nil, err
	}

	result.Text = strings.TrimSpace(result.Text)
	if c.stripReasoning {
		result.Text = StripReasoning(result.Text)
	}
	return result, nil
}

// consumeStream accumulates the newline-delimited chunk stream until the
// backend's completion signal. Malformed lines are skipped; a stream that
// ends without the signal is an error.
func (c *Client) consumeStream(ctx context.Context, body io.Reader) (*models.GenerationResult, error) {
	result := &models.GenerationResult{}
	var text strings.Builder
	done := false

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var chunk streamChunk
		if err := json.Unmarshal(line, &chunk); err != nil {
			logger.Debug(ctx, "skipping malformed stream chunk", "error", err)
			continue
		}

		if chunk.Response != "" {
			now := c.now()
			if result.FirstTokenAt.IsZero() {
				result.FirstTokenAt = now
			}
			result.TokenTimestamps = append(result.TokenTimestamps, now)
			text.WriteString(chunk.Response)
		}

		// Token counters may arrive on text-less chunks, typically the
		// final one.
		if chunk.PromptEvalCount > 0 {
			result.PromptTokens = chunk.PromptEvalCount
		}
		if chunk.EvalCount > 0 {
			result.CompletionTokens = chunk.EvalCount
		}

		if chunk.Done {
			done = true
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, domainErrors.ErrStreamAborted.WithError(err)
	}
	if !done {
		return nil, domainErrors.ErrStreamAborted
	}

	result.Text = text.String()
	return result, nil
}

// NormalizePrompt collapses internal whitespace and newline runs into single
// spaces. Template-built prompts carry indentation that has no meaning to
// the model.
func NormalizePrompt(prompt string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(prompt, " "))
}

// StripReasoning removes delimited thinking asides and collapses the blank
// lines they leave behind. Some backend models surface their internal
// deliberation; callers never want it in the document.
func StripReasoning(text string) string {
	stripped := reasoningAside.ReplaceAllString(text, "")
	stripped = blankLineRun.ReplaceAllString(stripped, "\n\n")
	return strings.TrimSpace(stripped)
}
