// Package openai translates quotes through the OpenAI chat-completions API.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/ytget/inspiration/internal/fetch"
)

const defaultBaseURL = "https://api.openai.com/v1"

const op = "openai translate"

// PromptTemplate is filled with the target language and the quote
const PromptTemplate = "Translate this quote to %s: %s"

// Defaults used when Options leaves a field empty
const (
	DefaultModel          = "gpt-4o-mini"
	DefaultMaxTokens      = 60
	DefaultTargetLanguage = "Korean"
)

// Options configures the chat-completion request
type Options struct {
	BaseURL        string
	Model          string
	MaxTokens      int
	TargetLanguage string
}

// Translator sends one chat completion per quote
type Translator struct {
	opts       Options
	httpClient *http.Client
	log        *slog.Logger
}

// NewTranslator creates a Translator. httpClient is shared with the fetcher
// so the configured timeout applies here too.
func NewTranslator(opts Options, httpClient *http.Client, logger *slog.Logger) *Translator {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if opts.TargetLanguage == "" {
		opts.TargetLanguage = DefaultTargetLanguage
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Translator{
		opts:       opts,
		httpClient: httpClient,
		log:        logger.With("provider", "openai"),
	}
}

// Prompt returns the user message sent for text
func (t *Translator) Prompt(text string) string {
	return fmt.Sprintf(PromptTemplate, t.opts.TargetLanguage, text)
}

// Translate returns the trimmed translation of text. An empty apiKey fails
// with MissingCredential before any request is made; HTTP 429 is reported as
// QuotaExceeded.
func (t *Translator) Translate(ctx context.Context, apiKey, text string) (string, error) {
	if apiKey == "" {
		return "", fetch.MissingCredential(op)
	}
	if err := fetch.ValidateURL(t.opts.BaseURL); err != nil {
		return "", fetch.InvalidURL(op, err)
	}

	cfg := goopenai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimRight(t.opts.BaseURL, "/")
	cfg.HTTPClient = t.httpClient
	client := goopenai.NewClientWithConfig(cfg)

	prompt := t.Prompt(text)
	t.log.DebugContext(ctx, "sending translation request", slog.String("prompt", prompt))

	resp, err := client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: t.opts.Model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: t.opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", classify(err))
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: %w", fetch.Parse(op, errors.New("response has no choices")))
	}
	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", fmt.Errorf("openai: %w", fetch.Parse(op, errors.New("first choice has no content")))
	}
	return translated, nil
}

// classify maps SDK errors onto the fetch taxonomy
func classify(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		e := fetch.Status(op, apiErr.HTTPStatusCode, true)
		e.Err = err
		return e
	}

	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		e := fetch.Status(op, reqErr.HTTPStatusCode, true)
		e.Err = err
		return e
	}

	var jsonErr *json.SyntaxError
	if errors.As(err, &jsonErr) {
		return fetch.Parse(op, err)
	}
	return fetch.Network(op, err)
}
