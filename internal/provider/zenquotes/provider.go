// Package zenquotes fetches random quotes from the ZenQuotes API.
package zenquotes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/ytget/inspiration/internal/fetch"
	"github.com/ytget/inspiration/internal/model"
)

const defaultBaseURL = "https://zenquotes.io"

const op = "zenquotes random quote"

// Provider fetches one random quote per call
type Provider struct {
	baseURL string
	client  *fetch.Client
	log     *slog.Logger
}

// NewProvider creates a Provider with the default ZenQuotes URL
func NewProvider(client *fetch.Client, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, client, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL
func NewProviderWithURL(baseURL string, client *fetch.Client, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     logger.With("provider", "zenquotes"),
	}
}

// RandomQuote returns the first quote of the random endpoint's array
func (p *Provider) RandomQuote(ctx context.Context) (model.Quote, error) {
	doc, err := p.client.FetchJSON(ctx, fetch.Request{Op: op, URL: p.baseURL + "/api/random"})
	if err != nil {
		return model.Quote{}, fmt.Errorf("zenquotes: %w", err)
	}

	if !doc.IsArray() || len(doc.Array()) == 0 {
		return model.Quote{}, fmt.Errorf("zenquotes: %w", fetch.Parse(op, errors.New("expected a non-empty array")))
	}

	first := doc.Array()[0]
	if first.Type != gjson.JSON || !first.IsObject() {
		return model.Quote{}, fmt.Errorf("zenquotes: %w", fetch.Parse(op, errors.New("expected an object element")))
	}
	if err := fetch.Require(first, fetch.String("q"), fetch.String("a")); err != nil {
		return model.Quote{}, fmt.Errorf("zenquotes: %w", fetch.Parse(op, err))
	}

	quote := model.Quote{Text: first.Get("q").Str, Author: first.Get("a").Str}
	p.log.DebugContext(ctx, "zenquotes quote", slog.String("author", quote.Author))
	return quote, nil
}
