// Package unsplash fetches random photo metadata from the Unsplash API.
package unsplash

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/ytget/inspiration/internal/fetch"
)

const defaultBaseURL = "https://api.unsplash.com"

const op = "unsplash random photo"

// PhotoMeta is the subset of the random-photo response the app needs
type PhotoMeta struct {
	ImageURL  string
	Author    string
	AvatarURL string
	Title     string
}

// Provider fetches random photo metadata
type Provider struct {
	baseURL string
	client  *fetch.Client
	log     *slog.Logger
}

// NewProvider creates a Provider with the default Unsplash API URL
func NewProvider(client *fetch.Client, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, client, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL
func NewProviderWithURL(baseURL string, client *fetch.Client, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     logger.With("provider", "unsplash"),
	}
}

// RandomPhoto returns metadata for one random photo. An empty accessKey fails
// with MissingCredential before any request is made.
func (p *Provider) RandomPhoto(ctx context.Context, accessKey string) (*PhotoMeta, error) {
	if accessKey == "" {
		return nil, fetch.MissingCredential(op)
	}

	reqURL := p.baseURL + "/photos/random?client_id=" + url.QueryEscape(accessKey)

	doc, err := p.client.FetchJSON(ctx, fetch.Request{Op: op, URL: reqURL})
	if err != nil {
		return nil, fmt.Errorf("unsplash: %w", err)
	}

	err = fetch.Require(doc,
		fetch.URLString("urls.regular"),
		fetch.NonEmptyString("user.name"),
		fetch.URLString("user.profile_image.small"),
		// null is taken as an untitled photo, only a missing key is malformed
		fetch.NullableString("description"),
	)
	if err != nil {
		return nil, fmt.Errorf("unsplash: %w", fetch.Parse(op, err))
	}

	meta := &PhotoMeta{
		ImageURL:  doc.Get("urls.regular").Str,
		Author:    doc.Get("user.name").Str,
		AvatarURL: doc.Get("user.profile_image.small").Str,
		Title:     doc.Get("description").Str,
	}

	p.log.DebugContext(ctx, "unsplash photo", slog.String("author", meta.Author), slog.String("url", meta.ImageURL))
	return meta, nil
}
