// Package ipapi resolves an approximate location from the caller's IP address.
package ipapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ytget/inspiration/internal/fetch"
	"github.com/ytget/inspiration/internal/model"
)

const defaultBaseURL = "http://ip-api.com"

const op = "ipapi locate"

// Provider implements location.Locator over ip-api.com
type Provider struct {
	baseURL string
	client  *fetch.Client
	log     *slog.Logger
}

// NewProvider creates a Provider with the default ip-api URL
func NewProvider(client *fetch.Client, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, client, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL
func NewProviderWithURL(baseURL string, client *fetch.Client, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     logger.With("provider", "ipapi"),
	}
}

// Name identifies the locator in logs
func (p *Provider) Name() string {
	return "ipapi"
}

// Locate returns the coordinates reported for the current public IP
func (p *Provider) Locate(ctx context.Context) (model.Coordinates, error) {
	doc, err := p.client.FetchJSON(ctx, fetch.Request{
		Op:  op,
		URL: p.baseURL + "/json?fields=status,message,lat,lon,city",
	})
	if err != nil {
		return model.Coordinates{}, fmt.Errorf("ipapi: %w", err)
	}

	if status := doc.Get("status").String(); status != "success" {
		msg := doc.Get("message").String()
		return model.Coordinates{}, fmt.Errorf("ipapi: %w", fetch.Parse(op, errors.New("lookup failed: "+status+" "+msg)))
	}
	if err := fetch.Require(doc, fetch.Number("lat"), fetch.Number("lon")); err != nil {
		return model.Coordinates{}, fmt.Errorf("ipapi: %w", fetch.Parse(op, err))
	}

	coords := model.Coordinates{Latitude: doc.Get("lat").Float(), Longitude: doc.Get("lon").Float()}
	p.log.DebugContext(ctx, "ipapi location", slog.String("city", doc.Get("city").String()), slog.String("coords", coords.String()))
	return coords, nil
}
