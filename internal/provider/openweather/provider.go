// Package openweather fetches current conditions from OpenWeatherMap.
package openweather

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/ytget/inspiration/internal/fetch"
	"github.com/ytget/inspiration/internal/model"
)

const defaultBaseURL = "https://api.openweathermap.org"

const op = "openweather current weather"

// Provider fetches the current weather for coordinates
type Provider struct {
	baseURL string
	client  *fetch.Client
	log     *slog.Logger
}

// NewProvider creates a Provider with the default OpenWeatherMap URL
func NewProvider(client *fetch.Client, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, client, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL
func NewProviderWithURL(baseURL string, client *fetch.Client, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     logger.With("provider", "openweather"),
	}
}

// Current returns the weather summary in metric units. An empty apiKey fails
// with MissingCredential before any request is made.
func (p *Provider) Current(ctx context.Context, apiKey string, at model.Coordinates) (model.WeatherSummary, error) {
	if apiKey == "" {
		return model.WeatherSummary{}, fetch.MissingCredential(op)
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(at.Latitude, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(at.Longitude, 'f', -1, 64))
	q.Set("appid", apiKey)
	q.Set("units", "metric")

	doc, err := p.client.FetchJSON(ctx, fetch.Request{
		Op:  op,
		URL: p.baseURL + "/data/2.5/weather?" + q.Encode(),
	})
	if err != nil {
		return model.WeatherSummary{}, fmt.Errorf("openweather: %w", err)
	}

	err = fetch.Require(doc,
		fetch.Number("main.temp"),
		fetch.String("weather.0.description"),
		fetch.String("name"),
	)
	if err != nil {
		return model.WeatherSummary{}, fmt.Errorf("openweather: %w", fetch.Parse(op, err))
	}

	summary := model.NewWeatherSummary(
		doc.Get("name").Str,
		doc.Get("weather.0.description").Str,
		doc.Get("main.temp").Float(),
	)
	p.log.DebugContext(ctx, "openweather summary", slog.String("summary", summary.String()))
	return summary, nil
}
