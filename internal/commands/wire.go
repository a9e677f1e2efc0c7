package commands

import (
	"log/slog"

	"github.com/ytget/inspiration/internal/assets"
	"github.com/ytget/inspiration/internal/config"
	"github.com/ytget/inspiration/internal/fetch"
	"github.com/ytget/inspiration/internal/location"
	"github.com/ytget/inspiration/internal/pipeline"
	"github.com/ytget/inspiration/internal/provider/ipapi"
	"github.com/ytget/inspiration/internal/provider/openai"
	"github.com/ytget/inspiration/internal/provider/openweather"
	"github.com/ytget/inspiration/internal/provider/unsplash"
	"github.com/ytget/inspiration/internal/provider/zenquotes"
	"github.com/ytget/inspiration/internal/state"
)

// newService builds the pipeline over the real providers
func newService(cfg *config.Config, creds pipeline.Credentials, store *state.Store, locator location.Locator, client *fetch.Client, logger *slog.Logger) *pipeline.Service {
	images := pipeline.NewImageChain(
		unsplash.NewProviderWithURL(cfg.Endpoints.Unsplash, client, logger),
		client,
		assets.NewBackgrounds(),
		creds,
		logger,
	)

	translator := openai.NewTranslator(openai.Options{
		BaseURL:        cfg.Endpoints.OpenAI,
		Model:          cfg.Translation.Model,
		MaxTokens:      cfg.Translation.MaxTokens,
		TargetLanguage: cfg.Translation.TargetLanguage,
	}, client.HTTPClient(), logger)

	return pipeline.NewService(pipeline.Deps{
		Images:      images,
		Quotes:      zenquotes.NewProviderWithURL(cfg.Endpoints.ZenQuotes, client, logger),
		Translator:  translator,
		Weather:     openweather.NewProviderWithURL(cfg.Endpoints.OpenWeather, client, logger),
		Locator:     locator,
		Credentials: creds,
		Store:       store,
		Logger:      logger,
	})
}

// newLocator prefers manual coordinates and falls back to IP geolocation
func newLocator(cfg *config.Config, manual location.ManualSource, client *fetch.Client, logger *slog.Logger) location.Locator {
	ip := ipapi.NewProviderWithURL(cfg.Endpoints.IPAPI, client, logger)
	if manual == nil {
		return location.NewChain(logger, ip)
	}
	return location.NewChain(logger, location.NewStatic(manual), ip)
}
