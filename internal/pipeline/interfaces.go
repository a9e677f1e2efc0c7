package pipeline

import (
	"context"

	"github.com/ytget/inspiration/internal/model"
	"github.com/ytget/inspiration/internal/provider/unsplash"
)

// Credentials looks up user-supplied API keys at each use
type Credentials interface {
	Credential(kind model.CredentialKind) model.Credential
}

// PhotoSource returns metadata for a random remote photo
type PhotoSource interface {
	RandomPhoto(ctx context.Context, accessKey string) (*unsplash.PhotoMeta, error)
}

// BinaryFetcher downloads raw bytes
type BinaryFetcher interface {
	FetchBinary(ctx context.Context, op, rawURL string) ([]byte, error)
}

// LocalImages picks a bundled fallback background
type LocalImages interface {
	Random() (name string, data []byte, err error)
}

// QuoteSource returns a random quote
type QuoteSource interface {
	RandomQuote(ctx context.Context) (model.Quote, error)
}

// Translator translates quote text
type Translator interface {
	Translate(ctx context.Context, apiKey, text string) (string, error)
}

// WeatherSource returns current conditions at coordinates
type WeatherSource interface {
	Current(ctx context.Context, apiKey string, c model.Coordinates) (model.WeatherSummary, error)
}
