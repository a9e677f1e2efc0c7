// Package location resolves the coordinates used for weather lookups.
package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ytget/inspiration/internal/model"
)

// ErrNoLocation is returned when no locator produced coordinates
var ErrNoLocation = errors.New("location unavailable")

// Locator resolves the current coordinates
type Locator interface {
	Locate(ctx context.Context) (model.Coordinates, error)
}

// LocatorFunc adapts a function to Locator
type LocatorFunc func(ctx context.Context) (model.Coordinates, error)

// Locate calls f
func (f LocatorFunc) Locate(ctx context.Context) (model.Coordinates, error) {
	return f(ctx)
}

// Fixed always returns c
func Fixed(c model.Coordinates) Locator {
	return LocatorFunc(func(context.Context) (model.Coordinates, error) {
		return c, nil
	})
}

// ManualSource provides user-entered coordinates
type ManualSource interface {
	GetManualLocation() (model.Coordinates, bool)
}

// Static reads manual coordinates from settings at each call
type Static struct {
	source ManualSource
}

// NewStatic creates a Static locator over source
func NewStatic(source ManualSource) *Static {
	return &Static{source: source}
}

// Name identifies the locator in logs
func (s *Static) Name() string {
	return "manual"
}

// Locate returns the manual coordinates, or ErrNoLocation when disabled
func (s *Static) Locate(ctx context.Context) (model.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return model.Coordinates{}, err
	}
	c, ok := s.source.GetManualLocation()
	if !ok {
		return model.Coordinates{}, fmt.Errorf("manual location not set: %w", ErrNoLocation)
	}
	return c, nil
}

// Chain tries each locator in order; the first success wins
type Chain struct {
	locators []Locator
	log      *slog.Logger
}

// NewChain creates a Chain
func NewChain(logger *slog.Logger, locators ...Locator) *Chain {
	return &Chain{
		locators: locators,
		log:      logger.With("component", "location"),
	}
}

// Locate returns the first successful result. Cancellation stops the chain.
func (c *Chain) Locate(ctx context.Context) (model.Coordinates, error) {
	errs := []error{ErrNoLocation}
	for _, l := range c.locators {
		coords, err := l.Locate(ctx)
		if err == nil {
			c.log.DebugContext(ctx, "location resolved", slog.String("locator", nameOf(l)), slog.String("coords", coords.String()))
			return coords, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return model.Coordinates{}, ctxErr
		}
		c.log.DebugContext(ctx, "locator failed", slog.String("locator", nameOf(l)), slog.String("error", err.Error()))
		errs = append(errs, err)
	}
	return model.Coordinates{}, errors.Join(errs...)
}

func nameOf(l Locator) string {
	if n, ok := l.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", l)
}
