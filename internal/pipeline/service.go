package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/inspiration/internal/fetch"
	"github.com/ytget/inspiration/internal/location"
	"github.com/ytget/inspiration/internal/model"
	"github.com/ytget/inspiration/internal/state"
)

// Deps are the collaborators of a Service
type Deps struct {
	Images      *ImageChain
	Quotes      QuoteSource
	Translator  Translator
	Weather     WeatherSource
	Locator     location.Locator
	Credentials Credentials
	Store       *state.Store
	Logger      *slog.Logger
}

// Service drives acquisition runs. The most recent Refresh wins: starting a
// run cancels the previous one and the store rejects its late commits.
type Service struct {
	images     *ImageChain
	quotes     QuoteSource
	translator Translator
	weather    WeatherSource
	locator    location.Locator
	creds      Credentials
	store      *state.Store
	log        *slog.Logger

	newRunID func() string

	base     context.Context
	shutdown context.CancelFunc

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewService creates a Service
func NewService(d Deps) *Service {
	base, shutdown := context.WithCancel(context.Background())
	return &Service{
		images:     d.Images,
		quotes:     d.Quotes,
		translator: d.Translator,
		weather:    d.Weather,
		locator:    d.Locator,
		creds:      d.Credentials,
		store:      d.Store,
		log:        d.Logger.With("component", "pipeline"),
		newRunID:   func() string { return "run-" + uuid.NewString() },
		base:       base,
		shutdown:   shutdown,
	}
}

// Store returns the presentation store the service commits to
func (s *Service) Store() *state.Store {
	return s.store
}

// Refresh starts a new acquisition run and returns its ID
func (s *Service) Refresh(src Source) string {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(s.base)
	runID := s.newRunID()
	s.cancel = cancel
	s.store.BeginRun(runID)
	s.wg.Add(1)
	s.mu.Unlock()

	s.log.Debug("run started", slog.String("run", runID), slog.String("source", src.String()))

	go func() {
		defer s.wg.Done()
		defer cancel()
		s.run(ctx, runID, src)
	}()
	return runID
}

// TypingFinished signals that the quote reveal for runID completed
func (s *Service) TypingFinished(runID string) {
	if !s.store.FinishTyping(runID) {
		s.log.Debug("typing finished for stale run", slog.String("run", runID))
	}
}

// Wait blocks until all started runs and weather updates have returned
func (s *Service) Wait() {
	s.wg.Wait()
}

// Close cancels in-flight work and waits for it
func (s *Service) Close() {
	s.shutdown()
	s.wg.Wait()
}

func (s *Service) run(ctx context.Context, runID string, src Source) {
	log := s.log.With(slog.String("run", runID))

	photo, err := s.images.Acquire(ctx, src)
	if err != nil {
		log.Debug("run superseded during image acquisition")
		return
	}
	if !s.store.CommitPhoto(runID, photo) {
		return
	}
	if photo == nil {
		log.Warn("no image available, skipping quote")
		return
	}

	if !s.store.BeginQuote(runID) {
		return
	}
	q, err := s.quotes.RandomQuote(ctx)
	if err != nil {
		s.store.FailQuote(runID)
		if ctx.Err() == nil {
			log.Warn("quote fetch failed", slog.String("error", err.Error()))
		}
		return
	}
	if !s.store.CommitQuote(runID, q) {
		return
	}
	s.store.StartTyping(runID)

	translated, err := s.translate(ctx, q)
	if err != nil {
		if ctx.Err() == nil {
			logTranslationFailure(log, err)
		}
		return
	}
	s.store.CommitTranslation(runID, translated)
}

func (s *Service) translate(ctx context.Context, q model.Quote) (string, error) {
	key := s.creds.Credential(model.CredentialTranslationService)
	return s.translator.Translate(ctx, key.Value, q.Display())
}

// Quote fetches one quote and its translation outside any run. The
// translation is empty when it failed.
func (s *Service) Quote(ctx context.Context) (model.Quote, string, error) {
	q, err := s.quotes.RandomQuote(ctx)
	if err != nil {
		return model.Quote{}, "", err
	}
	translated, err := s.translate(ctx, q)
	if err != nil {
		logTranslationFailure(s.log, err)
		return q, "", nil
	}
	return q, translated, nil
}

// Photo runs the image chain outside any run
func (s *Service) Photo(ctx context.Context, src Source) (*model.Photo, error) {
	return s.images.Acquire(ctx, src)
}

// Weather fetches the summary for coords without touching the store
func (s *Service) Weather(ctx context.Context, coords model.Coordinates) (model.WeatherSummary, error) {
	key := s.creds.Credential(model.CredentialWeatherService)
	return s.weather.Current(ctx, key.Value, coords)
}

// UpdateWeather refreshes the weather line. On failure the previous text
// stays in place.
func (s *Service) UpdateWeather(ctx context.Context, coords model.Coordinates) {
	s.store.SetLocation(coords.String())

	summary, err := s.Weather(ctx, coords)
	if err != nil {
		if errors.Is(err, fetch.ErrMissingCredential) {
			s.log.InfoContext(ctx, "weather service key not set")
		} else if ctx.Err() == nil {
			s.log.WarnContext(ctx, "weather fetch failed", slog.String("error", err.Error()))
		}
		return
	}
	s.store.SetWeather(summary.String())
}

// WatchWeather resolves the location and updates weather, then repeats
// every interval until ctx is done. A zero interval updates once. It runs
// in the background and is covered by Wait.
func (s *Service) WatchWeather(ctx context.Context, interval time.Duration) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := mergeCancel(ctx, s.base)
		defer cancel()

		s.refreshWeather(ctx)
		if interval <= 0 {
			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.refreshWeather(ctx)
			}
		}
	}()
}

func (s *Service) refreshWeather(ctx context.Context) {
	if s.locator == nil {
		return
	}
	coords, err := s.locator.Locate(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.log.WarnContext(ctx, "location unavailable, keeping weather placeholder", slog.String("error", err.Error()))
		}
		return
	}
	s.UpdateWeather(ctx, coords)
}

// logTranslationFailure reports a 429 once as quota exhaustion and nothing
// else; other failures are logged as generic warnings.
func logTranslationFailure(log *slog.Logger, err error) {
	switch fetch.KindOf(err) {
	case fetch.KindQuotaExceeded:
		log.Warn("translation quota exceeded")
	case fetch.KindMissingCredential:
		log.Info("translation service key not set")
	default:
		log.Warn("translation failed", slog.String("error", err.Error()))
	}
}

// mergeCancel returns a context cancelled when either parent is done
func mergeCancel(ctx, other context.Context) (context.Context, context.CancelFunc) {
	merged, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(other, cancel)
	return merged, func() {
		stop()
		cancel()
	}
}
