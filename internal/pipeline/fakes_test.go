package pipeline

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/ytget/inspiration/internal/fetch"
	"github.com/ytget/inspiration/internal/logging"
	"github.com/ytget/inspiration/internal/model"
	"github.com/ytget/inspiration/internal/provider/unsplash"
	"github.com/ytget/inspiration/internal/state"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// events is a shared, ordered log of what the fakes observed
type events struct {
	mu  sync.Mutex
	log []string
}

func (e *events) add(s string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.log = append(e.log, s)
}

func (e *events) list() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.log...)
}

func (e *events) count(s string) int {
	n := 0
	for _, v := range e.list() {
		if v == s {
			n++
		}
	}
	return n
}

func (e *events) index(s string) int {
	for i, v := range e.list() {
		if v == s {
			return i
		}
	}
	return -1
}

type creds map[model.CredentialKind]string

func (c creds) Credential(kind model.CredentialKind) model.Credential {
	return model.Credential{Kind: kind, Value: c[kind]}
}

func allKeys() creds {
	return creds{
		model.CredentialPhotoService:       "photo-key",
		model.CredentialWeatherService:     "weather-key",
		model.CredentialTranslationService: "openai-key",
	}
}

type fakePhotos struct {
	ev   *events
	meta *unsplash.PhotoMeta
	err  error
	// block, when set, holds the call until ctx is done
	block bool
}

func (f *fakePhotos) RandomPhoto(ctx context.Context, key string) (*unsplash.PhotoMeta, error) {
	if key == "" {
		return nil, fetch.MissingCredential("photo")
	}
	f.ev.add("metadata")
	if f.block {
		<-ctx.Done()
		return nil, fetch.Network("photo", ctx.Err())
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.meta, nil
}

type fakeBinaries struct {
	ev      *events
	data    map[string][]byte
	failing map[string]error
}

func (f *fakeBinaries) FetchBinary(ctx context.Context, op, url string) ([]byte, error) {
	f.ev.add("binary " + url)
	if err := f.failing[url]; err != nil {
		return nil, err
	}
	if d, ok := f.data[url]; ok {
		return d, nil
	}
	return nil, fetch.Status(op, 404, false)
}

type fakeLocal struct {
	ev  *events
	err error
}

func (f *fakeLocal) Random() (string, []byte, error) {
	f.ev.add("local")
	if f.err != nil {
		return "", nil, f.err
	}
	return "5", []byte("local-png"), nil
}

type fakeQuotes struct {
	ev    *events
	quote model.Quote
	err   error
}

func (f *fakeQuotes) RandomQuote(ctx context.Context) (model.Quote, error) {
	f.ev.add("quote")
	if f.err != nil {
		return model.Quote{}, f.err
	}
	return f.quote, nil
}

type fakeTranslator struct {
	ev   *events
	text string
	err  error
	got  []string
	mu   sync.Mutex
}

func (f *fakeTranslator) Translate(ctx context.Context, key, text string) (string, error) {
	if key == "" {
		return "", fetch.MissingCredential("translate")
	}
	f.ev.add("translate")
	f.mu.Lock()
	f.got = append(f.got, text)
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeWeather struct {
	ev      *events
	summary model.WeatherSummary
	err     error
}

func (f *fakeWeather) Current(ctx context.Context, key string, c model.Coordinates) (model.WeatherSummary, error) {
	if key == "" {
		return model.WeatherSummary{}, fetch.MissingCredential("weather")
	}
	f.ev.add("weather")
	if f.err != nil {
		return model.WeatherSummary{}, f.err
	}
	return f.summary, nil
}

type harness struct {
	ev         *events
	photos     *fakePhotos
	binaries   *fakeBinaries
	local      *fakeLocal
	quotes     *fakeQuotes
	translator *fakeTranslator
	weather    *fakeWeather
	creds      creds
	store      *state.Store
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ev := &events{}
	img := pngBytes(t)
	h := &harness{
		ev: ev,
		photos: &fakePhotos{ev: ev, meta: &unsplash.PhotoMeta{
			ImageURL:  "https://images.example/photo.jpg",
			Author:    "Ansel Adams",
			AvatarURL: "https://images.example/avatar.jpg",
			Title:     "Half Dome",
		}},
		binaries: &fakeBinaries{ev: ev, data: map[string][]byte{
			"https://images.example/photo.jpg":  img,
			"https://images.example/avatar.jpg": img,
		}, failing: map[string]error{}},
		local:      &fakeLocal{ev: ev},
		quotes:     &fakeQuotes{ev: ev, quote: model.Quote{Text: "Stay hungry", Author: "Anon"}},
		translator: &fakeTranslator{ev: ev, text: "배고픔을 유지하라 - 익명"},
		weather:    &fakeWeather{ev: ev, summary: model.NewWeatherSummary("Seoul", "clear sky", 21.7)},
		creds:      allKeys(),
	}
	h.store = state.New()
	h.store.Subscribe(func(s state.Snapshot) {
		if s.Phase == model.PhaseImageReady && !s.IsLoading {
			ev.add("photo committed")
		}
	})
	return h
}

func (h *harness) chain() *ImageChain {
	return NewImageChain(h.photos, h.binaries, h.local, h.creds, logging.Discard())
}

func (h *harness) service(t *testing.T) *Service {
	t.Helper()
	s := NewService(Deps{
		Images:      h.chain(),
		Quotes:      h.quotes,
		Translator:  h.translator,
		Weather:     h.weather,
		Credentials: h.creds,
		Store:       h.store,
		Logger:      logging.Discard(),
	})
	t.Cleanup(s.Close)
	return s
}

var errBoom = errors.New("boom")
