package ui

import (
	"context"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/inspiration/internal/config"
	"github.com/ytget/inspiration/internal/logging"
	"github.com/ytget/inspiration/internal/model"
	"github.com/ytget/inspiration/internal/pipeline"
	"github.com/ytget/inspiration/internal/state"
	"github.com/ytget/inspiration/internal/typewriter"
)

type fakeController struct {
	mu       sync.Mutex
	sources  []pipeline.Source
	watched  int
	finished chan string
}

func newFakeController() *fakeController {
	return &fakeController{finished: make(chan string, 8)}
}

func (f *fakeController) Refresh(src pipeline.Source) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sources = append(f.sources, src)
	return "run-fake"
}

func (f *fakeController) TypingFinished(runID string) {
	f.finished <- runID
}

func (f *fakeController) WatchWeather(ctx context.Context, interval time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.watched++
}

func (f *fakeController) refreshes() []pipeline.Source {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]pipeline.Source(nil), f.sources...)
}

type fixture struct {
	ui         *RootUI
	store      *state.Store
	controller *fakeController
	settings   *config.Settings
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app)
	settings.SetLanguage("en")
	window := test.NewWindow(nil)
	store := state.New()
	controller := newFakeController()

	ui := NewRootUI(window, settings, controller, store, Options{
		LaunchSource:   pipeline.SourceLocal,
		TypingInterval: time.Millisecond,
	}, logging.Discard())
	// callbacks run on the typewriter goroutine instead of the app loop
	ui.typewriter = typewriter.New(time.Millisecond)
	t.Cleanup(ui.Stop)

	return &fixture{ui: ui, store: store, controller: controller, settings: settings}
}

func remotePhoto(t *testing.T, withAvatar bool) *model.Photo {
	t.Helper()
	var avatar []byte
	if withAvatar {
		avatar = []byte("avatar")
	}
	p, err := model.NewRemotePhoto([]byte("photo"), "Half Dome", "Ansel Adams", avatar, "https://images.example/1")
	require.NoError(t, err)
	return p
}

func TestRootUI_StartTriggersLaunchRunAndWeather(t *testing.T) {
	f := newFixture(t)

	f.ui.Start(context.Background())

	assert.Equal(t, []pipeline.Source{pipeline.SourceLocal}, f.controller.refreshes())
	assert.Equal(t, 1, f.controller.watched)
	assert.Equal(t, "Loading weather...", f.ui.weatherLabel.Text)
	assert.Equal(t, "Inspiration", f.ui.window.Title())
}

func TestRootUI_TapStartsRemoteRun(t *testing.T) {
	f := newFixture(t)

	test.Tap(f.ui.tapSurface)

	assert.Equal(t, []pipeline.Source{pipeline.SourceRemote}, f.controller.refreshes())
}

func TestRootUI_LoadingAndNoImage(t *testing.T) {
	f := newFixture(t)
	f.ui.Start(context.Background())

	f.store.BeginRun("r1")
	assert.True(t, f.ui.spinner.Visible())

	f.store.CommitPhoto("r1", nil)
	assert.False(t, f.ui.spinner.Visible())
	assert.False(t, f.ui.background.Visible())
	assert.True(t, f.ui.backgroundFill.Visible())
	assert.False(t, f.ui.attribution.Visible())
}

func TestRootUI_RemotePhotoShowsAttribution(t *testing.T) {
	f := newFixture(t)
	f.ui.Start(context.Background())

	f.store.BeginRun("r1")
	f.store.CommitPhoto("r1", remotePhoto(t, true))

	assert.True(t, f.ui.background.Visible())
	assert.True(t, f.ui.attribution.Visible())
	assert.Equal(t, "Half Dome", f.ui.titleLabel.Text)
	assert.Equal(t, "by Ansel Adams", f.ui.authorLabel.Text)
	assert.True(t, f.ui.avatar.Visible())
}

func TestRootUI_RemotePhotoWithoutAvatarOrTitle(t *testing.T) {
	f := newFixture(t)
	f.ui.Start(context.Background())

	p, err := model.NewRemotePhoto([]byte("photo"), "", "Ansel Adams", nil, "u")
	require.NoError(t, err)
	f.store.BeginRun("r1")
	f.store.CommitPhoto("r1", p)

	assert.True(t, f.ui.attribution.Visible())
	assert.False(t, f.ui.avatar.Visible())
	assert.False(t, f.ui.titleLabel.Visible())
}

func TestRootUI_LocalPhotoHidesAttribution(t *testing.T) {
	f := newFixture(t)
	f.ui.Start(context.Background())

	f.store.BeginRun("r1")
	f.store.CommitPhoto("r1", model.NewLocalPhoto([]byte("png"), "4"))

	assert.True(t, f.ui.background.Visible())
	assert.False(t, f.ui.attribution.Visible())
}

func TestRootUI_QuoteTypedThenTranslationShown(t *testing.T) {
	f := newFixture(t)
	f.ui.Start(context.Background())

	f.store.BeginRun("r1")
	f.store.CommitPhoto("r1", remotePhoto(t, false))
	f.store.BeginQuote("r1")
	f.store.CommitQuote("r1", model.Quote{Text: "Stay hungry", Author: "Anon"})
	f.store.StartTyping("r1")
	f.store.CommitTranslation("r1", "배고픔을 유지하라")

	assert.False(t, f.ui.translationLabel.Visible(), "translation must wait for the reveal")

	var runID string
	select {
	case runID = <-f.controller.finished:
	case <-time.After(2 * time.Second):
		t.Fatal("typing never finished")
	}
	assert.Equal(t, "r1", runID)
	assert.Equal(t, "Stay hungry - Anon", f.ui.quoteLabel.Text)

	f.store.FinishTyping(runID)
	assert.True(t, f.ui.translationLabel.Visible())
	assert.Equal(t, "Translation: 배고픔을 유지하라", f.ui.translationLabel.Text)
}

func TestRootUI_KoreanTranslationPrefix(t *testing.T) {
	f := newFixture(t)
	f.ui.Start(context.Background())
	f.ui.onLanguageChange("ko")

	f.store.BeginRun("r1")
	f.store.CommitPhoto("r1", remotePhoto(t, false))
	f.store.BeginQuote("r1")
	f.store.CommitQuote("r1", model.Quote{Text: "q", Author: "a"})
	f.store.FinishTyping("r1")
	f.store.CommitTranslation("r1", "번역된 문장")

	assert.Equal(t, "번역: 번역된 문장", f.ui.translationLabel.Text)
	assert.Equal(t, "날씨 불러오는 중...", f.ui.weatherLabel.Text)
	assert.Equal(t, "ko", f.settings.GetLanguage())
}

func TestRootUI_NewRunClearsQuote(t *testing.T) {
	f := newFixture(t)
	f.ui.Start(context.Background())

	f.store.BeginRun("r1")
	f.store.CommitPhoto("r1", remotePhoto(t, false))
	f.store.BeginQuote("r1")
	f.store.CommitQuote("r1", model.Quote{Text: "q", Author: "a"})
	<-f.controller.finished

	f.store.BeginRun("r2")
	assert.Empty(t, f.ui.quoteLabel.Text)
	assert.False(t, f.ui.translationLabel.Visible())
}

func TestRootUI_WeatherText(t *testing.T) {
	f := newFixture(t)
	f.ui.Start(context.Background())

	f.store.SetWeather("Seoul: Clear Sky, 21°C")
	assert.Equal(t, "Seoul: Clear Sky, 21°C", f.ui.weatherLabel.Text)
}
