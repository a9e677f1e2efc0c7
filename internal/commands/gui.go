package commands

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/inspiration/internal/config"
	"github.com/ytget/inspiration/internal/pipeline"
	"github.com/ytget/inspiration/internal/state"
	"github.com/ytget/inspiration/internal/ui"
)

const (
	AppID   = "com.ytget.inspiration"
	AppName = "Inspiration"
)

// runGUI opens the fullscreen window and blocks until it is closed
func runGUI(ctx context.Context, rt *session) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a := app.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewOverlayTheme())

	settings := config.NewSettings(a)
	creds := config.FirstConfigured{settings, rt.cfg.Keys}

	store := state.New(state.WithDispatcher(fyne.Do))
	locator := newLocator(rt.cfg, settings, rt.client, rt.log)
	svc := newService(rt.cfg, creds, store, locator, rt.client, rt.log)
	defer svc.Close()

	window := a.NewWindow(fmt.Sprintf("%s %s", AppName, rt.version))
	window.Resize(fyne.NewSize(ui.WindowMinWidth, ui.WindowMinHeight))
	window.SetPadded(false)
	window.SetFullScreen(rt.cfg.Display.FullScreen)

	root := ui.NewRootUI(window, settings, svc, store, ui.Options{
		LaunchSource:   pipeline.ParseSource(rt.cfg.Display.LaunchSource),
		WeatherRefresh: rt.cfg.Display.WeatherRefresh,
		TypingInterval: rt.cfg.Display.TypingInterval,
	}, rt.log)
	defer root.Stop()

	window.SetOnClosed(cancel)
	root.Start(ctx)

	rt.log.Info("window opened", "launch_source", rt.cfg.Display.LaunchSource)
	window.ShowAndRun()
	return nil
}
