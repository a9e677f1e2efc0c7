package ui

import (
	"context"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/inspiration/internal/config"
	"github.com/ytget/inspiration/internal/model"
	"github.com/ytget/inspiration/internal/pipeline"
	"github.com/ytget/inspiration/internal/state"
	"github.com/ytget/inspiration/internal/typewriter"
)

// Controller is the part of the pipeline the window drives
type Controller interface {
	Refresh(src pipeline.Source) string
	TypingFinished(runID string)
	WatchWeather(ctx context.Context, interval time.Duration)
}

// Options tunes the root window
type Options struct {
	LaunchSource   pipeline.Source
	WeatherRefresh time.Duration
	TypingInterval time.Duration
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	controller   Controller
	store        *state.Store
	settings     *config.Settings
	localization *Localization
	typewriter   *typewriter.Typewriter
	opts         Options
	log          *slog.Logger

	settingsDialog *SettingsDialog
	unsubscribe    func()
	cancelWeather  context.CancelFunc

	// background
	backgroundFill *canvas.Rectangle
	background     *canvas.Image
	tapSurface     *TapSurface

	// overlay
	quoteLabel       *widget.Label
	translationLabel *widget.Label
	weatherLabel     *widget.Label
	titleLabel       *widget.Label
	authorLabel      *widget.Label
	avatar           *canvas.Image
	attribution      *fyne.Container
	spinner          *widget.ProgressBarInfinite

	// what is currently drawn
	shownPhoto *model.Photo
	typedRun   string
	typedQuote string
	last       state.Snapshot
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, controller Controller, store *state.Store, opts Options, logger *slog.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		controller:   controller,
		store:        store,
		settings:     settings,
		localization: localization,
		typewriter:   typewriter.New(opts.TypingInterval, typewriter.WithDispatcher(fyne.Do)),
		opts:         opts,
		log:          logger.With("component", "ui"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// Start renders the current state, subscribes to changes, starts weather
// updates and the first run.
func (ui *RootUI) Start(ctx context.Context) {
	ui.unsubscribe = ui.store.Subscribe(ui.render)
	ui.render(ui.store.Snapshot())

	weatherCtx, cancel := context.WithCancel(ctx)
	ui.cancelWeather = cancel
	ui.controller.WatchWeather(weatherCtx, ui.opts.WeatherRefresh)

	ui.controller.Refresh(ui.opts.LaunchSource)
}

// Stop detaches the UI from the store and stops background work
func (ui *RootUI) Stop() {
	if ui.unsubscribe != nil {
		ui.unsubscribe()
	}
	if ui.cancelWeather != nil {
		ui.cancelWeather()
	}
	ui.typewriter.Stop()
}

func (ui *RootUI) setupUI() {
	ui.createMenu()
	ui.createShortcuts()

	ui.backgroundFill = canvas.NewRectangle(BackgroundGrey)
	ui.background = canvas.NewImageFromResource(nil)
	ui.background.FillMode = canvas.ImageFillContain
	ui.background.ScaleMode = canvas.ImageScaleSmooth
	ui.background.Hide()
	scrim := canvas.NewRectangle(Scrim)

	ui.tapSurface = NewTapSurface(ui.onRefresh, ui.onShowSettings)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.weatherLabel = widget.NewLabel("")
	ui.weatherLabel.Alignment = fyne.TextAlignTrailing
	ui.weatherLabel.TextStyle = fyne.TextStyle{Bold: true}

	topBar := container.NewBorder(nil, nil, settingsBtn, ui.weatherLabel)

	ui.quoteLabel = widget.NewLabel("")
	ui.quoteLabel.Wrapping = fyne.TextWrapWord
	ui.quoteLabel.Alignment = fyne.TextAlignCenter
	ui.quoteLabel.SizeName = theme.SizeNameHeadingText
	ui.quoteLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.translationLabel = widget.NewLabel("")
	ui.translationLabel.Wrapping = fyne.TextWrapWord
	ui.translationLabel.Alignment = fyne.TextAlignCenter
	ui.translationLabel.TextStyle = fyne.TextStyle{Italic: true}
	ui.translationLabel.Hide()

	center := container.NewVBox(layout.NewSpacer(), ui.quoteLabel, ui.translationLabel, layout.NewSpacer())

	ui.avatar = canvas.NewImageFromResource(nil)
	ui.avatar.SetMinSize(fyne.NewSize(AvatarSize, AvatarSize))
	ui.avatar.FillMode = canvas.ImageFillContain
	ui.avatar.Hide()

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.Truncation = fyne.TextTruncateEllipsis
	ui.authorLabel = widget.NewLabel("")
	ui.attribution = container.NewHBox(ui.avatar, container.NewVBox(ui.titleLabel, ui.authorLabel))
	ui.attribution.Hide()

	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Hide()

	bottomBar := container.NewVBox(ui.spinner, container.NewBorder(nil, nil, ui.attribution, nil))

	overlay := container.NewBorder(topBar, bottomBar, nil, nil, container.NewPadded(center))

	ui.window.SetContent(container.NewStack(
		ui.backgroundFill,
		ui.background,
		scrim,
		ui.tapSurface,
		container.NewPadded(overlay),
	))
}

func (ui *RootUI) createMenu() {
	refreshItem := fyne.NewMenuItem(ui.localization.GetText(KeyRefresh), ui.onRefresh)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), refreshItem, settingsItem),
		languageMenu,
	))
}

func (ui *RootUI) createShortcuts() {
	c := ui.window.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierShortcutDefault}, func(fyne.Shortcut) {
		ui.onRefresh()
	})
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeySpace, fyne.KeyReturn:
			ui.onRefresh()
		case fyne.KeyEscape:
			if ui.window.FullScreen() {
				ui.window.SetFullScreen(false)
			}
		}
	})
}

func (ui *RootUI) onRefresh() {
	ui.controller.Refresh(pipeline.SourceRemote)
}

func (ui *RootUI) onShowSettings() {
	if ui.settingsDialog == nil {
		ui.settingsDialog = NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved)
	}
	ui.settingsDialog.Show()
}

// onSettingsSaved applies new keys, location and language right away
func (ui *RootUI) onSettingsSaved() {
	ui.onLanguageChange(ui.settings.GetLanguage())

	if ui.cancelWeather != nil {
		ui.cancelWeather()
	}
	ctx, cancel := context.WithCancel(context.Background())
	ui.cancelWeather = cancel
	ui.controller.WatchWeather(ctx, ui.opts.WeatherRefresh)

	time.AfterFunc(SettingsAppliedDelay, func() {
		fyne.Do(ui.onRefresh)
	})
}

func (ui *RootUI) onLanguageChange(code string) {
	ui.localization.SetLanguage(code)
	ui.settings.SetLanguage(code)
	ui.settingsDialog = nil

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.createMenu()
	ui.render(ui.last)
}

// render draws a snapshot. It runs on the UI goroutine.
func (ui *RootUI) render(snap state.Snapshot) {
	ui.last = snap

	if snap.IsLoading {
		ui.spinner.Show()
		ui.spinner.Start()
	} else {
		ui.spinner.Stop()
		ui.spinner.Hide()
	}

	ui.renderBackground(snap)
	ui.renderAttribution(snap)
	ui.renderQuote(snap)

	if snap.TranslationVisible() {
		ui.translationLabel.SetText(ui.localization.Format(KeyTranslationFormat, snap.TranslatedQuote))
		ui.translationLabel.Show()
	} else {
		ui.translationLabel.Hide()
	}

	weather := snap.WeatherText
	if weather == model.WeatherPlaceholder {
		weather = ui.localization.GetText(KeyWeatherLoading)
	}
	ui.weatherLabel.SetText(weather)
}

func (ui *RootUI) renderBackground(snap state.Snapshot) {
	if snap.Photo == ui.shownPhoto {
		return
	}
	ui.shownPhoto = snap.Photo

	if snap.Photo == nil {
		ui.background.Resource = nil
		ui.background.Hide()
		return
	}
	ui.background.Resource = photoResource(snap.Photo)
	ui.background.Show()
	ui.background.Refresh()
}

func (ui *RootUI) renderAttribution(snap state.Snapshot) {
	if !snap.IsUnsplashImage || snap.Photo == nil {
		ui.attribution.Hide()
		return
	}

	p := snap.Photo
	if p.Title != "" {
		ui.titleLabel.SetText(p.Title)
		ui.titleLabel.Show()
	} else {
		ui.titleLabel.Hide()
	}
	ui.authorLabel.SetText(ui.localization.Format(KeyAttributionFormat, p.AuthorName))

	if res := avatarResource(p); res != nil {
		ui.avatar.Resource = res
		ui.avatar.Show()
		ui.avatar.Refresh()
	} else {
		ui.avatar.Hide()
	}
	ui.attribution.Show()
}

// renderQuote starts the reveal once per run and quote
func (ui *RootUI) renderQuote(snap state.Snapshot) {
	if snap.Quote == "" {
		if ui.typedQuote != "" || ui.typedRun != snap.RunID {
			ui.typewriter.Stop()
			ui.quoteLabel.SetText("")
			ui.typedQuote = ""
			ui.typedRun = snap.RunID
		}
		return
	}
	if snap.RunID == ui.typedRun && snap.Quote == ui.typedQuote {
		return
	}

	ui.typedRun = snap.RunID
	ui.typedQuote = snap.Quote
	runID := snap.RunID

	ui.quoteLabel.SetText("")
	ui.typewriter.Start(snap.Quote, ui.quoteLabel.SetText, func() {
		ui.log.Debug("quote typed", slog.String("run", runID))
		ui.controller.TypingFinished(runID)
	})
}
