package ui

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/inspiration/internal/config"
	"github.com/ytget/inspiration/internal/model"
)

var errInvalidCoordinates = errors.New("invalid coordinates")

// SettingsDialog edits API keys, manual location and language
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	photoKeyEntry       *widget.Entry
	weatherKeyEntry     *widget.Entry
	translationKeyEntry *widget.Entry
	manualLocationCheck *widget.Check
	latitudeEntry       *widget.Entry
	longitudeEntry      *widget.Entry
	languageSelect      *widget.Select
	languageCodes       map[string]string // display label -> code
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were persisted.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.photoKeyEntry = widget.NewPasswordEntry()
	sd.weatherKeyEntry = widget.NewPasswordEntry()
	sd.translationKeyEntry = widget.NewPasswordEntry()

	sd.latitudeEntry = widget.NewEntry()
	sd.latitudeEntry.SetPlaceHolder("37.5665")
	sd.longitudeEntry = widget.NewEntry()
	sd.longitudeEntry.SetPlaceHolder("126.9780")
	sd.manualLocationCheck = widget.NewCheck(t(KeyUseManualLocation), sd.onManualLocationToggled)

	sd.languageCodes = make(map[string]string)
	var labels []string
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		labels = append(labels, label)
	}
	sort.Strings(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle(t(KeyAPIKeys), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewForm(
			widget.NewFormItem(t(KeyPhotoServiceKey), sd.photoKeyEntry),
			widget.NewFormItem(t(KeyWeatherServiceKey), sd.weatherKeyEntry),
			widget.NewFormItem(t(KeyTranslationKey), sd.translationKeyEntry),
		),

		widget.NewLabelWithStyle(t(KeyLocation), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		sd.manualLocationCheck,
		widget.NewForm(
			widget.NewFormItem(t(KeyLatitude), sd.latitudeEntry),
			widget.NewFormItem(t(KeyLongitude), sd.longitudeEntry),
		),

		widget.NewLabelWithStyle(t(KeyLanguage), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 480))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.photoKeyEntry.SetText(sd.settings.GetPhotoServiceKey())
	sd.weatherKeyEntry.SetText(sd.settings.GetWeatherServiceKey())
	sd.translationKeyEntry.SetText(sd.settings.GetTranslationServiceKey())

	if c, ok := sd.settings.GetManualLocation(); ok {
		sd.manualLocationCheck.SetChecked(true)
		sd.latitudeEntry.SetText(strconv.FormatFloat(c.Latitude, 'f', -1, 64))
		sd.longitudeEntry.SetText(strconv.FormatFloat(c.Longitude, 'f', -1, 64))
	} else {
		sd.manualLocationCheck.SetChecked(false)
		sd.latitudeEntry.SetText("")
		sd.longitudeEntry.SetText("")
	}
	sd.onManualLocationToggled(sd.manualLocationCheck.Checked)

	if label, ok := sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()]; ok {
		sd.languageSelect.SetSelected(label)
	}
}

func (sd *SettingsDialog) onManualLocationToggled(on bool) {
	if on {
		sd.latitudeEntry.Enable()
		sd.longitudeEntry.Enable()
		return
	}
	sd.latitudeEntry.Disable()
	sd.longitudeEntry.Disable()
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	var coords model.Coordinates
	if sd.manualLocationCheck.Checked {
		c, err := parseCoordinates(sd.latitudeEntry.Text, sd.longitudeEntry.Text)
		if err != nil {
			dialog.ShowError(errors.New(sd.localization.GetText(KeyInvalidCoordinates)), sd.window)
			return
		}
		coords = c
	}

	sd.settings.SetPhotoServiceKey(sd.photoKeyEntry.Text)
	sd.settings.SetWeatherServiceKey(sd.weatherKeyEntry.Text)
	sd.settings.SetTranslationServiceKey(sd.translationKeyEntry.Text)

	if sd.manualLocationCheck.Checked {
		sd.settings.SetManualLocation(coords)
	} else {
		sd.settings.ClearManualLocation()
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// parseCoordinates validates user-entered latitude and longitude
func parseCoordinates(latText, lonText string) (model.Coordinates, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(latText), 64)
	if err != nil {
		return model.Coordinates{}, errInvalidCoordinates
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonText), 64)
	if err != nil {
		return model.Coordinates{}, errInvalidCoordinates
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return model.Coordinates{}, errInvalidCoordinates
	}
	return model.Coordinates{Latitude: lat, Longitude: lon}, nil
}
