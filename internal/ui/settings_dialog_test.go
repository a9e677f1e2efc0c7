package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/inspiration/internal/config"
	"github.com/ytget/inspiration/internal/model"
)

func newTestDialog(t *testing.T) (*SettingsDialog, *config.Settings, *int) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app)
	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), test.NewWindow(nil), func() { saved++ })
	return sd, settings, &saved
}

func TestSettingsDialog_SaveKeysAndLocation(t *testing.T) {
	sd, settings, saved := newTestDialog(t)
	sd.Show()

	sd.photoKeyEntry.SetText("  unsplash  ")
	sd.weatherKeyEntry.SetText("owm")
	sd.translationKeyEntry.SetText("sk-1")
	sd.manualLocationCheck.SetChecked(true)
	sd.latitudeEntry.SetText("37.5665")
	sd.longitudeEntry.SetText("126.978")
	sd.languageSelect.SetSelected("한국어")

	sd.onSave(true)

	assert.Equal(t, 1, *saved)
	assert.Equal(t, "unsplash", settings.GetPhotoServiceKey())
	assert.Equal(t, "owm", settings.GetWeatherServiceKey())
	assert.Equal(t, "sk-1", settings.GetTranslationServiceKey())
	assert.Equal(t, "ko", settings.GetLanguage())

	c, ok := settings.GetManualLocation()
	require.True(t, ok)
	assert.Equal(t, model.Coordinates{Latitude: 37.5665, Longitude: 126.978}, c)
}

func TestSettingsDialog_InvalidCoordinatesNotSaved(t *testing.T) {
	sd, settings, saved := newTestDialog(t)
	sd.Show()

	sd.photoKeyEntry.SetText("new-key")
	sd.manualLocationCheck.SetChecked(true)
	sd.latitudeEntry.SetText("123")
	sd.longitudeEntry.SetText("0")

	sd.onSave(true)

	assert.Zero(t, *saved)
	assert.Empty(t, settings.GetPhotoServiceKey())
	_, ok := settings.GetManualLocation()
	assert.False(t, ok)
}

func TestSettingsDialog_CancelKeepsSettings(t *testing.T) {
	sd, settings, saved := newTestDialog(t)
	settings.SetWeatherServiceKey("old")
	sd.Show()

	sd.weatherKeyEntry.SetText("new")
	sd.onSave(false)

	assert.Zero(t, *saved)
	assert.Equal(t, "old", settings.GetWeatherServiceKey())
}

func TestSettingsDialog_LoadsManualLocation(t *testing.T) {
	sd, settings, _ := newTestDialog(t)
	settings.SetManualLocation(model.Coordinates{Latitude: 1.5, Longitude: -2})

	sd.Show()

	assert.True(t, sd.manualLocationCheck.Checked)
	assert.Equal(t, "1.5", sd.latitudeEntry.Text)
	assert.Equal(t, "-2", sd.longitudeEntry.Text)
	assert.False(t, sd.latitudeEntry.Disabled())
}

func TestSettingsDialog_DisablingLocationClearsIt(t *testing.T) {
	sd, settings, _ := newTestDialog(t)
	settings.SetManualLocation(model.Coordinates{Latitude: 1, Longitude: 1})
	sd.Show()

	sd.manualLocationCheck.SetChecked(false)
	sd.onSave(true)

	_, ok := settings.GetManualLocation()
	assert.False(t, ok)
	assert.True(t, sd.latitudeEntry.Disabled())
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		lat, lon string
		ok       bool
	}{
		{"0", "0", true},
		{" -90 ", "180", true},
		{"90.1", "0", false},
		{"0", "-180.5", false},
		{"abc", "0", false},
		{"", "", false},
	}

	for _, tt := range tests {
		_, err := parseCoordinates(tt.lat, tt.lon)
		if tt.ok {
			assert.NoError(t, err, "%s,%s", tt.lat, tt.lon)
		} else {
			assert.ErrorIs(t, err, errInvalidCoordinates, "%s,%s", tt.lat, tt.lon)
		}
	}
}
