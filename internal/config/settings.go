package config

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/inspiration/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyUnsplashAPIKey        = "UnsplashAPIKey"
	KeyOpenWeatherMapAPIKey  = "OpenWeatherMapAPIKey"
	KeyOpenAIAPIKey          = "OpenAIAPIKey"
	KeyManualLocationEnabled = "ManualLocationEnabled"
	KeyManualLatitude        = "ManualLatitude"
	KeyManualLongitude       = "ManualLongitude"
	KeyLanguage              = "AppLanguage"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Credentials provides API keys. Implementations are read at each use so an
// edit in the settings surface applies to the next request.
type Credentials interface {
	Credential(kind model.CredentialKind) model.Credential
}

// Settings manages user-edited configuration persisted in Fyne preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// Credential implements Credentials
func (s *Settings) Credential(kind model.CredentialKind) model.Credential {
	var value string
	switch kind {
	case model.CredentialPhotoService:
		value = s.GetPhotoServiceKey()
	case model.CredentialWeatherService:
		value = s.GetWeatherServiceKey()
	case model.CredentialTranslationService:
		value = s.GetTranslationServiceKey()
	}
	return model.Credential{Kind: kind, Value: value}
}

// GetPhotoServiceKey returns the Unsplash access key
func (s *Settings) GetPhotoServiceKey() string {
	return s.app.Preferences().String(KeyUnsplashAPIKey)
}

// SetPhotoServiceKey sets the Unsplash access key
func (s *Settings) SetPhotoServiceKey(key string) {
	s.app.Preferences().SetString(KeyUnsplashAPIKey, strings.TrimSpace(key))
}

// GetWeatherServiceKey returns the OpenWeatherMap key
func (s *Settings) GetWeatherServiceKey() string {
	return s.app.Preferences().String(KeyOpenWeatherMapAPIKey)
}

// SetWeatherServiceKey sets the OpenWeatherMap key
func (s *Settings) SetWeatherServiceKey(key string) {
	s.app.Preferences().SetString(KeyOpenWeatherMapAPIKey, strings.TrimSpace(key))
}

// GetTranslationServiceKey returns the OpenAI key
func (s *Settings) GetTranslationServiceKey() string {
	return s.app.Preferences().String(KeyOpenAIAPIKey)
}

// SetTranslationServiceKey sets the OpenAI key
func (s *Settings) SetTranslationServiceKey(key string) {
	s.app.Preferences().SetString(KeyOpenAIAPIKey, strings.TrimSpace(key))
}

// GetManualLocation returns the manually entered coordinates, if enabled
func (s *Settings) GetManualLocation() (model.Coordinates, bool) {
	prefs := s.app.Preferences()
	if !prefs.Bool(KeyManualLocationEnabled) {
		return model.Coordinates{}, false
	}
	return model.Coordinates{
		Latitude:  prefs.Float(KeyManualLatitude),
		Longitude: prefs.Float(KeyManualLongitude),
	}, true
}

// SetManualLocation stores coordinates and enables manual location
func (s *Settings) SetManualLocation(c model.Coordinates) {
	prefs := s.app.Preferences()
	prefs.SetFloat(KeyManualLatitude, c.Latitude)
	prefs.SetFloat(KeyManualLongitude, c.Longitude)
	prefs.SetBool(KeyManualLocationEnabled, true)
}

// ClearManualLocation disables manual location
func (s *Settings) ClearManualLocation() {
	s.app.Preferences().SetBool(KeyManualLocationEnabled, false)
}

// GetLanguage returns the configured UI language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the UI language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ko":     "한국어",
	}
}
