package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
	systemLocale    func() string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFile               = "file"
	KeyRefresh            = "refresh"
	KeySettings           = "settings"
	KeyLanguage           = "language"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyAPIKeys            = "api_keys"
	KeyPhotoServiceKey    = "photo_service_key"
	KeyWeatherServiceKey  = "weather_service_key"
	KeyTranslationKey     = "translation_service_key"
	KeyLocation           = "location"
	KeyUseManualLocation  = "use_manual_location"
	KeyLatitude           = "latitude"
	KeyLongitude          = "longitude"
	KeySettingsSaved      = "settings_saved"
	KeyInvalidCoordinates = "invalid_coordinates"
	KeyWeatherLoading     = "weather_loading"
	KeyTranslationFormat  = "translation_format"
	KeyAttributionFormat  = "attribution_format"
	KeyTapHint            = "tap_hint"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
		systemLocale:    func() string { return lang.SystemLocale().LanguageString() },
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" follows the OS locale
// when it is one of the available languages.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = strings.ToLower(l.systemLocale())
		if i := strings.IndexAny(code, "-_"); i > 0 {
			code = code[:i]
		}
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	} else {
		l.currentLanguage = "en"
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// Format applies args to the localized format string for key
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ko": "한국어",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Inspiration",
		KeyFile:               "File",
		KeyRefresh:            "New Inspiration",
		KeySettings:           "Settings",
		KeyLanguage:           "Language",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyAPIKeys:            "API Keys",
		KeyPhotoServiceKey:    "Unsplash Access Key",
		KeyWeatherServiceKey:  "OpenWeatherMap API Key",
		KeyTranslationKey:     "OpenAI API Key",
		KeyLocation:           "Location",
		KeyUseManualLocation:  "Use manual location",
		KeyLatitude:           "Latitude",
		KeyLongitude:          "Longitude",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyInvalidCoordinates: "Latitude must be between -90 and 90 and longitude between -180 and 180",
		KeyWeatherLoading:     "Loading weather...",
		KeyTranslationFormat:  "Translation: %s",
		KeyAttributionFormat:  "by %s",
		KeyTapHint:            "Tap anywhere for a new quote",
	}

	l.texts["ko"] = map[string]string{
		KeyAppTitle:           "영감",
		KeyFile:               "파일",
		KeyRefresh:            "새로운 영감",
		KeySettings:           "설정",
		KeyLanguage:           "언어",
		KeySave:               "저장",
		KeyCancel:             "취소",
		KeyAPIKeys:            "API 키",
		KeyPhotoServiceKey:    "Unsplash 액세스 키",
		KeyWeatherServiceKey:  "OpenWeatherMap API 키",
		KeyTranslationKey:     "OpenAI API 키",
		KeyLocation:           "위치",
		KeyUseManualLocation:  "수동 위치 사용",
		KeyLatitude:           "위도",
		KeyLongitude:          "경도",
		KeySettingsSaved:      "설정이 저장되었습니다!",
		KeyInvalidCoordinates: "위도는 -90에서 90, 경도는 -180에서 180 사이여야 합니다",
		KeyWeatherLoading:     "날씨 불러오는 중...",
		KeyTranslationFormat:  "번역: %s",
		KeyAttributionFormat:  "by %s",
		KeyTapHint:            "화면을 탭하면 새 명언이 나옵니다",
	}
}
