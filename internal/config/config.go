package config

import (
	"time"

	"github.com/ytget/inspiration/internal/model"
)

// Config is the root application configuration. User credentials edited in
// the settings dialog live in Settings; this holds everything else.
type Config struct {
	Endpoints   EndpointsConfig   `yaml:"endpoints"`
	HTTP        HTTPConfig        `yaml:"http"`
	Translation TranslationConfig `yaml:"translation"`
	Display     DisplayConfig     `yaml:"display"`
	Log         LogConfig         `yaml:"log"`
	Keys        KeysConfig        `yaml:"keys"`
}

// EndpointsConfig holds base URLs of the remote services.
type EndpointsConfig struct {
	Unsplash    string `yaml:"unsplash"    env:"INSPIRATION_UNSPLASH_URL"    env-default:"https://api.unsplash.com"`
	ZenQuotes   string `yaml:"zenquotes"   env:"INSPIRATION_ZENQUOTES_URL"   env-default:"https://zenquotes.io"`
	OpenAI      string `yaml:"openai"      env:"INSPIRATION_OPENAI_URL"      env-default:"https://api.openai.com/v1"`
	OpenWeather string `yaml:"openweather" env:"INSPIRATION_OPENWEATHER_URL" env-default:"https://api.openweathermap.org"`
	IPAPI       string `yaml:"ipapi"       env:"INSPIRATION_IPAPI_URL"       env-default:"http://ip-api.com"`
}

// HTTPConfig holds outbound HTTP settings.
type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"INSPIRATION_HTTP_TIMEOUT" env-default:"15s"`
}

// TranslationConfig holds chat-completion parameters.
type TranslationConfig struct {
	Model          string `yaml:"model"           env:"INSPIRATION_TRANSLATION_MODEL"      env-default:"gpt-4o-mini"`
	MaxTokens      int    `yaml:"max_tokens"      env:"INSPIRATION_TRANSLATION_MAX_TOKENS" env-default:"60"`
	TargetLanguage string `yaml:"target_language" env:"INSPIRATION_TRANSLATION_LANGUAGE"   env-default:"Korean"`
}

// DisplayConfig holds presentation timings and window behaviour.
type DisplayConfig struct {
	TypingInterval time.Duration `yaml:"typing_interval" env:"INSPIRATION_TYPING_INTERVAL" env-default:"70ms"`
	WeatherRefresh time.Duration `yaml:"weather_refresh" env:"INSPIRATION_WEATHER_REFRESH" env-default:"30m"`
	LaunchSource   string        `yaml:"launch_source"   env:"INSPIRATION_LAUNCH_SOURCE"   env-default:"remote"`
	FullScreen     bool          `yaml:"fullscreen"      env:"INSPIRATION_FULLSCREEN"      env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"INSPIRATION_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"INSPIRATION_LOG_FORMAT" env-default:"text"`
}

// KeysConfig holds credentials supplied through the environment, used by the
// headless commands that have no settings dialog.
type KeysConfig struct {
	Unsplash    string `yaml:"unsplash"    env:"INSPIRATION_UNSPLASH_KEY"`
	OpenWeather string `yaml:"openweather" env:"INSPIRATION_OPENWEATHER_KEY"`
	OpenAI      string `yaml:"openai"      env:"INSPIRATION_OPENAI_KEY"`
}

// Launch sources
const (
	LaunchSourceRemote = "remote"
	LaunchSourceLocal  = "local"
)

// Credential implements Credentials
func (k KeysConfig) Credential(kind model.CredentialKind) model.Credential {
	var value string
	switch kind {
	case model.CredentialPhotoService:
		value = k.Unsplash
	case model.CredentialWeatherService:
		value = k.OpenWeather
	case model.CredentialTranslationService:
		value = k.OpenAI
	}
	return model.Credential{Kind: kind, Value: value}
}
