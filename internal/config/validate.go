package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks semantic constraints that struct tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	endpoints := map[string]string{
		"endpoints.unsplash":    c.Endpoints.Unsplash,
		"endpoints.zenquotes":   c.Endpoints.ZenQuotes,
		"endpoints.openai":      c.Endpoints.OpenAI,
		"endpoints.openweather": c.Endpoints.OpenWeather,
		"endpoints.ipapi":       c.Endpoints.IPAPI,
	}
	for name, raw := range endpoints {
		if err := validateBaseURL(raw); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if c.HTTP.Timeout <= 0 {
		errs = append(errs, errors.New("http.timeout must be positive"))
	}
	if c.Translation.Model == "" {
		errs = append(errs, errors.New("translation.model is required"))
	}
	if c.Translation.MaxTokens <= 0 {
		errs = append(errs, errors.New("translation.max_tokens must be positive"))
	}
	if strings.TrimSpace(c.Translation.TargetLanguage) == "" {
		errs = append(errs, errors.New("translation.target_language is required"))
	}
	if c.Display.TypingInterval <= 0 {
		errs = append(errs, errors.New("display.typing_interval must be positive"))
	}
	if c.Display.WeatherRefresh < 0 {
		errs = append(errs, errors.New("display.weather_refresh must not be negative"))
	}
	switch c.Display.LaunchSource {
	case LaunchSourceRemote, LaunchSourceLocal:
	default:
		errs = append(errs, fmt.Errorf("display.launch_source must be %q or %q, got %q",
			LaunchSourceRemote, LaunchSourceLocal, c.Display.LaunchSource))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("host is required")
	}
	return nil
}
