package model

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WeatherPlaceholder is shown until the first successful weather fetch
const WeatherPlaceholder = "Loading weather..."

// WeatherSummary is the one-line weather shown in the corner
type WeatherSummary struct {
	City               string
	Description        string
	TemperatureCelsius int
}

// NewWeatherSummary formats raw service values for display: the description
// is capitalized per word and the temperature is truncated toward zero.
func NewWeatherSummary(city, description string, tempCelsius float64) WeatherSummary {
	return WeatherSummary{
		City:               city,
		Description:        cases.Title(language.Und).String(strings.TrimSpace(description)),
		TemperatureCelsius: int(math.Trunc(tempCelsius)),
	}
}

// String returns e.g. "Seoul: Light Rain, 12°C"
func (w WeatherSummary) String() string {
	return fmt.Sprintf("%s: %s, %d°C", w.City, w.Description, w.TemperatureCelsius)
}

// Coordinates is a resolved user location
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// String returns e.g. "Lat: 37.56, Lon: 126.97"
func (c Coordinates) String() string {
	return fmt.Sprintf("Lat: %g, Lon: %g", c.Latitude, c.Longitude)
}
