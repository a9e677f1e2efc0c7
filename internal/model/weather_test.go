package model

import "testing"

func TestNewWeatherSummary(t *testing.T) {
	tests := []struct {
		city        string
		description string
		temp        float64
		expected    string
	}{
		{"Seoul", "light rain", 12.9, "Seoul: Light Rain, 12°C"},
		{"Oslo", "clear sky", -3.7, "Oslo: Clear Sky, -3°C"},
		{"Cairo", "SCATTERED CLOUDS", 30.0, "Cairo: Scattered Clouds, 30°C"},
		{"Quito", "mist", 0.4, "Quito: Mist, 0°C"},
	}

	for _, test := range tests {
		summary := NewWeatherSummary(test.city, test.description, test.temp)
		if summary.String() != test.expected {
			t.Errorf("NewWeatherSummary(%q, %q, %v) = %q, expected %q",
				test.city, test.description, test.temp, summary.String(), test.expected)
		}
	}
}

func TestNewWeatherSummary_Idempotent(t *testing.T) {
	first := NewWeatherSummary("Paris", "few clouds", 18.2)
	second := NewWeatherSummary("Paris", "few clouds", 18.2)

	if first != second {
		t.Errorf("Expected identical summaries, got %+v and %+v", first, second)
	}
}

func TestQuote_Display(t *testing.T) {
	q := Quote{Text: "Stay hungry", Author: "Anon"}
	if q.Display() != "Stay hungry - Anon" {
		t.Errorf("Quote.Display() = %q, expected %q", q.Display(), "Stay hungry - Anon")
	}
}

func TestCoordinates_String(t *testing.T) {
	c := Coordinates{Latitude: 37.5, Longitude: 127}
	if c.String() != "Lat: 37.5, Lon: 127" {
		t.Errorf("Coordinates.String() = %q", c.String())
	}
}

func TestCredential_IsConfigured(t *testing.T) {
	if (Credential{Kind: CredentialPhotoService}).IsConfigured() {
		t.Error("Empty credential should not be configured")
	}
	if !(Credential{Kind: CredentialPhotoService, Value: "k"}).IsConfigured() {
		t.Error("Non-empty credential should be configured")
	}
}
