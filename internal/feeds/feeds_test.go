package feeds

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/faizmokh/productify/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.FeedsConfig{
		Timeout:    time.Second,
		GeoURL:     srv.URL + "/geo",
		WeatherURL: srv.URL + "/forecast",
		QuoteURL:   srv.URL + "/quote",
	}, nil)
}

func TestWeather(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/geo":
			w.Write([]byte(`{"latitude":3.139,"longitude":101.6869,"city":"Kuala Lumpur","country_name":"Malaysia"}`))
		case "/forecast":
			if got := r.URL.Query().Get("latitude"); got != "3.139" {
				t.Errorf("latitude = %q, want 3.139", got)
			}
			if got := r.URL.Query().Get("timezone"); got != "auto" {
				t.Errorf("timezone = %q, want auto", got)
			}
			w.Write([]byte(`{"current":{"temperature_2m":31.6,"relative_humidity_2m":70,"weather_code":95,"wind_speed_10m":7.4}}`))
		default:
			http.NotFound(w, r)
		}
	})

	got, err := client.Weather(context.Background())
	if err != nil {
		t.Fatalf("Weather: %v", err)
	}
	if got.Location.String() != "Kuala Lumpur, Malaysia" {
		t.Fatalf("Location = %q", got.Location)
	}
	if got.TemperatureLabel() != "32°C" || got.WindLabel() != "7 km/h" || got.Humidity != 70 {
		t.Fatalf("Conditions = %#v", got)
	}
	if got.Description() != "Thunderstorm" || got.Icon() != "⛈️" {
		t.Fatalf("description = %q %q", got.Icon(), got.Description())
	}
}

func TestUnknownWeatherCode(t *testing.T) {
	w := Conditions{Code: 99}
	if w.Description() != "Unknown" || w.Icon() != "🌡️" {
		t.Fatalf("code 99 = %q %q", w.Icon(), w.Description())
	}
}

func TestLocateRejectsMissingCoordinates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"city":"Nowhere"}`))
	})

	_, err := client.Locate(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Locate err = %v, want ErrUnavailable", err)
	}
}

func TestServerErrorIsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := client.RandomQuote(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("RandomQuote err = %v, want ErrUnavailable", err)
	}
	desc, detail := Unavailable(err)
	if desc != "Unable to load" || detail != "Service unavailable" {
		t.Fatalf("Unavailable = %q, %q", desc, detail)
	}
}

func TestSlowServerTimesOut(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)
	client.timeout = 50 * time.Millisecond

	_, err := client.RandomQuote(context.Background())
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("RandomQuote err = %v, want ErrTimeout", err)
	}
	if desc, detail := Unavailable(err); desc != "Request timeout" || detail != "Try again later" {
		t.Fatalf("Unavailable = %q, %q", desc, detail)
	}
}

func TestUnreachableHostIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	client := NewClient(config.FeedsConfig{Timeout: time.Second, QuoteURL: addr + "/quote"}, nil)
	_, err := client.RandomQuote(context.Background())
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("RandomQuote err = %v, want ErrNetwork", err)
	}
	if desc, _ := Unavailable(err); desc != "Network error" {
		t.Fatalf("Unavailable desc = %q", desc)
	}
}

func TestRandomQuote(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":"Simplicity is the soul of efficiency.","author":"Austin Freeman","tags":["wisdom"]}`))
	})

	q, err := client.RandomQuote(context.Background())
	if err != nil {
		t.Fatalf("RandomQuote: %v", err)
	}
	if q.Author != "Austin Freeman" {
		t.Fatalf("Author = %q", q.Author)
	}
}

func TestRandomQuoteRejectsEmptyFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":"","author":"Anonymous"}`))
	})

	if _, err := client.RandomQuote(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("RandomQuote err = %v, want ErrUnavailable", err)
	}
}

func TestFallbackQuote(t *testing.T) {
	if got := FallbackQuote(7); got.Author != "Linus Torvalds" {
		t.Fatalf("FallbackQuote(7) = %#v", got)
	}
	if got := FallbackQuote(-6); got.Author != "Alan Kay" {
		t.Fatalf("FallbackQuote(-6) = %#v", got)
	}
}
