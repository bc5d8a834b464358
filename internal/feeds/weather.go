package feeds

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// Location is the caller's approximate position from IP geolocation.
type Location struct {
	Latitude  float64
	Longitude float64
	City      string
	Country   string
}

func (l Location) String() string {
	return l.City + ", " + l.Country
}

// Conditions is the current weather at a Location.
type Conditions struct {
	Location    Location
	Temperature float64 // °C
	Humidity    int     // %
	WindSpeed   float64 // km/h
	Code        int
}

func (w Conditions) Icon() string        { return describe(w.Code).icon }
func (w Conditions) Description() string { return describe(w.Code).desc }

func (w Conditions) TemperatureLabel() string {
	return fmt.Sprintf("%d°C", int(math.Round(w.Temperature)))
}

func (w Conditions) WindLabel() string {
	return fmt.Sprintf("%d km/h", int(math.Round(w.WindSpeed)))
}

type weatherCode struct {
	icon string
	desc string
}

// WMO weather interpretation codes.
var weatherCodes = map[int]weatherCode{
	0:  {"☀️", "Clear sky"},
	1:  {"🌤️", "Mainly clear"},
	2:  {"⛅", "Partly cloudy"},
	3:  {"☁️", "Overcast"},
	45: {"🌫️", "Foggy"},
	48: {"🌫️", "Depositing rime fog"},
	51: {"🌧️", "Light drizzle"},
	53: {"🌧️", "Moderate drizzle"},
	55: {"🌧️", "Dense drizzle"},
	61: {"🌧️", "Slight rain"},
	63: {"🌧️", "Moderate rain"},
	65: {"🌧️", "Heavy rain"},
	71: {"❄️", "Slight snow"},
	73: {"❄️", "Moderate snow"},
	75: {"❄️", "Heavy snow"},
	80: {"🌦️", "Rain showers"},
	95: {"⛈️", "Thunderstorm"},
}

func describe(code int) weatherCode {
	if wc, ok := weatherCodes[code]; ok {
		return wc
	}
	return weatherCode{"🌡️", "Unknown"}
}

type geoResponse struct {
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	City        string   `json:"city"`
	CountryName string   `json:"country_name"`
}

// Locate resolves the caller's position from their IP address.
func (c *Client) Locate(ctx context.Context) (Location, error) {
	var geo geoResponse
	if err := c.getJSON(ctx, "locate", c.geoURL, &geo); err != nil {
		return Location{}, err
	}
	if geo.Latitude == nil || geo.Longitude == nil {
		return Location{}, c.fail("locate", fmt.Errorf("%w: invalid geolocation data", ErrUnavailable))
	}
	loc := Location{
		Latitude:  *geo.Latitude,
		Longitude: *geo.Longitude,
		City:      geo.City,
		Country:   geo.CountryName,
	}
	if loc.City == "" {
		loc.City = "Unknown"
	}
	return loc, nil
}

type forecastResponse struct {
	Current *struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    int     `json:"relative_humidity_2m"`
		WeatherCode int     `json:"weather_code"`
		WindSpeed   float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

// Forecast fetches current conditions at loc.
func (c *Client) Forecast(ctx context.Context, loc Location) (Conditions, error) {
	u, err := url.Parse(c.weatherURL)
	if err != nil {
		return Conditions{}, c.fail("forecast", fmt.Errorf("%w: %w", ErrUnavailable, err))
	}
	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	q.Set("current", "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m")
	q.Set("timezone", "auto")
	u.RawQuery = q.Encode()

	var forecast forecastResponse
	if err := c.getJSON(ctx, "forecast", u.String(), &forecast); err != nil {
		return Conditions{}, err
	}
	if forecast.Current == nil {
		return Conditions{}, c.fail("forecast", fmt.Errorf("%w: invalid weather data", ErrUnavailable))
	}
	return Conditions{
		Location:    loc,
		Temperature: forecast.Current.Temperature,
		Humidity:    forecast.Current.Humidity,
		WindSpeed:   forecast.Current.WindSpeed,
		Code:        forecast.Current.WeatherCode,
	}, nil
}

// Weather locates the caller and fetches their current conditions.
func (c *Client) Weather(ctx context.Context) (Conditions, error) {
	loc, err := c.Locate(ctx)
	if err != nil {
		return Conditions{}, err
	}
	return c.Forecast(ctx, loc)
}
