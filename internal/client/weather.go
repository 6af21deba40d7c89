package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WeatherClient fetches today's weather from the external weather feed. The
// feed returns a year's worth of {date, weather} entries keyed by MM-DD.
type WeatherClient struct {
	URL  string
	HTTP *http.Client
}

func NewWeatherClient(url string) *WeatherClient {
	return &WeatherClient{
		URL:  url,
		HTTP: &http.Client{Timeout: 5 * time.Second},
	}
}

type weatherEntry struct {
	Date    string `json:"date"`
	Weather string `json:"weather"`
}

// TodayWeather returns the weather string for today's MM-DD entry.
func (c *WeatherClient) TodayWeather(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("weather feed returned status %d", resp.StatusCode)
	}

	var entries []weatherEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return "", fmt.Errorf("weather payload decode failed: %w", err)
	}

	today := time.Now().Format("01-02")
	for _, e := range entries {
		if e.Date == today {
			return e.Weather, nil
		}
	}
	return "", fmt.Errorf("no weather entry for today (%s)", today)
}
