package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"widget-weather/internal/models"
	"widget-weather/pkg/observe"
)

const (
	OpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5/forecast"
)

var ErrAPIKeyMissing = errors.New("API key cannot be empty")

type OpenWeatherRepository struct {
	APIKey     string
	BaseURL    string
	httpClient HTTPClient
	l          *observe.Logger
}

func NewOpenWeatherRepository(apiKey, baseURL string, httpClient HTTPClient, l *observe.Logger) *OpenWeatherRepository {
	if baseURL == "" {
		baseURL = OpenWeatherBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &OpenWeatherRepository{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		httpClient: httpClient,
		l:          l,
	}
}

func (w *OpenWeatherRepository) Name() string {
	return "openweathermap"
}

func (w *OpenWeatherRepository) Configured() bool {
	return strings.TrimSpace(w.APIKey) != ""
}

// OpenWeatherResponse is the subset of the 5 day / 3 hour forecast payload the service reads.
// Temperatures are Kelvin since no units parameter is sent.
type OpenWeatherResponse struct {
	List []OpenWeatherItem `json:"list"`
}

type OpenWeatherItem struct {
	Dt   *int64 `json:"dt"`
	Main *struct {
		TempMin float64 `json:"temp_min"`
		TempMax float64 `json:"temp_max"`
	} `json:"main"`
	Weather []*struct {
		Description *string `json:"description"`
	} `json:"weather"`
	Rain *volume `json:"rain,omitempty"`
	Snow *volume `json:"snow,omitempty"`
}

type volume struct {
	ThreeHours float64 `json:"3h"`
}

func (v *volume) mm() float64 {
	if v == nil {
		return 0
	}
	return v.ThreeHours
}

func (w *OpenWeatherRepository) FetchForecast(ctx context.Context, coords models.Coordinates) ([]models.ForecastSample, error) {
	if !w.Configured() {
		return nil, ErrAPIKeyMissing
	}

	w.l.Info("making openweathermap API request", map[string]any{
		"params": coords.RequestParams(),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.requestURL(coords), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	w.l.Info("received openweathermap API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, resp.Status)
	}

	var response OpenWeatherResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if response.List == nil {
		return nil, fmt.Errorf("response has no forecast list")
	}

	w.l.Info("parsed API response", map[string]any{
		"items": len(response.List),
	})

	samples, err := forecastSamples(response.List)
	if err != nil {
		return nil, fmt.Errorf("failed to read forecast samples: %w", err)
	}

	return samples, nil
}

func (w *OpenWeatherRepository) requestURL(coords models.Coordinates) string {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
	values.Set("appid", w.APIKey)

	return fmt.Sprintf("%s?%s", w.BaseURL, values.Encode())
}

func forecastSamples(items []OpenWeatherItem) ([]models.ForecastSample, error) {
	samples := make([]models.ForecastSample, 0, len(items))

	for i, item := range items {
		if item.Dt == nil {
			return nil, fmt.Errorf("item %d has no dt timestamp", i)
		}
		if item.Main == nil {
			return nil, fmt.Errorf("item %d (dt %d) has no main block", i, *item.Dt)
		}
		if len(item.Weather) == 0 || item.Weather[0] == nil || item.Weather[0].Description == nil {
			return nil, fmt.Errorf("item %d (dt %d) has no weather description", i, *item.Dt)
		}

		samples = append(samples, models.ForecastSample{
			TimestampUTC:  *item.Dt,
			TempMinKelvin: item.Main.TempMin,
			TempMaxKelvin: item.Main.TempMax,
			Description:   *item.Weather[0].Description,
			RainMM:        item.Rain.mm(),
			SnowMM:        item.Snow.mm(),
		})
	}

	return samples, nil
}
