package repositories

import (
	"context"
	"net/http"

	"widget-weather/config"
	"widget-weather/internal/models"
	"widget-weather/pkg/observe"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ForecastRepository fetches raw 3-hour forecast samples for a location.
type ForecastRepository interface {
	Name() string
	Configured() bool
	FetchForecast(ctx context.Context, coords models.Coordinates) ([]models.ForecastSample, error)
}

// CityResolver maps display city names to coordinates.
type CityResolver interface {
	Resolve(city string) (models.Coordinates, bool)
	Names() []string
}

func InitForecastRepository(cfg *config.Config, l *observe.Logger) ForecastRepository {
	var client HTTPClient = &http.Client{Timeout: cfg.Provider.Timeout}

	if cfg.ResilienceEnabled() {
		client = NewResilientClient(client, ResilienceConfig{
			MaxRetries:      cfg.Provider.Retries,
			InitialInterval: cfg.Provider.Backoff,
			MaxInterval:     cfg.Provider.MaxBackoff,
			BreakerEnabled:  cfg.Provider.BreakerEnabled,
		}, l)
	}

	return NewOpenWeatherRepository(cfg.OpenWeather.APIKey, cfg.OpenWeather.BaseURL, client, l)
}
