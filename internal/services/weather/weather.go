package weather

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"widget-weather/internal/models"
	"widget-weather/internal/repositories"
	"widget-weather/pkg/observe"
)

// WeatherService resolves a city, fetches its forecast and summarizes it per day.
type WeatherService struct {
	cities   repositories.CityResolver
	provider repositories.ForecastRepository
	l        *observe.Logger
}

func NewWeatherService(cities repositories.CityResolver, provider repositories.ForecastRepository, l *observe.Logger) *WeatherService {
	return &WeatherService{
		cities:   cities,
		provider: provider,
		l:        l,
	}
}

// DailyForecast returns up to MaxDailySummaries daily summaries for a known city.
// Failures wrap one of ErrCityRequired, ErrNotConfigured, ErrCityNotFound or ErrProvider.
func (s *WeatherService) DailyForecast(ctx context.Context, city string) (models.CityForecast, error) {
	if city == "" {
		return models.CityForecast{}, ErrCityRequired
	}

	if !s.provider.Configured() {
		s.l.Warning("forecast provider has no API key", map[string]any{"provider": s.provider.Name()})
		return models.CityForecast{}, ErrNotConfigured
	}

	coords, ok := s.cities.Resolve(city)
	if !ok {
		s.l.Warning("unknown city requested", map[string]any{"city": city})
		return models.CityForecast{}, errors.Wrapf(ErrCityNotFound, "city %q", city)
	}

	s.l.Debug("fetching forecast", map[string]any{
		"city":     city,
		"provider": s.provider.Name(),
		"coords":   coords.RequestParams(),
	})

	samples, err := s.provider.FetchForecast(ctx, coords)
	if err != nil {
		s.l.Error(err, map[string]any{
			"city":     city,
			"provider": s.provider.Name(),
		})
		return models.CityForecast{}, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	daily := SummarizeDaily(samples)

	s.l.Info("forecast summarized", map[string]any{
		"city":    city,
		"samples": len(samples),
		"days":    len(daily),
	})

	return models.CityForecast{
		City:  city,
		Daily: daily,
	}, nil
}

// Cities lists the city names DailyForecast accepts.
func (s *WeatherService) Cities() []string {
	return s.cities.Names()
}
