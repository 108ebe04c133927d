package weather

import "github.com/pkg/errors"

// Request failures, each mapped to one HTTP status by the controller.
var (
	ErrCityRequired  = errors.New("city parameter is required")
	ErrCityNotFound  = errors.New("coordinates not found for city")
	ErrNotConfigured = errors.New("weather service not configured")
	ErrProvider      = errors.New("failed to fetch weather data")
)
