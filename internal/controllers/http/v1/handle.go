package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"widget-weather/internal/services/weather"
)

var validate = validator.New()

const (
	msgMethodNotAllowed = "Method not allowed"
	msgCityRequired     = "City parameter is required"
	msgNotConfigured    = "Weather service not configured"
	msgCityNotFound     = "Coordinates not found for city: "
	msgProviderFailure  = "Failed to fetch weather data"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"City parameter is required"`
}

// CitiesResponse lists the cities the weather endpoint accepts
type CitiesResponse struct {
	Cities []string `json:"cities" example:"Hanoi,San Francisco"`
}

type weatherQuery struct {
	City string `query:"city" validate:"required"`
}

// GetWeatherForecast godoc
// @Summary Get daily weather forecast
// @Description Returns up to 10 daily summaries (UTC dates) for one of the supported cities
// @Tags Weather
// @Produce json
// @Param city query string true "City display name, matched exactly" example(Hanoi)
// @Success 200 {object} models.CityForecast "Successful response"
// @Failure 400 {object} ErrorResponse "Missing or unknown city"
// @Failure 405 {object} ErrorResponse "Method not allowed"
// @Failure 500 {object} ErrorResponse "Service not configured or provider failure"
// @Router /api/weather [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/api/weather?city=Hanoi"
func (r *routes) handleWeatherCall(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodGet {
		return c.Status(fiber.StatusMethodNotAllowed).JSON(ErrorResponse{
			Error: msgMethodNotAllowed,
		})
	}

	var q weatherQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: msgCityRequired,
		})
	}

	if err := validate.Struct(q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: msgCityRequired,
		})
	}

	forecast, err := r.service.DailyForecast(c.UserContext(), q.City)
	if err != nil {
		status, body := errorResponse(err, q.City)
		r.l.Debug("weather request failed", map[string]any{
			"city":   q.City,
			"status": status,
			"err":    err.Error(),
		})
		return c.Status(status).JSON(body)
	}

	return c.JSON(forecast)
}

// GetCities godoc
// @Summary List supported cities
// @Tags Weather
// @Produce json
// @Success 200 {object} CitiesResponse
// @Router /api/cities [get]
func (r *routes) handleCitiesCall(c *fiber.Ctx) error {
	return c.JSON(CitiesResponse{Cities: r.service.Cities()})
}

func errorResponse(err error, city string) (int, ErrorResponse) {
	switch {
	case errors.Is(err, weather.ErrCityRequired):
		return fiber.StatusBadRequest, ErrorResponse{Error: msgCityRequired}
	case errors.Is(err, weather.ErrNotConfigured):
		return fiber.StatusInternalServerError, ErrorResponse{Error: msgNotConfigured}
	case errors.Is(err, weather.ErrCityNotFound):
		return fiber.StatusBadRequest, ErrorResponse{Error: msgCityNotFound + city}
	default:
		return fiber.StatusInternalServerError, ErrorResponse{Error: msgProviderFailure}
	}
}
