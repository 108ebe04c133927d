package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"widget-weather/internal/services/weather"
	"widget-weather/pkg/observe"
)

type routes struct {
	service *weather.WeatherService
	l       *observe.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.WeatherService,
	l *observe.Logger,
) {
	r := &routes{
		service: weatherService,
		l:       l,
	}

	// Swagger documentation, served from the registered docs package
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	api := app.Group("/api")
	api.Get("/cities", r.handleCitiesCall)
	// All methods: the handler answers non-GET with a JSON 405.
	api.All("/weather", r.handleWeatherCall)

	l.Debug("routes registered", map[string]any{"routes": len(app.GetRoutes())})
}
