package repositories

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"widget-weather/config"
	"widget-weather/pkg/observe"
)

func TestInitForecastRepository(t *testing.T) {
	logger := observe.NewZapLogger("test-app", io.Discard)

	t.Run("plain client by default", func(t *testing.T) {
		cfg := config.Defaults()
		cfg.OpenWeather.APIKey = "key"

		repo := InitForecastRepository(&cfg, logger)

		ow, ok := repo.(*OpenWeatherRepository)
		require.True(t, ok)
		assert.True(t, ow.Configured())
		assert.Equal(t, config.DefaultOpenWeatherURL, ow.BaseURL)

		client, ok := ow.httpClient.(*http.Client)
		require.True(t, ok)
		assert.Equal(t, 10*time.Second, client.Timeout)
	})

	t.Run("resilient client when retries are enabled", func(t *testing.T) {
		cfg := config.Defaults()
		cfg.Provider.Retries = 2

		repo := InitForecastRepository(&cfg, logger)

		ow, ok := repo.(*OpenWeatherRepository)
		require.True(t, ok)
		assert.False(t, ow.Configured())

		client, ok := ow.httpClient.(*ResilientClient)
		require.True(t, ok)
		assert.Equal(t, 2, client.cfg.MaxRetries)
		assert.Nil(t, client.circuit)
	})

	t.Run("breaker alone enables the resilient client", func(t *testing.T) {
		cfg := config.Defaults()
		cfg.Provider.BreakerEnabled = true

		repo := InitForecastRepository(&cfg, logger)

		client, ok := repo.(*OpenWeatherRepository).httpClient.(*ResilientClient)
		require.True(t, ok)
		assert.NotNil(t, client.circuit)
	})
}
