package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"widget-weather/config"
	_ "widget-weather/docs"
	v1 "widget-weather/internal/controllers/http/v1"
	"widget-weather/internal/repositories"
	"widget-weather/internal/services/weather"
	"widget-weather/pkg/httpserver"
	"widget-weather/pkg/observe"
)

// @title Widget Weather API
// @version 1.0.0
// @description Daily weather summaries for the travel site widgets, aggregated from OpenWeatherMap 3-hour forecasts.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Daily forecast operations for the travel widgets
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	writers := []io.Writer{os.Stdout}

	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		hook = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.IsDevelopment(), cnf.Sentry.DSN)
		writers = append(writers, hook)
	}

	l := observe.New(cnf.App.Name, observe.Options{
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
		Writers: writers,
	})

	app := httpserver.InitFiberServer(cnf.App.Name, l)

	provider := repositories.InitForecastRepository(cnf, l)
	if !provider.Configured() {
		l.Warning("OPENWEATHER_API_KEY is not set, weather requests will fail", map[string]any{
			"provider": provider.Name(),
		})
	}

	service := weather.NewWeatherService(repositories.NewCityRepository(), provider, l)

	v1.NewRouter(
		app,
		service,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":    cnf.Server.Port,
		"version": cnf.App.Version,
		"env":     cnf.App.Env,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cnf.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			l.Error(err, map[string]any{"stage": "shutdown"})
		}
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
