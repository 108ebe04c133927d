package repositories

import (
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"widget-weather/pkg/observe"
)

const (
	defaultBackoff = 500 * time.Millisecond
	maxBackoff     = time.Duration(math.MaxInt64)
)

var (
	ErrCircuitOpen = errors.New("circuit breaker open")

	errRetryableStatus = errors.New("retryable status code")
)

// ResilienceConfig controls exponential backoff and the optional circuit breaker.
type ResilienceConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	BreakerEnabled  bool
}

// ResilientClient is an HTTPClient that retries transport errors, 429 and 5xx responses with
// exponential backoff, optionally behind a circuit breaker. Other responses pass through unchanged.
type ResilientClient struct {
	next    HTTPClient
	cfg     ResilienceConfig
	circuit *gobreaker.CircuitBreaker
	l       *observe.Logger
}

func NewResilientClient(next HTTPClient, cfg ResilienceConfig, l *observe.Logger) *ResilientClient {
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = defaultBackoff
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	r := &ResilientClient{
		next: next,
		cfg:  cfg,
		l:    l,
	}

	if cfg.BreakerEnabled {
		r.circuit = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "openweathermap",
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
			OnStateChange: func(name string, from, to gobreaker.State) {
				l.Warning("circuit breaker state changed", map[string]any{
					"breaker": name,
					"from":    from.String(),
					"to":      to.String(),
				})
			},
		})
	}

	return r
}

// Do requires a request without a body (or a replayable one): it is cloned per attempt.
func (r *ResilientClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	for attempt := 0; ; attempt++ {
		resp, err := r.send(req.Clone(ctx))
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}

		if !shouldRetry(resp, err) || attempt >= r.cfg.MaxRetries || ctx.Err() != nil {
			return resp, err
		}

		delay := r.backoff(attempt)
		r.l.Warning("retrying provider request", map[string]any{
			"attempt": attempt + 1,
			"delay":   delay.String(),
			"err":     errString(err),
			"status":  statusCode(resp),
		})
		discard(resp)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (r *ResilientClient) send(req *http.Request) (*http.Response, error) {
	if r.circuit == nil {
		return r.next.Do(req)
	}

	result, err := r.circuit.Execute(func() (interface{}, error) {
		resp, err := r.next.Do(req)
		if err != nil {
			return nil, err
		}
		if retryableStatus(resp.StatusCode) {
			return resp, fmt.Errorf("%w: %d", errRetryableStatus, resp.StatusCode)
		}
		return resp, nil
	})

	resp, _ := result.(*http.Response)
	if errors.Is(err, errRetryableStatus) {
		return resp, nil
	}

	return resp, err
}

func (r *ResilientClient) backoff(attempt int) time.Duration {
	delay := maxBackoff
	if attempt < 63 && r.cfg.InitialInterval <= maxBackoff>>attempt {
		delay = r.cfg.InitialInterval << attempt
	}
	if r.cfg.MaxInterval > 0 && delay > r.cfg.MaxInterval {
		delay = r.cfg.MaxInterval
	}
	return delay
}

func shouldRetry(resp *http.Response, err error) bool {
	if err != nil {
		return true
	}
	return resp != nil && retryableStatus(resp.StatusCode)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func discard(resp *http.Response) {
	if resp == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func statusCode(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
