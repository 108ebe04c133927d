package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"

	"go.uber.org/zap/zapcore"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryFlushTimeout         time.Duration = 5 * time.Second
	_sentryServerRequestTimeout time.Duration = 5 * time.Second
)

// SentryHook is an io.Writer fed with the logger's JSON lines; error and fatal lines become Sentry events.
type SentryHook struct {
	appEnv  string
	appName string
	hub     *sentry.Hub
}

type logLine struct {
	Level      string `json:"level"`
	AppName    string `json:"app_name"`
	AppEnv     string `json:"app_env"`
	CallerFile string `json:"caller_file"`
	CallerLine int    `json:"caller_line"`
	CallerFunc string `json:"caller_func"`
	Stack      string `json:"stack"`
	Message    string `json:"msg"`
	Error      string `json:"error"`
	Timestamp  string `json:"timestamp"`
}

func NewSentryHook(
	appEnv, appName string,
	maxErrorDepth int,
	isDebug bool,
	dsn string,
) *SentryHook {
	if dsn == "" {
		log.Println("Stacktracer init error: no DSN")
	}
	if maxErrorDepth == 0 {
		maxErrorDepth = _sentryMaxErrorDepth
	}
	opts := sentry.ClientOptions{
		AttachStacktrace: true,
		Debug:            isDebug,
		Dsn:              dsn,
		Environment:      appEnv,
		MaxErrorDepth:    maxErrorDepth,
		ServerName:       appName,
	}
	if dsn != "" {
		sentryTransport := sentry.NewHTTPTransport()
		sentryTransport.Timeout = _sentryServerRequestTimeout
		opts.Transport = sentryTransport
	}

	client, err := sentry.NewClient(opts)
	if err != nil {
		log.Println("Stacktracer init error: ", err.Error())
	}

	return &SentryHook{
		appEnv:  appEnv,
		appName: appName,
		hub:     sentry.NewHub(client, sentry.NewScope()),
	}
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.DebugLevel, zapcore.InvalidLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.FatalLevel, zapcore.PanicLevel:
		return sentry.LevelFatal
	}

	return sentry.LevelDebug
}

// Write never fails: a line that cannot be forwarded is reported and dropped.
func (h *SentryHook) Write(p []byte) (n int, err error) {
	var line logLine
	if err := json.Unmarshal(p, &line); err != nil {
		h.report(errors.Wrap(err, "[SentryHook] json.Unmarshal data"))
		return len(p), nil
	}

	level, err := zapcore.ParseLevel(line.Level)
	if err != nil {
		h.report(errors.Wrap(err, "[SentryHook] parse zap level"))
		return len(p), nil
	}

	if event := h.buildEvent(level, line); event != nil && h.hub.Client() != nil {
		h.hub.CaptureEvent(event)
	}

	return len(p), nil
}

func (h *SentryHook) buildEvent(level zapcore.Level, line logLine) *sentry.Event {
	if line.Message == "" || level < zapcore.ErrorLevel {
		return nil
	}

	timestamp, _ := time.ParseInLocation(timeLayout, line.Timestamp, time.UTC)

	event := sentry.NewEvent()
	event.Extra["AppName"] = h.appName
	event.Environment = h.appEnv
	event.Level = h.mapLevel(level)
	event.Timestamp = timestamp
	event.Message = line.Message
	event.Extra["Error"] = line.Error
	event.Extra["CallerFile"] = line.CallerFile
	event.Extra["CallerLine"] = line.CallerLine
	event.Extra["CallerFunc"] = line.CallerFunc
	event.Extra["Stack"] = line.Stack
	event.Extra["TimeStamp"] = line.Timestamp
	event.Exception = append(event.Exception, sentry.Exception{
		Type:       line.Message,
		Value:      line.Error,
		Stacktrace: sentry.NewStacktrace(),
	})

	return event
}

// report writes to the standard logger; the hook sits under the zap core and cannot log through it.
func (h *SentryHook) report(err error) {
	log.Println(err.Error())
}

// Flush waits for buffered events to be delivered.
func (h *SentryHook) Flush() bool {
	return h.hub.Flush(_sentryFlushTimeout)
}
