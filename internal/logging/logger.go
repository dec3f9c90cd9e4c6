package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/0xReLogic/greeter/internal/config"
)

type contextKey string

const (
	requestIDKey contextKey = "greeter_request_id"

	defaultRequestHeader = "X-Request-ID"
)

type logFormat int

const (
	formatText logFormat = iota
	formatJSON
)

var (
	baseLogger   zerolog.Logger
	baseLoggerMu sync.RWMutex
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldUnit = time.Millisecond
	setBaseLogger(newLogger(os.Stdout, zerolog.InfoLevel, formatText, false))
}

// Init configures the global logger to write to stdout.
func Init(cfg config.LoggingConfig) {
	InitWriter(os.Stdout, cfg)
}

// InitWriter configures the global logger to write to w.
func InitWriter(w io.Writer, cfg config.LoggingConfig) {
	setBaseLogger(newLogger(w, parseLevel(cfg.Level), parseFormat(cfg.Format), cfg.IncludeCaller))
}

func parseLevel(value string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

func parseFormat(value string) logFormat {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "json":
		return formatJSON
	default:
		return formatText
	}
}

func newLogger(writer io.Writer, level zerolog.Level, format logFormat, includeCaller bool) zerolog.Logger {
	output := writer
	if format == formatText {
		output = zerolog.ConsoleWriter{
			Out:        writer,
			TimeFormat: time.RFC3339Nano,
			NoColor:    true,
		}
	}

	builder := zerolog.New(output).Level(level).With().Timestamp()
	if includeCaller {
		builder = builder.CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount)
	}
	return builder.Logger()
}

func setBaseLogger(logger zerolog.Logger) {
	baseLoggerMu.Lock()
	baseLogger = logger
	baseLoggerMu.Unlock()
}

// L returns a copy of the base logger.
func L() *zerolog.Logger {
	baseLoggerMu.RLock()
	logger := baseLogger
	baseLoggerMu.RUnlock()
	return &logger
}

// WithContext returns the request logger stored in ctx, or the base logger
// tagged with the request id when only the id is present.
func WithContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return L()
	}

	if logger := zerolog.Ctx(ctx); logger.GetLevel() != zerolog.Disabled {
		return logger
	}

	if reqID := RequestIDFromContext(ctx); reqID != "" {
		logger := L().With().Str("request_id", reqID).Logger()
		return &logger
	}
	return L()
}

// RequestIDFromContext extracts the request identifier from context if present.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	reqID, _ := ctx.Value(requestIDKey).(string)
	return reqID
}

// RequestHeaderName returns the configured request header name, falling back to default.
func RequestHeaderName(cfg config.LoggingConfig) string {
	if header := strings.TrimSpace(cfg.RequestID.Header); header != "" {
		return header
	}
	return defaultRequestHeader
}

func contextWithRequest(ctx context.Context, logger zerolog.Logger, reqID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(logger.WithContext(ctx), requestIDKey, reqID)
}
