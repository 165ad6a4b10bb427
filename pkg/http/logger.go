package http

import (
	"net/url"
	"strings"

	"weather-widget/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called immediately after receiving an error response (error HTTP status) or a transport failure
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string, string) {}
func (noopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {
}
func (noopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

// ZapLogger writes outbound calls to the application log, masking the listed query parameters.
type ZapLogger struct {
	client       string
	maskedParams []string
}

// NewZapLogger creates an HTTPLogger tagged with the client name
func NewZapLogger(client string, maskedParams ...string) *ZapLogger {
	return &ZapLogger{client: client, maskedParams: maskedParams}
}

func (l *ZapLogger) LogRequest(method, rawURL string, _ map[string]string, _ string) {
	log.Debug("Outbound request",
		zap.String("client", l.client),
		zap.String("method", method),
		zap.String("url", l.Mask(rawURL)))
}

func (l *ZapLogger) LogResponseSuccess(method, rawURL string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	log.Info("Outbound request finished",
		zap.String("client", l.client),
		zap.String("method", method),
		zap.String("url", l.Mask(rawURL)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l *ZapLogger) LogResponseError(method, rawURL string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Error("Outbound request failed",
		zap.String("client", l.client),
		zap.String("method", method),
		zap.String("url", l.Mask(rawURL)),
		zap.Int("status", httpStatus),
		zap.String("response", truncate(responseBody, 512)),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}

// Mask replaces the values of the masked query parameters with asterisks
func (l *ZapLogger) Mask(rawURL string) string {
	if len(l.maskedParams) == 0 {
		return rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	changed := false
	for _, name := range l.maskedParams {
		if query.Has(name) {
			query.Set(name, "***")
			changed = true
		}
	}
	if !changed {
		return rawURL
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
