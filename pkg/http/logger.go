package http

import (
	"net/url"

	"go.uber.org/zap"

	"weather-finder/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure (httpStatus 0) or an error HTTP status
	LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error)
}

// ZapHTTPLogger writes request traces through the application logger.
// Query parameters listed in redact are masked before logging.
type ZapHTTPLogger struct {
	redact []string
}

// NewZapHTTPLogger creates an HTTPLogger that masks the given query parameters.
func NewZapHTTPLogger(redact ...string) *ZapHTTPLogger {
	return &ZapHTTPLogger{redact: redact}
}

func (l *ZapHTTPLogger) LogRequest(method, rawURL string, _ map[string]string) {
	log.Debug("outbound request",
		zap.String("method", method),
		zap.String("url", l.mask(rawURL)))
}

func (l *ZapHTTPLogger) LogResponseSuccess(method, rawURL string, _ map[string]string, httpStatus int, responseBody string, latency int64) {
	log.Debug("outbound response",
		zap.String("method", method),
		zap.String("url", l.mask(rawURL)),
		zap.Int("status", httpStatus),
		zap.Int("response_size", len(responseBody)),
		zap.Int64("latency_ms", latency))
}

func (l *ZapHTTPLogger) LogResponseError(method, rawURL string, _ map[string]string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("outbound request failed",
		zap.String("method", method),
		zap.String("url", l.mask(rawURL)),
		zap.Int("status", httpStatus),
		zap.String("response_body", responseBody),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}

func (l *ZapHTTPLogger) mask(rawURL string) string {
	if len(l.redact) == 0 {
		return rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	for _, key := range l.redact {
		if query.Has(key) {
			query.Set(key, "***")
		}
	}
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
