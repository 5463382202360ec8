package http

import (
	"go.uber.org/zap"

	"weather-favorites/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called immediately after receiving an error response (error HTTP status)
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry is called when backoff exists and a retry attempt is about to be made
	LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int)
}

// ZapLogger writes outbound HTTP traffic to the application zap logger.
type ZapLogger struct {
	// Name identifies the remote service in log entries.
	Name string
}

var _ HTTPLogger = (*ZapLogger)(nil)

func (l *ZapLogger) LogRequest(method, url string, _ map[string]string, _ string) {
	log.Debug("outbound request", zap.String("client", l.Name), zap.String("method", method), zap.String("url", url))
}

func (l *ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	log.Info("outbound request finished",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	)
}

func (l *ZapLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("outbound request failed",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.String("response", responseBody),
		zap.Int64("latency_ms", latency),
		zap.Error(err),
	)
}

func (l *ZapLogger) LogRequestRetry(method, url string, _ map[string]string, _ string, httpStatus int, _ string, _ int64, err error, retryCount, maxRetries int) {
	log.Warn("retrying outbound request",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int("retry", retryCount),
		zap.Int("max_retries", maxRetries),
		zap.Error(err),
	)
}
