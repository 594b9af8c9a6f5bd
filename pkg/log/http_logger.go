package log

import "go.uber.org/zap"

// HTTPLogger writes outbound HTTP traffic to the global logger.
// Request and success bodies are logged at debug level only.
type HTTPLogger struct {
	Component string
}

// NewHTTPLogger creates an HTTPLogger tagging every entry with component.
func NewHTTPLogger(component string) *HTTPLogger {
	return &HTTPLogger{Component: component}
}

func (l *HTTPLogger) LogRequest(method, url string, headers map[string]string, body string) {
	Debug("outbound request",
		zap.String("component", l.Component),
		zap.String("method", method),
		zap.String("url", url))
}

func (l *HTTPLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	Info("outbound request completed",
		zap.String("component", l.Component),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
	Debug("outbound response body",
		zap.String("component", l.Component),
		zap.String("body", responseBody))
}

func (l *HTTPLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	Warn("outbound request failed",
		zap.String("component", l.Component),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", responseBody),
		zap.Error(err))
}
