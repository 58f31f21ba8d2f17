package middleware

import "time"

// HTTPRecorder приемник HTTP метрик, реализуется *metrics.Metrics
type HTTPRecorder interface {
	ObserveHTTPRequest(route, method string, status int, d time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
