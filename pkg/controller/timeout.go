package controller

import (
	"net/http"
	"time"
)

// TimeoutBody is the response body sent when a request exceeds its deadline.
const TimeoutBody = `{"error":"request timed out"}`

// jsonTimeoutWriter marks the 503 written by http.TimeoutHandler as JSON.
type jsonTimeoutWriter struct {
	http.ResponseWriter
}

func (w *jsonTimeoutWriter) WriteHeader(code int) {
	if code == http.StatusServiceUnavailable && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *jsonTimeoutWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// WithTimeout bounds each request to dt like http.TimeoutHandler, answering
// requests that run out of time with 503 and TimeoutBody as application/json.
func WithTimeout(next http.Handler, dt time.Duration) http.Handler {
	h := http.TimeoutHandler(next, dt, TimeoutBody)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(&jsonTimeoutWriter{ResponseWriter: w}, r)
	})
}
