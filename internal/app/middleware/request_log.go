package middleware

import (
	"context"
	"github.com/google/uuid"
	"go-link-shortener/internal/configs"
	"log"
	"net/http"
	"time"
)

type ctxKey string

// RequestIDCtx is the context key of the request id.
const RequestIDCtx ctxKey = "request_id"

// RequestIDFromContext returns the request id set by RequestLog.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDCtx).(string)
	return id
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Flush forwards to the wrapped writer when it supports flushing.
func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// RequestLog tags every request with an id and logs its outcome.
func RequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(configs.RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		w.Header().Set(configs.RequestIDHeader, requestID)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		ctx := context.WithValue(r.Context(), RequestIDCtx, requestID)
		next.ServeHTTP(sw, r.WithContext(ctx))

		log.Printf("[%s] %s %s %d %v", requestID, r.Method, r.RequestURI, sw.status, time.Since(start))
	})
}
