package router

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/makanrank/ranking-engine/internal/domain"
)

const requestIDHeader = "X-Request-ID"

// RequestObserver records the served request, labelled by route template.
type RequestObserver interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// observeMiddleware tags the request logger with a request id and reports
// each request to observer once it has been served.
func observeMiddleware(observer RequestObserver) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, requestID)

			logger := domain.LoggerFromContext(r.Context()).With("request_id", requestID)
			r = r.WithContext(domain.ContextWithLogger(r.Context(), logger))

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			route := "unmatched"
			if current := mux.CurrentRoute(r); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}

			if observer != nil {
				observer.ObserveHTTPRequest(r.Method, route, rec.status, time.Since(start))
			}
			logger.DebugContext(r.Context(), "served request",
				"method", r.Method, "route", route, "status", rec.status)
		})
	}
}
