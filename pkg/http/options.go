package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/school-admin/pkg/log"
	"github.com/klwxsrx/school-admin/pkg/metric"
)

const (
	HealthPath  = "/healthz"
	MetricsPath = "/metrics"
)

func WithHealthCheck() ServerOption {
	handler := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(struct {
			Status string `json:"status"`
		}{
			Status: "OK",
		})
	}

	return func(router *mux.Router) {
		router.
			Name(getRouteName(http.MethodGet, HealthPath)).
			Methods(http.MethodGet).
			Path(HealthPath).
			HandlerFunc(handler)
	}
}

func WithMW(mw HandlerMiddleware) ServerOption {
	return func(router *mux.Router) {
		router.Use(mux.MiddlewareFunc(mw))
	}
}

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := &codeResponseWriter{ResponseWriter: w, code: http.StatusOK}
			handler.ServeHTTP(lrw, r)

			meta := getHandlerMetadata(r.Context())
			l := logger.With(log.Fields{
				"routeName": meta.RouteName,
				"method":    r.Method,
				"path":      r.URL.Path,
				"code":      lrw.code,
			})
			if meta.Principal != nil {
				l = l.WithField("principal", log.Fields{
					"type": meta.Principal.Type,
					"id":   meta.Principal.ID,
				})
			}

			switch {
			case meta.Panic != nil:
				l.WithField("panic", log.Fields{
					"message": meta.Panic.Message,
					"stack":   string(meta.Panic.Stacktrace),
				}).Log(r.Context(), errorLevel, "request handled with panic")
			case lrw.code >= http.StatusInternalServerError:
				l.WithError(meta.Error).Log(r.Context(), errorLevel, "request handled with internal error")
			default:
				l.WithError(meta.Error).Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}

func WithMetrics(metrics metric.Metrics) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			mrw := &codeResponseWriter{ResponseWriter: w, code: http.StatusOK}
			handler.ServeHTTP(mrw, r)

			metrics.With(metric.Labels{
				"route": getHandlerMetadata(r.Context()).RouteName,
				"code":  fmt.Sprintf("%d", mrw.code),
			}).Duration("http_request_duration_seconds", time.Since(started))
		})
	})
}

type codeResponseWriter struct {
	http.ResponseWriter
	code int
}

func (w *codeResponseWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
