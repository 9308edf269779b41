package metrics

import (
	"net/http"
	"strconv"
	"time"

	"booking/pkg/logger"
	"github.com/gorilla/mux"
)

// unmatchedRoute метка для запросов мимо маршрутов, сырой путь в метки не попадает
const unmatchedRoute = "unmatched"

func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			HTTPRequestsInFlight.Inc()
			defer HTTPRequestsInFlight.Dec()

			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			statusCode := strconv.Itoa(rw.statusCode)
			route := routeTemplate(r)

			HTTPRequestDuration.WithLabelValues(r.Method, route, statusCode).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, route, statusCode).Inc()
			HTTPResponseBytes.WithLabelValues(route).Add(float64(rw.written))

			fields := []logger.Field{
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", route),
				logger.NewField("status", statusCode),
				logger.NewField("bytes", rw.written),
				logger.NewField("duration", duration.String()),
			}
			if profile, ok := mux.Vars(r)["profile"]; ok {
				fields = append(fields, logger.NewField("profile_id", profile))
			}

			requestLog := log.With(fields...)
			switch {
			case rw.statusCode >= http.StatusInternalServerError:
				requestLog.Error("HTTP request failed")
			case rw.statusCode >= http.StatusBadRequest:
				requestLog.Warn("HTTP request rejected")
			default:
				requestLog.Info("HTTP request")
			}
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unmatchedRoute
	}
	template, err := route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return template
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += n
	return n, err
}
