package graceful_shutdown

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"
)

const shuttingDownBody = `{"error":"shutting_down","message":"Service is shutting down"}`

// Middleware отклоняет новые запросы после начала остановки, чтобы балансировщик
// переотправил их на другой инстанс. Уже принятые запросы дорабатывают.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context, retryAfter time.Duration) func(http.Handler) http.Handler {
	retryAfterSeconds := strconv.Itoa(int(retryAfter.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() || ongoingCtx.Err() != nil {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Connection", "close")
				w.Header().Set("Retry-After", retryAfterSeconds)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(shuttingDownBody))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
