package timeout

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Middleware ограничивает время обработки запроса. Для именованных маршрутов mux
// можно задать свой лимит в overrides: отправка бронирования ждет внешний бэкенд дольше обычного запроса.
func Middleware(timeout time.Duration, overrides map[string]time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limit := timeout
			if route := mux.CurrentRoute(r); route != nil {
				if override, ok := overrides[route.GetName()]; ok {
					limit = override
				}
			}
			if limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
