package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"booking/pkg/logger"
)

const pingTimeout = time.Second

type Handler struct {
	log            handlerLogger
	isShuttingDown *atomic.Bool
	storages       map[string]Pinger
}

func New(log handlerLogger, isShuttingDown *atomic.Bool, storages map[string]Pinger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:            handlerLog,
		isShuttingDown: isShuttingDown,
		storages:       storages,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	for name, storage := range h.storages {
		err := storage.Ping(ctx)
		if err != nil {
			h.log.With(
				logger.NewField("storage", name),
				logger.NewField("error", err),
			).Warn("healthcheck storage unreachable")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
