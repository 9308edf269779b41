package ping_get

import (
	"encoding/json"
	"net/http"

	"booking/internal/generated/dto"
	"booking/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	sessions SessionCounter
}

func New(log handlerLogger, sessions SessionCounter) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		sessions: sessions,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := dto.PingResponse{
		Message:        "pong",
		ActiveSessions: h.sessions.SessionCount(),
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
