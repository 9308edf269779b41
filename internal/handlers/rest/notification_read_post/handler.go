package notification_read_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"booking/internal/generated/dto"
	"booking/internal/service/notification"
	"booking/pkg/logger"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := uuid.Parse(vars["id"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	res, err := h.service.MarkRead(r.Context(), vars["customer"], id)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrInvalidCustomerID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, notification.ErrNotificationNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("notification", id.String()),
			).Error("mark notification read")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Notification{
		Id:            res.ID.String(),
		EventId:       res.EventID.String(),
		BookingNumber: res.BookingNumber,
		Message:       res.Message,
		CreatedAt:     res.CreatedAt,
		ReadAt:        res.ReadAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
