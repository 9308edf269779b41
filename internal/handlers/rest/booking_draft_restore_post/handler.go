package booking_draft_restore_post

import (
	"net/http"

	"booking/internal/handlers/rest/wizard_response"
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
	profileID := mux.Vars(r)["profile"]

	view, err := h.service.RestoreDraft(r.Context(), profileID)
	if err != nil {
		wizard_response.WriteError(w, h.log, err)
		return
	}

	wizard_response.WriteView(w, h.log, http.StatusOK, view)
}
