package booking_steps_goto_post

import (
	"net/http"
	"strconv"

	"booking/internal/entities"
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
	vars := mux.Vars(r)

	step, err := strconv.Atoi(vars["step"])
	if err != nil {
		wizard_response.WriteBadRequest(w, h.log, "step must be a number")
		return
	}

	view, err := h.service.GoToStep(r.Context(), vars["profile"], entities.Step(step))
	if err != nil {
		wizard_response.WriteError(w, h.log, err)
		return
	}

	wizard_response.WriteView(w, h.log, http.StatusOK, view)
}
