package booking_autosave_put

import (
	"encoding/json"
	"net/http"

	"booking/internal/generated/dto"
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
	var request dto.PutBookingAutosaveJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		wizard_response.WriteBadRequest(w, h.log, "invalid JSON body")
		return
	}

	view, err := h.service.SetAutoSave(r.Context(), mux.Vars(r)["profile"], request.Enabled)
	if err != nil {
		wizard_response.WriteError(w, h.log, err)
		return
	}

	wizard_response.WriteView(w, h.log, http.StatusOK, view)
}
