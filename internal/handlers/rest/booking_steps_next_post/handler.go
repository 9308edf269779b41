package booking_steps_next_post

import (
	"errors"
	"net/http"

	"booking/internal/handlers/rest/wizard_response"
	"booking/internal/service/steps"
	"booking/pkg/logger"
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

// ServeHTTP переход вперед. Невалидный шаг отдает 422 вместе с view,
// где уже открыты ошибки полей текущего шага.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	profileID := mux.Vars(r)["profile"]

	view, err := h.service.NextStep(r.Context(), profileID)
	if err != nil {
		if errors.Is(err, steps.ErrStepInvalid) && view != nil {
			h.log.With(
				logger.NewField("profile_id", profileID),
				logger.NewField("step", view.CurrentStep.String()),
				logger.NewField("invalid_fields", len(view.Errors)),
			).Info("step advance blocked by validation")
			wizard_response.WriteView(w, h.log, http.StatusUnprocessableEntity, view)
			return
		}
		wizard_response.WriteError(w, h.log, err)
		return
	}

	wizard_response.WriteView(w, h.log, http.StatusOK, view)
}
