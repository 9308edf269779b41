package booking_fields_patch

import (
	"encoding/json"
	"net/http"
	"strings"

	"booking/internal/generated/dto"
	"booking/internal/handlers/rest/wizard_response"
	"github.com/gorilla/mux"
)

// значение одного поля, длинные описания груза укладываются с запасом
const maxBodyBytes = 64 << 10

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

// ServeHTTP меняет одно поле формы. Невалидное значение не ошибка запроса:
// ответ 200, поле помечено невалидным с сообщением.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.PatchBookingFieldsJSONRequestBody
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&request)
	if err != nil {
		wizard_response.WriteBadRequest(w, h.log, "invalid JSON body")
		return
	}

	path := strings.TrimSpace(request.Path)
	if path == "" {
		wizard_response.WriteBadRequest(w, h.log, "path is required")
		return
	}

	update, err := h.service.SetField(r.Context(), mux.Vars(r)["profile"], path, request.Value)
	if err != nil {
		wizard_response.WriteError(w, h.log, err)
		return
	}

	wizard_response.WriteJSON(w, h.log, http.StatusOK, dto.FieldUpdateResponse{
		Field: wizard_response.FromField(update.Field),
		View:  wizard_response.FromView(update.View),
	})
}
