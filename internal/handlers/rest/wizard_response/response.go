package wizard_response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"booking/internal/entities"
	"booking/internal/generated/dto"
	"booking/internal/service/booking"
	"booking/internal/service/draft"
	"booking/internal/service/form"
	"booking/internal/service/steps"
	"booking/internal/service/submission"
	"booking/pkg/logger"
)

type errorMapping struct {
	target error
	status int
	code   string
}

// порядок важен: ошибки отправки могут оборачивать ошибки черновика
var errorMappings = []errorMapping{
	{target: booking.ErrInvalidProfileID, status: http.StatusBadRequest, code: "invalid_profile"},
	{target: form.ErrUnknownField, status: http.StatusBadRequest, code: "unknown_field"},
	{target: steps.ErrStepOutOfRange, status: http.StatusBadRequest, code: "step_out_of_range"},
	{target: steps.ErrStepInvalid, status: http.StatusUnprocessableEntity, code: "step_invalid"},
	{target: steps.ErrStepLocked, status: http.StatusConflict, code: "step_locked"},
	{target: steps.ErrFirstStep, status: http.StatusConflict, code: "first_step"},
	{target: submission.ErrSubmissionInProgress, status: http.StatusConflict, code: "submission_in_progress"},
	{target: submission.ErrFormInvalid, status: http.StatusUnprocessableEntity, code: "form_invalid"},
	{target: submission.ErrInvalidRequest, status: http.StatusUnprocessableEntity, code: "invalid_request"},
	{target: submission.ErrBackendRejected, status: http.StatusBadGateway, code: "backend_rejected"},
	{target: submission.ErrBackendUnavailable, status: http.StatusBadGateway, code: "backend_unavailable"},
	{target: draft.ErrDraftNotFound, status: http.StatusNotFound, code: "draft_not_found"},
	{target: draft.ErrDraftCorrupted, status: http.StatusUnprocessableEntity, code: "draft_corrupted"},
	{target: draft.ErrDraftStorage, status: http.StatusServiceUnavailable, code: "draft_storage_unavailable"},
	{target: context.DeadlineExceeded, status: http.StatusGatewayTimeout, code: "timeout"},
}

// StatusFor код ответа и машинный код ошибки для ошибок сервиса бронирования.
func StatusFor(err error) (int, string) {
	for _, mapping := range errorMappings {
		if errors.Is(err, mapping.target) {
			return mapping.status, mapping.code
		}
	}
	return http.StatusInternalServerError, "internal"
}

func WriteView(w http.ResponseWriter, log handlerLogger, status int, view *entities.WizardView) {
	WriteJSON(w, log, status, FromView(view))
}

func WriteError(w http.ResponseWriter, log handlerLogger, err error) {
	status, code := StatusFor(err)

	message := err.Error()
	switch {
	case status == http.StatusInternalServerError:
		log.With(
			logger.NewField("error", err),
		).Error("booking request failed")
		message = http.StatusText(status)
	case status >= http.StatusBadGateway:
		log.With(
			logger.NewField("error", err),
			logger.NewField("code", code),
		).Warn("booking dependency failed")
	}

	WriteJSON(w, log, status, dto.Error{
		Error:   code,
		Message: message,
	})
}

func WriteBadRequest(w http.ResponseWriter, log handlerLogger, message string) {
	WriteJSON(w, log, http.StatusBadRequest, dto.Error{
		Error:   "bad_request",
		Message: message,
	})
}

// WriteJSON кодирует тело до записи статуса: ошибка кодирования дает 500, а не пустой 200.
func WriteJSON(w http.ResponseWriter, log handlerLogger, status int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("status", status),
		).Error("encode JSON response")

		status = http.StatusInternalServerError
		payload = []byte(`{"error":"internal","message":"Internal Server Error"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(append(payload, '\n'))
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Warn("write JSON response")
	}
}
