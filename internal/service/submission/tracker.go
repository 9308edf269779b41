package submission

import (
	"booking/internal/entities"
)

// Tracker состояние отправки: Idle -> Submitting -> Succeeded | Failed.
// Синхронизацию делает сессия.
type Tracker struct {
	state entities.SubmissionState
}

func NewTracker() *Tracker {
	return &Tracker{state: entities.SubmissionState{Status: entities.SubmissionIdle}}
}

func (t *Tracker) Begin() error {
	if t.state.Status == entities.SubmissionSubmitting {
		return ErrSubmissionInProgress
	}
	t.state = entities.SubmissionState{Status: entities.SubmissionSubmitting}
	return nil
}

func (t *Tracker) Succeed(confirmation entities.BookingConfirmation) {
	t.state = entities.SubmissionState{
		Status:        entities.SubmissionSucceeded,
		BookingID:     confirmation.ID,
		BookingNumber: confirmation.BookingNumber,
	}
}

func (t *Tracker) Fail(err error) {
	t.state = entities.SubmissionState{
		Status: entities.SubmissionFailed,
		Error:  err.Error(),
	}
}

func (t *Tracker) InProgress() bool {
	return t.state.Status == entities.SubmissionSubmitting
}

func (t *Tracker) State() entities.SubmissionState {
	return t.state
}
