package booking

import (
	"sync"
	"time"

	"booking/internal/entities"
	"booking/internal/service/draft"
	"booking/internal/service/form"
	"booking/internal/service/steps"
	"booking/internal/service/submission"
)

// session состояние мастера одного профиля. Все поля под mu.
type session struct {
	profileID string

	mu      sync.Mutex
	form    *form.Form
	steps   *steps.Controller
	keeper  *draft.Keeper
	tracker *submission.Tracker

	// pendingDraft сохраненный черновик, по которому пользователь еще не выбрал restore или discard
	pendingDraft *entities.DraftInfo
	opened       bool
	closed       bool
	lastSeen     time.Time
}

func (s *session) snapshot() entities.DraftSnapshot {
	return entities.DraftSnapshot{
		FormValues:  s.form.Values(),
		CurrentStep: s.steps.Current(),
		StepStates:  s.steps.States(),
	}
}

func (s *session) reset() {
	s.form.Reset()
	s.steps.Reset()
	s.pendingDraft = nil
	s.keeper.Resume(true)
}
