package entities

import "time"

// DraftRecord единственная запись черновика на профиль устройства.
// CurrentStep дублирует шаг из Payload для быстрой проверки наличия черновика.
type DraftRecord struct {
	ProfileID   string
	CurrentStep Step
	Payload     []byte
	SavedAt     time.Time
}

// DraftSnapshot содержимое Payload.
type DraftSnapshot struct {
	FormValues  BookingDraft `json:"formValues"`
	CurrentStep Step         `json:"currentStep"`
	StepStates  []StepState  `json:"stepStates"`
	Timestamp   time.Time    `json:"timestamp"`
}

type DraftInfo struct {
	ProfileID   string
	CurrentStep Step
	SavedAt     time.Time
}
