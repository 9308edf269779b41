package entities

import "time"

type Step int

const (
	StepCargo Step = iota + 1
	StepRoute
	StepCustomer
	StepReview
)

const (
	FirstStep  = StepCargo
	LastStep   = StepReview
	TotalSteps = int(LastStep)
)

func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

func (s Step) String() string {
	switch s {
	case StepCargo:
		return "cargo"
	case StepRoute:
		return "route"
	case StepCustomer:
		return "customer"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

type StepState struct {
	Number      Step `json:"number"`
	IsActive    bool `json:"isActive"`
	IsCompleted bool `json:"isCompleted"`
}

type SubmissionStatus string

const (
	SubmissionIdle       SubmissionStatus = "idle"
	SubmissionSubmitting SubmissionStatus = "submitting"
	SubmissionSucceeded  SubmissionStatus = "succeeded"
	SubmissionFailed     SubmissionStatus = "failed"
)

func (s SubmissionStatus) String() string {
	return string(s)
}

type SubmissionState struct {
	Status        SubmissionStatus
	BookingID     string
	BookingNumber string
	Error         string
}

// WizardView снимок сессии бронирования для транспорта.
type WizardView struct {
	ProfileID      string
	CurrentStep    Step
	Steps          []StepState
	StepValid      map[Step]bool
	Form           BookingDraft
	Errors         map[string]string
	AutoSave       bool
	DraftAvailable bool
	DraftSavedAt   *time.Time
	Submission     SubmissionState
	Quote          *Quote
}

type FieldUpdate struct {
	Field FieldState
	View  *WizardView
}
