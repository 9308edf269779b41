package submission

import "errors"

var (
	ErrFormInvalid          = errors.New("booking form is not valid")
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrInvalidRequest       = errors.New("invalid booking request")

	ErrBackendUnavailable = errors.New("booking backend unavailable")
	ErrBackendRejected    = errors.New("booking rejected by backend")
)
