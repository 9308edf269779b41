package steps

import "errors"

var (
	ErrStepInvalid    = errors.New("current step is not valid")
	ErrFirstStep      = errors.New("already on the first step")
	ErrStepOutOfRange = errors.New("step out of range")
	ErrStepLocked     = errors.New("previous step is not completed")
)
