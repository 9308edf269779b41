package form

import "errors"

var ErrUnknownField = errors.New("unknown form field")

var (
	errNotText   = errors.New("must be text")
	errNotNumber = errors.New("must be a number")
	errNotFlag   = errors.New("must be true or false")
)
