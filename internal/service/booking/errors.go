package booking

import "errors"

var ErrInvalidProfileID = errors.New("invalid profile id")
