package draft

import "errors"

var (
	ErrDraftNotFound  = errors.New("draft not found")
	ErrDraftCorrupted = errors.New("draft is corrupted")
	ErrDraftStorage   = errors.New("draft storage unavailable")
)
