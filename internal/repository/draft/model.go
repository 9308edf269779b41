package draft

import "time"

type DraftDB struct {
	ProfileID   string
	CurrentStep int16
	Payload     []byte
	SavedAt     time.Time
}
