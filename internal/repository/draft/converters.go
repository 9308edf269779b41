package draft

import (
	"booking/internal/entities"
)

func ToDomain(d *DraftDB) *entities.DraftRecord {
	if d == nil {
		return nil
	}

	return &entities.DraftRecord{
		ProfileID:   d.ProfileID,
		CurrentStep: entities.Step(d.CurrentStep),
		Payload:     d.Payload,
		SavedAt:     d.SavedAt.UTC(),
	}
}

func FromDomain(record *entities.DraftRecord) *DraftDB {
	if record == nil {
		return nil
	}

	return &DraftDB{
		ProfileID:   record.ProfileID,
		CurrentStep: int16(record.CurrentStep),
		Payload:     record.Payload,
		SavedAt:     record.SavedAt,
	}
}
