package draft

import (
	"encoding/json"
	"fmt"

	"booking/internal/entities"
)

func Encode(profileID string, snapshot entities.DraftSnapshot) (entities.DraftRecord, error) {
	if !snapshot.CurrentStep.Valid() {
		return entities.DraftRecord{}, fmt.Errorf("encode draft: current step %d out of range", snapshot.CurrentStep)
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return entities.DraftRecord{}, fmt.Errorf("encode draft: %w", err)
	}

	return entities.DraftRecord{
		ProfileID:   profileID,
		CurrentStep: snapshot.CurrentStep,
		Payload:     payload,
		SavedAt:     snapshot.Timestamp,
	}, nil
}

// Decode проверяет payload и его согласованность с быстрым полем CurrentStep.
func Decode(record entities.DraftRecord) (entities.DraftSnapshot, error) {
	var snapshot entities.DraftSnapshot
	err := json.Unmarshal(record.Payload, &snapshot)
	if err != nil {
		return entities.DraftSnapshot{}, fmt.Errorf("%w: %w", ErrDraftCorrupted, err)
	}

	if !snapshot.CurrentStep.Valid() {
		return entities.DraftSnapshot{}, fmt.Errorf("%w: current step %d out of range", ErrDraftCorrupted, snapshot.CurrentStep)
	}
	if record.CurrentStep != snapshot.CurrentStep {
		return entities.DraftSnapshot{}, fmt.Errorf("%w: step %d does not match payload step %d",
			ErrDraftCorrupted, record.CurrentStep, snapshot.CurrentStep)
	}
	if len(snapshot.StepStates) != entities.TotalSteps {
		return entities.DraftSnapshot{}, fmt.Errorf("%w: expected %d step states, got %d",
			ErrDraftCorrupted, entities.TotalSteps, len(snapshot.StepStates))
	}

	return snapshot, nil
}
