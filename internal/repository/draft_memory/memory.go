package draft_memory

import (
	"context"
	"sync"
	"time"

	"booking/internal/entities"
	"booking/internal/service/draft"
)

// Repository хранит черновики в памяти процесса, для локального запуска без БД.
type Repository struct {
	mu     sync.RWMutex
	drafts map[string]entities.DraftRecord
}

func New() *Repository {
	return &Repository{drafts: make(map[string]entities.DraftRecord)}
}

func (r *Repository) Load(_ context.Context, profileID string) (*entities.DraftRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.drafts[profileID]
	if !ok {
		return nil, draft.ErrDraftNotFound
	}
	record.Payload = append([]byte(nil), record.Payload...)
	return &record, nil
}

func (r *Repository) Save(_ context.Context, record entities.DraftRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.Payload = append([]byte(nil), record.Payload...)
	r.drafts[record.ProfileID] = record
	return nil
}

func (r *Repository) Clear(_ context.Context, profileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.drafts, profileID)
	return nil
}

func (r *Repository) CurrentStep(_ context.Context, profileID string) (entities.Step, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.drafts[profileID]
	if !ok {
		return 0, draft.ErrDraftNotFound
	}
	return record.CurrentStep, nil
}

func (r *Repository) DeleteExpired(_ context.Context, savedBefore time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for profileID, record := range r.drafts {
		if record.SavedAt.Before(savedBefore) {
			delete(r.drafts, profileID)
			deleted++
		}
	}
	return deleted, nil
}
