package draft

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"booking/internal/entities"
	"booking/pkg/debounce"
	"booking/pkg/logger"
)

type Options struct {
	AutosaveDelay   time.Duration
	AutosaveEnabled bool
	SaveTimeout     time.Duration
}

type pendingSnapshot struct {
	snapshot entities.DraftSnapshot
	rev      uint64
}

/*
Keeper сохраняет черновик одного профиля.

Каждое изменение формы получает ревизию. Запись с ревизией не новее уже записанной
(или очищенной) отбрасывается, поэтому старый снимок не перезатрет новый
и не воскресит удаленный черновик.
*/
type Keeper struct {
	profileID string
	store     Store
	log       handlerLogger
	opts      Options
	now       func() time.Time

	debouncer *debounce.Debouncer

	mu        sync.Mutex
	rev       uint64
	pending   *pendingSnapshot
	enabled   bool
	suspended bool
	lastSaved time.Time

	writeMu sync.Mutex
	written uint64
}

func NewKeeper(profileID string, store Store, log handlerLogger, opts Options) *Keeper {
	k := &Keeper{
		profileID: profileID,
		store:     store,
		log:       log,
		opts:      opts,
		now:       func() time.Time { return time.Now().UTC() },
		enabled:   opts.AutosaveEnabled,
	}
	k.debouncer = debounce.New(opts.AutosaveDelay, k.fire)
	return k
}

// Schedule запоминает последний снимок и взводит таймер автосохранения.
// Пока автосохранение выключено или приостановлено, снимок только запоминается.
func (k *Keeper) Schedule(snapshot entities.DraftSnapshot) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.rev++
	k.pending = &pendingSnapshot{snapshot: snapshot, rev: k.rev}
	if k.enabled && !k.suspended {
		k.debouncer.Trigger()
	}
}

// Checkpoint сохранение при переходе между шагами, ошибки только логируются.
func (k *Keeper) Checkpoint(ctx context.Context, snapshot entities.DraftSnapshot) {
	k.mu.Lock()
	if !k.enabled || k.suspended {
		k.mu.Unlock()
		return
	}
	rev := k.takeRevLocked()
	k.mu.Unlock()

	err := k.write(ctx, snapshot, rev, triggerStep)
	if err != nil {
		k.log.With(
			logger.NewField("profile_id", k.profileID),
			logger.NewField("error", err),
		).Warn("failed to save draft on step change")
	}
}

// Save ручное сохранение, работает и при выключенном автосохранении.
func (k *Keeper) Save(ctx context.Context, snapshot entities.DraftSnapshot) (time.Time, error) {
	k.mu.Lock()
	rev := k.takeRevLocked()
	k.mu.Unlock()

	snapshot.Timestamp = k.now()
	err := k.write(ctx, snapshot, rev, triggerManual)
	if err != nil {
		return time.Time{}, err
	}
	return snapshot.Timestamp, nil
}

// Probe быстрая проверка наличия черновика по шагу, затем время сохранения.
func (k *Keeper) Probe(ctx context.Context) (*entities.DraftInfo, error) {
	step, err := k.store.CurrentStep(ctx, k.profileID)
	if err == nil {
		var record *entities.DraftRecord
		record, err = k.store.Load(ctx, k.profileID)
		if err == nil {
			return &entities.DraftInfo{
				ProfileID:   k.profileID,
				CurrentStep: step,
				SavedAt:     record.SavedAt,
			}, nil
		}
	}

	switch {
	case errors.Is(err, ErrDraftNotFound):
		return nil, ErrDraftNotFound
	case errors.Is(err, ErrDraftCorrupted):
		// предлагать восстановить нечего
		_ = k.discardCorrupted(ctx, err)
		return nil, ErrDraftNotFound
	}
	return nil, fmt.Errorf("%w: %w", ErrDraftStorage, err)
}

// Load читает и разбирает черновик. Испорченная запись удаляется, сессия продолжает работу.
func (k *Keeper) Load(ctx context.Context) (*entities.DraftSnapshot, error) {
	record, err := k.store.Load(ctx, k.profileID)
	if err != nil {
		switch {
		case errors.Is(err, ErrDraftNotFound):
			return nil, ErrDraftNotFound
		case errors.Is(err, ErrDraftCorrupted):
			return nil, k.discardCorrupted(ctx, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrDraftStorage, err)
	}

	snapshot, err := Decode(*record)
	if err != nil {
		return nil, k.discardCorrupted(ctx, err)
	}

	return &snapshot, nil
}

func (k *Keeper) discardCorrupted(ctx context.Context, err error) error {
	DraftCorruptedTotal.Inc()
	k.log.With(
		logger.NewField("profile_id", k.profileID),
		logger.NewField("error", err),
	).Warn("stored draft is corrupted, discarding")

	clearErr := k.Clear(ctx)
	if clearErr != nil {
		k.log.With(
			logger.NewField("profile_id", k.profileID),
			logger.NewField("error", clearErr),
		).Warn("failed to clear corrupted draft")
	}
	return err
}

// Clear удаляет запись и отменяет отложенное автосохранение. Форму в памяти не трогает.
func (k *Keeper) Clear(ctx context.Context) error {
	k.mu.Lock()
	rev := k.takeRevLocked()
	k.mu.Unlock()

	k.writeMu.Lock()
	defer k.writeMu.Unlock()

	// даже при ошибке удаления более старые снимки записывать уже нельзя
	k.written = max(k.written, rev)

	err := k.store.Clear(ctx, k.profileID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDraftStorage, err)
	}

	k.mu.Lock()
	k.lastSaved = time.Time{}
	k.mu.Unlock()
	return nil
}

// LastSaved время последней успешной записи этой сессией.
func (k *Keeper) LastSaved() (time.Time, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.lastSaved, !k.lastSaved.IsZero()
}

// Suspend останавливает автосохранение, пока пользователь не выбрал restore или discard.
func (k *Keeper) Suspend() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.suspended = true
	k.debouncer.Cancel()
}

// Resume снимает приостановку. dropPending отбрасывает изменения, сделанные до решения.
func (k *Keeper) Resume(dropPending bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.suspended = false
	if dropPending {
		k.pending = nil
		return
	}
	if k.pending != nil && k.enabled {
		k.debouncer.Trigger()
	}
}

func (k *Keeper) Suspended() bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.suspended
}

func (k *Keeper) SetEnabled(enabled bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.enabled = enabled
	if !enabled {
		k.debouncer.Cancel()
		return
	}
	if k.pending != nil && !k.suspended {
		k.debouncer.Trigger()
	}
}

func (k *Keeper) Enabled() bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.enabled
}

// Flush сразу выполняет отложенное автосохранение, если оно взведено.
func (k *Keeper) Flush() {
	k.debouncer.Flush()
}

func (k *Keeper) Stop() {
	k.debouncer.Cancel()
}

func (k *Keeper) fire() {
	k.mu.Lock()
	p := k.pending
	k.pending = nil
	k.mu.Unlock()

	if p == nil {
		return
	}

	ctx, cancel := k.saveContext()
	defer cancel()

	p.snapshot.Timestamp = k.now()
	err := k.write(ctx, p.snapshot, p.rev, triggerAutosave)
	if err != nil {
		k.log.With(
			logger.NewField("profile_id", k.profileID),
			logger.NewField("error", err),
		).Warn("autosave draft failed")
	}
}

func (k *Keeper) write(ctx context.Context, snapshot entities.DraftSnapshot, rev uint64, trigger string) error {
	k.writeMu.Lock()
	defer k.writeMu.Unlock()

	if rev <= k.written {
		DraftSavesTotal.WithLabelValues(trigger, resultStale).Inc()
		return nil
	}

	if snapshot.Timestamp.IsZero() {
		snapshot.Timestamp = k.now()
	}
	record, err := Encode(k.profileID, snapshot)
	if err != nil {
		DraftSavesTotal.WithLabelValues(trigger, resultError).Inc()
		return err
	}

	start := time.Now()
	err = k.store.Save(ctx, record)
	DraftSaveDuration.WithLabelValues(trigger).Observe(time.Since(start).Seconds())
	if err != nil {
		DraftSavesTotal.WithLabelValues(trigger, resultError).Inc()
		return fmt.Errorf("%w: %w", ErrDraftStorage, err)
	}

	k.written = rev
	DraftSavesTotal.WithLabelValues(trigger, resultOK).Inc()

	k.mu.Lock()
	k.lastSaved = snapshot.Timestamp
	k.mu.Unlock()
	return nil
}

// takeRevLocked новая ревизия для немедленной записи, отложенный снимок становится устаревшим.
func (k *Keeper) takeRevLocked() uint64 {
	k.rev++
	k.pending = nil
	k.debouncer.Cancel()
	return k.rev
}

func (k *Keeper) saveContext() (context.Context, context.CancelFunc) {
	if k.opts.SaveTimeout > 0 {
		return context.WithTimeout(context.Background(), k.opts.SaveTimeout)
	}
	return context.WithCancel(context.Background())
}
