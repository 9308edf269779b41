package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"booking/internal/entities"
	"booking/internal/service/draft"
	"booking/internal/service/form"
	"booking/internal/service/steps"
	"booking/internal/service/submission"
	"booking/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type Options struct {
	Draft              draft.Options
	DraftTTL           time.Duration
	SessionIdleTimeout time.Duration
}

// Service держит сессии мастера бронирования по профилям устройств.
type Service struct {
	store     DraftStore
	submitter Submitter
	estimator FareEstimator
	publisher EventPublisher
	validate  *validator.Validate
	log       handlerLogger
	opts      Options
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

func New(
	store DraftStore,
	submitter Submitter,
	estimator FareEstimator,
	publisher EventPublisher,
	validate *validator.Validate,
	log handlerLogger,
	opts Options,
) *Service {
	return &Service{
		store:     store,
		submitter: submitter,
		estimator: estimator,
		publisher: publisher,
		validate:  validate,
		log:       log,
		opts:      opts,
		now:       func() time.Time { return time.Now().UTC() },
		sessions:  make(map[string]*session),
	}
}

// Open открывает сессию профиля. Если есть сохраненный черновик, автосохранение ждет restore или discard.
func (s *Service) Open(ctx context.Context, profileID string) (*entities.WizardView, error) {
	sess, err := s.acquire(ctx, profileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	return s.view(sess), nil
}

func (s *Service) SetField(ctx context.Context, profileID, path string, value any) (*entities.FieldUpdate, error) {
	sess, err := s.acquire(ctx, profileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	state, err := sess.form.SetField(path, value)
	if err != nil {
		return nil, err
	}
	sess.keeper.Schedule(sess.snapshot())

	return &entities.FieldUpdate{
		Field: state,
		View:  s.view(sess),
	}, nil
}

// NextStep при steps.ErrStepInvalid возвращает и ошибку, и view с открытыми ошибками полей шага.
func (s *Service) NextStep(ctx context.Context, profileID string) (*entities.WizardView, error) {
	sess, err := s.acquire(ctx, profileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	_, err = sess.steps.Next()
	if err != nil {
		if errors.Is(err, steps.ErrStepInvalid) {
			sess.form.Touch(sess.steps.Current())
			return s.view(sess), err
		}
		return nil, err
	}

	sess.keeper.Checkpoint(ctx, sess.snapshot())
	return s.view(sess), nil
}

func (s *Service) PreviousStep(ctx context.Context, profileID string) (*entities.WizardView, error) {
	sess, err := s.acquire(ctx, profileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	_, err = sess.steps.Previous()
	if err != nil {
		return nil, err
	}

	sess.keeper.Checkpoint(ctx, sess.snapshot())
	return s.view(sess), nil
}

func (s *Service) GoToStep(ctx context.Context, profileID string, step entities.Step) (*entities.WizardView, error) {
	sess, err := s.acquire(ctx, profileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	_, err = sess.steps.GoTo(step)
	if err != nil {
		return nil, err
	}

	sess.keeper.Checkpoint(ctx, sess.snapshot())
	return s.view(sess), nil
}

// SaveDraft ручное сохранение. Перезаписывает черновик, ожидающий решения, и снимает ожидание.
func (s *Service) SaveDraft(ctx context.Context, profileID string) (*entities.WizardView, error) {
	sess, err := s.acquire(ctx, profileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	_, err = sess.keeper.Save(ctx, sess.snapshot())
	if err != nil {
		return nil, err
	}

	if sess.pendingDraft != nil {
		sess.pendingDraft = nil
		sess.keeper.Resume(true)
	}
	return s.view(sess), nil
}

// RestoreDraft применяет сохраненные значения, шаг и отметки шагов.
// Испорченный черновик удаляется, сессия продолжает работать с текущей формой.
func (s *Service) RestoreDraft(ctx context.Context, profileID string) (*entities.WizardView, error) {
	sess, err := s.acquire(ctx, profileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	snapshot, err := sess.keeper.Load(ctx)
	if err != nil {
		if errors.Is(err, draft.ErrDraftCorrupted) || errors.Is(err, draft.ErrDraftNotFound) {
			sess.pendingDraft = nil
			sess.keeper.Resume(false)
		}
		return nil, err
	}

	err = sess.steps.Restore(snapshot.CurrentStep, snapshot.StepStates)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", draft.ErrDraftCorrupted, err)
	}
	sess.form.Load(snapshot.FormValues)

	sess.pendingDraft = nil
	sess.keeper.Resume(true)
	return s.view(sess), nil
}

// DiscardDraft удаляет сохраненный черновик, форма в памяти остается как есть.
func (s *Service) DiscardDraft(ctx context.Context, profileID string) (*entities.WizardView, error) {
	sess, err := s.acquire(ctx, profileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	err = sess.keeper.Clear(ctx)
	if err != nil {
		return nil, err
	}

	sess.pendingDraft = nil
	sess.keeper.Resume(false)
	return s.view(sess), nil
}

func (s *Service) SetAutoSave(ctx context.Context, profileID string, enabled bool) (*entities.WizardView, error) {
	sess, err := s.acquire(ctx, profileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	sess.keeper.SetEnabled(enabled)
	return s.view(sess), nil
}

// Submit отправляет бронирование. Сетевой вызов идет без блокировки сессии
// и не отменяется, если клиент ушел. Успех очищает черновик и сбрасывает форму,
// ошибка оставляет и черновик, и форму для повторной попытки.
func (s *Service) Submit(ctx context.Context, profileID string) (*entities.WizardView, error) {
	sess, err := s.acquire(ctx, profileID)
	if err != nil {
		return nil, err
	}

	request, values, err := s.beginSubmission(sess)
	sess.mu.Unlock()
	if err != nil {
		return nil, err
	}

	ctx = context.WithoutCancel(ctx)
	confirmation, sendErr := s.submitter.Send(ctx, request)

	sess.mu.Lock()
	if sendErr != nil {
		sess.tracker.Fail(sendErr)
		sess.mu.Unlock()

		SubmissionsTotal.WithLabelValues("failed").Inc()
		s.log.With(
			logger.NewField("profile_id", profileID),
			logger.NewField("error", sendErr),
		).Warn("booking submission failed")
		return nil, sendErr
	}

	sess.tracker.Succeed(*confirmation)
	clearErr := sess.keeper.Clear(ctx)
	sess.reset()
	view := s.view(sess)
	sess.mu.Unlock()

	SubmissionsTotal.WithLabelValues("succeeded").Inc()
	if clearErr != nil {
		s.log.With(
			logger.NewField("profile_id", profileID),
			logger.NewField("error", clearErr),
		).Error("failed to clear draft after submission")
	}

	s.publishSubmitted(ctx, profileID, values, request, *confirmation)
	return view, nil
}

func (s *Service) Estimate(from, to string, weightKg float64) entities.Quote {
	return s.estimator.Quote(from, to, weightKg)
}

// CleanupExpiredDrafts удаляет черновики старше DraftTTL.
func (s *Service) CleanupExpiredDrafts(ctx context.Context) (int64, error) {
	if s.opts.DraftTTL <= 0 {
		return 0, nil
	}

	deleted, err := s.store.DeleteExpired(ctx, s.now().Add(-s.opts.DraftTTL))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("cleanup timed out: %w", err)
		}
		return 0, fmt.Errorf("cleanup: %w", err)
	}
	return deleted, nil
}

// EvictIdleSessions выгружает из памяти сессии без запросов дольше SessionIdleTimeout.
// Отложенное автосохранение выполняется перед выгрузкой.
func (s *Service) EvictIdleSessions(_ context.Context) int {
	if s.opts.SessionIdleTimeout <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.opts.SessionIdleTimeout)

	var evicted []*session
	s.mu.Lock()
	for profileID, sess := range s.sessions {
		// занятую сессию не трогаем, она явно не простаивает
		if !sess.mu.TryLock() {
			continue
		}
		if sess.lastSeen.Before(cutoff) && !sess.tracker.InProgress() {
			sess.closed = true
			delete(s.sessions, profileID)
			evicted = append(evicted, sess)
		}
		sess.mu.Unlock()
	}
	ActiveSessions.Set(float64(len(s.sessions)))
	s.mu.Unlock()

	for _, sess := range evicted {
		sess.keeper.Flush()
		sess.keeper.Stop()
	}
	return len(evicted)
}

func (s *Service) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close выполняет отложенные автосохранения всех сессий, вызывается при остановке сервиса.
func (s *Service) Close() {
	s.mu.Lock()
	sessions := lo.Values(s.sessions)
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.keeper.Flush()
		sess.keeper.Stop()
	}
}

func (s *Service) acquire(ctx context.Context, profileID string) (*session, error) {
	if !isValidProfileID(profileID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProfileID, profileID)
	}

	for {
		s.mu.Lock()
		sess, ok := s.sessions[profileID]
		if !ok {
			sess = s.newSession(profileID)
			s.sessions[profileID] = sess
			ActiveSessions.Set(float64(len(s.sessions)))
		}
		s.mu.Unlock()

		sess.mu.Lock()
		if sess.closed {
			// сессию выгрузили между поиском и блокировкой
			sess.mu.Unlock()
			continue
		}

		sess.lastSeen = s.now()
		if !sess.opened {
			s.checkDraftStore(ctx, sess)
		}
		return sess, nil
	}
}

func (s *Service) newSession(profileID string) *session {
	f := form.New(s.validate)
	return &session{
		profileID: profileID,
		form:      f,
		steps:     steps.New(f),
		keeper:    draft.NewKeeper(profileID, s.store, s.log, s.opts.Draft),
		tracker:   submission.NewTracker(),
	}
}

// checkDraftStore пока хранилище не ответило, автосохранение приостановлено,
// чтобы свежая сессия не затерла черновик, который еще не показали пользователю.
func (s *Service) checkDraftStore(ctx context.Context, sess *session) {
	info, err := sess.keeper.Probe(ctx)
	switch {
	case err == nil:
		sess.opened = true
		sess.pendingDraft = info
		sess.keeper.Suspend()
	case errors.Is(err, draft.ErrDraftNotFound):
		sess.opened = true
		if sess.keeper.Suspended() {
			sess.keeper.Resume(false)
		}
	default:
		sess.keeper.Suspend()
		s.log.With(
			logger.NewField("profile_id", sess.profileID),
			logger.NewField("error", err),
		).Warn("failed to check stored draft")
	}
}

func (s *Service) beginSubmission(sess *session) (entities.BookingRequest, entities.BookingDraft, error) {
	if !sess.form.IsValid() {
		sess.form.Touch(entities.StepReview)
		return entities.BookingRequest{}, entities.BookingDraft{}, submission.ErrFormInvalid
	}

	err := sess.tracker.Begin()
	if err != nil {
		return entities.BookingRequest{}, entities.BookingDraft{}, err
	}

	values := sess.form.Values()
	request, err := s.submitter.Prepare(values)
	if err != nil {
		sess.tracker.Fail(err)
		SubmissionsTotal.WithLabelValues("invalid").Inc()
		return entities.BookingRequest{}, entities.BookingDraft{}, err
	}
	return request, values, nil
}

func (s *Service) publishSubmitted(
	ctx context.Context,
	profileID string,
	values entities.BookingDraft,
	request entities.BookingRequest,
	confirmation entities.BookingConfirmation,
) {
	total := confirmation.Total
	if total == 0 {
		total = request.Pricing.Total
	}

	event := entities.BookingSubmittedEvent{
		EventID:       uuid.New(),
		BookingID:     confirmation.ID,
		BookingNumber: confirmation.BookingNumber,
		CustomerID:    values.Customer.ID,
		CustomerEmail: values.Customer.Email,
		ProfileID:     profileID,
		Total:         total,
		SubmittedAt:   s.now(),
	}

	err := s.publisher.PublishBookingSubmitted(ctx, event)
	if err != nil {
		s.log.With(
			logger.NewField("profile_id", profileID),
			logger.NewField("booking_number", confirmation.BookingNumber),
			logger.NewField("error", err),
		).Warn("failed to publish booking submitted event")
	}
}

func (s *Service) view(sess *session) *entities.WizardView {
	values := sess.form.Values()
	states := sess.steps.States()

	view := &entities.WizardView{
		ProfileID:   sess.profileID,
		CurrentStep: sess.steps.Current(),
		Steps:       states,
		StepValid: lo.SliceToMap(states, func(state entities.StepState) (entities.Step, bool) {
			return state.Number, sess.form.IsStepValid(state.Number)
		}),
		Form:           values,
		Errors:         sess.form.Errors(),
		AutoSave:       sess.keeper.Enabled(),
		DraftAvailable: sess.pendingDraft != nil,
		Submission:     sess.tracker.State(),
		Quote:          s.quote(values),
	}

	if sess.pendingDraft != nil {
		savedAt := sess.pendingDraft.SavedAt
		view.DraftSavedAt = &savedAt
	} else if savedAt, ok := sess.keeper.LastSaved(); ok {
		view.DraftSavedAt = &savedAt
	}
	return view
}

// quote оценка для шага review, когда известны оба города и вес
func (s *Service) quote(values entities.BookingDraft) *entities.Quote {
	from := strings.TrimSpace(values.Pickup.Address.City)
	to := strings.TrimSpace(values.Delivery.Address.City)
	if from == "" || to == "" || values.Cargo.Weight <= 0 {
		return nil
	}

	quote := s.estimator.Quote(from, to, values.Cargo.Weight)
	return &quote
}
