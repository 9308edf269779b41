//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"fmt"

	bookingGateway "booking/internal/gateway/http/booking"
	"booking/internal/gateway/kafka/booking_submitted"
	"booking/internal/handlers/rest/booking_autosave_put"
	"booking/internal/handlers/rest/booking_draft_delete"
	"booking/internal/handlers/rest/booking_draft_post"
	"booking/internal/handlers/rest/booking_draft_restore_post"
	"booking/internal/handlers/rest/booking_fields_patch"
	"booking/internal/handlers/rest/booking_get"
	"booking/internal/handlers/rest/booking_steps_goto_post"
	"booking/internal/handlers/rest/booking_steps_next_post"
	"booking/internal/handlers/rest/booking_steps_previous_post"
	"booking/internal/handlers/rest/booking_submit_post"
	"booking/internal/handlers/rest/fare_estimate_get"
	"booking/internal/handlers/rest/healthcheck_head"
	"booking/internal/handlers/rest/notification_read_post"
	"booking/internal/handlers/rest/notifications_get"
	"booking/internal/handlers/rest/ping_get"
	"booking/internal/handlers/tasks/draft_cleanup"
	"booking/internal/handlers/tasks/session_eviction"
	"booking/internal/pkg/config"
	"booking/internal/pkg/validation"
	draftRepo "booking/internal/repository/draft"
	"booking/internal/repository/draft_memory"
	"booking/internal/repository/draft_redis"
	notificationRepo "booking/internal/repository/notification"
	bookingService "booking/internal/service/booking"
	"booking/internal/service/draft"
	"booking/internal/service/fare"
	notificationService "booking/internal/service/notification"
	"booking/internal/service/submission"
	"booking/pkg/background"
	"booking/pkg/logger"
	"booking/pkg/querier"
	"booking/pkg/tx"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/go-playground/validator/v10"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/samber/lo"
)

// Storages хранилища, которые проверяет healthcheck.
type Storages map[string]healthcheck_head.Pinger

type Application struct {
	ServiceBooking      ServiceBooking
	ServiceNotification ServiceNotification
	BackgroundWorkers   *background.Worker
	Storages            Storages
}

type ServiceBooking interface {
	booking_get.Service
	booking_fields_patch.Service
	booking_steps_next_post.Service
	booking_steps_previous_post.Service
	booking_steps_goto_post.Service
	booking_draft_post.Service
	booking_draft_restore_post.Service
	booking_draft_delete.Service
	booking_autosave_put.Service
	booking_submit_post.Service
	fare_estimate_get.Service
	ping_get.SessionCounter
	Close()
}

type ServiceNotification interface {
	notifications_get.Service
	notification_read_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service).
// redisClient нужен только при DRAFT_STORE=redis, иначе nil.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideValidator,

		provideDraftStore,
		provideNotificationRepository,

		provideFareEstimator,
		provideBookingGateway,
		provideSubmissionPipeline,
		providePublisher,
		provideBookingService,
		provideNotificationService,

		provideDraftCleanupTask,
		provideSessionEvictionTask,
		provideTaskList,
		provideBackgroundWorkers,
		provideStorages,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceBooking), new(*bookingService.Service)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Notification)),

		wire.Bind(new(bookingService.Submitter), new(*submission.Pipeline)),
		wire.Bind(new(bookingService.FareEstimator), new(*fare.Estimator)),
		wire.Bind(new(bookingService.EventPublisher), new(*booking_submitted.Publisher)),
		wire.Bind(new(submission.Gateway), new(*bookingGateway.BookingGateway)),
		wire.Bind(new(submission.FareEstimator), new(*fare.Estimator)),

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.TxManager), new(*tx.Manager)),

		wire.Bind(new(draft_cleanup.Service), new(*bookingService.Service)),
		wire.Bind(new(session_eviction.Service), new(*bookingService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Notification
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-booking-submitted)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideNotificationRepository,
		provideNotificationService,

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

// provideTxManager read committed хватает: дубль события ловится уникальным индексом по event_id.
func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool, pgx.ReadCommitted)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideValidator() (*validator.Validate, error) {
	return validation.New()
}

func provideDraftStore(
	cfg *config.Config,
	querier *querier.Querier,
	redisClient *goredis.Client,
) (bookingService.DraftStore, error) {
	switch cfg.Draft.Store {
	case config.DraftStorePostgres:
		return draftRepo.New(querier), nil
	case config.DraftStoreRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("draft store %q: redis client is not configured", cfg.Draft.Store)
		}
		return draft_redis.New(redisClient, cfg.Draft.TTL), nil
	case config.DraftStoreMemory:
		return draft_memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown draft store %q", cfg.Draft.Store)
	}
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

// provideFareEstimator незаданные тарифы берутся по умолчанию, явный ноль сохраняется.
func provideFareEstimator(cfg *config.Config) *fare.Estimator {
	defaults := fare.DefaultOptions()
	return fare.New(fare.Options{
		DefaultDistanceKm: lo.FromPtrOr(cfg.Fare.DefaultDistanceKm, defaults.DefaultDistanceKm),
		AverageSpeedKmh:   lo.FromPtrOr(cfg.Fare.AverageSpeedKmh, defaults.AverageSpeedKmh),
		RatePerKm:         lo.FromPtrOr(cfg.Fare.RatePerKm, defaults.RatePerKm),
		RatePerKg:         lo.FromPtrOr(cfg.Fare.RatePerKg, defaults.RatePerKg),
		MinimumFare:       lo.FromPtrOr(cfg.Fare.MinimumFare, defaults.MinimumFare),
		GSTRate:           lo.FromPtrOr(cfg.Fare.GSTRate, defaults.GSTRate),
		ServiceChargeRate: lo.FromPtrOr(cfg.Fare.ServiceChargeRate, defaults.ServiceChargeRate),
		InsuranceRate:     lo.FromPtrOr(cfg.Fare.InsuranceRate, defaults.InsuranceRate),
		Currency:          lo.CoalesceOrEmpty(cfg.Fare.Currency, defaults.Currency),
	})
}

func provideBookingGateway(cfg *config.Config) *bookingGateway.BookingGateway {
	return bookingGateway.New(
		bookingGateway.NewHTTPClient(cfg.BookingBackend.Timeout),
		cfg.BookingBackend.URL,
	)
}

func provideSubmissionPipeline(
	gateway submission.Gateway,
	estimator submission.FareEstimator,
	validate *validator.Validate,
) *submission.Pipeline {
	return submission.New(gateway, estimator, validate)
}

func providePublisher(producer sarama.SyncProducer, cfg *config.Config) *booking_submitted.Publisher {
	return booking_submitted.New(producer, cfg.Kafka.Topic)
}

func provideBookingService(
	store bookingService.DraftStore,
	submitter bookingService.Submitter,
	estimator bookingService.FareEstimator,
	publisher bookingService.EventPublisher,
	validate *validator.Validate,
	log logger.Logger,
	cfg *config.Config,
) *bookingService.Service {
	return bookingService.New(store, submitter, estimator, publisher, validate, log, bookingService.Options{
		Draft: draft.Options{
			AutosaveDelay:   cfg.Draft.AutosaveDelay,
			AutosaveEnabled: cfg.Draft.AutosaveEnabled,
			SaveTimeout:     cfg.Draft.SaveTimeout,
		},
		DraftTTL:           cfg.Draft.TTL,
		SessionIdleTimeout: cfg.Draft.SessionIdleTimeout,
	})
}

func provideNotificationService(
	repository notificationService.Repository,
	txManager notificationService.TxManager,
) *notificationService.Notification {
	return notificationService.New(repository, txManager)
}

func provideDraftCleanupTask(
	log logger.Logger,
	service draft_cleanup.Service,
	cfg *config.Config,
) *draft_cleanup.DraftCleanup {
	return draft_cleanup.NewDraftCleanup(log, service, cfg.Tasks.DraftCleanupInterval)
}

func provideSessionEvictionTask(
	log logger.Logger,
	service session_eviction.Service,
	cfg *config.Config,
) *session_eviction.SessionEviction {
	return session_eviction.NewSessionEviction(log, service, cfg.Tasks.SessionEvictionInterval)
}

func provideTaskList(
	draftCleanupTask *draft_cleanup.DraftCleanup,
	sessionEvictionTask *session_eviction.SessionEviction,
) []background.Task {
	return []background.Task{
		draftCleanupTask,
		sessionEvictionTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

// provideStorages postgres нужен всегда (уведомления), хранилище черновиков проверяется, если умеет Ping.
func provideStorages(querier *querier.Querier, store bookingService.DraftStore) Storages {
	storages := Storages{"postgres": querier}
	if pinger, ok := store.(healthcheck_head.Pinger); ok {
		storages["draft_store"] = pinger
	}
	return storages
}
