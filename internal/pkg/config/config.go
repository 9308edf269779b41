package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"
)

const (
	DraftStorePostgres = "postgres"
	DraftStoreRedis    = "redis"
	DraftStoreMemory   = "memory"
)

const (
	defaultAutosaveDelay      = 2 * time.Second
	defaultDraftSaveTimeout   = 3 * time.Second
	defaultDraftTTL           = 7 * 24 * time.Hour
	defaultSessionIdleTimeout = 30 * time.Minute
	defaultBackendTimeout     = 10 * time.Second
	defaultEvictionInterval   = time.Minute
)

type (
	Tasks struct {
		DraftCleanupInterval    time.Duration
		SessionEvictionInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
		GRPCHealthPort   string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Draft struct {
		Store              string
		AutosaveDelay      time.Duration
		AutosaveEnabled    bool
		SaveTimeout        time.Duration
		TTL                time.Duration
		SessionIdleTimeout time.Duration
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	BookingBackend struct {
		URL     string
		Timeout time.Duration
	}

	// Fare nil значит переменная не задана и берется значение оценщика по умолчанию.
	// Явный 0 остается нулем: FARE_INSURANCE_RATE=0 отключает страховку.
	Fare struct {
		DefaultDistanceKm *float64
		AverageSpeedKmh   *float64
		RatePerKm         *float64
		RatePerKg         *float64
		MinimumFare       *float64
		GSTRate           *float64
		ServiceChargeRate *float64
		InsuranceRate     *float64
		Currency          string
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		BookingSubmitted BookingSubmitted
	}

	BookingSubmitted struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks          Tasks
		Server         HTTPServer
		Database       Database
		Draft          Draft
		Redis          Redis
		BookingBackend BookingBackend
		Fare           Fare
		Kafka          Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	draftCleanupInterval, err := osGetEnvDuration("BACKGROUND_DRAFT_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	sessionEvictionInterval, err := osGetEnvDuration("BACKGROUND_SESSION_EVICTION_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if sessionEvictionInterval == 0 {
		sessionEvictionInterval = defaultEvictionInterval
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	bookingSubmittedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_BOOKING_SUBMITTED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	draft, err := loadDraft()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	backendTimeout, err := osGetEnvDuration("BOOKING_BACKEND_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if backendTimeout == 0 {
		backendTimeout = defaultBackendTimeout
	}

	fare, err := loadFare()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			DraftCleanupInterval:    draftCleanupInterval,
			SessionEvictionInterval: sessionEvictionInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
			GRPCHealthPort:   os.Getenv("GRPC_HEALTH_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Draft: *draft,
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		BookingBackend: BookingBackend{
			URL:     os.Getenv("BOOKING_BACKEND_URL"),
			Timeout: backendTimeout,
		},
		Fare: *fare,
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				BookingSubmitted: BookingSubmitted{
					ProcessTimeout: bookingSubmittedTimeout,
				},
			},
		},
	}, nil
}

func loadDraft() (*Draft, error) {
	autosaveDelay, err := osGetEnvDuration("DRAFT_AUTOSAVE_DELAY")
	if err != nil {
		return nil, err
	}
	if autosaveDelay == 0 {
		autosaveDelay = defaultAutosaveDelay
	}

	autosaveEnabled := true
	if os.Getenv("DRAFT_AUTOSAVE_ENABLED") != "" {
		autosaveEnabled, err = osGetBool("DRAFT_AUTOSAVE_ENABLED")
		if err != nil {
			return nil, err
		}
	}

	saveTimeout, err := osGetEnvDuration("DRAFT_SAVE_TIMEOUT")
	if err != nil {
		return nil, err
	}
	if saveTimeout == 0 {
		saveTimeout = defaultDraftSaveTimeout
	}

	ttl, err := osGetEnvDuration("DRAFT_TTL")
	if err != nil {
		return nil, err
	}
	if ttl == 0 {
		ttl = defaultDraftTTL
	}

	idleTimeout, err := osGetEnvDuration("SESSION_IDLE_TIMEOUT")
	if err != nil {
		return nil, err
	}
	if idleTimeout == 0 {
		idleTimeout = defaultSessionIdleTimeout
	}

	store := os.Getenv("DRAFT_STORE")
	if store == "" {
		store = DraftStorePostgres
	}

	return &Draft{
		Store:              store,
		AutosaveDelay:      autosaveDelay,
		AutosaveEnabled:    autosaveEnabled,
		SaveTimeout:        saveTimeout,
		TTL:                ttl,
		SessionIdleTimeout: idleTimeout,
	}, nil
}

func loadFare() (*Fare, error) {
	fare := &Fare{Currency: os.Getenv("FARE_CURRENCY")}

	floats := []struct {
		env string
		dst **float64
	}{
		{env: "FARE_DEFAULT_DISTANCE_KM", dst: &fare.DefaultDistanceKm},
		{env: "FARE_AVERAGE_SPEED_KMH", dst: &fare.AverageSpeedKmh},
		{env: "FARE_RATE_PER_KM", dst: &fare.RatePerKm},
		{env: "FARE_RATE_PER_KG", dst: &fare.RatePerKg},
		{env: "FARE_MINIMUM", dst: &fare.MinimumFare},
		{env: "FARE_GST_RATE", dst: &fare.GSTRate},
		{env: "FARE_SERVICE_CHARGE_RATE", dst: &fare.ServiceChargeRate},
		{env: "FARE_INSURANCE_RATE", dst: &fare.InsuranceRate},
	}

	for _, f := range floats {
		val, err := osGetOptionalFloat(f.env)
		if err != nil {
			return nil, err
		}
		*f.dst = val
	}
	return fare, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	switch cfg.Draft.Store {
	case DraftStorePostgres, DraftStoreMemory:
	case DraftStoreRedis:
		if cfg.Redis.Addr == "" {
			return errors.New("REDIS_ADDR is required when DRAFT_STORE=redis")
		}
	default:
		return fmt.Errorf("DRAFT_STORE must be one of postgres, redis, memory, got %q", cfg.Draft.Store)
	}
	if cfg.Draft.AutosaveDelay < 0 {
		return errors.New("DRAFT_AUTOSAVE_DELAY must be positive")
	}

	if cfg.Tasks.DraftCleanupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_DRAFT_CLEANUP_INTERVAL is required")
	}

	// расстояние и длительность маршрута в запросе должны быть положительными
	if cfg.Fare.DefaultDistanceKm != nil && *cfg.Fare.DefaultDistanceKm == 0 {
		return errors.New("FARE_DEFAULT_DISTANCE_KM must be positive")
	}
	if cfg.Fare.AverageSpeedKmh != nil && *cfg.Fare.AverageSpeedKmh == 0 {
		return errors.New("FARE_AVERAGE_SPEED_KMH must be positive")
	}

	if cfg.BookingBackend.URL == "" {
		return errors.New("BOOKING_BACKEND_URL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.BookingSubmitted.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_BOOKING_SUBMITTED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

// osGetOptionalFloat возвращает nil для незаданной переменной.
func osGetOptionalFloat(s string) (*float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return nil, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	if res < 0 || math.IsInf(res, 0) || math.IsNaN(res) {
		return nil, fmt.Errorf("%s must be a finite non-negative number, got %q", s, val)
	}
	return &res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
