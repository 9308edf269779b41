package integration_test

import (
	"context"
	"os"
	"strconv"
	"sync"
	"testing"
	"time"

	"booking/internal/pkg/config"
	"booking/internal/pkg/postgres"
	"booking/internal/pkg/redis"
	"booking/pkg/logger/zap_adapter"
	"booking/pkg/querier"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const queryTimeout = 2 * time.Second

// Таблицы очищаются целиком между тестами, порядок не важен: внешних ключей нет.
var tables = []string{"booking_drafts", "notifications"}

var (
	querierInstance *querier.Querier
	querierErr      error
	querierOnce     sync.Once
)

// GetQuerier одно подключение на пакет. Переменные окружения подгружает Makefile
// из .env.test, поэтому dotenv здесь не вызывается.
func GetQuerier(t *testing.T) *querier.Querier {
	t.Helper()

	querierOnce.Do(func() {
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		connPool, err := postgres.NewConnPool(context.Background(), zap_adapter.NewNopAdapter(), cfg)
		if err != nil {
			querierErr = err
			return
		}
		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	})
	require.NoError(t, querierErr, "postgres is required for integration tests")

	return querierInstance
}

// GetRedisClient пропускает тест, если REDIS_ADDR не задан.
func GetRedisClient(t *testing.T) *goredis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR is not set")
	}
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := redis.NewClient(ctx, zap_adapter.NewNopAdapter(), &config.Redis{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

// SetupDB выполняет подготовительный SQL, пустая строка допустима.
func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	q := GetQuerier(t)
	if setupSql == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	_, err := q.Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	for _, table := range tables {
		_, err := GetQuerier(t).Exec(ctx, "DELETE FROM "+table)
		require.NoError(t, err)
	}
}
