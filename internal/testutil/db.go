package testutil

import (
	"context"
	"os"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// SetupTestDB возвращает DSN тестовой PostgreSQL.
// Если DB_ADDR задан, используется он (для CI/CD), иначе поднимается
// testcontainer postgres:16-alpine, который удаляется при завершении теста.
// Миграции применяет вызывающий код.
func SetupTestDB(tb testing.TB) string {
	tb.Helper()

	if testing.Short() {
		tb.Skip("skipping database tests in short mode")
	}

	if dsn := os.Getenv("DB_ADDR"); dsn != "" {
		return dsn
	}

	ctx := context.Background()

	// Запускаем PostgreSQL 16 через специализированный модуль
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		tb.Fatalf("starting postgres container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			tb.Logf("terminating postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		tb.Fatalf("getting connection string: %v", err)
	}
	return dsn
}
