package test_utils

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/finpercent/finpercent/internal/config"
	"github.com/finpercent/finpercent/internal/database"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	testDbName     = "finpercent"
	testDbUser     = "test_finpercent"
	testDbPassword = "test_finpercent"
	testDbSchema   = "finpercent"
)

var (
	containerOnce sync.Once
	sharedPool    *pgxpool.Pool
	sharedErr     error
)

func preparePostgresContainer(ctx context.Context) (*postgres.PostgresContainer, error) {
	pgContainer, err := postgres.Run(
		ctx, "postgres:18.1-alpine",
		postgres.WithDatabase(testDbName),
		postgres.WithUsername(testDbUser),
		postgres.WithPassword(testDbPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return nil, err
	}
	return pgContainer, nil
}

func startDatabase() (*pgxpool.Pool, error) {
	ctx := context.Background()

	container, err := preparePostgresContainer(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, err
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, err
	}
	log.Infof("Postgres container started at %s:%d", host, port.Int())

	cfg := config.Database{
		Host:   host,
		Port:   port.Int(),
		User:   testDbUser,
		Pass:   testDbPassword,
		Name:   testDbName,
		Schema: testDbSchema,
	}
	if err := database.Migrate(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}
	return database.Open(ctx, cfg)
}

// NewTestDB returns a pool connected to a migrated Postgres running in a
// container shared by all tests of the package. Tables are emptied before
// returning. The test is skipped when no container provider is available.
func NewTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	containerOnce.Do(func() {
		sharedPool, sharedErr = startDatabase()
	})
	require.NoError(t, sharedErr)

	_, err := sharedPool.Exec(context.Background(),
		`TRUNCATE users, user_preference, financial_data, google_auth RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return sharedPool
}
