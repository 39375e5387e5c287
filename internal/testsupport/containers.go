//go:build integration

// Package testsupport starts the Postgres and Redis containers integration tests run against.
// Each container is started once per test binary; every test gets its own database.
package testsupport

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/adslot-go/internal/migrate"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgErr       error

	redisOnce      sync.Once
	redisContainer testcontainers.Container
	redisErr       error
)

// Postgres returns a pool on a fresh, migrated database. The database is dropped when the test ends.
func Postgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgOnce.Do(func() {
		pgContainer, pgErr = start(testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
			Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off", "-c", "max_connections=200"},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			).WithDeadline(90 * time.Second),
			Labels: map[string]string{"purpose": "adslot-integration"},
		})
	})
	require.NoError(t, pgErr, "start postgres container")

	addr := endpoint(t, pgContainer)
	dbName := "adslot_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, addr)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err)
	defer admin.Close()

	_, err = admin.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "create test database")

	pool, err := pgxpool.New(ctx, fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", pgUser, pgPassword, addr, dbName))
	require.NoError(t, err)

	_, err = migrate.Up(ctx, pool)
	require.NoError(t, err, "apply migrations")

	t.Cleanup(func() {
		pool.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cleanup, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			t.Logf("drop %s: %v", dbName, err)
			return
		}
		defer cleanup.Close()

		if _, err := cleanup.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			t.Logf("drop %s: %v", dbName, err)
		}
	})

	return pool
}

// Redis returns a client on an empty logical database.
func Redis(t *testing.T) *goredis.Client {
	t.Helper()

	redisOnce.Do(func() {
		redisContainer, redisErr = start(testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "adslot-integration"},
		})
	})
	require.NoError(t, redisErr, "start redis container")

	rdb := goredis.NewClient(&goredis.Options{Addr: endpoint(t, redisContainer)})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, rdb.FlushDB(ctx).Err())

	t.Cleanup(func() { _ = rdb.Close() })

	return rdb
}

func start(req testcontainers.ContainerRequest) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// endpoint is host:port of the container's only exposed port.
func endpoint(t *testing.T, c testcontainers.Container) string {
	t.Helper()

	ep, err := c.Endpoint(context.Background(), "")
	require.NoError(t, err)

	return ep
}
