//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-booking/cmd/bootstrap"
	"hotel-booking/cmd/bootstrap/components"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/migrations"
	"hotel-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgImage    = "postgres:17"
)

var (
	pgOnce      sync.Once
	pgContainer *postgres.PostgresContainer
	pgErr       error
)

type endpoint struct {
	Host string
	Port nat.Port
}

// sharedPostgres starts one container per test binary; each suite gets its
// own database inside it. Ryuk reaps the container when the binary exits.
func sharedPostgres(t *testing.T) endpoint {
	t.Helper()

	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()
		pgContainer, pgErr = postgres.Run(ctx, pgImage,
			postgres.WithDatabase("postgres"),
			postgres.WithUsername(pgUser),
			postgres.WithPassword(pgPassword),
			postgres.BasicWaitStrategies(),
		)
	})
	require.NoError(t, pgErr, "start postgres container")

	ctx := context.Background()
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	return endpoint{Host: host, Port: port}
}

// createDatabase makes a throwaway database, migrated and dropped on cleanup.
func createDatabase(t *testing.T, ep endpoint) (*pgxpool.Pool, config.DBConfig) {
	t.Helper()

	name := "booking_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, ep.Host, ep.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection")
	defer admin.Close()
	_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
	require.NoError(t, err, "create database %s", name)

	cfg := config.DBConfig{
		Host:     ep.Host,
		Port:     ep.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 40,
	}
	pool, cleanup, err := db.Connect(cfg)
	require.NoError(t, err, "connect to %s", name)
	require.NoError(t, migrations.Apply(ctx, pool), "apply migrations")

	t.Cleanup(func() {
		cleanup()
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer dropCancel()
		admin, err := pgxpool.New(dropCtx, adminDSN)
		if err != nil {
			slog.Warn("drop test database: connect", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(dropCtx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop test database", "database", name, "error", err.Error())
		}
	})
	return pool, cfg
}

// startApp wires the production modules around the test pool. Redis and
// Kafka are left unconfigured, so reads are uncached and notifications
// go to the log publisher.
func startApp(t *testing.T, pool *pgxpool.Pool, dbCfg config.DBConfig) (*gin.Engine, config.Config) {
	t.Helper()

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.MetricsModule,
		bootstrap.CacheModule,
		bootstrap.NotifyModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("stop fx app", "error", err.Error())
		}
	})
	return router, cfg
}

// SharedSuite gives each e2e suite a running app over its own database.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool // direct access for seeding and assertions
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	t := s.T()

	pool, dbCfg := createDatabase(t, sharedPostgres(t))
	s.DB = pool
	s.Router, s.Config = startApp(t, pool, dbCfg)
}

// every subtest starts from empty tables
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}
