//go:build integration

package testinfra

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	appMigrations "github.com/yigit/courseboard/internal/app/migrations"
	"github.com/yigit/courseboard/internal/app/repositories"
	"github.com/yigit/courseboard/internal/config"
	"github.com/yigit/courseboard/internal/db"
	"github.com/yigit/courseboard/internal/seed"
	sqlMigrations "github.com/yigit/courseboard/migrations"
)

const (
	postgresImage    = "postgres:15-alpine"
	postgresPort     = "5432/tcp"
	postgresUser     = "courseboard"
	postgresPassword = "courseboard"
	postgresDB       = "courseboard_test"
)

// NewPostgres starts a PostgreSQL container, applies the migrations, seeds the
// default departments and returns a connected database. The container and
// pool are released when the test finishes.
func NewPostgres(t *testing.T) *db.PostgresDB {
	t.Helper()
	SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{postgresPort},
			Env: map[string]string{
				"POSTGRES_USER":     postgresUser,
				"POSTGRES_PASSWORD": postgresPassword,
				"POSTGRES_DB":       postgresDB,
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort(postgresPort),
			).WithDeadline(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { CleanupContainer(t, container) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, postgresPort)
	if err != nil {
		t.Fatalf("failed to get mapped port: %v", err)
	}

	database, err := db.NewPostgresDB(ctx, config.DatabaseConfig{
		Host:            host,
		Port:            port.Port(),
		User:            postgresUser,
		Password:        postgresPassword,
		DBName:          postgresDB,
		SSLMode:         "disable",
		MaxConns:        5,
		MinConns:        1,
		ConnMaxLifetime: "5m",
		AcquireTimeout:  "5s",
	})
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	t.Cleanup(database.Close)

	if err := appMigrations.NewMigrator(database.Pool).Migrate(ctx, sqlMigrations.Files); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := seed.CreateDefaultData(ctx, repositories.NewDepartmentRepository(database.Pool), zerolog.Nop()); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	return database
}
