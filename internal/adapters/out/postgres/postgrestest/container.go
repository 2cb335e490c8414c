// Package postgrestest starts a disposable Postgres for integration tests and
// prepares the service schema in it.
package postgrestest

import (
	"context"
	"time"

	"restaurant/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Tables lists every table of the schema, children first, for TRUNCATE.
const Tables = "order_dish, orders, dishes"

// Database is a running container with a migrated GORM connection.
type Database struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine, connects through postgres.Open and applies
// postgres.Migrate.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	d := &Database{Container: container}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	db, err := postgres.Open(dsn, postgres.PoolConfig{MaxOpenConns: 10, MaxIdleConns: 5})
	if err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}
	d.DB = db

	if err = postgres.Migrate(ctx, db); err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	return d, nil
}

// Truncate empties every table and restarts identity sequences.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE " + Tables + " RESTART IDENTITY CASCADE").Error
}

// Terminate closes the connection and stops the container.
func (d *Database) Terminate(ctx context.Context) error {
	if d.DB != nil {
		_ = postgres.Close(d.DB)
	}
	if d.Container != nil {
		return d.Container.Terminate(ctx)
	}
	return nil
}
