// Package postgres keeps service checkpoints in PostgreSQL.
//
// The schema is owned by goose migrations embedded in the binary; Migrate
// applies them over a lib/pq connection before the GORM connection used by the
// checkpoint store is opened.
//
// Usage:
//
//	dsn := postgres.DSN(host, port, user, password, name, sslmode)
//	if err := postgres.Migrate(ctx, dsn); err != nil {
//	    return err
//	}
//	db, err := postgres.Open(dsn)
//	if err != nil {
//	    return err
//	}
//	store := checkpointrepo.NewGormCheckpointStore(db, 5)
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// DSN builds a key/value connection string accepted by both lib/pq and pgx.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode)
}

// Migrate brings the schema up to date.
func Migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err = db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	dir, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, dir)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Open connects GORM to dsn.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	return db, nil
}
