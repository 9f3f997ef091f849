package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/Leplia/Diller-shop/internal/config"
)

// dsn builds the driver connection string. parseTime=true scans
// DATETIME into time.Time, loc=UTC keeps times consistent, and
// clientFoundRows=true makes UPDATE report matched rows instead of
// changed rows: the zero-affected-rows checks in the repositories mean
// "no such row", and without this flag an idempotent update of an
// existing row (re-blocking a blocked user, PUT with unchanged fields)
// would be mistaken for a missing one.
func dsn(cfg config.Config) string {
	auth := cfg.DBUser
	if cfg.DBPass != "" {
		auth = fmt.Sprintf("%s:%s", cfg.DBUser, cfg.DBPass)
	}
	return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC&clientFoundRows=true",
		auth, cfg.DBHost, cfg.DBPort, cfg.DBName)
}

// Open connects to MySQL using the loaded configuration and verifies
// the connection. The returned pool is shared by every repository;
// there is no other cross-request state.
func Open(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn(cfg))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
