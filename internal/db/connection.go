package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// OpenSessionDB opens the Postgres pool that backs the session store and
// verifies it with a ping.
func OpenSessionDB(ctx context.Context, dbURL string) (*sql.DB, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("database URL not set")
	}

	sessionDB, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}
	sessionDB.SetMaxOpenConns(10)
	sessionDB.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := sessionDB.PingContext(pingCtx); err != nil {
		sessionDB.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return sessionDB, nil
}
