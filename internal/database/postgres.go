package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdle     time.Duration
	ConnMaxLifetime time.Duration
}

// NewPostgres opens the pool and blocks until the database answers a ping.
// The wait is bounded: container orchestration usually brings the database
// up within seconds of the app, anything longer is treated as fatal.
func NewPostgres(cfg PostgresConfig) *sql.DB {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Fatalf("open postgres pool: %v", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdle)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	wait := 250 * time.Millisecond
	for deadline := time.Now().Add(20 * time.Second); ; {
		err := db.Ping()
		if err == nil {
			return db
		}
		if time.Now().After(deadline) {
			log.Fatalf("postgres unreachable, giving up: %v", err)
		}
		log.Printf("waiting for postgres (retry in %s): %v", wait, err)
		time.Sleep(wait)
		if wait < 2*time.Second {
			wait *= 2
		}
	}
}
