package postgres

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/lib/pq"
	"spartoo_api/config"
	"spartoo_api/pkg/logger"
)

const (
	defaultMaxRetries = 10
	dbMaxOpenConns    = 20
	defaultRetryDelay = 5 * time.Second
)

// PostgresDatabase lazily opens a single shared pool and retries while the
// server is not reachable yet.
type PostgresDatabase struct {
	config.DbConfig
	log        logger.Logger
	maxRetries int
	retryDelay time.Duration
	open       func(driver, dsn string) (*sql.DB, error)

	db *sql.DB
	mu sync.Mutex
}

func NewPgConnector(dbConfig config.DbConfig, log logger.Logger) *PostgresDatabase {
	if log == nil {
		log = logger.Nop{}
	}
	return &PostgresDatabase{
		DbConfig:   dbConfig,
		log:        log,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
		open:       sql.Open,
	}
}

func (pg *PostgresDatabase) Connect() (*sql.DB, error) {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	if pg.db != nil {
		return pg.db, nil
	}

	conStr := pg.GetConnectionString()
	var lastErr error
	for i := 0; i < pg.maxRetries; i++ {
		if i > 0 {
			time.Sleep(pg.retryDelay)
		}
		db, err := pg.open("postgres", conStr)
		if err != nil {
			pg.log.Log("Failed to connect to Postgres (attempt %d/%d): %v", i+1, pg.maxRetries, err)
			lastErr = err
			continue
		}

		db.SetMaxOpenConns(dbMaxOpenConns)

		if err := db.Ping(); err != nil {
			pg.log.Log("Failed to ping Postgres db (attempt %d/%d): %v", i+1, pg.maxRetries, err)
			db.Close()
			lastErr = err
			continue
		}

		pg.log.Log("Successfully connected to Postgres")
		pg.db = db
		return db, nil
	}
	return nil, fmt.Errorf("postgres unreachable after %d attempts: %w", pg.maxRetries, lastErr)
}

func (pg *PostgresDatabase) Ping() error {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	if pg.db == nil {
		return fmt.Errorf("database connection is not established")
	}

	if err := pg.db.Ping(); err != nil {
		pg.db.Close()
		pg.db = nil
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

func (pg *PostgresDatabase) Close() error {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	if pg.db == nil {
		return nil
	}
	err := pg.db.Close()
	pg.db = nil
	return err
}
