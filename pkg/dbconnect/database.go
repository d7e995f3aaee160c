package dbconnect

import "database/sql"

// Database hands out a shared connection pool.
type Database interface {
	Connect() (*sql.DB, error)
	Ping() error
	Close() error
}
