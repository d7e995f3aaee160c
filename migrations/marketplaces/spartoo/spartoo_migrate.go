package spartoo

import (
	"database/sql"
	"fmt"
	"log"

	"spartoo_api/pkg/dbconnect/migration"
)

const (
	SchemaMigration         = "spartoo.schema"
	RequestJournalMigration = "spartoo.request_journal"
)

// All lists the migrations of the request journal in the order they must run.
func All() []migration.MigrationInterface {
	return []migration.MigrationInterface{
		&CreateMigrationsTable{},
		&CreateSpartooSchema{},
		&CreateRequestJournalTable{},
	}
}

// CreateMigrationsTable creates the bookkeeping table used by every other migration.
type CreateMigrationsTable struct{}

func (m *CreateMigrationsTable) UpMigration(db *sql.DB) error {
	query := `
	CREATE SCHEMA IF NOT EXISTS migrations;
	CREATE TABLE IF NOT EXISTS migrations.migrations (
		name VARCHAR(255) PRIMARY KEY,
		time TIMESTAMP WITH TIME ZONE NOT NULL
	);`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

type CreateSpartooSchema struct{}

func (m *CreateSpartooSchema) UpMigration(db *sql.DB) error {
	if ok, err := checkAndSkipMigration(db, SchemaMigration); err != nil {
		return err
	} else if ok {
		return nil
	}
	query := `
	CREATE SCHEMA IF NOT EXISTS spartoo;`
	if err := executeAndMarkMigration(db, query, SchemaMigration); err != nil {
		return err
	}
	log.Printf("Migration '%s' completed successfully.", SchemaMigration)
	return nil
}

type CreateRequestJournalTable struct{}

func (m *CreateRequestJournalTable) UpMigration(db *sql.DB) error {
	if ok, err := checkAndSkipMigration(db, RequestJournalMigration); err != nil {
		return err
	} else if ok {
		return nil
	}
	query := `
	CREATE TABLE IF NOT EXISTS spartoo.request_journal (
		id BIGSERIAL PRIMARY KEY,
		endpoint VARCHAR(64) NOT NULL,
		param_names TEXT[] NOT NULL DEFAULT '{}',
		request_xml TEXT,
		status_code INT,
		error TEXT,
		duration_ms BIGINT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS request_journal_endpoint_created_idx
		ON spartoo.request_journal(endpoint, created_at DESC);`
	if err := executeAndMarkMigration(db, query, RequestJournalMigration); err != nil {
		return err
	}
	log.Printf("Migration '%s' completed successfully.", RequestJournalMigration)
	return nil
}

// Apply runs migrations in order and stops at the first failure.
func Apply(db *sql.DB, migrations ...migration.MigrationInterface) error {
	for _, m := range migrations {
		if err := m.UpMigration(db); err != nil {
			return fmt.Errorf("migration %T failed: %w", m, err)
		}
	}
	return nil
}

func checkAndSkipMigration(db *sql.DB, migrationName string) (bool, error) {
	var migrationExists bool
	err := db.QueryRow("SELECT EXISTS (SELECT 1 FROM migrations.migrations WHERE name = $1)", migrationName).Scan(&migrationExists)
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	if migrationExists {
		log.Printf("Migration '%s' already completed. Skipping.", migrationName)
	}
	return migrationExists, nil
}

func executeAndMarkMigration(db *sql.DB, query string, migrationName string) error {
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to execute migration '%s': %w", migrationName, err)
	}
	_, err := db.Exec("INSERT INTO migrations.migrations (name, time) VALUES ($1, current_timestamp)", migrationName)
	if err != nil {
		return fmt.Errorf("failed to mark migration '%s' as complete: %w", migrationName, err)
	}
	return nil
}
