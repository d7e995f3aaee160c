package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/lib/pq"
	"spartoo_api/pkg/middleware"
)

// xmlParam is the form field carrying the request document.
const xmlParam = "xml"

// JournalEntry is one recorded API call.
type JournalEntry struct {
	ID         int64
	Endpoint   string
	ParamNames []string
	RequestXML string
	StatusCode int
	Error      string
	Duration   time.Duration
	CreatedAt  time.Time
}

// JournalRepository stores API calls in spartoo.request_journal.
// Parameter values other than the request document are never stored, so the
// partner token does not end up in the database.
type JournalRepository struct {
	db *sql.DB
}

func NewJournalRepository(db *sql.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

var _ middleware.Recorder = (*JournalRepository)(nil)

func (r *JournalRepository) Record(ctx context.Context, endpoint string, params url.Values, resp *middleware.Response, callErr error, duration time.Duration) error {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var status sql.NullInt64
	if resp != nil {
		status = sql.NullInt64{Int64: int64(resp.StatusCode), Valid: true}
	}
	var errText sql.NullString
	if callErr != nil {
		errText = sql.NullString{String: callErr.Error(), Valid: true}
	}
	var requestXML sql.NullString
	if doc := params.Get(xmlParam); doc != "" {
		requestXML = sql.NullString{String: doc, Valid: true}
	}

	query := `
		INSERT INTO spartoo.request_journal (endpoint, param_names, request_xml, status_code, error, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, endpoint, pq.Array(names), requestXML, status, errText, duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to journal call to %s: %w", endpoint, err)
	}
	return nil
}

// Recent returns the latest calls to endpoint, newest first. An empty endpoint
// matches every call.
func (r *JournalRepository) Recent(ctx context.Context, endpoint string, limit int) ([]JournalEntry, error) {
	query := `
		SELECT id, endpoint, param_names, request_xml, status_code, error, duration_ms, created_at
		FROM spartoo.request_journal
		WHERE ($1 = '' OR endpoint = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, endpoint, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query request journal: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var (
			entry      JournalEntry
			names      pq.StringArray
			requestXML sql.NullString
			status     sql.NullInt64
			errText    sql.NullString
			durationMs int64
		)
		if err := rows.Scan(&entry.ID, &entry.Endpoint, &names, &requestXML, &status, &errText, &durationMs, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entry.ParamNames = names
		entry.RequestXML = requestXML.String
		entry.StatusCode = int(status.Int64)
		entry.Error = errText.String
		entry.Duration = time.Duration(durationMs) * time.Millisecond
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read request journal: %w", err)
	}
	return entries, nil
}
