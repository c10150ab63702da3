package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"fridgescan/internal/scan"
	"fridgescan/internal/session"
)

// Record summarizes one archived session.
type Record struct {
	ID              int64
	StartedAt       *time.Time
	CommittedAt     time.Time
	SourceImageRef  string
	ItemCount       int
	IdentifiedCount int
	UnknownCount    int
}

// Store manages the committed-session archive backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database and applies the
// schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Archive writes a session and its items as one committed record and returns
// the archive id. The item order is preserved as the detection order.
func (s *Store) Archive(ctx context.Context, state session.State) (int64, error) {
	if len(state.Items) == 0 {
		return 0, errors.New("session has no items to archive")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin archive: %w", err)
	}
	defer tx.Rollback()

	committedAt := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := tx.ExecContext(
		ctx,
		`INSERT INTO sessions (
            started_at, committed_at, source_image,
            item_count, identified_count, unknown_count
        ) VALUES (?, ?, ?, ?, ?, ?)`,
		nullableTime(state.StartedAt),
		committedAt,
		nullableString(state.SourceImageRef),
		len(state.Items),
		len(scan.IdentifiedItems(state.Items)),
		len(scan.UnknownItems(state.Items)),
	)
	if err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}

	sessionID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	for position, item := range state.Items {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO session_items (
                id, session_id, position, name, quantity, image_ref,
                detection_type, confidence, container_type, content_type,
                is_user_labeled, user_label, freshness, status
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			item.ID,
			sessionID,
			position,
			nullableString(item.Name),
			nullableString(item.Quantity),
			nullableString(item.ImageRef),
			string(item.DetectionType),
			item.Confidence,
			string(item.ContainerType),
			string(item.ContentType),
			boolToInt(item.IsUserLabeled),
			nullableString(item.UserLabel),
			string(item.Freshness),
			string(item.Status),
		)
		if err != nil {
			return 0, fmt.Errorf("insert item %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit archive: %w", err)
	}
	return sessionID, nil
}

// List returns archived sessions, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, started_at, committed_at, source_image,
               item_count, identified_count, unknown_count
        FROM sessions ORDER BY committed_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Get fetches one archived session summary by id, or nil when absent.
func (s *Store) Get(ctx context.Context, id int64) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT id, started_at, committed_at, source_image,
               item_count, identified_count, unknown_count
        FROM sessions WHERE id = ?`, id)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &record, nil
}

// Items returns an archived session's items in detection order.
func (s *Store) Items(ctx context.Context, sessionID int64) ([]scan.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, name, quantity, image_ref, detection_type, confidence,
               container_type, content_type, is_user_labeled, user_label,
               freshness, status
        FROM session_items WHERE session_id = ? ORDER BY position`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list session items: %w", err)
	}
	defer rows.Close()

	var items []scan.Item
	for rows.Next() {
		var (
			item          scan.Item
			name          sql.NullString
			quantity      sql.NullString
			imageRef      sql.NullString
			detectionType string
			containerType string
			contentType   string
			isUserLabeled int
			userLabel     sql.NullString
			freshness     string
			status        string
		)
		if err := rows.Scan(
			&item.ID,
			&name,
			&quantity,
			&imageRef,
			&detectionType,
			&item.Confidence,
			&containerType,
			&contentType,
			&isUserLabeled,
			&userLabel,
			&freshness,
			&status,
		); err != nil {
			return nil, err
		}
		item.Name = name.String
		item.Quantity = quantity.String
		item.ImageRef = imageRef.String
		item.DetectionType = scan.DetectionType(detectionType)
		item.ContainerType = scan.ContainerType(containerType)
		item.ContentType = scan.ContentType(contentType)
		item.IsUserLabeled = isUserLabeled != 0
		item.UserLabel = userLabel.String
		item.Freshness = scan.Freshness(freshness)
		item.Status = scan.Severity(status)
		items = append(items, item)
	}
	return items, rows.Err()
}

// Clear removes the entire archive.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session_items`); err != nil {
		return 0, fmt.Errorf("clear items: %w", err)
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions`)
	if err != nil {
		return 0, fmt.Errorf("clear sessions: %w", err)
	}
	return res.RowsAffected()
}

func scanRecord(scanner interface{ Scan(dest ...any) error }) (Record, error) {
	var (
		record       Record
		startedRaw   sql.NullString
		committedRaw string
		sourceImage  sql.NullString
	)
	if err := scanner.Scan(
		&record.ID,
		&startedRaw,
		&committedRaw,
		&sourceImage,
		&record.ItemCount,
		&record.IdentifiedCount,
		&record.UnknownCount,
	); err != nil {
		return Record{}, err
	}
	record.SourceImageRef = sourceImage.String
	if startedRaw.Valid {
		if started, err := parseTimeString(startedRaw.String); err == nil {
			record.StartedAt = &started
		}
	}
	if committed, err := parseTimeString(committedRaw); err == nil {
		record.CommittedAt = committed
	}
	return record, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.UTC().Format(time.RFC3339Nano)
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	return time.Parse(time.RFC3339Nano, value)
}
