package activity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresRepository - реализация Repository на PostgreSQL
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository создает репозиторий поверх существующего пула соединений
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateSession(ctx context.Context, session *Session) error {
	query := `
		INSERT INTO activity_sessions (id, user_id, activity_type, status, started_at, duration_ms, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.ActivityType,
		session.Status,
		session.StartedAt,
		session.DurationMs,
		session.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create activity session: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	query := `
		SELECT id, user_id, activity_type, status, started_at, stopped_at, duration_ms, COALESCE(notes, '')
		FROM activity_sessions
		WHERE id = $1
	`

	session := &Session{}
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(
		&session.ID,
		&session.UserID,
		&session.ActivityType,
		&session.Status,
		&session.StartedAt,
		&session.StoppedAt,
		&session.DurationMs,
		&session.Notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity session: %w", err)
	}

	return session, nil
}

func (r *PostgresRepository) UpdateSession(ctx context.Context, session *Session) error {
	query := `
		UPDATE activity_sessions
		SET status = $2, stopped_at = $3, duration_ms = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.Status,
		session.StoppedAt,
		session.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("failed to update activity session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (r *PostgresRepository) ListSessions(ctx context.Context, userID string, limit, offset int) ([]*Session, error) {
	query := `
		SELECT id, user_id, activity_type, status, started_at, stopped_at, duration_ms, COALESCE(notes, '')
		FROM activity_sessions
		WHERE user_id = $1
		ORDER BY started_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]*Session, 0)
	for rows.Next() {
		session := &Session{}
		err := rows.Scan(
			&session.ID,
			&session.UserID,
			&session.ActivityType,
			&session.Status,
			&session.StartedAt,
			&session.StoppedAt,
			&session.DurationMs,
			&session.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity session: %w", err)
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}
