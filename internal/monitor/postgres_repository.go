package monitor

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PostgresRepository реализует Repository для PostgreSQL (Infrastructure Layer)
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository создает новый экземпляр PostgresRepository
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{
		db: db,
	}
}

// NewPostgresRepositoryFromDSN создает репозиторий из строки подключения
func NewPostgresRepositoryFromDSN(dsn string) (*PostgresRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Настройки пула соединений
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := initSchema(db); err != nil {
		return nil, err
	}

	return &PostgresRepository{db: db}, nil
}

// initSchema создает таблицы при первом запуске.
// Пул соединений общий для всех модулей, поэтому схема создается здесь целиком.
func initSchema(db *sql.DB) error {
	schemaSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		failed_login_attempts INT NOT NULL DEFAULT 0,
		locked_until TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS vital_readings (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		heart_rate DOUBLE PRECISION,
		spo2 DOUBLE PRECISION,
		systolic_bp DOUBLE PRECISION,
		diastolic_bp DOUBLE PRECISION,
		recorded_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS alerts (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		metric TEXT NOT NULL,
		severity TEXT NOT NULL,
		status TEXT NOT NULL,
		message TEXT NOT NULL,
		value DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		acknowledged_at TIMESTAMPTZ,
		resolved_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS risk_assessments (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		risk_score DOUBLE PRECISION NOT NULL,
		risk_level TEXT NOT NULL,
		reading_id UUID,
		computed_at TIMESTAMPTZ NOT NULL
	);

	CREATE TABLE IF NOT EXISTS activity_sessions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL,
		activity_type TEXT NOT NULL,
		status TEXT NOT NULL,
		started_at TIMESTAMPTZ NOT NULL,
		stopped_at TIMESTAMPTZ,
		duration_ms BIGINT NOT NULL DEFAULT 0,
		notes TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_readings_user_recorded ON vital_readings(user_id, recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_alerts_user_created ON alerts(user_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_alerts_user_status ON alerts(user_id, status);
	CREATE INDEX IF NOT EXISTS idx_risk_user_computed ON risk_assessments(user_id, computed_at DESC);
	CREATE INDEX IF NOT EXISTS idx_sessions_user_started ON activity_sessions(user_id, started_at DESC);
	`

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close закрывает соединение с БД
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// DB возвращает нижележащий пул соединений (используется модулями auth/activity)
func (r *PostgresRepository) DB() *sql.DB {
	return r.db
}

// ===== Измерения =====

func (r *PostgresRepository) SaveReading(ctx context.Context, reading *VitalReading) error {
	query := `
		INSERT INTO vital_readings (id, user_id, heart_rate, spo2, systolic_bp, diastolic_bp, recorded_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		reading.ID,
		reading.UserID,
		reading.HeartRate,
		reading.SpO2,
		reading.SystolicBP,
		reading.DiastolicBP,
		reading.RecordedAt,
		reading.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save reading: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetLatestReading(ctx context.Context, userID string) (*VitalReading, error) {
	query := `
		SELECT id, user_id, heart_rate, spo2, systolic_bp, diastolic_bp, recorded_at, created_at
		FROM vital_readings
		WHERE user_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1
	`

	reading, err := scanReading(r.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrReadingNotFound
		}
		return nil, fmt.Errorf("failed to get latest reading: %w", err)
	}

	return reading, nil
}

func (r *PostgresRepository) ListReadings(ctx context.Context, userID string, limit, offset int) ([]*VitalReading, error) {
	query := `
		SELECT id, user_id, heart_rate, spo2, systolic_bp, diastolic_bp, recorded_at, created_at
		FROM vital_readings
		WHERE user_id = $1
		ORDER BY recorded_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list readings: %w", err)
	}
	defer rows.Close()

	var readings []*VitalReading

	for rows.Next() {
		reading, err := scanReading(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reading: %w", err)
		}
		readings = append(readings, reading)
	}

	return readings, rows.Err()
}

// rowScanner покрывает *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReading(row rowScanner) (*VitalReading, error) {
	var reading VitalReading

	err := row.Scan(
		&reading.ID,
		&reading.UserID,
		&reading.HeartRate,
		&reading.SpO2,
		&reading.SystolicBP,
		&reading.DiastolicBP,
		&reading.RecordedAt,
		&reading.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &reading, nil
}

// ===== Алерты =====

func (r *PostgresRepository) CreateAlert(ctx context.Context, alert *Alert) error {
	query := `
		INSERT INTO alerts (id, user_id, metric, severity, status, message, value, created_at, acknowledged_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		alert.ID,
		alert.UserID,
		alert.Metric,
		alert.Severity,
		alert.Status,
		alert.Message,
		alert.Value,
		alert.CreatedAt,
		alert.AcknowledgedAt,
		alert.ResolvedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetAlert(ctx context.Context, alertID string) (*Alert, error) {
	query := `
		SELECT id, user_id, metric, severity, status, message, value, created_at, acknowledged_at, resolved_at
		FROM alerts
		WHERE id = $1
	`

	alert, err := scanAlert(r.db.QueryRowContext(ctx, query, alertID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}

	return alert, nil
}

func (r *PostgresRepository) UpdateAlert(ctx context.Context, alert *Alert) error {
	query := `
		UPDATE alerts
		SET status = $2, acknowledged_at = $3, resolved_at = $4
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		alert.ID,
		alert.Status,
		alert.AcknowledgedAt,
		alert.ResolvedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to update alert: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrAlertNotFound
	}

	return nil
}

func (r *PostgresRepository) ListAlerts(ctx context.Context, userID string, status AlertStatus, limit, offset int) ([]*Alert, error) {
	query := `
		SELECT id, user_id, metric, severity, status, message, value, created_at, acknowledged_at, resolved_at
		FROM alerts
		WHERE user_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.QueryContext(ctx, query, userID, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*Alert

	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, alert)
	}

	return alerts, rows.Err()
}

func (r *PostgresRepository) GetAlertStats(ctx context.Context, userID string) (*AlertStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'ACTIVE'),
			COUNT(*) FILTER (WHERE status = 'ACKNOWLEDGED'),
			COUNT(*) FILTER (WHERE status = 'RESOLVED'),
			COUNT(*) FILTER (WHERE severity = 'WARNING'),
			COUNT(*) FILTER (WHERE severity = 'CRITICAL')
		FROM alerts
		WHERE user_id = $1
	`

	var stats AlertStats

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.Total,
		&stats.Active,
		&stats.Acknowledged,
		&stats.Resolved,
		&stats.Warning,
		&stats.Critical,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to get alert stats: %w", err)
	}

	return &stats, nil
}

func scanAlert(row rowScanner) (*Alert, error) {
	var alert Alert

	err := row.Scan(
		&alert.ID,
		&alert.UserID,
		&alert.Metric,
		&alert.Severity,
		&alert.Status,
		&alert.Message,
		&alert.Value,
		&alert.CreatedAt,
		&alert.AcknowledgedAt,
		&alert.ResolvedAt,
	)

	if err != nil {
		return nil, err
	}

	return &alert, nil
}

// ===== Оценки риска =====

func (r *PostgresRepository) SaveRiskAssessment(ctx context.Context, assessment *RiskAssessment) error {
	query := `
		INSERT INTO risk_assessments (id, user_id, risk_score, risk_level, reading_id, computed_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		assessment.ID,
		assessment.UserID,
		assessment.RiskScore,
		assessment.RiskLevel,
		assessment.ReadingID,
		assessment.ComputedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save risk assessment: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetLatestRiskAssessment(ctx context.Context, userID string) (*RiskAssessment, error) {
	query := `
		SELECT id, user_id, risk_score, risk_level, COALESCE(reading_id::text, ''), computed_at
		FROM risk_assessments
		WHERE user_id = $1
		ORDER BY computed_at DESC
		LIMIT 1
	`

	var assessment RiskAssessment

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&assessment.ID,
		&assessment.UserID,
		&assessment.RiskScore,
		&assessment.RiskLevel,
		&assessment.ReadingID,
		&assessment.ComputedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRiskNotFound
		}
		return nil, fmt.Errorf("failed to get latest risk assessment: %w", err)
	}

	return &assessment, nil
}
