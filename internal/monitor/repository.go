package monitor

import (
	"context"
	"time"
)

// Repository определяет интерфейс для работы с хранилищем (Domain Layer)
type Repository interface {
	// Измерения (immutable после записи)
	SaveReading(ctx context.Context, reading *VitalReading) error
	GetLatestReading(ctx context.Context, userID string) (*VitalReading, error)
	ListReadings(ctx context.Context, userID string, limit, offset int) ([]*VitalReading, error)

	// Алерты
	CreateAlert(ctx context.Context, alert *Alert) error
	GetAlert(ctx context.Context, alertID string) (*Alert, error)
	UpdateAlert(ctx context.Context, alert *Alert) error
	ListAlerts(ctx context.Context, userID string, status AlertStatus, limit, offset int) ([]*Alert, error)
	GetAlertStats(ctx context.Context, userID string) (*AlertStats, error)

	// Оценки риска (append-only)
	SaveRiskAssessment(ctx context.Context, assessment *RiskAssessment) error
	GetLatestRiskAssessment(ctx context.Context, userID string) (*RiskAssessment, error)
}

// CacheStore определяет интерфейс для работы с кэшем (Redis)
type CacheStore interface {
	// Метки дедупликации алертов
	DedupMarkExists(ctx context.Context, userID string, metric Metric) (bool, error)
	SetDedupMark(ctx context.Context, userID string, metric Metric, window time.Duration) error

	// Последнее измерение (перезаписывается целиком)
	SetLatestReading(ctx context.Context, reading *VitalReading) error
	GetLatestReading(ctx context.Context, userID string) (*VitalReading, error)

	// Последняя оценка риска
	SetLatestRisk(ctx context.Context, assessment *RiskAssessment) error
	GetLatestRisk(ctx context.Context, userID string) (*RiskAssessment, error)
}
