package monitor

import (
	"errors"
	"time"
)

// AlertSeverity представляет серьезность алерта
type AlertSeverity string

const (
	SeverityWarning  AlertSeverity = "WARNING"
	SeverityCritical AlertSeverity = "CRITICAL"
)

// AlertStatus представляет статус жизненного цикла алерта
type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "ACTIVE"
	AlertStatusAcknowledged AlertStatus = "ACKNOWLEDGED"
	AlertStatusResolved     AlertStatus = "RESOLVED"
)

// Metric представляет тип витального показателя
type Metric string

const (
	MetricHeartRate   Metric = "heart_rate"
	MetricSpO2        Metric = "spo2"
	MetricSystolicBP  Metric = "systolic_bp"
	MetricDiastolicBP Metric = "diastolic_bp"
)

// RiskLevel представляет дискретный уровень риска
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelModerate RiskLevel = "MODERATE"
	RiskLevelHigh     RiskLevel = "HIGH"
)

// VitalReading представляет одно измерение витальных показателей.
// Поля-указатели отражают опциональность: отсутствующий показатель
// пропускается при оценке порогов, алерт по нему не создается.
type VitalReading struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	HeartRate   *float64  `json:"heart_rate,omitempty"`
	SpO2        *float64  `json:"spo2,omitempty"`
	SystolicBP  *float64  `json:"systolic_bp,omitempty"`
	DiastolicBP *float64  `json:"diastolic_bp,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// AlertCandidate представляет кандидата на алерт до прохождения дедупликации
type AlertCandidate struct {
	Metric   Metric        `json:"metric"`
	Severity AlertSeverity `json:"severity"`
	Message  string        `json:"message"`
	Value    float64       `json:"value"`
}

// Alert представляет сохраненный алерт
type Alert struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id"`
	Metric         Metric        `json:"metric"`
	Severity       AlertSeverity `json:"severity"`
	Status         AlertStatus   `json:"status"`
	Message        string        `json:"message"`
	Value          float64       `json:"value"`
	CreatedAt      time.Time     `json:"created_at"`
	AcknowledgedAt *time.Time    `json:"acknowledged_at,omitempty"`
	ResolvedAt     *time.Time    `json:"resolved_at,omitempty"`
}

// RiskAssessment представляет результат работы классификатора риска.
// Записи никогда не изменяются: новая оценка вытесняет старую, не удаляя ее.
type RiskAssessment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	RiskScore  float64   `json:"risk_score"`
	RiskLevel  RiskLevel `json:"risk_level"`
	ReadingID  string    `json:"reading_id,omitempty"`
	ComputedAt time.Time `json:"computed_at"`
}

// AlertStats содержит агрегированную статистику по алертам пользователя
type AlertStats struct {
	Total          int64 `json:"total"`
	Active         int64 `json:"active"`
	Acknowledged   int64 `json:"acknowledged"`
	Resolved       int64 `json:"resolved"`
	Warning        int64 `json:"warning"`
	Critical       int64 `json:"critical"`
}

// SubmitVitalsRequest представляет запрос на отправку измерения
type SubmitVitalsRequest struct {
	HeartRate   *float64 `json:"heart_rate,omitempty"`
	SpO2        *float64 `json:"spo2,omitempty"`
	SystolicBP  *float64 `json:"systolic_bp,omitempty"`
	DiastolicBP *float64 `json:"diastolic_bp,omitempty"`
}

// SubmitVitalsResponse представляет ответ на отправку измерения
type SubmitVitalsResponse struct {
	Reading *VitalReading   `json:"reading"`
	Alerts  []Alert         `json:"alerts"`
	Risk    *RiskAssessment `json:"risk,omitempty"`
}

// Ошибки
var (
	ErrValidation      = errors.New("validation failed")
	ErrAlertNotFound   = errors.New("alert not found")
	ErrReadingNotFound = errors.New("reading not found")
	ErrRiskNotFound    = errors.New("risk assessment not found")
	ErrAlreadyResolved = errors.New("alert already resolved")
	ErrNotOwner        = errors.New("alert belongs to another user")
)
