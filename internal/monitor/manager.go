package monitor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
)

// RiskClassifier определяет интерфейс классификатора риска.
// Реализация - обертка над внешним ML сервисом (internal/risk).
type RiskClassifier interface {
	Classify(ctx context.Context, reading *VitalReading) (score float64, level RiskLevel, err error)
	// Fallback возвращает безопасную оценку по умолчанию при недоступности модели
	Fallback() (score float64, level RiskLevel)
	FallbackEnabled() bool
}

// AlertBroadcaster определяет интерфейс для рассылки событий клиентам дашборда
type AlertBroadcaster interface {
	BroadcastAlert(alert *Alert)
	BroadcastRisk(assessment *RiskAssessment)
}

// ErrModelUnavailable сигнализирует о недоступности ML сервиса.
// Объявлена здесь, чтобы Manager мог различать причины отказа классификатора.
var ErrModelUnavailable = errors.New("ml model unavailable")

// Manager управляет пайплайном обработки измерений:
// валидация -> сохранение -> пороговая оценка -> дедупликация ->
// сохранение алертов -> рассылка -> классификация риска.
type Manager struct {
	repository  Repository
	cache       CacheStore
	gate        *DedupGate
	classifier  RiskClassifier
	broadcaster AlertBroadcaster
}

// NewManager создает новый Manager
func NewManager(repository Repository, cache CacheStore, gate *DedupGate, classifier RiskClassifier, broadcaster AlertBroadcaster) *Manager {
	return &Manager{
		repository:  repository,
		cache:       cache,
		gate:        gate,
		classifier:  classifier,
		broadcaster: broadcaster,
	}
}

// SubmitReading обрабатывает входящее измерение целиком.
// Ошибка классификатора никогда не проваливает запрос: измерение и алерты
// уже сохранены, риск в этом случае заменяется безопасным дефолтом.
func (m *Manager) SubmitReading(ctx context.Context, userID string, req *SubmitVitalsRequest) (*SubmitVitalsResponse, error) {
	if err := validateVitals(req); err != nil {
		return nil, err
	}

	now := time.Now()
	reading := &VitalReading{
		ID:          uuid.New().String(),
		UserID:      userID,
		HeartRate:   req.HeartRate,
		SpO2:        req.SpO2,
		SystolicBP:  req.SystolicBP,
		DiastolicBP: req.DiastolicBP,
		RecordedAt:  now,
		CreatedAt:   now,
	}

	if err := m.repository.SaveReading(ctx, reading); err != nil {
		return nil, fmt.Errorf("failed to save reading: %w", err)
	}

	if err := m.cache.SetLatestReading(ctx, reading); err != nil {
		log.Printf("[WARN] Failed to cache latest reading for user %s: %v", userID, err)
	}

	alerts := m.processAlerts(ctx, reading)

	response := &SubmitVitalsResponse{
		Reading: reading,
		Alerts:  alerts,
	}

	// Классификация риска после измерения; сбой не блокирует ответ
	if m.classifier != nil {
		assessment, err := m.classifyAndPersist(ctx, reading)
		if err != nil {
			log.Printf("[WARN] Risk classification failed for user %s: %v", userID, err)
		} else {
			response.Risk = assessment
		}
	}

	log.Printf("[VITALS] Processed reading %s for user %s: %d alert(s)",
		reading.ID, userID, len(alerts))

	return response, nil
}

// processAlerts прогоняет измерение через оценку порогов и дедупликацию,
// сохраняет выживших кандидатов и рассылает их подписчикам
func (m *Manager) processAlerts(ctx context.Context, reading *VitalReading) []Alert {
	candidates := EvaluateThresholds(reading)
	if len(candidates) == 0 {
		return []Alert{}
	}

	passed := m.gate.Filter(ctx, reading.UserID, candidates)

	alerts := make([]Alert, 0, len(passed))
	for _, candidate := range passed {
		alert := Alert{
			ID:        uuid.New().String(),
			UserID:    reading.UserID,
			Metric:    candidate.Metric,
			Severity:  candidate.Severity,
			Status:    AlertStatusActive,
			Message:   candidate.Message,
			Value:     candidate.Value,
			CreatedAt: time.Now(),
		}

		if err := m.repository.CreateAlert(ctx, &alert); err != nil {
			// Метка не ставится: несохраненный алерт не должен
			// подавлять метрику на все окно
			log.Printf("[ERROR] Failed to persist alert for user %s metric %s: %v",
				reading.UserID, candidate.Metric, err)
			continue
		}

		m.gate.Mark(ctx, reading.UserID, candidate.Metric)

		log.Printf("[ALERT] Created %s alert %s: user=%s metric=%s value=%.1f",
			alert.Severity, alert.ID, alert.UserID, alert.Metric, alert.Value)

		if m.broadcaster != nil {
			m.broadcaster.BroadcastAlert(&alert)
		}

		alerts = append(alerts, alert)
	}

	return alerts
}

// classifyAndPersist запускает классификатор и сохраняет успешную оценку.
// При недоступности модели возвращается fallback-оценка (не сохраняется).
func (m *Manager) classifyAndPersist(ctx context.Context, reading *VitalReading) (*RiskAssessment, error) {
	score, level, err := m.classifier.Classify(ctx, reading)
	if err != nil {
		if errors.Is(err, ErrModelUnavailable) && m.classifier.FallbackEnabled() {
			fbScore, fbLevel := m.classifier.Fallback()
			log.Printf("[WARN] ML service unavailable, using fallback risk %.2f/%s for user %s",
				fbScore, fbLevel, reading.UserID)
			return &RiskAssessment{
				UserID:     reading.UserID,
				RiskScore:  fbScore,
				RiskLevel:  fbLevel,
				ReadingID:  reading.ID,
				ComputedAt: time.Now(),
			}, nil
		}
		return nil, err
	}

	assessment := &RiskAssessment{
		ID:         uuid.New().String(),
		UserID:     reading.UserID,
		RiskScore:  score,
		RiskLevel:  level,
		ReadingID:  reading.ID,
		ComputedAt: time.Now(),
	}

	if err := m.repository.SaveRiskAssessment(ctx, assessment); err != nil {
		log.Printf("[WARN] Failed to persist risk assessment for user %s: %v", reading.UserID, err)
	}

	if err := m.cache.SetLatestRisk(ctx, assessment); err != nil {
		log.Printf("[WARN] Failed to cache risk assessment for user %s: %v", reading.UserID, err)
	}

	if m.broadcaster != nil {
		m.broadcaster.BroadcastRisk(assessment)
	}

	return assessment, nil
}

// PredictRisk выполняет классификацию по запросу, без сохранения измерения
func (m *Manager) PredictRisk(ctx context.Context, userID string, req *SubmitVitalsRequest) (*RiskAssessment, error) {
	if err := validateVitals(req); err != nil {
		return nil, err
	}

	reading := &VitalReading{
		UserID:      userID,
		HeartRate:   req.HeartRate,
		SpO2:        req.SpO2,
		SystolicBP:  req.SystolicBP,
		DiastolicBP: req.DiastolicBP,
		RecordedAt:  time.Now(),
	}

	return m.classifyAndPersist(ctx, reading)
}

// LatestReading возвращает последнее измерение пользователя (кэш, затем БД)
func (m *Manager) LatestReading(ctx context.Context, userID string) (*VitalReading, error) {
	reading, err := m.cache.GetLatestReading(ctx, userID)
	if err == nil {
		return reading, nil
	}
	if !errors.Is(err, ErrReadingNotFound) {
		log.Printf("[WARN] Cache lookup failed for latest reading of user %s: %v", userID, err)
	}

	return m.repository.GetLatestReading(ctx, userID)
}

// ListReadings возвращает измерения пользователя постранично
func (m *Manager) ListReadings(ctx context.Context, userID string, limit, offset int) ([]*VitalReading, error) {
	return m.repository.ListReadings(ctx, userID, limit, offset)
}

// LatestRisk возвращает последнюю оценку риска (кэш, затем БД)
func (m *Manager) LatestRisk(ctx context.Context, userID string) (*RiskAssessment, error) {
	assessment, err := m.cache.GetLatestRisk(ctx, userID)
	if err == nil {
		return assessment, nil
	}
	if !errors.Is(err, ErrRiskNotFound) {
		log.Printf("[WARN] Cache lookup failed for latest risk of user %s: %v", userID, err)
	}

	return m.repository.GetLatestRiskAssessment(ctx, userID)
}

// ListAlerts возвращает алерты пользователя с опциональным фильтром по статусу
func (m *Manager) ListAlerts(ctx context.Context, userID string, status AlertStatus, limit, offset int) ([]*Alert, error) {
	switch status {
	case "", AlertStatusActive, AlertStatusAcknowledged, AlertStatusResolved:
	default:
		return nil, fmt.Errorf("%w: unknown alert status %q", ErrValidation, status)
	}
	return m.repository.ListAlerts(ctx, userID, status, limit, offset)
}

// AlertStats возвращает агрегированную статистику алертов пользователя
func (m *Manager) AlertStats(ctx context.Context, userID string) (*AlertStats, error) {
	return m.repository.GetAlertStats(ctx, userID)
}

// AcknowledgeAlert переводит алерт ACTIVE -> ACKNOWLEDGED.
// Повторное подтверждение - no-op. Подтверждение решенного алерта запрещено.
func (m *Manager) AcknowledgeAlert(ctx context.Context, userID, alertID string) (*Alert, error) {
	alert, err := m.repository.GetAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}

	if alert.UserID != userID {
		return nil, ErrNotOwner
	}

	switch alert.Status {
	case AlertStatusResolved:
		return alert, ErrAlreadyResolved
	case AlertStatusAcknowledged:
		return alert, nil
	}

	now := time.Now()
	alert.Status = AlertStatusAcknowledged
	alert.AcknowledgedAt = &now

	if err := m.repository.UpdateAlert(ctx, alert); err != nil {
		return nil, err
	}

	log.Printf("[ALERT] Acknowledged alert %s by user %s", alertID, userID)
	return alert, nil
}

// ResolveAlert переводит алерт в RESOLVED из ACTIVE или ACKNOWLEDGED.
// Повторное решение возвращает ErrAlreadyResolved, не меняя resolved_at.
func (m *Manager) ResolveAlert(ctx context.Context, userID, alertID string) (*Alert, error) {
	alert, err := m.repository.GetAlert(ctx, alertID)
	if err != nil {
		return nil, err
	}

	if alert.UserID != userID {
		return nil, ErrNotOwner
	}

	if alert.Status == AlertStatusResolved {
		return alert, ErrAlreadyResolved
	}

	now := time.Now()
	alert.Status = AlertStatusResolved
	alert.ResolvedAt = &now

	if err := m.repository.UpdateAlert(ctx, alert); err != nil {
		return nil, err
	}

	log.Printf("[ALERT] Resolved alert %s by user %s", alertID, userID)
	return alert, nil
}

// validateVitals проверяет диапазоны входных показателей.
// Хотя бы один показатель должен присутствовать.
func validateVitals(req *SubmitVitalsRequest) error {
	if req.HeartRate == nil && req.SpO2 == nil && req.SystolicBP == nil && req.DiastolicBP == nil {
		return fmt.Errorf("%w: at least one vital sign is required", ErrValidation)
	}

	checks := []struct {
		name     string
		value    *float64
		min, max float64
	}{
		{"heart_rate", req.HeartRate, 0, 300},
		{"spo2", req.SpO2, 0, 100},
		{"systolic_bp", req.SystolicBP, 0, 300},
		{"diastolic_bp", req.DiastolicBP, 0, 200},
	}

	for _, check := range checks {
		if check.value == nil {
			continue
		}
		v := *check.value
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrValidation, check.name)
		}
		if v <= check.min || v > check.max {
			return fmt.Errorf("%w: %s %.1f outside range (%.0f, %.0f]",
				ErrValidation, check.name, v, check.min, check.max)
		}
	}

	return nil
}
