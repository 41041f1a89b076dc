package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// FakeRepository для тестирования - in-memory хранилище
type FakeRepository struct {
	mu          sync.Mutex
	readings    []*VitalReading
	alerts      map[string]*Alert
	assessments []*RiskAssessment

	// Количество ближайших вызовов CreateAlert, которые должны упасть
	createAlertFailures int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		alerts: make(map[string]*Alert),
	}
}

func (f *FakeRepository) SaveReading(ctx context.Context, reading *VitalReading) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readings = append(f.readings, reading)
	return nil
}

func (f *FakeRepository) GetLatestReading(ctx context.Context, userID string) (*VitalReading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.readings) - 1; i >= 0; i-- {
		if f.readings[i].UserID == userID {
			return f.readings[i], nil
		}
	}
	return nil, ErrReadingNotFound
}

func (f *FakeRepository) ListReadings(ctx context.Context, userID string, limit, offset int) ([]*VitalReading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*VitalReading
	for _, r := range f.readings {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *FakeRepository) CreateAlert(ctx context.Context, alert *Alert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createAlertFailures > 0 {
		f.createAlertFailures--
		return errors.New("storage unavailable")
	}
	stored := *alert
	f.alerts[alert.ID] = &stored
	return nil
}

func (f *FakeRepository) GetAlert(ctx context.Context, alertID string) (*Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	alert, ok := f.alerts[alertID]
	if !ok {
		return nil, ErrAlertNotFound
	}
	copied := *alert
	return &copied, nil
}

func (f *FakeRepository) UpdateAlert(ctx context.Context, alert *Alert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.alerts[alert.ID]; !ok {
		return ErrAlertNotFound
	}
	stored := *alert
	f.alerts[alert.ID] = &stored
	return nil
}

func (f *FakeRepository) ListAlerts(ctx context.Context, userID string, status AlertStatus, limit, offset int) ([]*Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*Alert
	for _, alert := range f.alerts {
		if alert.UserID != userID {
			continue
		}
		if status != "" && alert.Status != status {
			continue
		}
		copied := *alert
		result = append(result, &copied)
	}
	return result, nil
}

func (f *FakeRepository) GetAlertStats(ctx context.Context, userID string) (*AlertStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stats := &AlertStats{}
	for _, alert := range f.alerts {
		if alert.UserID != userID {
			continue
		}
		stats.Total++
		switch alert.Status {
		case AlertStatusActive:
			stats.Active++
		case AlertStatusAcknowledged:
			stats.Acknowledged++
		case AlertStatusResolved:
			stats.Resolved++
		}
		switch alert.Severity {
		case SeverityWarning:
			stats.Warning++
		case SeverityCritical:
			stats.Critical++
		}
	}
	return stats, nil
}

func (f *FakeRepository) SaveRiskAssessment(ctx context.Context, assessment *RiskAssessment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assessments = append(f.assessments, assessment)
	return nil
}

func (f *FakeRepository) GetLatestRiskAssessment(ctx context.Context, userID string) (*RiskAssessment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.assessments) - 1; i >= 0; i-- {
		if f.assessments[i].UserID == userID {
			return f.assessments[i], nil
		}
	}
	return nil, ErrRiskNotFound
}

// FakeClassifier для тестирования
type FakeClassifier struct {
	score           float64
	level           RiskLevel
	err             error
	fallbackEnabled bool
}

func (f *FakeClassifier) Classify(ctx context.Context, reading *VitalReading) (float64, RiskLevel, error) {
	if f.err != nil {
		return 0, "", f.err
	}
	return f.score, f.level, nil
}

func (f *FakeClassifier) Fallback() (float64, RiskLevel) {
	return 0.10, RiskLevelLow
}

func (f *FakeClassifier) FallbackEnabled() bool {
	return f.fallbackEnabled
}

// FakeBroadcaster собирает разосланные события
type FakeBroadcaster struct {
	mu     sync.Mutex
	alerts []*Alert
	risks  []*RiskAssessment
}

func (f *FakeBroadcaster) BroadcastAlert(alert *Alert) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, alert)
}

func (f *FakeBroadcaster) BroadcastRisk(assessment *RiskAssessment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.risks = append(f.risks, assessment)
}

func newTestManager(classifier RiskClassifier) (*Manager, *FakeRepository, *FakeCacheStore, *FakeBroadcaster) {
	repo := NewFakeRepository()
	cache := NewFakeCacheStore()
	gate := NewDedupGate(cache, 5*time.Minute)
	broadcaster := &FakeBroadcaster{}
	return NewManager(repo, cache, gate, classifier, broadcaster), repo, cache, broadcaster
}

func TestManager_SubmitReading_CreatesAlertAndRisk(t *testing.T) {
	classifier := &FakeClassifier{score: 0.71, level: RiskLevelHigh}
	manager, repo, _, broadcaster := newTestManager(classifier)

	ctx := context.Background()
	response, err := manager.SubmitReading(ctx, "user1", &SubmitVitalsRequest{
		HeartRate: fptr(185),
		SpO2:      fptr(97),
	})
	if err != nil {
		t.Fatalf("SubmitReading failed: %v", err)
	}

	if len(response.Alerts) != 1 {
		t.Fatalf("Expected 1 alert, got %d", len(response.Alerts))
	}
	alert := response.Alerts[0]
	if alert.Metric != MetricHeartRate || alert.Severity != SeverityCritical {
		t.Errorf("Unexpected alert: metric=%s severity=%s", alert.Metric, alert.Severity)
	}
	if alert.Status != AlertStatusActive {
		t.Errorf("Expected new alert to be ACTIVE, got %s", alert.Status)
	}

	if response.Risk == nil {
		t.Fatal("Expected risk assessment in response")
	}
	if response.Risk.RiskScore != 0.71 || response.Risk.RiskLevel != RiskLevelHigh {
		t.Errorf("Unexpected risk: score=%.2f level=%s", response.Risk.RiskScore, response.Risk.RiskLevel)
	}

	// Алерт и оценка сохранены и разосланы
	if len(repo.alerts) != 1 {
		t.Errorf("Expected 1 persisted alert, got %d", len(repo.alerts))
	}
	if len(repo.assessments) != 1 {
		t.Errorf("Expected 1 persisted assessment, got %d", len(repo.assessments))
	}
	if len(broadcaster.alerts) != 1 || len(broadcaster.risks) != 1 {
		t.Errorf("Expected 1 broadcast alert and 1 broadcast risk, got %d and %d",
			len(broadcaster.alerts), len(broadcaster.risks))
	}
}

func TestManager_SubmitReading_DedupSuppressesSecondAlert(t *testing.T) {
	classifier := &FakeClassifier{score: 0.2, level: RiskLevelLow}
	manager, repo, cache, _ := newTestManager(classifier)

	ctx := context.Background()
	req := &SubmitVitalsRequest{HeartRate: fptr(185)}

	first, err := manager.SubmitReading(ctx, "user1", req)
	if err != nil {
		t.Fatalf("First SubmitReading failed: %v", err)
	}
	if len(first.Alerts) != 1 {
		t.Fatalf("Expected first submission to produce alert, got %d", len(first.Alerts))
	}

	// Повтор через 2 минуты - алерт подавлен, измерение сохранено
	cache.Advance(2 * time.Minute)
	second, err := manager.SubmitReading(ctx, "user1", req)
	if err != nil {
		t.Fatalf("Second SubmitReading failed: %v", err)
	}
	if len(second.Alerts) != 0 {
		t.Errorf("Expected duplicate alert to be suppressed, got %d", len(second.Alerts))
	}
	if len(repo.readings) != 2 {
		t.Errorf("Expected both readings persisted, got %d", len(repo.readings))
	}

	// Через 6 минут после первого алерта окно истекло
	cache.Advance(4 * time.Minute)
	third, err := manager.SubmitReading(ctx, "user1", req)
	if err != nil {
		t.Fatalf("Third SubmitReading failed: %v", err)
	}
	if len(third.Alerts) != 1 {
		t.Errorf("Expected alert after window expiry, got %d", len(third.Alerts))
	}
}

func TestManager_SubmitReading_FailedPersistDoesNotSuppressRetry(t *testing.T) {
	classifier := &FakeClassifier{score: 0.2, level: RiskLevelLow}
	manager, repo, cache, _ := newTestManager(classifier)
	repo.createAlertFailures = 1

	ctx := context.Background()
	req := &SubmitVitalsRequest{HeartRate: fptr(185)}

	// Хранилище падает - алерт теряется, но метка дедупликации не ставится
	first, err := manager.SubmitReading(ctx, "user1", req)
	if err != nil {
		t.Fatalf("First SubmitReading failed: %v", err)
	}
	if len(first.Alerts) != 0 {
		t.Fatalf("Expected no alerts while storage is down, got %d", len(first.Alerts))
	}

	// Хранилище ожило через минуту - алерт должен пройти, а не
	// подавляться до конца окна
	cache.Advance(time.Minute)
	second, err := manager.SubmitReading(ctx, "user1", req)
	if err != nil {
		t.Fatalf("Second SubmitReading failed: %v", err)
	}
	if len(second.Alerts) != 1 {
		t.Fatalf("Expected alert after storage recovery, got %d", len(second.Alerts))
	}
	if len(repo.alerts) != 1 {
		t.Errorf("Expected 1 persisted alert, got %d", len(repo.alerts))
	}

	// Сохраненный алерт поставил метку: дальше дубликаты подавляются
	cache.Advance(time.Minute)
	third, err := manager.SubmitReading(ctx, "user1", req)
	if err != nil {
		t.Fatalf("Third SubmitReading failed: %v", err)
	}
	if len(third.Alerts) != 0 {
		t.Errorf("Expected duplicate suppressed after successful persist, got %d", len(third.Alerts))
	}
}

func TestManager_SubmitReading_FallbackNotPersisted(t *testing.T) {
	classifier := &FakeClassifier{err: ErrModelUnavailable, fallbackEnabled: true}
	manager, repo, _, _ := newTestManager(classifier)

	response, err := manager.SubmitReading(context.Background(), "user1", &SubmitVitalsRequest{
		HeartRate: fptr(72),
	})
	if err != nil {
		t.Fatalf("SubmitReading failed: %v", err)
	}

	if response.Risk == nil {
		t.Fatal("Expected fallback risk in response")
	}
	if response.Risk.RiskScore != 0.10 || response.Risk.RiskLevel != RiskLevelLow {
		t.Errorf("Expected fallback 0.10/LOW, got %.2f/%s",
			response.Risk.RiskScore, response.Risk.RiskLevel)
	}
	if response.Risk.ID != "" {
		t.Errorf("Expected fallback assessment to have no ID, got %q", response.Risk.ID)
	}

	// Fallback-оценка не попадает в хранилище
	if len(repo.assessments) != 0 {
		t.Errorf("Expected no persisted assessments, got %d", len(repo.assessments))
	}
}

func TestManager_SubmitReading_ClassifierFailureDoesNotBlock(t *testing.T) {
	classifier := &FakeClassifier{err: ErrModelUnavailable, fallbackEnabled: false}
	manager, repo, _, _ := newTestManager(classifier)

	response, err := manager.SubmitReading(context.Background(), "user1", &SubmitVitalsRequest{
		HeartRate: fptr(185),
	})
	if err != nil {
		t.Fatalf("Expected submission to succeed despite classifier failure: %v", err)
	}

	if response.Risk != nil {
		t.Errorf("Expected no risk in response, got %+v", response.Risk)
	}
	if len(response.Alerts) != 1 {
		t.Errorf("Expected alert despite classifier failure, got %d", len(response.Alerts))
	}
	if len(repo.readings) != 1 {
		t.Errorf("Expected reading persisted, got %d", len(repo.readings))
	}
}

func TestManager_SubmitReading_Validation(t *testing.T) {
	manager, _, _, _ := newTestManager(&FakeClassifier{})

	cases := []struct {
		name string
		req  *SubmitVitalsRequest
	}{
		{"empty request", &SubmitVitalsRequest{}},
		{"negative heart rate", &SubmitVitalsRequest{HeartRate: fptr(-10)}},
		{"spo2 above 100", &SubmitVitalsRequest{SpO2: fptr(105)}},
		{"zero systolic", &SubmitVitalsRequest{SystolicBP: fptr(0)}},
	}

	for _, tc := range cases {
		_, err := manager.SubmitReading(context.Background(), "user1", tc.req)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("%s: expected ErrValidation, got %v", tc.name, err)
		}
	}
}

func TestManager_AcknowledgeAlert_Transitions(t *testing.T) {
	manager, _, _, _ := newTestManager(&FakeClassifier{score: 0.1, level: RiskLevelLow})

	ctx := context.Background()
	response, err := manager.SubmitReading(ctx, "user1", &SubmitVitalsRequest{HeartRate: fptr(185)})
	if err != nil {
		t.Fatalf("SubmitReading failed: %v", err)
	}
	alertID := response.Alerts[0].ID

	acked, err := manager.AcknowledgeAlert(ctx, "user1", alertID)
	if err != nil {
		t.Fatalf("AcknowledgeAlert failed: %v", err)
	}
	if acked.Status != AlertStatusAcknowledged {
		t.Errorf("Expected ACKNOWLEDGED, got %s", acked.Status)
	}
	if acked.AcknowledgedAt == nil {
		t.Error("Expected acknowledged_at to be set")
	}

	// Повторное подтверждение - идемпотентный no-op
	ackedAgain, err := manager.AcknowledgeAlert(ctx, "user1", alertID)
	if err != nil {
		t.Fatalf("Second AcknowledgeAlert failed: %v", err)
	}
	if !ackedAgain.AcknowledgedAt.Equal(*acked.AcknowledgedAt) {
		t.Errorf("Expected acknowledged_at unchanged, got %v vs %v",
			ackedAgain.AcknowledgedAt, acked.AcknowledgedAt)
	}

	// Чужой алерт недоступен
	if _, err := manager.AcknowledgeAlert(ctx, "user2", alertID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("Expected ErrNotOwner for foreign alert, got %v", err)
	}

	// Несуществующий алерт
	if _, err := manager.AcknowledgeAlert(ctx, "user1", "missing"); !errors.Is(err, ErrAlertNotFound) {
		t.Errorf("Expected ErrAlertNotFound, got %v", err)
	}
}

func TestManager_ResolveAlert_Idempotence(t *testing.T) {
	manager, _, _, _ := newTestManager(&FakeClassifier{score: 0.1, level: RiskLevelLow})

	ctx := context.Background()
	response, err := manager.SubmitReading(ctx, "user1", &SubmitVitalsRequest{HeartRate: fptr(185)})
	if err != nil {
		t.Fatalf("SubmitReading failed: %v", err)
	}
	alertID := response.Alerts[0].ID

	resolved, err := manager.ResolveAlert(ctx, "user1", alertID)
	if err != nil {
		t.Fatalf("ResolveAlert failed: %v", err)
	}
	if resolved.Status != AlertStatusResolved {
		t.Errorf("Expected RESOLVED, got %s", resolved.Status)
	}
	if resolved.ResolvedAt == nil {
		t.Fatal("Expected resolved_at to be set")
	}
	firstResolvedAt := *resolved.ResolvedAt

	// Повторное решение возвращает ErrAlreadyResolved с неизмененным resolved_at
	time.Sleep(10 * time.Millisecond)
	again, err := manager.ResolveAlert(ctx, "user1", alertID)
	if !errors.Is(err, ErrAlreadyResolved) {
		t.Fatalf("Expected ErrAlreadyResolved, got %v", err)
	}
	if again == nil {
		t.Fatal("Expected alert alongside ErrAlreadyResolved")
	}
	if !again.ResolvedAt.Equal(firstResolvedAt) {
		t.Errorf("Expected resolved_at unchanged, got %v vs %v", again.ResolvedAt, firstResolvedAt)
	}
}

func TestManager_ResolveAlert_FromAcknowledged(t *testing.T) {
	manager, _, _, _ := newTestManager(&FakeClassifier{score: 0.1, level: RiskLevelLow})

	ctx := context.Background()
	response, err := manager.SubmitReading(ctx, "user1", &SubmitVitalsRequest{HeartRate: fptr(185)})
	if err != nil {
		t.Fatalf("SubmitReading failed: %v", err)
	}
	alertID := response.Alerts[0].ID

	if _, err := manager.AcknowledgeAlert(ctx, "user1", alertID); err != nil {
		t.Fatalf("AcknowledgeAlert failed: %v", err)
	}

	resolved, err := manager.ResolveAlert(ctx, "user1", alertID)
	if err != nil {
		t.Fatalf("ResolveAlert from ACKNOWLEDGED failed: %v", err)
	}
	if resolved.Status != AlertStatusResolved {
		t.Errorf("Expected RESOLVED, got %s", resolved.Status)
	}
	// acknowledged_at сохраняется при решении
	if resolved.AcknowledgedAt == nil {
		t.Error("Expected acknowledged_at to survive resolve")
	}
}

func TestManager_AcknowledgeResolvedAlert_Rejected(t *testing.T) {
	manager, _, _, _ := newTestManager(&FakeClassifier{score: 0.1, level: RiskLevelLow})

	ctx := context.Background()
	response, err := manager.SubmitReading(ctx, "user1", &SubmitVitalsRequest{HeartRate: fptr(185)})
	if err != nil {
		t.Fatalf("SubmitReading failed: %v", err)
	}
	alertID := response.Alerts[0].ID

	if _, err := manager.ResolveAlert(ctx, "user1", alertID); err != nil {
		t.Fatalf("ResolveAlert failed: %v", err)
	}

	if _, err := manager.AcknowledgeAlert(ctx, "user1", alertID); !errors.Is(err, ErrAlreadyResolved) {
		t.Errorf("Expected ErrAlreadyResolved when acknowledging resolved alert, got %v", err)
	}
}

func TestManager_ListAlerts_StatusValidation(t *testing.T) {
	manager, _, _, _ := newTestManager(&FakeClassifier{})

	if _, err := manager.ListAlerts(context.Background(), "user1", "BOGUS", 10, 0); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for unknown status, got %v", err)
	}

	if _, err := manager.ListAlerts(context.Background(), "user1", AlertStatusActive, 10, 0); err != nil {
		t.Errorf("Expected valid status to pass, got %v", err)
	}
}

func TestManager_LatestReading_CacheFirst(t *testing.T) {
	manager, repo, cache, _ := newTestManager(&FakeClassifier{score: 0.1, level: RiskLevelLow})

	ctx := context.Background()
	if _, err := manager.SubmitReading(ctx, "user1", &SubmitVitalsRequest{HeartRate: fptr(72)}); err != nil {
		t.Fatalf("SubmitReading failed: %v", err)
	}

	fromCache, err := manager.LatestReading(ctx, "user1")
	if err != nil {
		t.Fatalf("LatestReading failed: %v", err)
	}
	if deref(fromCache.HeartRate) != 72 {
		t.Errorf("Expected hr=72 from cache, got %.1f", deref(fromCache.HeartRate))
	}

	// После очистки кэша читаем из БД
	cache.latestReadings = make(map[string]*VitalReading)
	fromRepo, err := manager.LatestReading(ctx, "user1")
	if err != nil {
		t.Fatalf("LatestReading from repository failed: %v", err)
	}
	if fromRepo.ID != repo.readings[0].ID {
		t.Errorf("Expected reading from repository, got %s", fromRepo.ID)
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
