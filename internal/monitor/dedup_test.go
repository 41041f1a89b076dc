package monitor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// FakeCacheStore для тестирования - хранит метки дедупликации в памяти
type FakeCacheStore struct {
	mu    sync.Mutex
	marks map[string]time.Time // key -> истечение метки

	now time.Time // управляемое время

	lookupErr error // если задана, DedupMarkExists возвращает ошибку

	latestReadings map[string]*VitalReading
	latestRisks    map[string]*RiskAssessment
}

func NewFakeCacheStore() *FakeCacheStore {
	return &FakeCacheStore{
		marks:          make(map[string]time.Time),
		now:            time.Now(),
		latestReadings: make(map[string]*VitalReading),
		latestRisks:    make(map[string]*RiskAssessment),
	}
}

func (f *FakeCacheStore) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func (f *FakeCacheStore) DedupMarkExists(ctx context.Context, userID string, metric Metric) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lookupErr != nil {
		return false, f.lookupErr
	}
	expiry, ok := f.marks[userID+":"+string(metric)]
	return ok && f.now.Before(expiry), nil
}

func (f *FakeCacheStore) SetDedupMark(ctx context.Context, userID string, metric Metric, window time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.marks[userID+":"+string(metric)] = f.now.Add(window)
	return nil
}

func (f *FakeCacheStore) SetLatestReading(ctx context.Context, reading *VitalReading) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latestReadings[reading.UserID] = reading
	return nil
}

func (f *FakeCacheStore) GetLatestReading(ctx context.Context, userID string) (*VitalReading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reading, ok := f.latestReadings[userID]
	if !ok {
		return nil, ErrReadingNotFound
	}
	return reading, nil
}

func (f *FakeCacheStore) SetLatestRisk(ctx context.Context, assessment *RiskAssessment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latestRisks[assessment.UserID] = assessment
	return nil
}

func (f *FakeCacheStore) GetLatestRisk(ctx context.Context, userID string) (*RiskAssessment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	assessment, ok := f.latestRisks[userID]
	if !ok {
		return nil, ErrRiskNotFound
	}
	return assessment, nil
}

func heartRateCandidate() []AlertCandidate {
	return []AlertCandidate{
		{Metric: MetricHeartRate, Severity: SeverityCritical, Message: "hr too high", Value: 185},
	}
}

func TestDedupGate_SuppressWithinWindow(t *testing.T) {
	cache := NewFakeCacheStore()
	gate := NewDedupGate(cache, 5*time.Minute)

	ctx := context.Background()

	passed := gate.Filter(ctx, "user1", heartRateCandidate())
	if len(passed) != 1 {
		t.Fatalf("Expected first alert to pass, got %d", len(passed))
	}
	gate.Mark(ctx, "user1", MetricHeartRate)

	// Повтор через 2 минуты - подавляется
	cache.Advance(2 * time.Minute)
	passed = gate.Filter(ctx, "user1", heartRateCandidate())
	if len(passed) != 0 {
		t.Errorf("Expected duplicate within window to be suppressed, got %d", len(passed))
	}
}

func TestDedupGate_PassAfterWindowExpires(t *testing.T) {
	cache := NewFakeCacheStore()
	gate := NewDedupGate(cache, 5*time.Minute)

	ctx := context.Background()

	if passed := gate.Filter(ctx, "user1", heartRateCandidate()); len(passed) != 1 {
		t.Fatalf("Expected first alert to pass, got %d", len(passed))
	}
	gate.Mark(ctx, "user1", MetricHeartRate)

	// Через 6 минут окно истекло - алерт проходит снова
	cache.Advance(6 * time.Minute)
	passed := gate.Filter(ctx, "user1", heartRateCandidate())
	if len(passed) != 1 {
		t.Errorf("Expected alert to pass after window expiry, got %d", len(passed))
	}
}

func TestDedupGate_FilterDoesNotMark(t *testing.T) {
	cache := NewFakeCacheStore()
	gate := NewDedupGate(cache, 5*time.Minute)

	ctx := context.Background()

	// Filter только проверяет окно; без Mark повтор проходит
	if passed := gate.Filter(ctx, "user1", heartRateCandidate()); len(passed) != 1 {
		t.Fatalf("Expected first alert to pass, got %d", len(passed))
	}
	passed := gate.Filter(ctx, "user1", heartRateCandidate())
	if len(passed) != 1 {
		t.Errorf("Expected repeat to pass when metric was never marked, got %d", len(passed))
	}
}

func TestDedupGate_IndependentMetrics(t *testing.T) {
	cache := NewFakeCacheStore()
	gate := NewDedupGate(cache, 5*time.Minute)

	ctx := context.Background()

	gate.Mark(ctx, "user1", MetricHeartRate)

	// Метка по heart_rate не влияет на spo2
	spo2 := []AlertCandidate{
		{Metric: MetricSpO2, Severity: SeverityCritical, Message: "spo2 too low", Value: 88},
	}
	passed := gate.Filter(ctx, "user1", spo2)
	if len(passed) != 1 {
		t.Errorf("Expected spo2 alert to pass independently, got %d", len(passed))
	}
}

func TestDedupGate_IndependentUsers(t *testing.T) {
	cache := NewFakeCacheStore()
	gate := NewDedupGate(cache, 5*time.Minute)

	ctx := context.Background()

	gate.Mark(ctx, "user1", MetricHeartRate)

	passed := gate.Filter(ctx, "user2", heartRateCandidate())
	if len(passed) != 1 {
		t.Errorf("Expected alert for another user to pass, got %d", len(passed))
	}
}

func TestDedupGate_FailOpenOnCacheError(t *testing.T) {
	cache := NewFakeCacheStore()
	cache.lookupErr = errors.New("redis connection refused")
	gate := NewDedupGate(cache, 5*time.Minute)

	ctx := context.Background()

	// Кэш недоступен - алерт должен пройти, а не потеряться
	passed := gate.Filter(ctx, "user1", heartRateCandidate())
	if len(passed) != 1 {
		t.Errorf("Expected alert to pass when cache is down (fail-open), got %d", len(passed))
	}
}

func TestDedupGate_EmptyCandidates(t *testing.T) {
	cache := NewFakeCacheStore()
	gate := NewDedupGate(cache, 5*time.Minute)

	passed := gate.Filter(context.Background(), "user1", nil)
	if len(passed) != 0 {
		t.Errorf("Expected no candidates to pass, got %d", len(passed))
	}
}
