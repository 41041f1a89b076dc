package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore реализует CacheStore для Redis (Infrastructure Layer)
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore создает новый экземпляр RedisStore
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
	}
}

// ===== Ключи Redis =====

func dedupKey(userID string, metric Metric) string {
	return fmt.Sprintf("alerts:%s:dedup:%s", userID, metric)
}

func latestReadingKey(userID string) string {
	return fmt.Sprintf("vitals:%s:latest", userID)
}

func latestRiskKey(userID string) string {
	return fmt.Sprintf("risk:%s:latest", userID)
}

// ===== Метки дедупликации =====

func (r *RedisStore) DedupMarkExists(ctx context.Context, userID string, metric Metric) (bool, error) {
	count, err := r.client.Exists(ctx, dedupKey(userID, metric)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check dedup mark: %w", err)
	}
	return count > 0, nil
}

func (r *RedisStore) SetDedupMark(ctx context.Context, userID string, metric Metric, window time.Duration) error {
	return r.client.Set(ctx, dedupKey(userID, metric), time.Now().UnixMilli(), window).Err()
}

// ===== Последнее измерение =====

func (r *RedisStore) SetLatestReading(ctx context.Context, reading *VitalReading) error {
	data, err := json.Marshal(reading)
	if err != nil {
		return fmt.Errorf("failed to marshal reading: %w", err)
	}

	return r.client.Set(ctx, latestReadingKey(reading.UserID), data, 0).Err()
}

func (r *RedisStore) GetLatestReading(ctx context.Context, userID string) (*VitalReading, error) {
	data, err := r.client.Get(ctx, latestReadingKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrReadingNotFound
		}
		return nil, fmt.Errorf("failed to get latest reading: %w", err)
	}

	var reading VitalReading
	if err := json.Unmarshal([]byte(data), &reading); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reading: %w", err)
	}

	return &reading, nil
}

// ===== Последняя оценка риска =====

func (r *RedisStore) SetLatestRisk(ctx context.Context, assessment *RiskAssessment) error {
	data, err := json.Marshal(assessment)
	if err != nil {
		return fmt.Errorf("failed to marshal risk assessment: %w", err)
	}

	return r.client.Set(ctx, latestRiskKey(assessment.UserID), data, 0).Err()
}

func (r *RedisStore) GetLatestRisk(ctx context.Context, userID string) (*RiskAssessment, error) {
	data, err := r.client.Get(ctx, latestRiskKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRiskNotFound
		}
		return nil, fmt.Errorf("failed to get latest risk: %w", err)
	}

	var assessment RiskAssessment
	if err := json.Unmarshal([]byte(data), &assessment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal risk assessment: %w", err)
	}

	return &assessment, nil
}
