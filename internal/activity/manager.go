package activity

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Manager - бизнес-логика сессий активности
type Manager struct {
	repo Repository
}

// NewManager создает новый Manager
func NewManager(repo Repository) *Manager {
	return &Manager{repo: repo}
}

// StartSession начинает новую сессию активности
func (m *Manager) StartSession(ctx context.Context, userID string, req *StartSessionRequest) (*Session, error) {
	activityType := strings.TrimSpace(req.ActivityType)
	if activityType == "" {
		return nil, fmt.Errorf("%w: activity_type is required", ErrValidation)
	}

	session := &Session{
		ID:           uuid.New().String(),
		UserID:       userID,
		ActivityType: activityType,
		Status:       SessionStatusActive,
		StartedAt:    time.Now().UTC(),
		Notes:        strings.TrimSpace(req.Notes),
	}

	if err := m.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	log.Printf("[ACTIVITY] Session started: id=%s user=%s type=%s", session.ID, userID, activityType)
	return session, nil
}

// StopSession завершает сессию. Повторная остановка - ошибка ErrSessionCompleted,
// при этом сессия возвращается без изменений.
func (m *Manager) StopSession(ctx context.Context, userID, sessionID string) (*Session, error) {
	session, err := m.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status == SessionStatusCompleted {
		return session, ErrSessionCompleted
	}

	now := time.Now().UTC()
	session.Status = SessionStatusCompleted
	session.StoppedAt = &now
	session.DurationMs = now.Sub(session.StartedAt).Milliseconds()

	if err := m.repo.UpdateSession(ctx, session); err != nil {
		return nil, err
	}

	log.Printf("[ACTIVITY] Session stopped: id=%s user=%s duration_ms=%d", session.ID, userID, session.DurationMs)
	return session, nil
}

// GetSession возвращает сессию пользователя
func (m *Manager) GetSession(ctx context.Context, userID, sessionID string) (*Session, error) {
	return m.ownedSession(ctx, userID, sessionID)
}

// ListSessions возвращает сессии пользователя
func (m *Manager) ListSessions(ctx context.Context, userID string, limit, offset int) ([]*Session, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return m.repo.ListSessions(ctx, userID, limit, offset)
}

func (m *Manager) ownedSession(ctx context.Context, userID, sessionID string) (*Session, error) {
	session, err := m.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrNotOwner
	}
	return session, nil
}
