package activity

import (
	"errors"
	"time"
)

// SessionStatus - статус сессии активности
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "ACTIVE"
	SessionStatusCompleted SessionStatus = "COMPLETED"
)

// Session представляет сессию физической активности пользователя
type Session struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	ActivityType string        `json:"activity_type"`
	Status       SessionStatus `json:"status"`
	StartedAt    time.Time     `json:"started_at"`
	StoppedAt    *time.Time    `json:"stopped_at,omitempty"`
	DurationMs   int64         `json:"duration_ms"`
	Notes        string        `json:"notes,omitempty"`
}

// StartSessionRequest - запрос на начало сессии активности
type StartSessionRequest struct {
	ActivityType string `json:"activity_type"`
	Notes        string `json:"notes,omitempty"`
}

// Ошибки
var (
	ErrValidation       = errors.New("validation error")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionCompleted = errors.New("session already completed")
	ErrNotOwner         = errors.New("session belongs to another user")
)
