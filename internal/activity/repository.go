package activity

import "context"

// Repository - интерфейс хранилища сессий активности
type Repository interface {
	// CreateSession сохраняет новую сессию
	CreateSession(ctx context.Context, session *Session) error

	// GetSession возвращает сессию по ID
	GetSession(ctx context.Context, sessionID string) (*Session, error)

	// UpdateSession обновляет статус, время остановки и длительность
	UpdateSession(ctx context.Context, session *Session) error

	// ListSessions возвращает сессии пользователя (новые первыми)
	ListSessions(ctx context.Context, userID string, limit, offset int) ([]*Session, error)
}
