package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Repository определяет интерфейс хранилища учетных записей
type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
	RecordFailedLogin(ctx context.Context, userID string, lockedUntil *time.Time) error
	ResetFailedLogins(ctx context.Context, userID string) error
}

// Claims представляет JWT claims
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// Manager отвечает за регистрацию, вход и проверку токенов.
// Счетчик неудачных попыток входа живет на учетной записи: после
// maxAttempts подряд аккаунт блокируется на lockoutPeriod.
type Manager struct {
	repository    Repository
	jwtSecret     []byte
	jwtExpiration time.Duration
	maxAttempts   int
	lockoutPeriod time.Duration
}

// NewManager создает новый Manager
func NewManager(repository Repository, jwtSecret string, jwtExpiration time.Duration, maxAttempts int, lockoutPeriod time.Duration) *Manager {
	return &Manager{
		repository:    repository,
		jwtSecret:     []byte(jwtSecret),
		jwtExpiration: jwtExpiration,
		maxAttempts:   maxAttempts,
		lockoutPeriod: lockoutPeriod,
	}
}

// Register создает новую учетную запись с bcrypt-хэшем пароля
func (m *Manager) Register(ctx context.Context, req *RegisterRequest) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email: %q", req.Email)
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	if _, err := m.repository.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = RolePatient
	}

	user := &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := m.repository.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("[AUTH] Registered user %s (%s)", user.ID, user.Role)
	return user, nil
}

// Login проверяет пароль и выдает JWT. Неудачные попытки считаются;
// при превышении лимита аккаунт блокируется до истечения lockoutPeriod.
func (m *Manager) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := m.repository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.LockedUntil != nil && user.LockedUntil.After(time.Now()) {
		log.Printf("[AUTH] Rejected login for locked account %s (until %s)",
			user.ID, user.LockedUntil.Format(time.RFC3339))
		return nil, ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		var lockedUntil *time.Time
		if user.FailedLoginAttempts+1 >= m.maxAttempts {
			until := time.Now().Add(m.lockoutPeriod)
			lockedUntil = &until
			log.Printf("[AUTH] Locking account %s after %d failed attempts",
				user.ID, user.FailedLoginAttempts+1)
		}
		if err := m.repository.RecordFailedLogin(ctx, user.ID, lockedUntil); err != nil {
			log.Printf("[WARN] Failed to record failed login for %s: %v", user.ID, err)
		}
		return nil, ErrInvalidCredentials
	}

	if user.FailedLoginAttempts > 0 || user.LockedUntil != nil {
		if err := m.repository.ResetFailedLogins(ctx, user.ID); err != nil {
			log.Printf("[WARN] Failed to reset login counter for %s: %v", user.ID, err)
		}
	}

	token, expiresAt, err := m.generateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	log.Printf("[AUTH] User %s logged in", user.ID)

	return &TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// generateJWT выписывает HS256 токен с user_id и ролью
func (m *Manager) generateJWT(user *User) (string, time.Time, error) {
	expiresAt := time.Now().Add(m.jwtExpiration)

	claims := &Claims{
		UserID: user.ID,
		Role:   string(user.Role),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expiresAt.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    "vital-monitor",
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// ValidateToken проверяет подпись и срок действия токена
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.jwtSecret, nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ===== Middleware и контекст =====

type contextKey string

const (
	contextKeyUserID contextKey = "user_id"
	contextKeyRole   contextKey = "role"
)

// Middleware проверяет Bearer токен и кладет user_id/role в контекст запроса
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := extractToken(r)
		if tokenString == "" {
			http.Error(w, `{"error": "Authorization required"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.ValidateToken(tokenString)
		if err != nil {
			http.Error(w, `{"error": "Invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, contextKeyRole, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken достает токен из заголовка Authorization или из query
// параметра token (для WebSocket соединений, где заголовки недоступны)
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	return r.URL.Query().Get("token")
}

// UserIDFromContext возвращает user_id аутентифицированного пользователя
func UserIDFromContext(ctx context.Context) string {
	if userID, ok := ctx.Value(contextKeyUserID).(string); ok {
		return userID
	}
	return ""
}

// RoleFromContext возвращает роль аутентифицированного пользователя
func RoleFromContext(ctx context.Context) string {
	if role, ok := ctx.Value(contextKeyRole).(string); ok {
		return role
	}
	return ""
}
