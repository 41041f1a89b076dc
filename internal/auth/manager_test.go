package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

// FakeUserRepository для тестирования - in-memory хранилище учетных записей
type FakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*User // по ID
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{users: make(map[string]*User)}
}

func (f *FakeUserRepository) CreateUser(ctx context.Context, user *User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *FakeUserRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *FakeUserRepository) GetUserByID(ctx context.Context, userID string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *FakeUserRepository) RecordFailedLogin(ctx context.Context, userID string, lockedUntil *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	user.FailedLoginAttempts++
	if lockedUntil != nil {
		user.LockedUntil = lockedUntil
	}
	return nil
}

func (f *FakeUserRepository) ResetFailedLogins(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	return nil
}

func newTestAuthManager() (*Manager, *FakeUserRepository) {
	repo := NewFakeUserRepository()
	manager := NewManager(repo, "test-secret", time.Hour, 5, 15*time.Minute)
	return manager, repo
}

func registerTestUser(t *testing.T, manager *Manager) *User {
	t.Helper()
	user, err := manager.Register(context.Background(), &RegisterRequest{
		Email:    "patient@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return user
}

func TestManager_RegisterAndLogin(t *testing.T) {
	manager, _ := newTestAuthManager()
	ctx := context.Background()

	user := registerTestUser(t, manager)
	if user.Role != RolePatient {
		t.Errorf("Expected default role patient, got %s", user.Role)
	}
	if user.PasswordHash == "correct-horse" {
		t.Error("Expected password to be hashed")
	}

	response, err := manager.Login(ctx, &LoginRequest{
		Email:    "patient@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if response.Token == "" {
		t.Error("Expected non-empty token")
	}

	// Токен проходит валидацию и несет user_id с ролью
	claims, err := manager.ValidateToken(response.Token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("Expected user_id %s in claims, got %s", user.ID, claims.UserID)
	}
	if claims.Role != string(RolePatient) {
		t.Errorf("Expected role patient in claims, got %s", claims.Role)
	}
}

func TestManager_Register_Validation(t *testing.T) {
	manager, _ := newTestAuthManager()
	ctx := context.Background()

	if _, err := manager.Register(ctx, &RegisterRequest{Email: "not-an-email", Password: "longenough"}); err == nil {
		t.Error("Expected error for invalid email")
	}
	if _, err := manager.Register(ctx, &RegisterRequest{Email: "a@b.com", Password: "short"}); err == nil {
		t.Error("Expected error for short password")
	}

	registerTestUser(t, manager)
	_, err := manager.Register(ctx, &RegisterRequest{Email: "patient@example.com", Password: "correct-horse"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Expected ErrEmailTaken for duplicate email, got %v", err)
	}
}

func TestManager_Login_WrongPassword(t *testing.T) {
	manager, _ := newTestAuthManager()
	registerTestUser(t, manager)

	_, err := manager.Login(context.Background(), &LoginRequest{
		Email:    "patient@example.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}

	// Несуществующий пользователь дает ту же ошибку, без утечки информации
	_, err = manager.Login(context.Background(), &LoginRequest{
		Email:    "unknown@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestManager_Login_LockoutAfterMaxAttempts(t *testing.T) {
	manager, repo := newTestAuthManager()
	user := registerTestUser(t, manager)
	ctx := context.Background()

	wrong := &LoginRequest{Email: "patient@example.com", Password: "wrong-password"}

	// Первые 4 попытки - просто отказ
	for i := 0; i < 4; i++ {
		if _, err := manager.Login(ctx, wrong); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("Attempt %d: expected ErrInvalidCredentials, got %v", i+1, err)
		}
	}

	stored, _ := repo.GetUserByID(ctx, user.ID)
	if stored.LockedUntil != nil {
		t.Fatal("Expected account not locked before 5th attempt")
	}

	// Пятая попытка блокирует аккаунт
	if _, err := manager.Login(ctx, wrong); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials on 5th attempt, got %v", err)
	}

	stored, _ = repo.GetUserByID(ctx, user.ID)
	if stored.LockedUntil == nil {
		t.Fatal("Expected account locked after 5 failed attempts")
	}

	// Даже правильный пароль не проходит, пока аккаунт заблокирован
	correct := &LoginRequest{Email: "patient@example.com", Password: "correct-horse"}
	if _, err := manager.Login(ctx, correct); !errors.Is(err, ErrAccountLocked) {
		t.Errorf("Expected ErrAccountLocked, got %v", err)
	}
}

func TestManager_Login_SuccessResetsCounter(t *testing.T) {
	manager, repo := newTestAuthManager()
	user := registerTestUser(t, manager)
	ctx := context.Background()

	wrong := &LoginRequest{Email: "patient@example.com", Password: "wrong-password"}
	for i := 0; i < 3; i++ {
		manager.Login(ctx, wrong)
	}

	stored, _ := repo.GetUserByID(ctx, user.ID)
	if stored.FailedLoginAttempts != 3 {
		t.Fatalf("Expected 3 failed attempts, got %d", stored.FailedLoginAttempts)
	}

	correct := &LoginRequest{Email: "patient@example.com", Password: "correct-horse"}
	if _, err := manager.Login(ctx, correct); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	stored, _ = repo.GetUserByID(ctx, user.ID)
	if stored.FailedLoginAttempts != 0 {
		t.Errorf("Expected counter reset after successful login, got %d", stored.FailedLoginAttempts)
	}
}

func TestManager_ValidateToken_Invalid(t *testing.T) {
	manager, _ := newTestAuthManager()

	if _, err := manager.ValidateToken("garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for garbage, got %v", err)
	}

	// Токен с другим секретом отклоняется
	other := NewManager(NewFakeUserRepository(), "other-secret", time.Hour, 5, 15*time.Minute)
	user := registerTestUser(t, manager)
	token, _, err := other.generateJWT(user)
	if err != nil {
		t.Fatalf("generateJWT failed: %v", err)
	}
	if _, err := manager.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestManager_Middleware(t *testing.T) {
	manager, _ := newTestAuthManager()
	user := registerTestUser(t, manager)

	response, err := manager.Login(context.Background(), &LoginRequest{
		Email:    "patient@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	var gotUserID, gotRole string
	handler := manager.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
	}))

	// Валидный Bearer токен
	req := httptest.NewRequest("GET", "/api/v1/vitals", nil)
	req.Header.Set("Authorization", "Bearer "+response.Token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if gotUserID != user.ID {
		t.Errorf("Expected user_id %s in context, got %s", user.ID, gotUserID)
	}
	if gotRole != string(RolePatient) {
		t.Errorf("Expected role patient in context, got %s", gotRole)
	}

	// Токен в query параметре (WebSocket)
	req = httptest.NewRequest("GET", "/api/v1/ws?token="+response.Token, nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 for query token, got %d", rec.Code)
	}

	// Без токена - 401
	req = httptest.NewRequest("GET", "/api/v1/vitals", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", rec.Code)
	}

	// С мусорным токеном - 401
	req = httptest.NewRequest("GET", "/api/v1/vitals", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for invalid token, got %d", rec.Code)
	}
}
