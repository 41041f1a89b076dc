package activity

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/healthwatch/vital-monitor/internal/auth"
)

// HTTPHandler обрабатывает HTTP запросы сессий активности
type HTTPHandler struct {
	manager *Manager
}

// NewHTTPHandler создает новый HTTP обработчик
func NewHTTPHandler(manager *Manager) *HTTPHandler {
	return &HTTPHandler{
		manager: manager,
	}
}

// RegisterRoutes регистрирует маршруты в роутере.
// Роутер должен быть обернут в auth middleware.
func (h *HTTPHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/activity/sessions", h.StartSession).Methods("POST")
	router.HandleFunc("/activity/sessions", h.ListSessions).Methods("GET")
	router.HandleFunc("/activity/sessions/{id}", h.GetSession).Methods("GET")
	router.HandleFunc("/activity/sessions/{id}/stop", h.StopSession).Methods("PATCH")
}

// StartSession начинает новую сессию активности
// @Summary Начать сессию активности
// @Tags Activity
// @Accept json
// @Produce json
// @Param request body StartSessionRequest true "Тип активности"
// @Success 201 {object} Session "Созданная сессия"
// @Failure 400 {object} map[string]interface{} "Неверный запрос"
// @Security BearerAuth
// @Router /api/v1/activity/sessions [post]
func (h *HTTPHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.manager.StartSession(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[ERROR] Failed to start session for user %s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to start session")
		return
	}

	respondJSON(w, http.StatusCreated, session)
}

// StopSession завершает сессию активности
// @Summary Завершить сессию активности
// @Description Повторная остановка - конфликт: возвращается 409 с неизмененной сессией
// @Tags Activity
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} Session "Завершенная сессия"
// @Failure 404 {object} map[string]interface{} "Сессия не найдена"
// @Failure 409 {object} map[string]interface{} "Сессия уже завершена"
// @Security BearerAuth
// @Router /api/v1/activity/sessions/{id}/stop [patch]
func (h *HTTPHandler) StopSession(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	sessionID := mux.Vars(r)["id"]

	session, err := h.manager.StopSession(r.Context(), userID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			respondError(w, http.StatusNotFound, "Session not found")
		case errors.Is(err, ErrNotOwner):
			respondError(w, http.StatusForbidden, "Session belongs to another user")
		case errors.Is(err, ErrSessionCompleted):
			respondJSON(w, http.StatusConflict, map[string]interface{}{
				"error":   "Session already completed",
				"session": session,
			})
		default:
			log.Printf("[ERROR] Failed to stop session %s: %v", sessionID, err)
			respondError(w, http.StatusInternalServerError, "Failed to stop session")
		}
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// GetSession возвращает сессию по ID
// @Summary Получить сессию активности
// @Tags Activity
// @Produce json
// @Param id path string true "ID сессии"
// @Success 200 {object} Session "Сессия"
// @Failure 404 {object} map[string]interface{} "Сессия не найдена"
// @Security BearerAuth
// @Router /api/v1/activity/sessions/{id} [get]
func (h *HTTPHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	sessionID := mux.Vars(r)["id"]

	session, err := h.manager.GetSession(r.Context(), userID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			respondError(w, http.StatusNotFound, "Session not found")
		case errors.Is(err, ErrNotOwner):
			respondError(w, http.StatusForbidden, "Session belongs to another user")
		default:
			log.Printf("[ERROR] Failed to get session %s: %v", sessionID, err)
			respondError(w, http.StatusInternalServerError, "Failed to get session")
		}
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// ListSessions возвращает сессии пользователя
// @Summary Список сессий активности
// @Tags Activity
// @Produce json
// @Param limit query int false "Лимит (по умолчанию 50)"
// @Param offset query int false "Смещение"
// @Success 200 {object} map[string]interface{} "Список сессий"
// @Security BearerAuth
// @Router /api/v1/activity/sessions [get]
func (h *HTTPHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	limit := getQueryInt(r, "limit", 50)
	offset := getQueryInt(r, "offset", 0)

	sessions, err := h.manager.ListSessions(r.Context(), userID, limit, offset)
	if err != nil {
		log.Printf("[ERROR] Failed to list sessions for user %s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to list sessions")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": sessions,
		"limit":    limit,
		"offset":   offset,
		"count":    len(sessions),
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[ERROR] Failed to encode JSON response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"error":  message,
		"status": status,
	})
}

func getQueryInt(r *http.Request, key string, defaultValue int) int {
	valueStr := r.URL.Query().Get(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
