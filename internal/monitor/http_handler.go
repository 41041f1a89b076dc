package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/healthwatch/vital-monitor/internal/auth"
)

// HTTPHandler обрабатывает HTTP запросы пайплайна мониторинга (Presentation Layer)
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
	router.HandleFunc("/vitals", h.SubmitVitals).Methods("POST")
	router.HandleFunc("/vitals", h.ListReadings).Methods("GET")
	router.HandleFunc("/vitals/latest", h.LatestReading).Methods("GET")

	router.HandleFunc("/predict/risk", h.PredictRisk).Methods("POST")
	router.HandleFunc("/risk/latest", h.LatestRisk).Methods("GET")

	router.HandleFunc("/alerts", h.ListAlerts).Methods("GET")
	router.HandleFunc("/alerts/stats", h.AlertStats).Methods("GET")
	router.HandleFunc("/alerts/{id}/acknowledge", h.AcknowledgeAlert).Methods("PATCH")
	router.HandleFunc("/alerts/{id}/resolve", h.ResolveAlert).Methods("PATCH")
}

// SubmitVitals принимает измерение и запускает пайплайн алертов
// @Summary Отправить измерение витальных показателей
// @Description Сохраняет измерение, оценивает пороги, подавляет дубликаты и возвращает созданные алерты с оценкой риска
// @Tags Vitals
// @Accept json
// @Produce json
// @Param request body SubmitVitalsRequest true "Витальные показатели"
// @Success 201 {object} SubmitVitalsResponse "Сохраненное измерение с алертами"
// @Failure 400 {object} map[string]interface{} "Неверный запрос"
// @Security BearerAuth
// @Router /api/v1/vitals [post]
func (h *HTTPHandler) SubmitVitals(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req SubmitVitalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.manager.SubmitReading(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[ERROR] Failed to process reading for user %s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to process reading")
		return
	}

	respondJSON(w, http.StatusCreated, response)
}

// ListReadings возвращает измерения пользователя
// @Summary Список измерений
// @Tags Vitals
// @Produce json
// @Param limit query int false "Лимит (по умолчанию 50)"
// @Param offset query int false "Смещение"
// @Success 200 {object} map[string]interface{} "Список измерений"
// @Security BearerAuth
// @Router /api/v1/vitals [get]
func (h *HTTPHandler) ListReadings(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	limit := getQueryInt(r, "limit", 50)
	offset := getQueryInt(r, "offset", 0)

	readings, err := h.manager.ListReadings(r.Context(), userID, limit, offset)
	if err != nil {
		log.Printf("[ERROR] Failed to list readings for user %s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to list readings")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"readings": readings,
		"limit":    limit,
		"offset":   offset,
		"count":    len(readings),
	})
}

// LatestReading возвращает последнее измерение пользователя
// @Summary Последнее измерение
// @Tags Vitals
// @Produce json
// @Success 200 {object} VitalReading "Последнее измерение"
// @Failure 404 {object} map[string]interface{} "Измерений нет"
// @Security BearerAuth
// @Router /api/v1/vitals/latest [get]
func (h *HTTPHandler) LatestReading(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	reading, err := h.manager.LatestReading(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrReadingNotFound) {
			respondError(w, http.StatusNotFound, "No readings found")
			return
		}
		log.Printf("[ERROR] Failed to get latest reading for user %s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to get latest reading")
		return
	}

	respondJSON(w, http.StatusOK, reading)
}

// PredictRisk выполняет классификацию риска по переданным показателям
// @Summary Предсказать кардиориск
// @Description Строит вектор признаков из показателей и вызывает ML сервис. При недоступности модели возвращается безопасный дефолт.
// @Tags Risk
// @Accept json
// @Produce json
// @Param request body SubmitVitalsRequest true "Витальные показатели"
// @Success 200 {object} RiskAssessment "Оценка риска"
// @Failure 400 {object} map[string]interface{} "Неверный запрос"
// @Failure 503 {object} map[string]interface{} "ML сервис недоступен"
// @Security BearerAuth
// @Router /api/v1/predict/risk [post]
func (h *HTTPHandler) PredictRisk(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req SubmitVitalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	assessment, err := h.manager.PredictRisk(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrModelUnavailable):
			respondError(w, http.StatusServiceUnavailable, "Risk model unavailable")
		default:
			log.Printf("[ERROR] Risk prediction failed for user %s: %v", userID, err)
			respondError(w, http.StatusInternalServerError, "Risk prediction failed")
		}
		return
	}

	respondJSON(w, http.StatusOK, assessment)
}

// LatestRisk возвращает последнюю сохраненную оценку риска
// @Summary Последняя оценка риска
// @Tags Risk
// @Produce json
// @Success 200 {object} RiskAssessment "Оценка риска"
// @Failure 404 {object} map[string]interface{} "Оценок нет"
// @Security BearerAuth
// @Router /api/v1/risk/latest [get]
func (h *HTTPHandler) LatestRisk(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	assessment, err := h.manager.LatestRisk(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrRiskNotFound) {
			respondError(w, http.StatusNotFound, "No risk assessments found")
			return
		}
		log.Printf("[ERROR] Failed to get latest risk for user %s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to get latest risk")
		return
	}

	respondJSON(w, http.StatusOK, assessment)
}

// ListAlerts возвращает алерты пользователя
// @Summary Список алертов
// @Tags Alerts
// @Produce json
// @Param status query string false "Фильтр по статусу (ACTIVE|ACKNOWLEDGED|RESOLVED)"
// @Param limit query int false "Лимит (по умолчанию 50)"
// @Param offset query int false "Смещение"
// @Success 200 {object} map[string]interface{} "Список алертов"
// @Security BearerAuth
// @Router /api/v1/alerts [get]
func (h *HTTPHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	status := AlertStatus(r.URL.Query().Get("status"))
	limit := getQueryInt(r, "limit", 50)
	offset := getQueryInt(r, "offset", 0)

	alerts, err := h.manager.ListAlerts(r.Context(), userID, status, limit, offset)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[ERROR] Failed to list alerts for user %s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to list alerts")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"alerts": alerts,
		"limit":  limit,
		"offset": offset,
		"count":  len(alerts),
	})
}

// AlertStats возвращает статистику алертов
// @Summary Статистика алертов
// @Tags Alerts
// @Produce json
// @Success 200 {object} AlertStats "Счетчики по статусам и серьезности"
// @Security BearerAuth
// @Router /api/v1/alerts/stats [get]
func (h *HTTPHandler) AlertStats(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	stats, err := h.manager.AlertStats(r.Context(), userID)
	if err != nil {
		log.Printf("[ERROR] Failed to get alert stats for user %s: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to get alert stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// AcknowledgeAlert переводит алерт в ACKNOWLEDGED
// @Summary Подтвердить алерт
// @Tags Alerts
// @Produce json
// @Param id path string true "ID алерта"
// @Success 200 {object} Alert "Обновленный алерт"
// @Failure 404 {object} map[string]interface{} "Алерт не найден"
// @Failure 409 {object} map[string]interface{} "Алерт уже решен"
// @Security BearerAuth
// @Router /api/v1/alerts/{id}/acknowledge [patch]
func (h *HTTPHandler) AcknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.manager.AcknowledgeAlert)
}

// ResolveAlert переводит алерт в RESOLVED
// @Summary Решить алерт
// @Description Повторное решение алерта - no-op: возвращается 409 с неизмененным алертом
// @Tags Alerts
// @Produce json
// @Param id path string true "ID алерта"
// @Success 200 {object} Alert "Обновленный алерт"
// @Failure 404 {object} map[string]interface{} "Алерт не найден"
// @Failure 409 {object} map[string]interface{} "Алерт уже решен"
// @Security BearerAuth
// @Router /api/v1/alerts/{id}/resolve [patch]
func (h *HTTPHandler) ResolveAlert(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.manager.ResolveAlert)
}

// transition выполняет переход состояния алерта общим для обоих endpoint'ов способом
func (h *HTTPHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, userID, alertID string) (*Alert, error)) {
	userID := auth.UserIDFromContext(r.Context())
	alertID := mux.Vars(r)["id"]

	alert, err := fn(r.Context(), userID, alertID)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlertNotFound):
			respondError(w, http.StatusNotFound, "Alert not found")
		case errors.Is(err, ErrNotOwner):
			respondError(w, http.StatusForbidden, "Alert belongs to another user")
		case errors.Is(err, ErrAlreadyResolved):
			// Информационный конфликт: алерт уже решен, resolved_at не изменился
			respondJSON(w, http.StatusConflict, map[string]interface{}{
				"error": "Alert already resolved",
				"alert": alert,
			})
		default:
			log.Printf("[ERROR] Alert transition failed for %s: %v", alertID, err)
			respondError(w, http.StatusInternalServerError, "Alert transition failed")
		}
		return
	}

	respondJSON(w, http.StatusOK, alert)
}

// ===== Утилиты =====

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
