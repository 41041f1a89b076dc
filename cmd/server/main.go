package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/healthwatch/vital-monitor/internal/activity"
	"github.com/healthwatch/vital-monitor/internal/auth"
	"github.com/healthwatch/vital-monitor/internal/config"
	"github.com/healthwatch/vital-monitor/internal/monitor"
	"github.com/healthwatch/vital-monitor/internal/risk"
	"github.com/healthwatch/vital-monitor/internal/websocket"

	_ "github.com/healthwatch/vital-monitor/docs" // Swagger docs
)

// @title Vital Monitor API
// @version 1.0
// @description Бэкенд мониторинга витальных показателей: прием измерений,
// @description пороговые алерты с дедупликацией, ML оценка кардиориска,
// @description сессии активности и realtime уведомления через WebSocket.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@healthwatch.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT токен в формате "Bearer {token}"

func main() {
	log.Printf("[INFO] Starting vital-monitor server...")

	cfg := config.Load()
	log.Printf("[INFO] Configuration loaded: http_port=%s dedup_window=%s ml_service=%s",
		cfg.HTTPPort, cfg.AlertDedupWindow, cfg.MLServiceAddr)

	// PostgreSQL
	monitorRepo, err := monitor.NewPostgresRepositoryFromDSN(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("❌ Failed to connect to PostgreSQL: %v", err)
	}
	defer monitorRepo.Close()
	log.Println("✅ Connected to PostgreSQL")

	// Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	pingCancel()
	defer redisClient.Close()
	log.Println("✅ Connected to Redis")

	cache := monitor.NewRedisStore(redisClient)
	gate := monitor.NewDedupGate(cache, cfg.AlertDedupWindow)

	// ML classifier
	classifier, err := risk.NewClassifier(
		cfg.MLServiceAddr,
		cfg.MLRequestTimeout,
		cfg.RiskLowCutpoint,
		cfg.RiskHighCutpoint,
		cfg.RiskFallback,
	)
	if err != nil {
		log.Fatalf("❌ Failed to create risk classifier: %v", err)
	}
	defer classifier.Close()
	log.Printf("✅ Risk classifier ready: %s (fallback=%v)", cfg.MLServiceAddr, cfg.RiskFallback)

	// WebSocket hub
	hub := websocket.NewHub()
	go hub.Run()

	// Managers
	monitorManager := monitor.NewManager(monitorRepo, cache, gate, classifier, hub)

	authRepo := auth.NewPostgresRepository(monitorRepo.DB())
	authManager := auth.NewManager(authRepo, cfg.JWTSecret, cfg.JWTExpiration,
		cfg.MaxLoginAttempts, cfg.LoginLockoutPeriod)

	activityRepo := activity.NewPostgresRepository(monitorRepo.DB())
	activityManager := activity.NewManager(activityRepo)

	// Маршруты
	router := mux.NewRouter()

	authHandler := auth.NewHTTPHandler(authManager)
	authHandler.RegisterRoutes(router)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authManager.Middleware)

	monitorHandler := monitor.NewHTTPHandler(monitorManager)
	monitorHandler.RegisterRoutes(api)

	activityHandler := activity.NewHTTPHandler(activityManager)
	activityHandler.RegisterRoutes(api)

	api.HandleFunc("/ws", hub.ServeWS).Methods("GET")

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      enableCORS(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("✅ Vital monitor listening on port %s", cfg.HTTPPort)
		log.Printf("✅ Swagger UI available at http://localhost:%s/swagger/index.html", cfg.HTTPPort)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited gracefully")
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			return
		}

		next.ServeHTTP(w, r)
	})
}
