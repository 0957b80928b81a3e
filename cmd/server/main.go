// File: cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/medibot-health/go-medibot/internal/config"
	"github.com/medibot-health/go-medibot/internal/domain"
	"github.com/medibot-health/go-medibot/internal/handlers"
	"github.com/medibot-health/go-medibot/internal/middleware"
	"github.com/medibot-health/go-medibot/internal/ratelimit"
	apptrepo "github.com/medibot-health/go-medibot/internal/repository/appointment"
	doctorrepo "github.com/medibot-health/go-medibot/internal/repository/doctor"
	faqrepo "github.com/medibot-health/go-medibot/internal/repository/faq"
	messagerepo "github.com/medibot-health/go-medibot/internal/repository/message"
	sessionrepo "github.com/medibot-health/go-medibot/internal/repository/session"
	userrepo "github.com/medibot-health/go-medibot/internal/repository/user"
	"github.com/medibot-health/go-medibot/internal/services"
	"github.com/medibot-health/go-medibot/internal/services/ai"
	"github.com/medibot-health/go-medibot/internal/services/appointment"
	chatservice "github.com/medibot-health/go-medibot/internal/services/chat"
	"github.com/medibot-health/go-medibot/internal/services/faq"
	"github.com/medibot-health/go-medibot/internal/services/search"
	"github.com/medibot-health/go-medibot/internal/services/triage"
	"github.com/medibot-health/go-medibot/internal/services/user_services"
)

func main() {
	cfg := config.Load()

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.ChatSession{},
		&domain.Message{},
		&domain.Doctor{},
		&domain.Appointment{},
		&domain.FAQ{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Repositories
	users := userrepo.NewUserRepository(db)
	sessions := sessionrepo.NewSessionRepository(db)
	messages := messagerepo.NewMessageRepository(db)
	doctors := doctorrepo.NewDoctorRepository(db)
	appointments := apptrepo.NewAppointmentRepository(db)
	faqs := faqrepo.NewFAQRepository(db)

	appLogger := services.NewLogger("server")

	// AI providers (constructed once, injected everywhere)
	aiConfig := &ai.Config{
		CloudKey:     cfg.GeminiAPIKey,
		CloudBaseURL: cfg.GeminiBaseURL,
		OllamaHost:   cfg.OllamaHost,
		CloudTimeout: time.Duration(cfg.CloudTimeoutSec) * time.Second,
		LocalTimeout: time.Duration(cfg.LocalTimeoutSec) * time.Second,
		Temperature:  0.2,
		TopP:         0.9,
	}
	aiService, err := services.NewAIService(aiConfig, ai.SelectorConfig{
		Preferred: cfg.OllamaPreferred,
		Fallbacks: cfg.OllamaFallbacks,
	})
	if err != nil {
		log.Fatalf("Failed to initialize AI providers: %v", err)
	}

	// Web search is optional: without a key the chat just skips it.
	var searchClient search.Provider
	if cfg.TavilyAPIKey != "" {
		searchConfig := search.DefaultConfig()
		searchConfig.APIKey = cfg.TavilyAPIKey
		searchClient = search.NewTavilyClient(searchConfig)
	} else {
		appLogger.Warn("TAVILY_API_KEY not set; web search disabled")
	}

	chatConfig := chatservice.DefaultConfig()
	chatConfig.PrimaryModel = cfg.GeminiPrimaryModel
	chatConfig.FallbackModels = cfg.GeminiFallbacks
	chatConfig.CloudTimeout = aiConfig.CloudTimeout
	chatConfig.LocalTimeout = aiConfig.LocalTimeout

	chatService, err := services.NewChatService(
		chatConfig,
		aiService.Cloud,
		aiService.Local,
		aiService.Selector,
		faq.NewService(faqs, services.NewLogger("faq")),
		searchClient,
		sessions,
		messages,
	)
	if err != nil {
		log.Fatalf("Failed to initialize chat service: %v", err)
	}

	authService := user_services.NewAuthService(users, cfg.JWTSecretKey)
	triageService := triage.NewService(aiService.Cloud, cfg.GeminiPrimaryModel, doctors, services.NewLogger("triage"))
	appointmentService := appointment.NewService(appointments, doctors, services.NewLogger("appointment"))

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	aiHandler := handlers.NewAIHandler(chatService, aiService, triageService)
	sessionHandler := handlers.NewSessionHandler(chatService)
	doctorHandler := handlers.NewDoctorHandler(doctors)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)

	// Rate limiters: strict for auth, looser for chat.
	authLimiter := ratelimit.NewMemoryRateLimiter(ratelimit.DefaultAuthConfig())
	chatLimiter := ratelimit.NewMemoryRateLimiter(ratelimit.DefaultChatConfig())

	secret := []byte(cfg.JWTSecretKey)

	r := mux.NewRouter()
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	// Public
	authRoutes := api.PathPrefix("/auth").Subrouter()
	authRoutes.Use(middleware.RateLimitMiddleware(authLimiter, "auth"))
	authRoutes.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	authRoutes.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)

	api.HandleFunc("/doctors", doctorHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/ai/status", aiHandler.Status).Methods(http.MethodGet)

	// Chat: anonymous allowed, history recorded only for authenticated users.
	chatRoutes := api.PathPrefix("/ai").Subrouter()
	chatRoutes.Use(middleware.RateLimitMiddleware(chatLimiter, "chat"))
	chatRoutes.Use(middleware.OptionalAuth(secret))
	chatRoutes.HandleFunc("/chat", aiHandler.Chat).Methods(http.MethodPost)
	chatRoutes.HandleFunc("/recommend-doctor", aiHandler.RecommendDoctor).Methods(http.MethodPost)

	// Authenticated
	private := api.NewRoute().Subrouter()
	private.Use(middleware.RequireAuth(secret))
	private.HandleFunc("/sessions", sessionHandler.ListSessions).Methods(http.MethodGet)
	private.HandleFunc("/sessions/{sessionId}/messages", sessionHandler.GetMessages).Methods(http.MethodGet)
	private.HandleFunc("/sessions/{sessionId}", sessionHandler.DeleteSession).Methods(http.MethodDelete)
	private.HandleFunc("/doctors/{doctorId}/slots", appointmentHandler.Slots).Methods(http.MethodGet)
	private.HandleFunc("/appointments", appointmentHandler.Book).Methods(http.MethodPost)
	private.HandleFunc("/appointments", appointmentHandler.List).Methods(http.MethodGet)
	private.HandleFunc("/appointments/{appointmentId}/cancel", appointmentHandler.Cancel).Methods(http.MethodPost)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      corsMiddleware(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // cloud + local + canned can take a while
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info("server listening", "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	appLogger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
