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

	"github.com/threadflow/threadflow/internal/config"
	"github.com/threadflow/threadflow/internal/domain"
	"github.com/threadflow/threadflow/internal/handlers"
	"github.com/threadflow/threadflow/internal/middleware"
	conversationrepo "github.com/threadflow/threadflow/internal/repository/conversation"
	userrepo "github.com/threadflow/threadflow/internal/repository/user"
	"github.com/threadflow/threadflow/internal/services"
	"github.com/threadflow/threadflow/internal/services/ai"
	chatservice "github.com/threadflow/threadflow/internal/services/chat"
	"github.com/threadflow/threadflow/internal/services/user_services"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Max-Age", "86400")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	cfg := config.Load()
	logger := services.NewLogger("threadflow")

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB Error: %v", err)
	}

	if err := db.AutoMigrate(&domain.User{}, &domain.Conversation{}); err != nil {
		log.Fatalf("DB Migration Error: %v", err)
	}

	// --- Repositories ---
	userRepo := userrepo.NewGormUserRepository(db)
	convRepo := conversationrepo.NewConversationRepository(db)

	// --- AI dispatch ---
	aiConfig := ai.DefaultConfig()
	aiConfig.OpenAIKey = cfg.OpenAIAPIKey
	aiConfig.AnthropicKey = cfg.AnthropicAPIKey
	aiConfig.GeminiKey = cfg.GeminiAPIKey

	registry := ai.NewRegistry(aiConfig)
	dispatcher, err := ai.NewDispatcher(aiConfig, registry, ai.DefaultProviders(aiConfig), logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize dispatcher: %v", err)
	}

	// --- Services ---
	chatConfig := chatservice.DefaultConfig()
	chatConfig.DefaultProvider = cfg.DefaultProvider
	chatConfig.DefaultModelID = cfg.DefaultModelID

	chatService, err := services.NewChatService(convRepo, dispatcher, chatConfig, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize chat service: %v", err)
	}
	branchService, err := services.NewBranchService(convRepo, logger)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize branch service: %v", err)
	}
	userService := user_services.NewUserService(userRepo, logger)

	// --- Handlers ---
	chatHandler := handlers.NewChatHandler(chatService)
	conversationHandler := handlers.NewConversationHandler(chatService, branchService)
	modelsHandler := handlers.NewModelsHandler(registry)
	userHandler := handlers.NewUserHandler()

	// --- Router Setup ---
	r := mux.NewRouter()
	authMiddleware := middleware.NewJWTMiddleware(cfg.JWTSecretKey, userService)

	r.Use(corsMiddleware)
	r.Use(middleware.RecoverPanic)
	r.Use(middleware.LoggingMiddleware)

	// --- Public Routes ---
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Welcome to ThreadFlow API"}`))
	}).Methods("GET")
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")
	r.HandleFunc("/api/models", modelsHandler.ListModels).Methods("GET")

	// --- Protected Routes ---
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware)
	api.HandleFunc("/chat", chatHandler.HandleChat).Methods("POST")
	api.HandleFunc("/conversations", conversationHandler.ListConversations).Methods("GET")
	api.HandleFunc("/conversations/{id}", conversationHandler.GetConversation).Methods("GET")
	api.HandleFunc("/conversations/{id}/branch", conversationHandler.BranchConversation).Methods("POST")
	api.HandleFunc("/user/me", userHandler.GetCurrentUser).Methods("GET")

	// --- Server Configuration ---
	port := ":8080"
	if cfg.ServerPort != "" {
		port = ":" + cfg.ServerPort
	}
	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("ThreadFlow API starting on port %s", port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
