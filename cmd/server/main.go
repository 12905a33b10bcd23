package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/characterforge/characterforge/internal/clients/ollama"
	"github.com/characterforge/characterforge/internal/config"
	"github.com/characterforge/characterforge/internal/repositories/campaigns"
	"github.com/characterforge/characterforge/internal/repositories/characters"
	"github.com/characterforge/characterforge/internal/repositories/memberships"
	"github.com/characterforge/characterforge/internal/repositories/templates"
	"github.com/characterforge/characterforge/internal/repositories/users"
	"github.com/characterforge/characterforge/internal/services"
	"github.com/characterforge/characterforge/internal/session"
	"github.com/characterforge/characterforge/internal/uuid"
	"github.com/characterforge/characterforge/internal/web"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Ollama at %s (model %s)", cfg.Ollama.BaseURL, cfg.Ollama.Model)

	// Create Ollama client
	ollamaClient, err := ollama.New(&ollama.Config{
		BaseURL: cfg.Ollama.BaseURL,
		Model:   cfg.Ollama.Model,
	})
	if err != nil {
		log.Fatalf("Failed to create Ollama client: %v", err)
	}

	idGenerator := uuid.NewGoogleUUIDGenerator()

	providerConfig := &services.ProviderConfig{
		OllamaClient: ollamaClient,
		IDGenerator:  idGenerator,
	}

	// Sessions need a store even without Redis.
	var sessions session.Store

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis if URL is provided
	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory storage")
		} else {
			redisClient = redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
				cancel()
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory storage")
				redisClient = nil
			} else {
				cancel()
				log.Println("Successfully connected to Redis")

				providerConfig.UserRepository = users.NewRedis(redisClient)
				providerConfig.CampaignRepository = campaigns.NewRedis(redisClient)
				providerConfig.MembershipRepository = memberships.NewRedis(redisClient)
				providerConfig.CharacterRepository = characters.NewRedis(redisClient)
				providerConfig.TemplateRepository = templates.NewRedis(redisClient)
				sessions = session.NewRedis(&session.RedisConfig{
					Client:      redisClient,
					IDGenerator: idGenerator,
					TTL:         cfg.Session.TTL,
				})

				log.Println("Using Redis for persistence")
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory storage")
	}

	if sessions == nil {
		sessions = session.NewInMemory(&session.InMemoryConfig{
			IDGenerator: idGenerator,
			TTL:         cfg.Session.TTL,
		})
	}

	serviceProvider := services.NewProvider(providerConfig)

	handler := web.NewHandler(&web.Config{
		Services: serviceProvider,
		Sessions: sessions,
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Listening on http://%s", cfg.Server.Addr)
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", serveErr)
		}
	}()

	// Wait for interrupt
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if shutdownErr := server.Shutdown(ctx); shutdownErr != nil {
		log.Printf("Shutdown error: %v", shutdownErr)
	}

	if redisClient != nil {
		if closeErr := redisClient.Close(); closeErr != nil {
			log.Printf("Failed to close Redis client: %v", closeErr)
		}
	}

	log.Println("Goodbye")
}
