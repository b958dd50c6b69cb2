package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Zaclee030314/pawradise-1/internal/aitools"
	"github.com/Zaclee030314/pawradise-1/internal/cart"
	"github.com/Zaclee030314/pawradise-1/internal/catalog"
	"github.com/Zaclee030314/pawradise-1/internal/checkout"
	"github.com/Zaclee030314/pawradise-1/internal/content"
	"github.com/Zaclee030314/pawradise-1/internal/db"
	h "github.com/Zaclee030314/pawradise-1/internal/http"
	"github.com/Zaclee030314/pawradise-1/internal/profile"
)

type Config struct {
	HTTPPort        string
	DBPath          string
	MigrationsPath  string
	CartSlotPath    string
	RedisAddr       string
	RedisPassword   string
	KafkaBrokers    string
	GeminiAPIKey    string
	GeminiModel     string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		DBPath:          getEnv("DB_PATH", "./pawradise.db"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		CartSlotPath:    getEnv("CART_SLOT_PATH", "."),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", ""),
		RequestTimeout:  60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	log.Println("Pawradise server started")

	cfg := loadConfig()
	ctx := context.Background()

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := db.RunMigrations(conn, cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	catalogSvc := catalog.NewService(catalog.NewRepository(conn))
	contentRepo := content.NewRepository(conn)
	profiles := profile.NewMemoryStore()

	// Cart slot: Redis when configured, local file otherwise.
	var slot cart.SlotStore
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("Redis connection failed:", err)
		}
		log.Printf("Cart slot backed by Redis at %s", cfg.RedisAddr)
		slot = cart.NewRedisSlot(redisClient)
	} else {
		log.Printf("Cart slot backed by file in %s", cfg.CartSlotPath)
		slot = cart.NewFileSlot(cfg.CartSlotPath)
	}
	engine := cart.NewEngine(ctx, slot)

	var completer aitools.Completer
	if cfg.GeminiAPIKey != "" {
		gemini, err := aitools.NewGeminiCompleter(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		completer = gemini
	} else {
		log.Println("GEMINI_API_KEY not set, AI tools will report unavailable")
	}
	gateway := aitools.NewGateway(completer)

	var signaler checkout.Signaler
	if cfg.KafkaBrokers != "" {
		kafkaSignaler := checkout.NewKafkaSignaler(strings.Split(cfg.KafkaBrokers, ",")...)
		defer kafkaSignaler.Close()
		log.Printf("Checkout signals published to Kafka at %s", cfg.KafkaBrokers)
		signaler = kafkaSignaler
	} else {
		log.Println("KAFKA_BROKERS not set, checkout signals go to the log")
		signaler = checkout.LogSignaler{}
	}

	catalogHandler := h.NewCatalogHandler(catalogSvc)
	contentHandler := h.NewContentHandler(contentRepo)
	cartHandler := h.NewCartHandler(engine, catalogSvc)
	profileHandler := h.NewProfileHandler(profiles)
	toolsHandler := h.NewToolsHandler(gateway, profiles, contentRepo)
	checkoutHandler := h.NewCheckoutHandler(engine, signaler)

	// Setup router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(h.RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalogHandler.ListProducts)
			r.Get("/{id}", catalogHandler.GetProduct)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", contentHandler.ListEvents)
			r.Get("/{id}", contentHandler.GetEvent)
		})
		r.Route("/places", func(r chi.Router) {
			r.Get("/", contentHandler.ListPlaces)
			r.Get("/{id}", contentHandler.GetPlace)
		})
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", contentHandler.ListPosts)
			r.Get("/{id}", contentHandler.GetPost)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Patch("/items/{lineKey}", cartHandler.UpdateQuantity)
			r.Delete("/items/{lineKey}", cartHandler.RemoveItem)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Route("/owners", func(r chi.Router) {
				r.Get("/", profileHandler.ListOwners)
				r.Post("/", profileHandler.AddOwner)
				r.Put("/{id}", profileHandler.UpdateOwner)
				r.Delete("/{id}", profileHandler.RemoveOwner)
			})
			r.Route("/pets", func(r chi.Router) {
				r.Get("/", profileHandler.ListPets)
				r.Post("/", profileHandler.AddPet)
				r.Put("/{id}", profileHandler.UpdatePet)
				r.Delete("/{id}", profileHandler.RemovePet)
				r.Get("/active", profileHandler.GetActivePet)
				r.Put("/active/{id}", profileHandler.SetActivePet)
			})
		})

		r.Post("/tools/{tool}", toolsHandler.Invoke)
		r.Post("/concierge", toolsHandler.Concierge)

		r.Post("/checkout", checkoutHandler.RequestCheckout)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(r, "pawradise"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Pawradise listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
