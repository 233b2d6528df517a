package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"yt-transcript/config"
	"yt-transcript/handlers"
	"yt-transcript/logger"
	"yt-transcript/ratelimit"
	"yt-transcript/services/transcript"
	"yt-transcript/validation"
	"yt-transcript/youtube"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logConfig, err := logger.Init(cfg.LogDir, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize error reporting
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Release:          cfg.Version,
			TracesSampleRate: 0, // errors only, no transaction sampling
			SendDefaultPII:   false,
		})
		if err != nil {
			log.Fatalf("Failed to initialize error reporting: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Initialize rate limiter
	limiter := ratelimit.New(
		ratelimit.Quota{Max: cfg.RateLimit.RequestsPerMinute, Window: time.Minute},
		ratelimit.Quota{Max: cfg.RateLimit.RequestsPerDay, Window: 24 * time.Hour},
	)

	// Initialize transcript service
	fetcher := youtube.NewClient(youtube.Config{
		Timeout:           cfg.Fetch.Timeout,
		RequestsPerSecond: cfg.Fetch.RequestsPerSecond,
		Languages:         cfg.Fetch.PreferredLanguages,
	})
	service := transcript.NewService(
		youtube.NewResolver(),
		fetcher,
		validation.NewValidator(),
		transcript.Config{FetchTimeout: cfg.Fetch.Timeout},
	)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		ErrorHandler:          handlers.ErrorHandler,
		DisableStartupMessage: !cfg.Debug,
		StrictRouting:         true,
		CaseSensitive:         true,
		AppName:               "yt-transcript " + cfg.Version,
	})

	// Setup middleware
	setupMiddleware(app, cfg, logConfig)

	// Setup routes
	transcriptHandler := handlers.NewTranscriptHandler(service)

	// API routes; only the transcript endpoint is gated
	app.Get("/api/hello", handlers.Hello)
	if cfg.Middleware.EnableRateLimit && cfg.RateLimit.Enabled {
		app.Get("/api/transcript", ratelimit.Middleware(limiter), transcriptHandler.Get)
	} else {
		app.Get("/api/transcript", transcriptHandler.Get)
	}

	// Service documents
	app.Get("/openapi.json", handlers.OpenAPI)
	app.Get("/privacy-policy", handlers.PrivacyPolicy)

	// Health check
	app.Get("/health", handlers.HealthCheck)

	// Graceful shutdown setup
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChan
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start server
	serverAddr := ":" + cfg.ServerPort
	if cfg.Debug {
		log.Printf("Server starting on http://localhost%s", serverAddr)
	}

	if err := app.Listen(serverAddr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func setupMiddleware(app *fiber.App, cfg *config.Config, logConfig *fiberLogger.Config) {
	if cfg.Middleware.EnableRecover {
		app.Use(recover.New(recover.Config{
			EnableStackTrace: cfg.Debug,
		}))
	}

	if cfg.Middleware.EnableRequestID {
		app.Use(requestid.New(requestid.Config{
			Header: "X-Request-ID",
			Generator: func() string {
				return uuid.New().String()
			},
		}))
	}

	if cfg.Middleware.EnableLogger {
		app.Use(fiberLogger.New(*logConfig))
	}

	if cfg.Middleware.EnableCORS && cfg.CORS.Enabled {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Join(cfg.CORS.AllowedOrigins, ","),
			AllowMethods:     strings.Join(cfg.CORS.AllowedMethods, ","),
			AllowHeaders:     strings.Join(cfg.CORS.AllowedHeaders, ","),
			ExposeHeaders:    strings.Join(cfg.CORS.ExposedHeaders, ","),
			AllowCredentials: cfg.CORS.AllowCredentials,
			MaxAge:           cfg.CORS.MaxAge,
		}))
	}

	if cfg.Middleware.EnableCompress {
		app.Use(compress.New(compress.Config{
			Level: compress.LevelDefault,
		}))
	}

	if cfg.Middleware.EnableETag {
		app.Use(etag.New())
	}
}
