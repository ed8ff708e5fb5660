package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bizmandi/storefront/config"
	"github.com/bizmandi/storefront/pkg/api/handlers"
	custommw "github.com/bizmandi/storefront/pkg/api/middleware"
	"github.com/bizmandi/storefront/pkg/cache"
	"github.com/bizmandi/storefront/pkg/catalog"
	"github.com/bizmandi/storefront/pkg/commerce"
	"github.com/bizmandi/storefront/pkg/database"
	"github.com/bizmandi/storefront/pkg/email"
	"github.com/bizmandi/storefront/pkg/jobs"
	"github.com/bizmandi/storefront/pkg/logger"
	"github.com/bizmandi/storefront/pkg/metrics"
	custommiddleware "github.com/bizmandi/storefront/pkg/middleware"
	"github.com/bizmandi/storefront/pkg/otp"
	"github.com/bizmandi/storefront/pkg/registration"
	"github.com/bizmandi/storefront/pkg/sellerprofile"
	"github.com/bizmandi/storefront/pkg/session"
)

// defaultFilterTypes lists the filterable catalog facets and their
// kinds. In production this map is refreshed from the commerce backend
// at deploy time; the hardcoded set covers the marketplace's fixed
// facets.
var defaultFilterTypes = map[string]catalog.FacetKind{
	"price":          catalog.FacetPrice,
	"brand":          catalog.FacetMultiSelect,
	"color":          catalog.FacetMultiSelect,
	"material":       catalog.FacetMultiSelect,
	"size":           catalog.FacetSelect,
	"min_order_qty":  catalog.FacetSelect,
	"verified":       catalog.FacetBoolean,
	"in_stock":       catalog.FacetBoolean,
	"ships_same_day": catalog.FacetBoolean,
}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	appLogger := logger.New(cfg.LogLevel)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0, // Capture 100% of transactions in development, adjust in production
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClientWithPool(cfg.DatabaseURL, database.DefaultPoolConfig())
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Core services
	sessions := session.NewStore(redisClient, time.Duration(cfg.SessionTTLHours)*time.Hour)
	otpService := otp.NewService(redisClient, otp.NewConsoleProvider(appLogger), otp.Config{
		Length:         cfg.OTPLength,
		TTL:            time.Duration(cfg.OTPTTLSeconds) * time.Second,
		ResendCooldown: time.Duration(cfg.OTPResendCooldownSec) * time.Second,
		MaxAttempts:    cfg.OTPMaxAttempts,
		FromNumber:     cfg.SMSFromNumber,
	})
	profileService := sellerprofile.NewService(db.Ent)
	commerceClient := commerce.NewHTTPClient(cfg.CommerceGraphQLURL, cfg.CommerceStoreCode)
	emailService := email.NewService(cfg.EmailFrom, cfg.EmailFromName, cfg.FrontendURL, cfg.SendGridAPIKey)

	registrationService := registration.NewService(
		db.Ent,
		redisClient,
		sessions,
		otpService,
		profileService,
		commerceClient,
		emailService,
		appLogger,
		cfg.SyntheticEmailDomain,
		time.Duration(cfg.SessionTTLHours)*time.Hour,
	)

	// Cron manager for the draft retention job
	cronManager := jobs.NewCronManager(
		profileService,
		prometheusMetrics,
		time.Duration(cfg.DraftRetentionDays)*24*time.Hour,
		log.Default(),
	)
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	otpRateLimiter := custommiddleware.NewRateLimiter(5, 2)    // 5 req/min for code sends
	submitRateLimiter := custommiddleware.NewRateLimiter(10, 3) // 10 req/min for final submits

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true, // Repanic after capturing to let the Recover middleware handle it
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig()))

	e.Use(middleware.Gzip())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.SecurityHeadersConfig{}))

	// Global rate limiting
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "BizMandi Storefront API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		// Check database connection
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		// Check Redis connection
		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Handlers
	catalogHandler := handlers.NewCatalogHandler(defaultFilterTypes, sessions, prometheusMetrics)
	registrationHandler := handlers.NewRegistrationHandler(registrationService, prometheusMetrics, cfg.JWTSecret, cfg.JWTExpirationHours)
	graphqlHandler := handlers.NewGraphQLHandler(db.Ent, registrationService, sessions, defaultFilterTypes, cfg.JWTSecret, cfg.JWTExpirationHours)

	// API v1 routes
	v1 := e.Group("/api/v1")

	catalogRoutes := v1.Group("/catalog")
	{
		catalogRoutes.POST("/resolve", catalogHandler.ResolveListing)
	}

	sessionRoutes := v1.Group("/session")
	{
		sessionRoutes.PUT("/nearby-location", catalogHandler.SaveNearbyLocation)
		sessionRoutes.GET("/nearby-location", catalogHandler.NearbyLocation)
		sessionRoutes.DELETE("/nearby-location", catalogHandler.ClearNearbyLocation)
		sessionRoutes.PUT("/return-url", catalogHandler.SaveReturnURL)
		sessionRoutes.POST("/return-url", catalogHandler.PopReturnURL)
	}

	registrationRoutes := v1.Group("/registration")
	{
		// Code sends carry a strict limit on top of the service cooldown
		registrationRoutes.POST("/request-code", registrationHandler.RequestCode, otpRateLimiter.RateLimitMiddleware())
		registrationRoutes.POST("/verify", registrationHandler.VerifyCode)

		// Wizard routes are gated by the signup token
		gated := registrationRoutes.Group("", custommw.SignupGateMiddleware(cfg.JWTSecret))
		gated.PUT("/draft", registrationHandler.SaveDraft)
		gated.GET("/draft", registrationHandler.Resume)
		gated.POST("/submit", registrationHandler.Submit, submitRateLimiter.RateLimitMiddleware())
	}

	// GraphQL endpoint + playground
	e.POST("/graphql", graphqlHandler.GraphQLEndpoint)
	if cfg.GraphQLPlayground {
		e.GET("/playground", graphqlHandler.Playground)
	}

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 BizMandi Storefront API starting on %s", address)
	log.Printf("🔐 Signup token expiration: %d hours", cfg.JWTExpirationHours)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("📲 OTP: length %d, TTL %ds, resend cooldown %ds, max attempts %d", cfg.OTPLength, cfg.OTPTTLSeconds, cfg.OTPResendCooldownSec, cfg.OTPMaxAttempts)
	log.Printf("⏰ Cron jobs: Daily 3AM (purge drafts older than %d days)", cfg.DraftRetentionDays)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	// Stop cron jobs
	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	// Gracefully shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited")
}
