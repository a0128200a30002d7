package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/epetrov2017/parkspot/internal/database"
	"github.com/epetrov2017/parkspot/internal/handlers"
	"github.com/epetrov2017/parkspot/internal/jwt"
	"github.com/epetrov2017/parkspot/internal/logger"
	"github.com/epetrov2017/parkspot/internal/metrics"
	"github.com/epetrov2017/parkspot/internal/middlewares"
	"github.com/epetrov2017/parkspot/internal/repositories"
	"github.com/epetrov2017/parkspot/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// @title parkspot API
// @version 1.0.0
// @description Backend for saving parking spots and running parking timers
// @host localhost:3000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	address, logLevel, dbPath,
		jwtSecret, jwtExpHours,
		adminUser, adminPassword,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		address, logLevel, dbPath,
		jwtSecret, jwtExpHours,
		adminUser, adminPassword,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, JWT, and admin seed configuration.
func parseConfig(path string) (
	address, logLevel, dbPath string,
	jwtSecret string, jwtExpHours int,
	adminUser, adminPassword string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	address = getEnv("APP_ADDRESS", ":3000")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// SQLite config
	dbPath = getEnv("DATABASE_PATH", "parkspot.db")

	// JWT config
	jwtSecret = getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production")
	if jwtExpHours, err = strconv.Atoi(getEnv("JWT_EXP_HOURS", "168")); err != nil {
		return
	}

	// Admin seed config
	adminUser = getEnv("ADMIN_USERNAME", "admin")
	adminPassword = getEnv("ADMIN_PASSWORD", "admin123")

	return
}

// run initializes the logger, database, and HTTP server. It sets up routes,
// applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	address, logLevel, dbPath string,
	jwtSecret string, jwtExpHours int,
	adminUser, adminPassword string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Open SQLite and apply migrations
	if err := database.RunMigrations(dbPath); err != nil {
		logger.Log.Errorw("Migrations failed", "error", err)
		return err
	}
	db, err := database.Open(dbPath)
	if err != nil {
		logger.Log.Errorw("SQLite connection error", "error", err)
		return err
	}
	defer db.Close()

	if err := database.SeedAdmin(ctx, db, adminUser, adminPassword); err != nil {
		logger.Log.Errorw("Admin seed failed", "error", err)
		return err
	}

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(jwtSecret),
		jwt.WithExpiration(time.Duration(jwtExpHours)*time.Hour),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	spotReadRepo := repositories.NewSpotReadRepository(db)
	spotWriteRepo := repositories.NewSpotWriteRepository(db)
	timerReadRepo := repositories.NewTimerReadRepository(db)
	timerWriteRepo := repositories.NewTimerWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	timerService := services.NewTimerService(timerReadRepo, timerWriteRepo)
	spotService := services.NewSpotService(spotReadRepo, spotWriteRepo, timerWriteRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	meHandler := handlers.NewMeHandler(authService)
	getSpotHandler := handlers.NewGetSpotHandler(spotService)
	saveSpotHandler := handlers.NewSaveSpotHandler(spotService)
	deleteSpotHandler := handlers.NewDeleteSpotHandler(spotService)
	getTimerHandler := handlers.NewGetTimerHandler(timerService)
	saveTimerHandler := handlers.NewSaveTimerHandler(timerService)
	deleteTimerHandler := handlers.NewDeleteTimerHandler(timerService)
	healthHandler := handlers.NewHealthHandler()

	// Metrics
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// Rate limiting for the credential endpoints
	loginLimiter := middlewares.NewRateLimiter(middlewares.DefaultRateLimiterConfig())
	defer loginLimiter.Stop()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(collector.Middleware())

	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(loginLimiter.Middleware())
		r.Post("/api/users/register", registerHandler)
		r.Post("/api/users/login", loginHandler)
	})
	r.Get("/api/health", healthHandler)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc))
		r.Get("/api/users/me", meHandler)
		r.Get("/api/parking-spot", getSpotHandler)
		r.Post("/api/parking-spot", saveSpotHandler)
		r.Delete("/api/parking-spot", deleteSpotHandler)
		r.Get("/api/timer-data", getTimerHandler)
		r.Post("/api/timer-data", saveTimerHandler)
		r.Delete("/api/timer-data", deleteTimerHandler)
	})

	r.Handle("/metrics", metrics.Handler(registry))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost%s/swagger/doc.json", address)),
	))

	srv := &http.Server{
		Addr:    address,
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
