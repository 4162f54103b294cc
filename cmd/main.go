package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-media-channels/internal/cache"
	"github.com/sbilibin2017/gw-media-channels/internal/handlers"
	"github.com/sbilibin2017/gw-media-channels/internal/jwt"
	"github.com/sbilibin2017/gw-media-channels/internal/logger"
	"github.com/sbilibin2017/gw-media-channels/internal/middlewares"
	"github.com/sbilibin2017/gw-media-channels/internal/repositories"
	"github.com/sbilibin2017/gw-media-channels/internal/services"
	"github.com/sbilibin2017/gw-media-channels/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const serviceName = "gw-media-channels"

// @title gw-media-channels API
// @version 1.0.0
// @description Media channels: accounts, categories, media uploads and moderation
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// blobStore is what the services write uploads to and the /uploads routes read from.
type blobStore interface {
	services.BlobStore
	handlers.BlobOpener
	handlers.BlobChecker
}

func newBlobStore(ctx context.Context, cfg *Config) (blobStore, error) {
	if cfg.Uploads.Driver == blobDriverMinIO {
		return storage.NewMinIO(ctx, storage.MinIOConfig{
			Endpoint:        cfg.MinIO.Endpoint,
			AccessKeyID:     cfg.MinIO.AccessKeyID,
			SecretAccessKey: cfg.MinIO.SecretAccessKey,
			BucketName:      cfg.MinIO.BucketName,
			UseSSL:          cfg.MinIO.UseSSL,
		})
	}
	return storage.NewLocal(cfg.Uploads.Dir)
}

// run initializes the logger, database, token service and blob store, then
// serves HTTP until ctx is canceled or a shutdown signal arrives.
func run(ctx context.Context, cfg *Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, serviceName); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	tokens, err := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.Exp),
	)
	if err != nil {
		return err
	}

	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := repositories.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("schema bootstrap failed: %w", err)
	}

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("blob store init failed: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler:           newRouter(cfg, db, tokens, blobs),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers onto the chi router.
func newRouter(cfg *Config, db *sqlx.DB, tokens *jwt.JWT, blobs blobStore) http.Handler {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	mediaRepo := repositories.NewMediaRepository(db)

	// Initialize services
	credentials := services.NewCredentialStore(userRepo, userRepo)
	authService := services.NewAuthService(credentials, tokens)
	listingService := services.NewListingService(
		cache.NewMemory(),
		categoryRepo,
		mediaRepo,
		blobs,
		services.WithTTL(cfg.Cache.TTL),
	)
	userService := services.NewUserService(userRepo, listingService)

	baseURL := cfg.App.BaseURL
	maxBytes := cfg.Uploads.MaxBytes

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/auth/register", handlers.NewRegisterHandler(authService, baseURL))
		r.Post("/auth/login", handlers.NewLoginHandler(authService, baseURL))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))

			r.Get("/getUser", handlers.NewGetUserHandler(userService, baseURL))
			r.Post("/updateUser", handlers.NewUpdateUserHandler(userService, baseURL))
			r.Post("/createChannel", handlers.NewCreateChannelHandler(userService, baseURL))
			r.Post("/updateChannel", handlers.NewUpdateChannelHandler(userService, baseURL))

			r.Get("/getCategories", handlers.NewGetCategoriesHandler(listingService, userService, baseURL))
			r.Get("/getMedia", handlers.NewGetMediaHandler(listingService, userService, baseURL))
			r.Get("/getUserMedia", handlers.NewGetUserMediaHandler(listingService, baseURL))
			r.Post("/createMedia", handlers.NewCreateMediaHandler(listingService, maxBytes, baseURL))

			// Privileged routes
			r.Group(func(r chi.Router) {
				r.Use(middlewares.RequirePrivileged(userService))

				r.Get("/getAppUsers", handlers.NewGetAppUsersHandler(userService, baseURL))
				r.Get("/dashboardData", handlers.NewDashboardHandler(userService))
				r.Post("/addCategory", handlers.NewAddCategoryHandler(listingService, maxBytes, baseURL))
				r.Put("/updateCategory/{id}", handlers.NewUpdateCategoryHandler(listingService, maxBytes, baseURL))
				r.Post("/deleteCategory/{id}", handlers.NewDeleteCategoryHandler(listingService))
				r.Put("/updateMediaStatus/{id}", handlers.NewUpdateMediaStatusHandler(listingService, baseURL))
			})
		})
	})

	r.Get("/uploads/*", handlers.NewBlobHandler(blobs))
	r.Head("/uploads/*", handlers.NewBlobHeadHandler(blobs))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(baseURL+"/swagger/doc.json"),
	))

	return r
}
