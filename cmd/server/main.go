package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/wedding-app/server/internal/api"
	"github.com/wedding-app/server/internal/api/handlers"
	"github.com/wedding-app/server/internal/api/middleware"
	"github.com/wedding-app/server/internal/api/services"
	"github.com/wedding-app/server/internal/config"
	"github.com/wedding-app/server/internal/repositories"
)

// @title Wedding API
// @version 1.0
// @description Guests, RSVPs, gift reservations, wishes and the photo gallery, with a Google Drive upload relay.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Envs
	log := newLogger(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repositories.ConnectDatabase(cfg.DB_URL, cfg.SQLitePath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not connect to database")
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if cfg.Admin.Username != "" && cfg.Admin.Password != "" {
		if _, err := repositories.EnsureAdmin(ctx, db, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			log.Fatal().Err(err).Msg("Could not seed admin user")
		}
		log.Info().Str("username", cfg.Admin.Username).Msg("Admin user ready")
	}

	var sessions repositories.SessionStore
	if cfg.RedisURL != "" {
		rdb, err := repositories.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Could not connect to redis")
		}
		defer rdb.Close()
		sessions = repositories.NewRedisSessionStore(rdb, cfg.SessionTTL)
	} else {
		log.Warn().Msg("REDIS_URL not set, keeping Google sessions in memory")
		sessions = repositories.NewMemorySessionStore(cfg.SessionTTL)
	}

	outbound := &http.Client{Timeout: cfg.UpstreamTimeout}
	drive := services.NewDriveClient()

	h := &handlers.Handler{
		DB:              db,
		Sessions:        sessions,
		Tokens:          services.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		OAuth:           services.NewGoogleOauthConfig(cfg.Google),
		Drive:           drive,
		HTTPClient:      outbound,
		StagingDir:      cfg.StagingDir,
		MaxUploadBytes:  cfg.MaxUploadBytes,
		UpstreamTimeout: cfg.UpstreamTimeout,
		SessionTTL:      cfg.SessionTTL,
		SecureCookies:   cfg.IsProduction(),
	}

	var r2 *repositories.R2Store
	if cfg.R2.Enabled() {
		r2 = repositories.NewR2Store(cfg.R2.AccessKeyID, cfg.R2.SecretAccessKey, cfg.R2.AccountID,
			cfg.R2.BucketName, cfg.R2.Region, cfg.R2.PublicBaseURL, "")
		h.Objects = r2
	}

	switch cfg.GalleryStorage {
	case "r2":
		if r2 == nil {
			log.Warn().Msg("GALLERY_STORAGE=r2 but R2 is not configured, gallery uploads disabled")
			break
		}
		h.Gallery = r2
	default:
		if cfg.Google.ServiceAccountFile == "" {
			log.Warn().Msg("GOOGLE_SERVICE_ACCOUNT_FILE not set, gallery uploads disabled")
			break
		}
		client, err := services.NewServiceAccountClient(services.WithHTTPClient(ctx, outbound), cfg.Google.ServiceAccountFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Could not load service account")
		}
		h.Gallery = &services.DriveUploader{Drive: drive, Client: client}
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	if err := limiter.TrustProxies(cfg.RateLimit.TrustedProxies); err != nil {
		log.Fatal().Err(err).Msg("Invalid TRUSTED_PROXIES")
	}
	router := api.SetupRouter(api.RouterDeps{
		Handler: h,
		Auth:    middleware.NewAuthenticator(h.Tokens),
		Limiter: limiter,
		Log:     log,
		Cors:    cfg.CorsConfig,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
		// Uploads are relayed synchronously, so writes get room for one upstream call.
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      2*time.Minute + cfg.UpstreamTimeout,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("Starting wedding server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		log.Info().Msg("Shutting down")
		return server.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				limiter.Cleanup()
			}
		}
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsProduction() {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}
