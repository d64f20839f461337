package config

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	PublicBaseURL   string
}

// Enabled reports whether enough R2 settings are present to build a client.
func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.SecretAccessKey != "" && c.BucketName != ""
}

type GoogleConfig struct {
	ClientID           string
	ClientSecret       string
	RedirectURL        string
	ServiceAccountFile string
}

type AdminConfig struct {
	Username string
	Password string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	// TrustedProxies lists the CIDRs whose X-Forwarded-For is believed.
	TrustedProxies []string
}

type Config struct {
	DB_URL          string
	SQLitePath      string
	Port            string
	Environment     string
	LogLevel        string
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	Admin           AdminConfig
	CorsConfig      cors.Options
	Google          GoogleConfig
	GalleryStorage  string
	R2              R2Config
	RedisURL        string
	SessionTTL      time.Duration
	StagingDir      string
	MaxUploadBytes  int64
	UpstreamTimeout time.Duration
	RateLimit       RateLimitConfig
}

// IsProduction reports whether the process runs with ENV=production.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// devJWTSecret signs tokens in development only; Validate refuses it in production.
const devJWTSecret = "not-so-secret-now-is-it?"

var errDevSecret = errors.New("JWT_SECRET must be set in production")

// Validate rejects settings that are unsafe for the current environment.
func (c Config) Validate() error {
	if c.IsProduction() && (c.JWTSecret == "" || c.JWTSecret == devJWTSecret) {
		return errDevSecret
	}
	return nil
}

var Envs = initConfig()

func initConfig() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	// A missing .env is normal outside local development.
	_ = godotenv.Load(envFile)

	return Load()
}

// Load builds a Config from the current process environment.
func Load() Config {
	return Config{
		DB_URL:          databaseURL(),
		SQLitePath:      getEnv("SQLITE_PATH", "db.sqlite3"),
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		JWTSecret:       getEnv("JWT_SECRET", devJWTSecret),
		AccessTokenTTL:  getDuration("ACCESS_TOKEN_TTL", 60*time.Minute),
		RefreshTokenTTL: getDuration("REFRESH_TOKEN_TTL", 24*time.Hour),
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		CorsConfig: CorsConfig(splitList(getEnv("CORS_ALLOWED_ORIGINS",
			"http://localhost:3000,https://wedding-app-seven-rho.vercel.app"))),
		Google: GoogleConfig{
			ClientID:           getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret:       getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:        getEnv("GOOGLE_REDIRECT_URI", "http://localhost:8080/api/auth/callback"),
			ServiceAccountFile: getEnv("GOOGLE_SERVICE_ACCOUNT_FILE", ""),
		},
		GalleryStorage: getEnv("GALLERY_STORAGE", "drive"),
		R2: R2Config{
			AccountID:       getEnv("R2_ACCOUNT_ID", ""),
			AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnv("R2_BUCKET_NAME", ""),
			Region:          getEnv("R2_REGION", "auto"),
			PublicBaseURL:   getEnv("R2_PUBLIC_BASE_URL", ""),
		},
		RedisURL:        getEnv("REDIS_URL", ""),
		SessionTTL:      getDuration("SESSION_TTL", 14*24*time.Hour),
		StagingDir:      getEnv("UPLOAD_STAGING_DIR", os.TempDir()),
		MaxUploadBytes:  getInt64("MAX_UPLOAD_BYTES", 20<<20),
		UpstreamTimeout: getDuration("UPSTREAM_TIMEOUT", 30*time.Second),
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getFloat("RATE_LIMIT_RPS", 5),
			Burst:             int(getInt64("RATE_LIMIT_BURST", 10)),
			TrustedProxies:    splitList(getEnv("TRUSTED_PROXIES", "")),
		},
	}
}

// databaseURL prefers DB_URL and falls back to the discrete POSTGRES_* variables.
// An empty result selects the local sqlite database.
func databaseURL() string {
	if dsn := getEnv("DB_URL", ""); dsn != "" {
		return dsn
	}
	name := getEnv("POSTGRES_DB", "")
	host := getEnv("POSTGRES_HOST", "")
	if name == "" || host == "" {
		return ""
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(getEnv("POSTGRES_USER", ""), getEnv("POSTGRES_PASSWORD", "")),
		Host:   fmt.Sprintf("%s:%s", host, getEnv("POSTGRES_PORT", "5432")),
		Path:   "/" + name,
	}
	q := url.Values{}
	q.Set("sslmode", getEnv("PGSSLMODE", "require"))
	if root := getEnv("PGSSLROOTCERT", ""); root != "" {
		q.Set("sslrootcert", root)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return d
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if n, err := strconv.ParseInt(getEnv(key, ""), 10, 64); err == nil {
		return n
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(getEnv(key, ""), 64); err == nil {
		return f
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func CorsConfig(origins []string) cors.Options {
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}
