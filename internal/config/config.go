package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"anoa.com/spacemanagement/pkg/database"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AuthPort       string
	AllowedOrigins []string

	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPass       string
	DBName       string
	AuthDBName   string
	DBSQLitePath string

	RedisURL string

	MeiliSearchHost       string
	MeiliMasterKey        string
	SearchReindexSchedule string

	CloudinaryURL          string
	CloudinaryUploadFolder string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	JWTTTL      time.Duration

	NotificationServiceURL string
	InternalAPIKey         string

	RateLimitWrite time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AuthPort:       getEnv("AUTH_PORT", "7134"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		DBDriver:     getEnv("DB_DRIVER", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPass:       os.Getenv("DB_PASS"),
		DBName:       getEnv("DB_NAME", "space_management"),
		AuthDBName:   getEnv("AUTH_DB_NAME", "space_management_auth"),
		DBSQLitePath: os.Getenv("DB_SQLITE_PATH"),

		RedisURL: os.Getenv("REDIS_URL"),

		MeiliSearchHost:       os.Getenv("MEILISEARCH_HOST"),
		MeiliMasterKey:        os.Getenv("MEILI_MASTER_KEY"),
		SearchReindexSchedule: getEnv("SEARCH_REINDEX_SCHEDULE", "@every 6h"),

		CloudinaryURL:          os.Getenv("CLOUDINARY_URL"),
		CloudinaryUploadFolder: getEnv("CLOUDINARY_UPLOAD_FOLDER", "space_management"),

		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		JWTIssuer:   getEnv("JWT_ISSUER", "space-management-auth"),
		JWTAudience: getEnv("JWT_AUDIENCE", "space-management"),

		NotificationServiceURL: getEnv("NOTIFICATION_SERVICE_URL", "http://localhost:7134"),
		InternalAPIKey:         os.Getenv("INTERNAL_API_KEY"),
	}

	ttlMinutes, err := strconv.Atoi(getEnv("JWT_TTL_MINUTES", "30"))
	if err != nil || ttlMinutes <= 0 {
		return nil, fmt.Errorf("invalid JWT_TTL_MINUTES: %q", os.Getenv("JWT_TTL_MINUTES"))
	}
	cfg.JWTTTL = time.Duration(ttlMinutes) * time.Minute

	cfg.RateLimitWrite, err = time.ParseDuration(getEnv("RATE_LIMIT_WRITE", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WRITE: %w", err)
	}

	return cfg, nil
}

// CatalogDatabase is the connection of the catalog service.
func (c *Config) CatalogDatabase() database.Options {
	return c.databaseOptions(c.DBName)
}

// AuthDatabase is the connection of the auth service.
func (c *Config) AuthDatabase() database.Options {
	return c.databaseOptions(c.AuthDBName)
}

func (c *Config) databaseOptions(name string) database.Options {
	opts := database.Options{
		Driver:   c.DBDriver,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPass,
		Name:     name,
		Debug:    c.AppEnv == "development",
	}
	if c.DBDriver == "sqlite" && c.DBSQLitePath != "" {
		opts.SQLitePath = strings.TrimSuffix(c.DBSQLitePath, "/") + "/" + name + ".db"
	}
	return opts
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
