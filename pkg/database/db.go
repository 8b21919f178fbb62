package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options selects the SQL backend. Postgres is the default; sqlite is meant
// for local runs and tests.
type Options struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SQLitePath string
	Debug      bool
}

func Connect(opts Options) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch opts.Driver {
	case "", "postgres", "postgresql":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			valueOrDefault(opts.Host, "localhost"),
			valueOrDefault(opts.User, "postgres"),
			opts.Password,
			opts.Name,
			valueOrDefault(opts.Port, "5432"),
		)
		dialector = postgres.Open(dsn)

	case "sqlite":
		dialector = sqlite.Open(valueOrDefault(opts.SQLitePath, opts.Name+".db"))

	default:
		return nil, fmt.Errorf("unsupported database driver: %s", opts.Driver)
	}

	logLevel := logger.Warn
	if opts.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if opts.Driver == "sqlite" {
		// sqlite allows a single writer
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info().Str("driver", valueOrDefault(opts.Driver, "postgres")).Str("database", opts.Name).Msg("connected to database")

	return db, nil
}

func valueOrDefault(val, fallback string) string {
	if val != "" {
		return val
	}

	return fallback
}
