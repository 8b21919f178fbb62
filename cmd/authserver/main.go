package main

import (
	"anoa.com/spacemanagement/internal/bootstrap"
	"anoa.com/spacemanagement/internal/config"
	"anoa.com/spacemanagement/internal/server"
	"anoa.com/spacemanagement/pkg/database"
	"anoa.com/spacemanagement/pkg/logger"
	"anoa.com/spacemanagement/pkg/token"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.AppEnv, "auth")

	db, err := database.Connect(cfg.AuthDatabase())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := bootstrap.MigrateAuth(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}

	if cfg.InternalAPIKey == "" {
		log.Warn().Msg("INTERNAL_API_KEY not set, add-notification accepts any caller")
	}

	srv := server.NewAuthServer(server.AuthOptions{
		DB:             db,
		Redis:          redisClient,
		Tokens:         token.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTTTL),
		AllowedOrigins: cfg.AllowedOrigins,
		InternalAPIKey: cfg.InternalAPIKey,
	})

	log.Info().Str("port", cfg.AuthPort).Msg("auth service listening")
	if err := srv.Run(":" + cfg.AuthPort); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}
