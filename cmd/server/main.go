package main

import (
	"context"
	"strings"

	"anoa.com/spacemanagement/internal/bootstrap"
	"anoa.com/spacemanagement/internal/config"
	notifService "anoa.com/spacemanagement/internal/modules/notification/service"
	searchService "anoa.com/spacemanagement/internal/modules/search/service"
	"anoa.com/spacemanagement/internal/scheduler"
	"anoa.com/spacemanagement/internal/server"
	"anoa.com/spacemanagement/pkg/database"
	"anoa.com/spacemanagement/pkg/logger"
	"anoa.com/spacemanagement/pkg/normalize"
	"anoa.com/spacemanagement/pkg/storage"
	"anoa.com/spacemanagement/pkg/token"
	"github.com/meilisearch/meilisearch-go"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.AppEnv, "catalog")

	db, err := database.Connect(cfg.CatalogDatabase())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := bootstrap.MigrateCatalog(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if err := bootstrap.SeedImages(db); err != nil {
		log.Fatal().Err(err).Msg("failed to seed default images")
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}

	search := newSearch(cfg)

	var imageStorage storage.ImageStorage
	if cfg.CloudinaryURL != "" {
		imageStorage, err = storage.NewCloudinaryStorage(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize cloudinary storage")
		}
	} else {
		log.Warn().Msg("CLOUDINARY_URL not set, image uploads are disabled")
	}

	srv := server.NewCatalogServer(server.CatalogOptions{
		DB:                    db,
		Redis:                 redisClient,
		Tokens:                token.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTTTL),
		Relay:                 notifService.NewHTTPRelay(cfg.NotificationServiceURL, cfg.InternalAPIKey, nil),
		Search:                search,
		Storage:               imageStorage,
		AllowedOrigins:        cfg.AllowedOrigins,
		UploadFolder:          cfg.CloudinaryUploadFolder,
		RateLimitWrite:        cfg.RateLimitWrite,
		SearchReindexSchedule: cfg.SearchReindexSchedule,
		Textures:              normalize.DefaultTextureCatalog(),
		TailColors:            normalize.DefaultTailColorPolicy(),
	})

	sched := scheduler.New()
	for _, job := range srv.Jobs() {
		if err := sched.Register(job); err != nil {
			log.Fatal().Err(err).Str("job", job.Name()).Msg("failed to schedule job")
		}
	}
	sched.Start()
	defer sched.Stop()

	if cfg.MeiliSearchHost != "" {
		// Fill the index once at boot; the schedule keeps it repaired.
		go func() {
			_ = sched.RunByName(context.Background(), "search-reindex")
		}()
	}

	log.Info().Str("port", cfg.Port).Msg("catalog service listening")
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func newSearch(cfg *config.Config) searchService.SearchService {
	if cfg.MeiliSearchHost == "" {
		log.Warn().Msg("MEILISEARCH_HOST not set, search is disabled")
		return searchService.NewDisabledSearchService()
	}

	host := cfg.MeiliSearchHost
	if !strings.HasPrefix(host, "http") {
		host = "http://" + host + ":7700"
	}

	client := meilisearch.New(host, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	return searchService.NewMeiliSearchService(client)
}
