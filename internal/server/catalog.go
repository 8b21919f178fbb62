package server

import (
	"time"

	"anoa.com/spacemanagement/internal/middleware"
	"anoa.com/spacemanagement/internal/scheduler"
	"anoa.com/spacemanagement/pkg/normalize"
	"anoa.com/spacemanagement/pkg/storage"
	"anoa.com/spacemanagement/pkg/token"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	alienHttp "anoa.com/spacemanagement/internal/modules/alien/delivery/http"
	alienRepo "anoa.com/spacemanagement/internal/modules/alien/repository"
	alienService "anoa.com/spacemanagement/internal/modules/alien/service"

	celestialHttp "anoa.com/spacemanagement/internal/modules/celestial/delivery/http"
	celestialRepo "anoa.com/spacemanagement/internal/modules/celestial/repository"
	celestialService "anoa.com/spacemanagement/internal/modules/celestial/service"

	cometHttp "anoa.com/spacemanagement/internal/modules/comet/delivery/http"
	cometRepo "anoa.com/spacemanagement/internal/modules/comet/repository"
	cometService "anoa.com/spacemanagement/internal/modules/comet/service"

	constellationHttp "anoa.com/spacemanagement/internal/modules/constellation/delivery/http"
	constellationRepo "anoa.com/spacemanagement/internal/modules/constellation/repository"
	constellationService "anoa.com/spacemanagement/internal/modules/constellation/service"

	imageHttp "anoa.com/spacemanagement/internal/modules/image/delivery/http"
	imageRepo "anoa.com/spacemanagement/internal/modules/image/repository"
	imageService "anoa.com/spacemanagement/internal/modules/image/service"

	moonHttp "anoa.com/spacemanagement/internal/modules/moon/delivery/http"
	moonRepo "anoa.com/spacemanagement/internal/modules/moon/repository"
	moonService "anoa.com/spacemanagement/internal/modules/moon/service"

	notifHttp "anoa.com/spacemanagement/internal/modules/notification/delivery/http"
	notifRepo "anoa.com/spacemanagement/internal/modules/notification/repository"
	notifService "anoa.com/spacemanagement/internal/modules/notification/service"

	planetHttp "anoa.com/spacemanagement/internal/modules/planet/delivery/http"
	planetRepo "anoa.com/spacemanagement/internal/modules/planet/repository"
	planetService "anoa.com/spacemanagement/internal/modules/planet/service"

	satelliteHttp "anoa.com/spacemanagement/internal/modules/satellite/delivery/http"
	satelliteRepo "anoa.com/spacemanagement/internal/modules/satellite/repository"
	satelliteService "anoa.com/spacemanagement/internal/modules/satellite/service"

	searchHttp "anoa.com/spacemanagement/internal/modules/search/delivery/http"
	searchService "anoa.com/spacemanagement/internal/modules/search/service"

	spaceshipHttp "anoa.com/spacemanagement/internal/modules/spaceship/delivery/http"
	spaceshipRepo "anoa.com/spacemanagement/internal/modules/spaceship/repository"
	spaceshipService "anoa.com/spacemanagement/internal/modules/spaceship/service"
)

// CatalogOptions carries the collaborators of the catalog service. Redis,
// Search and Storage are optional.
type CatalogOptions struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Tokens  *token.Manager
	Relay   notifService.Relay
	Search  searchService.SearchService
	Storage storage.ImageStorage

	AllowedOrigins        []string
	UploadFolder          string
	RateLimitWrite        time.Duration
	SearchReindexSchedule string

	Textures   normalize.TextureCatalog
	TailColors normalize.TailColorPolicy
}

// CatalogServer is the primary service: the celestial catalog.
type CatalogServer struct {
	Server
	jobs []scheduler.Job
}

// Jobs are the background jobs the catalog wants scheduled.
func (s *CatalogServer) Jobs() []scheduler.Job {
	return s.jobs
}

func NewCatalogServer(opts CatalogOptions) *CatalogServer {
	db := opts.DB

	search := opts.Search
	if search == nil {
		search = searchService.NewDisabledSearchService()
	}
	textures := opts.Textures
	if textures.IsZero() {
		textures = normalize.DefaultTextureCatalog()
	}
	tails := opts.TailColors
	if tails == (normalize.TailColorPolicy{}) {
		tails = normalize.DefaultTailColorPolicy()
	}

	imageSvc := imageService.NewImageService(imageRepo.NewImageRepository(db), opts.Storage, opts.UploadFolder)
	imageHandler := imageHttp.NewImageHandler(imageSvc)

	celestialRepository := celestialRepo.NewCelestialRepository(db)
	celestialHandler := celestialHttp.NewCelestialHandler(celestialService.NewCelestialService(celestialRepository))

	notificationSvc := notifService.NewNotificationService(notifRepo.NewNotificationRepository(db), opts.Relay)
	notificationHandler := notifHttp.NewNotificationHandler(notificationSvc)

	planetHandler := planetHttp.NewPlanetHandler(
		planetService.NewPlanetService(planetRepo.NewPlanetRepository(db), imageSvc, search, textures))
	moonHandler := moonHttp.NewMoonHandler(
		moonService.NewMoonService(moonRepo.NewMoonRepository(db), imageSvc, search))
	satelliteHandler := satelliteHttp.NewSatelliteHandler(
		satelliteService.NewSatelliteService(satelliteRepo.NewSatelliteRepository(db), imageSvc, search))
	cometHandler := cometHttp.NewCometHandler(
		cometService.NewCometService(cometRepo.NewCometRepository(db), imageSvc, search, tails))
	constellationHandler := constellationHttp.NewConstellationHandler(
		constellationService.NewConstellationService(constellationRepo.NewConstellationRepository(db), imageSvc, search))
	spaceshipHandler := spaceshipHttp.NewSpaceshipHandler(
		spaceshipService.NewSpaceshipService(spaceshipRepo.NewSpaceshipRepository(db), imageSvc, search))
	alienHandler := alienHttp.NewAlienHandler(
		alienService.NewAlienService(alienRepo.NewAlienRepository(db), imageSvc, search, notificationSvc))

	searchHandler := searchHttp.NewSearchHandler(search)

	router := newEngine(opts.AllowedOrigins)

	authMiddleware := middleware.NewAuthMiddleware(opts.Tokens)
	rateLimiter := middleware.NewRateLimiter(opts.Redis, opts.RateLimitWrite)

	api := router.Group("/api")
	api.Use(authMiddleware.RequireAuth(), rateLimiter.LimitWrites())
	{
		planets := api.Group("/planets")
		planets.GET("", planetHandler.GetAll)
		planets.GET("/withLife", planetHandler.GetWithLife)
		planets.GET("/withRings", planetHandler.GetWithRings)
		planets.GET("/:id", planetHandler.GetByID)
		planets.POST("", planetHandler.Create)
		planets.PUT("/:id", planetHandler.Update)
		planets.DELETE("/:id", planetHandler.Delete)

		moons := api.Group("/moons")
		moons.GET("", moonHandler.GetAll)
		moons.GET("/:id", moonHandler.GetByID)
		moons.POST("", moonHandler.Create)
		moons.PUT("/:id", moonHandler.Update)
		moons.DELETE("/:id", moonHandler.Delete)

		satellites := api.Group("/satellites")
		satellites.GET("", satelliteHandler.GetAll)
		satellites.GET("/:id", satelliteHandler.GetByID)
		satellites.POST("", satelliteHandler.Create)
		satellites.PUT("/:id", satelliteHandler.Update)
		satellites.DELETE("/:id", satelliteHandler.Delete)

		comets := api.Group("/comets")
		comets.GET("", cometHandler.GetAll)
		comets.GET("/:id", cometHandler.GetByID)
		comets.POST("", cometHandler.Create)
		comets.PUT("/:id", cometHandler.Update)
		comets.DELETE("/:id", cometHandler.Delete)

		constellations := api.Group("/constellations")
		constellations.GET("", constellationHandler.GetAll)
		constellations.GET("/by-month/:month", constellationHandler.GetByMonth)
		constellations.GET("/:id", constellationHandler.GetByID)
		constellations.POST("", constellationHandler.Create)
		constellations.PUT("/:id", constellationHandler.Update)
		constellations.DELETE("/:id", constellationHandler.Delete)

		spaceships := api.Group("/spaceships")
		spaceships.GET("", spaceshipHandler.GetAll)
		spaceships.GET("/:id", spaceshipHandler.GetByID)
		spaceships.POST("", spaceshipHandler.Create)
		spaceships.PUT("/:id", spaceshipHandler.Update)
		spaceships.DELETE("/:id", spaceshipHandler.Delete)

		aliens := api.Group("/aliens")
		aliens.GET("", alienHandler.GetAll)
		aliens.GET("/friendly", alienHandler.GetFriendly)
		aliens.GET("/by-origin-planet/:originPlanet", alienHandler.GetByOriginPlanet)
		aliens.GET("/:id", alienHandler.GetByID)
		aliens.POST("", alienHandler.Create)
		aliens.PUT("/:id", alienHandler.Update)
		aliens.DELETE("/:id", alienHandler.Delete)

		api.GET("/celestial-objects", celestialHandler.GetAll)

		api.GET("/images", imageHandler.GetAll)
		api.POST("/images", imageHandler.Upload)

		api.GET("/search", searchHandler.Search)

		api.POST("/notifications", notificationHandler.Create)
		api.GET("/notifications/:id", notificationHandler.GetByID)
		api.GET("/notifications/by-alien/:alienId", notificationHandler.GetByAlienID)
	}

	return &CatalogServer{
		Server: Server{engine: router},
		jobs: []scheduler.Job{
			searchService.NewReindexJob(celestialRepository, search, opts.SearchReindexSchedule),
		},
	}
}
