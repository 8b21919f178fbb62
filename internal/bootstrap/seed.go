package bootstrap

import (
	"anoa.com/spacemanagement/internal/entity"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// MigrateCatalog creates the catalog schema. Images first: celestial objects
// reference them, notifications reference celestial objects.
func MigrateCatalog(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Image{},
		&entity.CelestialObject{},
		&entity.Notification{},
	)
}

func MigrateAuth(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.UserNotification{},
	)
}

// DefaultImages is the image set the catalog expects to find by name.
var DefaultImages = []entity.Image{
	{Name: "alien", Path: "/images/alien.png"},
	{Name: "moon", Path: "/images/moon.jpg"},
	{Name: "constellation", Path: "/images/constellation.jpg"},
	{Name: "satellite", Path: "/images/satellite.png"},
	{Name: "spaceship", Path: "/images/spaceship.png"},
	{Name: "cometBlue", Path: "/images/comet_blue.png"},
	{Name: "cometOrange", Path: "/images/comet_orange.png"},
	{Name: "mars", Path: "/textures/mars.jpg"},
	{Name: "earth", Path: "/textures/earth.jpg"},
	{Name: "neptune", Path: "/textures/neptune.jpg"},
	{Name: "jupiter", Path: "/textures/jupiter.jpg"},
	{Name: "uranus", Path: "/textures/uranus.jpg"},
	{Name: "venus", Path: "/textures/venus.jpg"},
	{Name: "mercury", Path: "/textures/mercury.jpg"},
}

// SeedImages inserts the default images that are missing. Existing rows are
// left alone so uploaded replacements survive restarts.
func SeedImages(db *gorm.DB) error {
	seeded := 0
	for _, image := range DefaultImages {
		var count int64
		if err := db.Model(&entity.Image{}).
			Where("name = ?", image.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			img := image
			if err := db.Create(&img).Error; err != nil {
				return err
			}
			seeded++
		}
	}

	if seeded > 0 {
		log.Info().Int("count", seeded).Msg("default images seeded")
	}
	return nil
}
