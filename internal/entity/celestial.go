package entity

import "time"

// Discriminator values stored in celestial_objects.celestial_object_type.
const (
	TypePlanet        = "Planet"
	TypeMoon          = "Moon"
	TypeSatellite     = "Satellite"
	TypeConstellation = "Constellation"
	TypeComet         = "Comet"
	TypeSpaceship     = "Spaceship"
	TypeAlien         = "Alien"
)

const CelestialTable = "celestial_objects"

// Subtype is implemented by a pointer to every concrete celestial type. The
// repository layer uses it to stamp and scope the discriminator.
type Subtype interface {
	CelestialType() string
	Base() *CelestialBase
}

// CelestialBase holds the columns every row carries whatever its subtype.
type CelestialBase struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	CelestialObjectType string    `gorm:"size:32;not null;index" json:"type"`
	Name                string    `gorm:"size:200;not null" json:"name"`
	Description         string    `gorm:"type:text" json:"description"`
	ImageID             *uint     `json:"imageId"`
	Image               *Image    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"image,omitempty"`
	XCoordinate         float64   `json:"xCoordinate"`
	YCoordinate         float64   `json:"yCoordinate"`
	ZCoordinate         float64   `json:"zCoordinate"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (b *CelestialBase) Base() *CelestialBase {
	return b
}

// ImageURL is the path of the attached image, nil when there is none.
func (b *CelestialBase) ImageURL() *string {
	if b.Image == nil {
		return nil
	}
	path := b.Image.Path
	return &path
}

// SetImage attaches img and keeps the foreign key in sync.
func (b *CelestialBase) SetImage(img *Image) {
	b.Image = img
	if img == nil {
		b.ImageID = nil
		return
	}
	id := img.ID
	b.ImageID = &id
}

// CelestialObject is the full single-table row. It is the schema source for
// migrations and the shape used for cross-subtype reads; every subtype column
// is nullable and stays NULL on rows of other subtypes.
type CelestialObject struct {
	CelestialBase

	// Planet
	HasRings        *bool    `json:"hasRings,omitempty"`
	SupportsLife    *bool    `json:"supportsLife,omitempty"`
	Diameter        *float64 `json:"diameter,omitempty"`
	Mass            *float64 `json:"mass,omitempty"`
	DistanceFromSun *float64 `json:"distanceFromSun,omitempty"`
	SurfaceTexture  *string  `gorm:"size:32" json:"surfaceTexture,omitempty"`

	// Moon
	PlanetID           *uint            `gorm:"index" json:"planetId,omitempty"`
	Parent             *CelestialObject `gorm:"foreignKey:PlanetID;constraint:OnDelete:RESTRICT" json:"-"`
	OrbitalPeriod      *float64         `json:"orbitalPeriod,omitempty"`
	DistanceFromPlanet *float64         `json:"distanceFromPlanet,omitempty"`

	// Satellite and Spaceship
	OrbitType  *string    `gorm:"size:100" json:"orbitType,omitempty"`
	LaunchDate *time.Time `json:"launchDate,omitempty"`
	Function   *string    `gorm:"size:200" json:"function,omitempty"`
	Mission    *string    `gorm:"type:text" json:"mission,omitempty"`
	ReturnDate *time.Time `json:"returnDate,omitempty"`

	// Comet
	NextAppearance *time.Time `json:"nextAppearance,omitempty"`
	TailColor      *string    `gorm:"size:16" json:"tailColor,omitempty"`

	// Constellation
	MainStars         *string `gorm:"type:text" json:"mainStars,omitempty"`
	BestViewingMonths *string `gorm:"size:200" json:"bestViewingMonths,omitempty"`

	// Alien
	OriginPlanet *string `gorm:"size:100" json:"originPlanet,omitempty"`
	IsFriendly   *bool   `json:"isFriendly,omitempty"`
}

func (CelestialObject) TableName() string {
	return CelestialTable
}
